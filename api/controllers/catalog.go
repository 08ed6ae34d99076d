package controllers

import (
	"net/http"

	"github.com/ghstudios/mhgen-catalog/api/responses"
	"github.com/ghstudios/mhgen-catalog/api/validators"
	"github.com/ghstudios/mhgen-catalog/internal/catalog"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
)

// CatalogItem returns one catalog item.
func CatalogItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		itemID, err := validators.ParsePathID(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.GetItem(ctx, itemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// CatalogItemPaths lists the acquisition paths of an item; the first is the default.
func CatalogItemPaths(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		itemID, err := validators.ParsePathID(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		paths, err := svc.ListAcquisitionPaths(ctx, itemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"paths": paths})
	}
}

// CatalogArmorFamily returns an armor family with its skills.
func CatalogArmorFamily(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		familyID, err := validators.ParsePathID(r, "familyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		family, err := svc.GetArmorFamily(ctx, familyID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, family)
	}
}
