package controllers

import (
	"net/http"

	"github.com/ghstudios/mhgen-catalog/api/responses"
	"github.com/ghstudios/mhgen-catalog/api/validators"
	"github.com/ghstudios/mhgen-catalog/internal/wishlist"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
)

const maxWishlistNameLength = 64

type createWishlistPayload struct {
	Name string `json:"name" validate:"required,max=256"`
}

// WishlistList returns every wishlist in creation order.
func WishlistList(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		list, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"wishlists": list})
	}
}

// WishlistCreate creates an empty wishlist.
func WishlistCreate(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var payload createWishlistPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Create(ctx, validators.SanitizeString(payload.Name, maxWishlistNameLength))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// WishlistDetail returns a wishlist with its item and armor-set placements.
func WishlistDetail(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		detail, err := svc.Get(ctx, wishlistID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}
