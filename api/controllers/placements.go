package controllers

import (
	"net/http"

	"github.com/ghstudios/mhgen-catalog/api/responses"
	"github.com/ghstudios/mhgen-catalog/api/validators"
	"github.com/ghstudios/mhgen-catalog/internal/placement"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
	"github.com/ghstudios/mhgen-catalog/pkg/metrics"
)

const maxWishlistNameInput = 256

// PlacementWorkflow starts placement runs.
type PlacementWorkflow interface {
	NewRun(selection placement.ItemSelection) *placement.Run
}

type placementOptionsResponse struct {
	Kind        placement.Kind              `json:"kind"`
	Paths       []placement.AcquisitionPath `json:"paths"`
	DefaultPath placement.AcquisitionPath   `json:"default_path"`
	Mode        string                      `json:"mode"`
	Wishlists   []placement.Wishlist        `json:"wishlists"`
}

type placementCommitPayload struct {
	Type         string `json:"type" validate:"required,oneof=item armor_set"`
	ID           int64  `json:"id"`
	Quantity     string `json:"quantity"`
	WishlistName string `json:"wishlist_name" validate:"max=256"`
	Position     *int   `json:"position,omitempty" validate:"omitempty,gte=0"`
	WishlistID   *int64 `json:"wishlist_id,omitempty"`
	Path         string `json:"path"`
}

// PlacementOptions returns what the caller needs to render the placement
// prompt: acquisition paths, the default path and the wishlist selection mode.
func PlacementOptions(svc PlacementWorkflow, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
			return
		}

		kind, ok := placement.ParseKind(r.URL.Query().Get("type"))
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "type must be item or armor_set").
				WithDetails(map[string]any{"field": "type"}))
			return
		}
		id, err := validators.ParseQueryID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		run := svc.NewRun(placement.ItemSelection{Kind: kind, ID: id})
		if err := run.Load(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		paths := run.Paths()
		mode := run.Mode()
		wishlists := mode.Existing
		if wishlists == nil {
			wishlists = []placement.Wishlist{}
		}
		responses.WriteSuccess(w, placementOptionsResponse{
			Kind:        kind,
			Paths:       paths,
			DefaultPath: paths[0],
			Mode:        mode.Kind.String(),
			Wishlists:   wishlists,
		})
	}
}

// PlacementCommit validates and records one placement. Concurrent commits for
// the same selection are rejected by guard.
func PlacementCommit(svc PlacementWorkflow, guard placement.Guard, m *metrics.PlacementMetrics, logg *logger.Logger) http.HandlerFunc {
	if guard == nil {
		guard = placement.NopGuard{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
			return
		}

		var payload placementCommitPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		kind, _ := placement.ParseKind(payload.Type)
		selection := placement.ItemSelection{Kind: kind, ID: payload.ID}
		if logg != nil {
			ctx = logg.WithSelection(ctx, string(kind), payload.ID)
		}

		release, err := guard.Acquire(ctx, selection)
		if err != nil {
			if pkgerrors.CodeOf(err) == pkgerrors.CodeConflict {
				m.IncInFlightRejection()
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}
		defer release()

		run := svc.NewRun(selection)
		if err := run.Load(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		outcome, err := run.Submit(ctx, placement.Submission{
			Quantity: payload.Quantity,
			Name:     validators.SanitizeString(payload.WishlistName, maxWishlistNameInput),
			Target:   submissionTarget(payload),
			PathTag:  placement.AcquisitionPath(payload.Path),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status := http.StatusOK
		if outcome.Created {
			status = http.StatusCreated
		}
		responses.WriteSuccessStatus(w, status, outcome)
	}
}

func submissionTarget(payload placementCommitPayload) placement.Target {
	var target placement.Target
	if payload.Position != nil {
		target.Position = *payload.Position
	}
	if payload.WishlistID != nil {
		target.WishlistID = *payload.WishlistID
	}
	return target
}
