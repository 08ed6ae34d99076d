package placement

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

const reasonPlaced = "placed"

// PlaceParams is everything a placement needs once inputs are validated.
type PlaceParams struct {
	Selection ItemSelection
	Paths     []AcquisitionPath
	Mode      Mode
	Input     ValidatedInput
	Target    Target
	PathTag   AcquisitionPath
}

// Place records the selection on a wishlist. In RequireNewName mode the
// wishlist is created first. A Target.Position outside Mode.Existing panics.
//
// Writes run on a context detached from ctx cancellation and, when the store
// is a Transactor, inside one transaction.
func (s *Service) Place(ctx context.Context, params PlaceParams) (outcome Outcome, err error) {
	start := time.Now()
	kind := string(params.Selection.Kind)
	ctx = s.logg.WithSelection(ctx, kind, params.Selection.ID)

	defer func() {
		if r := recover(); r != nil {
			s.metrics.IncOutcome(kind, "panic")
			panic(r)
		}
		s.metrics.ObserveDuration(kind, time.Since(start))
		if err != nil {
			s.metrics.IncOutcome(kind, string(ReasonOf(err)))
			return
		}
		s.metrics.IncOutcome(kind, reasonPlaced)
	}()

	if len(params.Paths) == 0 {
		return Outcome{}, s.unknown(ctx, pkgerrors.New(pkgerrors.CodeInternal, "no acquisition paths resolved"))
	}
	path := pickPath(params.Paths, params.PathTag)

	var chosen Wishlist
	if !params.Mode.RequiresNewName() {
		chosen, err = chooseWishlist(params.Mode.Existing, params.Target)
		if err != nil {
			return Outcome{}, err
		}
	}

	work := func(store Store) error {
		wishlist := chosen
		if params.Mode.RequiresNewName() {
			created, createErr := createWishlist(ctx, store, params.Input.Name)
			if createErr != nil {
				return createErr
			}
			wishlist = created
		}

		if persistErr := persist(ctx, store, params.Selection, wishlist.ID, params.Input.Quantity, path); persistErr != nil {
			return persistErr
		}

		outcome = Outcome{
			WishlistID:   wishlist.ID,
			WishlistName: wishlist.Name,
			Quantity:     params.Input.Quantity,
			Path:         path,
			Created:      params.Mode.RequiresNewName(),
		}
		return nil
	}

	detached := context.WithoutCancel(ctx)
	if tx, ok := s.store.(Transactor); ok {
		err = tx.InTx(detached, work)
	} else {
		err = work(s.store)
	}
	if err != nil {
		if ReasonOf(err) == ReasonWishlistCreationFailed {
			s.logg.Warn(ctx, err.Error())
			return Outcome{}, err
		}
		return Outcome{}, s.unknown(ctx, err)
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"wishlist_id": outcome.WishlistID,
		"path":        string(outcome.Path),
		"quantity":    outcome.Quantity,
		"created":     outcome.Created,
	}), "wishlist placement recorded")
	return outcome, nil
}

func (s *Service) unknown(ctx context.Context, cause error) error {
	s.logg.Error(s.logg.WithField(ctx, "error_chain", pkgerrors.Dump(cause)), "wishlist placement failed", cause)
	return errUnknown(cause)
}

func chooseWishlist(existing []Wishlist, target Target) (Wishlist, error) {
	if target.WishlistID != 0 {
		for _, wishlist := range existing {
			if wishlist.ID == target.WishlistID {
				return wishlist, nil
			}
		}
		return Wishlist{}, errNotFound(nil, "wishlist not found")
	}
	if target.Position < 0 || target.Position >= len(existing) {
		panic(fmt.Sprintf("placement: wishlist position %d out of range [0,%d)", target.Position, len(existing)))
	}
	return existing[target.Position], nil
}

func createWishlist(ctx context.Context, store Store, name string) (Wishlist, error) {
	id, err := store.CreateWishlist(ctx, name)
	if err != nil {
		return Wishlist{}, errWishlistCreationFailed(err)
	}
	wishlist, err := store.GetWishlist(ctx, id)
	if err != nil {
		return Wishlist{}, errWishlistCreationFailed(err)
	}
	return wishlist, nil
}

func persist(ctx context.Context, store Store, selection ItemSelection, wishlistID int64, quantity int, path AcquisitionPath) error {
	switch selection.Kind {
	case KindArmorSet:
		return store.AddArmorSetPlacement(ctx, wishlistID, selection.ID, quantity, path)
	case KindSingleItem:
		return store.AddPlacement(ctx, wishlistID, selection.ID, quantity, path)
	default:
		return pkgerrors.New(pkgerrors.CodeInternal, "unsupported selection kind")
	}
}
