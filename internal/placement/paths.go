package placement

import (
	"context"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

// ResolvePaths returns the ordered acquisition paths for the selection. The
// first entry is the default. The result is never empty on success.
func (s *Service) ResolvePaths(ctx context.Context, selection ItemSelection) ([]AcquisitionPath, error) {
	if selection.ID < 1 {
		return nil, errNotFound(nil, "no selection identifier")
	}

	switch selection.Kind {
	case KindArmorSet:
		if _, err := s.store.GetArmorFamily(ctx, selection.ID); err != nil {
			return nil, classifyLookup(err, "armor set not found")
		}
		return []AcquisitionPath{CreatePath}, nil
	case KindSingleItem:
		paths, err := s.store.ListAcquisitionPaths(ctx, selection.ID)
		if err != nil {
			return nil, classifyLookup(err, "item not found")
		}
		if len(paths) == 0 {
			return []AcquisitionPath{CreatePath}, nil
		}
		return paths, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported selection kind")
	}
}

// ListWishlists returns the wishlists currently known to the store.
func (s *Service) ListWishlists(ctx context.Context) ([]Wishlist, error) {
	wishlists, err := s.store.ListWishlists(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists")
	}
	return wishlists, nil
}

func classifyLookup(err error, message string) error {
	if pkgerrors.CodeOf(err) == pkgerrors.CodeNotFound {
		return errNotFound(err, message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog lookup failed")
}

// pickPath returns tag when it is one of paths, otherwise the default path.
func pickPath(paths []AcquisitionPath, tag AcquisitionPath) AcquisitionPath {
	for _, path := range paths {
		if path == tag {
			return path
		}
	}
	return paths[0]
}
