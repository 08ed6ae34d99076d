package placement

import (
	"context"
	"sync"
	"testing"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

type placementCall struct {
	Kind       Kind
	WishlistID int64
	TargetID   int64
	Quantity   int
	Path       AcquisitionPath
}

type fakeStore struct {
	mu sync.Mutex

	listWishlistsFn   func(ctx context.Context) ([]Wishlist, error)
	listPathsFn       func(ctx context.Context, itemID int64) ([]AcquisitionPath, error)
	getArmorFamilyFn  func(ctx context.Context, id int64) (ArmorFamily, error)
	createWishlistFn  func(ctx context.Context, name string) (int64, error)
	getWishlistFn     func(ctx context.Context, id int64) (Wishlist, error)
	addPlacementFn    func(ctx context.Context, wishlistID, itemID int64, quantity int, path AcquisitionPath) error
	addArmorSetFn     func(ctx context.Context, wishlistID, armorSetID int64, quantity int, path AcquisitionPath) error
	createdNames      []string
	placements        []placementCall
	persistenceCalled bool
}

func (f *fakeStore) ListWishlists(ctx context.Context) ([]Wishlist, error) {
	if f.listWishlistsFn != nil {
		return f.listWishlistsFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) ListAcquisitionPaths(ctx context.Context, itemID int64) ([]AcquisitionPath, error) {
	if f.listPathsFn != nil {
		return f.listPathsFn(ctx, itemID)
	}
	return []AcquisitionPath{CreatePath}, nil
}

func (f *fakeStore) GetArmorFamily(ctx context.Context, id int64) (ArmorFamily, error) {
	if f.getArmorFamilyFn != nil {
		return f.getArmorFamilyFn(ctx, id)
	}
	return ArmorFamily{ID: id, Name: "family"}, nil
}

func (f *fakeStore) CreateWishlist(ctx context.Context, name string) (int64, error) {
	f.mu.Lock()
	f.persistenceCalled = true
	f.createdNames = append(f.createdNames, name)
	f.mu.Unlock()
	if f.createWishlistFn != nil {
		return f.createWishlistFn(ctx, name)
	}
	return 100, nil
}

func (f *fakeStore) GetWishlist(ctx context.Context, id int64) (Wishlist, error) {
	if f.getWishlistFn != nil {
		return f.getWishlistFn(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name := ""
	if len(f.createdNames) > 0 {
		name = f.createdNames[len(f.createdNames)-1]
	}
	return Wishlist{ID: id, Name: name}, nil
}

func (f *fakeStore) AddPlacement(ctx context.Context, wishlistID, itemID int64, quantity int, path AcquisitionPath) error {
	f.record(placementCall{Kind: KindSingleItem, WishlistID: wishlistID, TargetID: itemID, Quantity: quantity, Path: path})
	if f.addPlacementFn != nil {
		return f.addPlacementFn(ctx, wishlistID, itemID, quantity, path)
	}
	return nil
}

func (f *fakeStore) AddArmorSetPlacement(ctx context.Context, wishlistID, armorSetID int64, quantity int, path AcquisitionPath) error {
	f.record(placementCall{Kind: KindArmorSet, WishlistID: wishlistID, TargetID: armorSetID, Quantity: quantity, Path: path})
	if f.addArmorSetFn != nil {
		return f.addArmorSetFn(ctx, wishlistID, armorSetID, quantity, path)
	}
	return nil
}

func (f *fakeStore) record(call placementCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persistenceCalled = true
	f.placements = append(f.placements, call)
}

// txStore stages writes and only publishes them to the parent on commit.
type txStore struct {
	*fakeStore
	commits   int
	rollbacks int
	ctxErr    error
}

func (s *txStore) InTx(ctx context.Context, fn func(Store) error) error {
	s.ctxErr = ctx.Err()
	s.fakeStore.mu.Lock()
	savedNames := append([]string(nil), s.fakeStore.createdNames...)
	savedPlacements := append([]placementCall(nil), s.fakeStore.placements...)
	s.fakeStore.mu.Unlock()

	if err := fn(s.fakeStore); err != nil {
		s.fakeStore.mu.Lock()
		s.fakeStore.createdNames = savedNames
		s.fakeStore.placements = savedPlacements
		s.fakeStore.mu.Unlock()
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func notFound(message string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, message)
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}
