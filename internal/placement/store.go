package placement

import "context"

// Store is the data-access collaborator the workflow depends on. NotFound
// conditions are reported as pkg/errors values with CodeNotFound.
type Store interface {
	ListWishlists(ctx context.Context) ([]Wishlist, error)
	ListAcquisitionPaths(ctx context.Context, itemID int64) ([]AcquisitionPath, error)
	GetArmorFamily(ctx context.Context, id int64) (ArmorFamily, error)
	CreateWishlist(ctx context.Context, name string) (int64, error)
	GetWishlist(ctx context.Context, id int64) (Wishlist, error)
	AddPlacement(ctx context.Context, wishlistID, itemID int64, quantity int, path AcquisitionPath) error
	AddArmorSetPlacement(ctx context.Context, wishlistID, armorSetID int64, quantity int, path AcquisitionPath) error
}

// Transactor is implemented by stores that can scope several writes in one
// transaction. fn receives a Store bound to that transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(Store) error) error
}
