package wishlist

import (
	"context"

	"github.com/ghstudios/mhgen-catalog/internal/catalog"
	"github.com/ghstudios/mhgen-catalog/internal/placement"
	"github.com/ghstudios/mhgen-catalog/pkg/db"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"gorm.io/gorm"
)

// Datastore backs the placement workflow with the catalog and wishlist
// repositories. It is a placement.Transactor.
type Datastore struct {
	client   *db.Client
	catalog  *catalog.Repository
	wishlist *Repository
}

var (
	_ placement.Store      = (*Datastore)(nil)
	_ placement.Transactor = (*Datastore)(nil)
)

// NewDatastore composes the repositories sharing client's connection.
func NewDatastore(client *db.Client) (*Datastore, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	conn := client.DB()
	return &Datastore{
		client:   client,
		catalog:  catalog.NewRepository(conn),
		wishlist: NewRepository(conn),
	}, nil
}

// InTx runs fn against a Datastore bound to a single transaction.
func (d *Datastore) InTx(ctx context.Context, fn func(placement.Store) error) error {
	return d.client.WithTx(ctx, func(tx *gorm.DB) error {
		return fn(&Datastore{
			client:   d.client,
			catalog:  d.catalog.WithTx(tx),
			wishlist: d.wishlist.WithTx(tx),
		})
	})
}

func (d *Datastore) ListWishlists(ctx context.Context) ([]placement.Wishlist, error) {
	rows, err := d.wishlist.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]placement.Wishlist, 0, len(rows))
	for _, row := range rows {
		out = append(out, placement.Wishlist{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (d *Datastore) ListAcquisitionPaths(ctx context.Context, itemID int64) ([]placement.AcquisitionPath, error) {
	labels, err := d.catalog.ListAcquisitionPaths(ctx, itemID)
	if err != nil {
		return nil, err
	}
	paths := make([]placement.AcquisitionPath, 0, len(labels))
	for _, label := range labels {
		paths = append(paths, placement.AcquisitionPath(label))
	}
	return paths, nil
}

func (d *Datastore) GetArmorFamily(ctx context.Context, id int64) (placement.ArmorFamily, error) {
	family, err := d.catalog.GetArmorFamily(ctx, id)
	if err != nil {
		return placement.ArmorFamily{}, err
	}
	return placement.ArmorFamily{ID: family.ID, Name: family.Name}, nil
}

func (d *Datastore) CreateWishlist(ctx context.Context, name string) (int64, error) {
	created, err := d.wishlist.Create(ctx, name)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (d *Datastore) GetWishlist(ctx context.Context, id int64) (placement.Wishlist, error) {
	row, err := d.wishlist.Get(ctx, id)
	if err != nil {
		return placement.Wishlist{}, err
	}
	return placement.Wishlist{ID: row.ID, Name: row.Name}, nil
}

func (d *Datastore) AddPlacement(ctx context.Context, wishlistID, itemID int64, quantity int, path placement.AcquisitionPath) error {
	return d.wishlist.AddItem(ctx, wishlistID, itemID, quantity, string(path))
}

func (d *Datastore) AddArmorSetPlacement(ctx context.Context, wishlistID, armorSetID int64, quantity int, path placement.AcquisitionPath) error {
	return d.wishlist.AddArmorFamily(ctx, wishlistID, armorSetID, quantity, string(path))
}
