package wishlist

import (
	"context"
	"errors"
	"strings"

	"github.com/ghstudios/mhgen-catalog/pkg/db"
	"github.com/ghstudios/mhgen-catalog/pkg/db/models"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// List returns every wishlist in creation order.
func (r *Repository) List(ctx context.Context) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&wishlists).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists")
	}
	return wishlists, nil
}

// Create inserts a wishlist with the trimmed name.
func (r *Repository) Create(ctx context.Context, name string) (models.Wishlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Wishlist{}, pkgerrors.New(pkgerrors.CodeValidation, "wishlist name is required")
	}
	wishlist := models.Wishlist{Name: name}
	if err := r.db.WithContext(ctx).Create(&wishlist).Error; err != nil {
		return models.Wishlist{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wishlist")
	}
	return wishlist, nil
}

// Get loads a wishlist without its placements.
func (r *Repository) Get(ctx context.Context, id int64) (models.Wishlist, error) {
	return r.find(ctx, id, r.db.WithContext(ctx))
}

// GetWithPlacements loads a wishlist and every placement row, oldest first.
func (r *Repository) GetWithPlacements(ctx context.Context, id int64) (models.Wishlist, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	query := r.db.WithContext(ctx).
		Preload("Items", byID).
		Preload("ArmorFamilies", byID)
	return r.find(ctx, id, query)
}

func (r *Repository) find(ctx context.Context, id int64, query *gorm.DB) (models.Wishlist, error) {
	if id < 1 {
		return models.Wishlist{}, pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
	}
	var wishlist models.Wishlist
	if err := query.First(&wishlist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Wishlist{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return models.Wishlist{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return wishlist, nil
}

// AddItem records quantity of an item on a wishlist. An existing row for the
// same (wishlist, item, path) has the quantity added to it.
func (r *Repository) AddItem(ctx context.Context, wishlistID, itemID int64, quantity int, path string) error {
	if err := r.ensureExists(ctx, wishlistID); err != nil {
		return err
	}
	row := models.WishlistItem{
		WishlistID: wishlistID,
		ItemID:     itemID,
		Path:       path,
		Quantity:   quantity,
	}
	err := r.db.WithContext(ctx).
		Clauses(accumulate("wishlist_items", "item_id")).
		Create(&row).
		Error
	if err != nil {
		return placementWriteError(err, "wishlist_items", "wishlist_items_wishlist_item_path_key", "add wishlist item")
	}
	return nil
}

// AddArmorFamily records quantity of a complete armor set on a wishlist, with
// the same accumulation rule as AddItem.
func (r *Repository) AddArmorFamily(ctx context.Context, wishlistID, familyID int64, quantity int, path string) error {
	if err := r.ensureExists(ctx, wishlistID); err != nil {
		return err
	}
	row := models.WishlistArmorFamily{
		WishlistID:    wishlistID,
		ArmorFamilyID: familyID,
		Path:          path,
		Quantity:      quantity,
	}
	err := r.db.WithContext(ctx).
		Clauses(accumulate("wishlist_armor_families", "armor_family_id")).
		Create(&row).
		Error
	if err != nil {
		return placementWriteError(err, "wishlist_armor_families", "wishlist_armor_families_wishlist_family_path_key", "add wishlist armor set")
	}
	return nil
}

func (r *Repository) ensureExists(ctx context.Context, wishlistID int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("id = ?", wishlistID).
		Count(&count).
		Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	if count == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
	}
	return nil
}

// placementWriteError reports a unique violation that slipped past the upsert
// as a conflict so the caller can retry.
func placementWriteError(err error, table, constraint, msg string) error {
	if db.IsUniqueViolation(err, constraint) || db.IsUniqueViolationOnTable(err, table) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, msg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, msg)
}

func accumulate(table, targetColumn string) clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "wishlist_id"}, {Name: targetColumn}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr(table + ".quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}
}
