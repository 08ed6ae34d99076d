package catalog

import (
	"context"
	"errors"

	"github.com/ghstudios/mhgen-catalog/pkg/db/models"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"gorm.io/gorm"
)

// Repository reads items, recipes and armor families.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a catalog repository to the provided gorm DB.
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

// GetItem loads a single item by id.
func (r *Repository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	if id < 1 {
		return models.Item{}, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.Item{}, notFoundOr(err, "item not found", "load item")
	}
	return item, nil
}

// ListAcquisitionPaths returns the distinct recipe types that produce the item,
// in first-insertion order. An item with no recipe rows yields DefaultPath.
func (r *Repository) ListAcquisitionPaths(ctx context.Context, itemID int64) ([]string, error) {
	if _, err := r.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	var rows []struct {
		Type string
	}
	err := r.db.WithContext(ctx).
		Model(&models.Component{}).
		Select("type, MIN(id) AS first_id").
		Where("created_item_id = ?", itemID).
		Group("type").
		Order("first_id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list acquisition paths")
	}

	paths := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Type == "" {
			continue
		}
		paths = append(paths, row.Type)
	}
	if len(paths) == 0 {
		return []string{DefaultPath}, nil
	}
	return paths, nil
}

// ListComponents returns the ingredient rows of one recipe type for an item.
func (r *Repository) ListComponents(ctx context.Context, itemID int64, path string) ([]models.Component, error) {
	var components []models.Component
	err := r.db.WithContext(ctx).
		Where("created_item_id = ? AND type = ?", itemID, path).
		Order("id ASC").
		Find(&components).
		Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list components")
	}
	return components, nil
}

// GetArmorFamily loads an armor family with its skills in display order.
func (r *Repository) GetArmorFamily(ctx context.Context, id int64) (models.ArmorFamily, error) {
	if id < 1 {
		return models.ArmorFamily{}, pkgerrors.New(pkgerrors.CodeNotFound, "armor family not found")
	}
	var family models.ArmorFamily
	err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		First(&family, "id = ?", id).
		Error
	if err != nil {
		return models.ArmorFamily{}, notFoundOr(err, "armor family not found", "load armor family")
	}
	return family, nil
}

func notFoundOr(err error, notFoundMsg, dependencyMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, notFoundMsg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, dependencyMsg)
}
