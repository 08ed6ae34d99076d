package models

import "time"

// WishlistArmorFamily records a wanted quantity of a complete armor set.
type WishlistArmorFamily struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WishlistID    int64     `gorm:"column:wishlist_id;not null;uniqueIndex:wishlist_armor_families_wishlist_family_path_key"`
	ArmorFamilyID int64     `gorm:"column:armor_family_id;not null;index:wishlist_armor_families_family_id_idx;uniqueIndex:wishlist_armor_families_wishlist_family_path_key"`
	Path          string    `gorm:"column:path;not null;uniqueIndex:wishlist_armor_families_wishlist_family_path_key"`
	Quantity      int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (WishlistArmorFamily) TableName() string { return "wishlist_armor_families" }
