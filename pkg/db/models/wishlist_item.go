package models

import "time"

// WishlistItem records a wanted quantity of an item along one acquisition path.
type WishlistItem struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WishlistID int64     `gorm:"column:wishlist_id;not null;uniqueIndex:wishlist_items_wishlist_item_path_key"`
	ItemID     int64     `gorm:"column:item_id;not null;index:wishlist_items_item_id_idx;uniqueIndex:wishlist_items_wishlist_item_path_key"`
	Path       string    `gorm:"column:path;not null;uniqueIndex:wishlist_items_wishlist_item_path_key"`
	Quantity   int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
