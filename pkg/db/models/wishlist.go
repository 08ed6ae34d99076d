package models

import "time"

// Wishlist is a user-owned named collection of desired items and armor sets.
type Wishlist struct {
	ID            int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string                `gorm:"column:name;not null"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
	Items         []WishlistItem        `gorm:"foreignKey:WishlistID"`
	ArmorFamilies []WishlistArmorFamily `gorm:"foreignKey:WishlistID"`
}

func (Wishlist) TableName() string { return "wishlists" }
