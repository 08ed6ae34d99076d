package models

// Item is a catalog entry: materials, decorations, weapons and armor pieces all
// share this table.
type Item struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null"`
	Type     string `gorm:"column:type;not null;default:''"`
	Rarity   int    `gorm:"column:rarity;not null;default:1"`
	IconName string `gorm:"column:icon_name"`
}

func (Item) TableName() string { return "items" }
