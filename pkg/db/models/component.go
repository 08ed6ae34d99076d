package models

// Component is one ingredient row of a recipe. Type names the recipe
// ("Create", "Upgrade", "Create B", ...) and doubles as the acquisition path.
type Component struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CreatedItemID   int64  `gorm:"column:created_item_id;not null;index:components_created_item_id_idx"`
	ComponentItemID int64  `gorm:"column:component_item_id;not null"`
	Quantity        int    `gorm:"column:quantity;not null;default:1"`
	Type            string `gorm:"column:type;not null"`
}

func (Component) TableName() string { return "components" }
