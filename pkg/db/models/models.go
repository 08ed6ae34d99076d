package models

// All lists every model in dependency order, for AutoMigrate in SQLite mode and tests.
func All() []any {
	return []any{
		&Item{},
		&Component{},
		&ArmorFamily{},
		&ArmorFamilySkill{},
		&Wishlist{},
		&WishlistItem{},
		&WishlistArmorFamily{},
	}
}
