package models

// ArmorFamily is the set obtained by equipping every piece of a family of armor.
type ArmorFamily struct {
	ID     int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string             `gorm:"column:name;not null"`
	Rarity int                `gorm:"column:rarity;not null;default:1"`
	MinDef int                `gorm:"column:min_def;not null;default:0"`
	MaxDef int                `gorm:"column:max_def;not null;default:0"`
	Skills []ArmorFamilySkill `gorm:"foreignKey:ArmorFamilyID"`
}

func (ArmorFamily) TableName() string { return "armor_families" }

// ArmorFamilySkill is one skill line the complete set provides, kept in display order.
type ArmorFamilySkill struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ArmorFamilyID int64  `gorm:"column:armor_family_id;not null;index:armor_family_skills_family_id_idx"`
	Name          string `gorm:"column:name;not null"`
	Position      int    `gorm:"column:position;not null;default:0"`
}

func (ArmorFamilySkill) TableName() string { return "armor_family_skills" }
