package catalog

import "github.com/ghstudios/mhgen-catalog/pkg/db/models"

// DefaultPath is the acquisition path used when an item has no recipe rows.
const DefaultPath = "Create"

// ItemDTO is the public projection of a catalog item.
type ItemDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rarity   int    `json:"rarity"`
	IconName string `json:"icon_name,omitempty"`
}

// ArmorFamilyDTO describes the result of equipping a complete armor set.
type ArmorFamilyDTO struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Rarity         int      `json:"rarity"`
	MinDef         int      `json:"min_def"`
	MaxDef         int      `json:"max_def"`
	Skills         []string `json:"skills"`
	IconColorIndex int      `json:"icon_color_index"`
}

// FromItem maps the persisted model into the DTO.
func FromItem(m models.Item) ItemDTO {
	return ItemDTO{
		ID:       m.ID,
		Name:     m.Name,
		Type:     m.Type,
		Rarity:   m.Rarity,
		IconName: m.IconName,
	}
}

// FromArmorFamily maps the persisted family and its ordered skills into the DTO.
func FromArmorFamily(m models.ArmorFamily) ArmorFamilyDTO {
	rarity := m.Rarity
	if rarity < 1 {
		rarity = 1
	}
	skills := make([]string, 0, len(m.Skills))
	for _, skill := range m.Skills {
		skills = append(skills, skill.Name)
	}
	return ArmorFamilyDTO{
		ID:             m.ID,
		Name:           m.Name,
		Rarity:         rarity,
		MinDef:         m.MinDef,
		MaxDef:         m.MaxDef,
		Skills:         skills,
		IconColorIndex: rarity - 1,
	}
}
