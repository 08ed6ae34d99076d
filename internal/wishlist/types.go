package wishlist

import (
	"time"

	"github.com/ghstudios/mhgen-catalog/pkg/db/models"
)

// WishlistDTO is the summary row returned by list and create.
type WishlistDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlacementDTO is one wanted item or armor set on a wishlist.
type PlacementDTO struct {
	ID        int64     `json:"id"`
	TargetID  int64     `json:"target_id"`
	Path      string    `json:"path"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WishlistDetailDTO is a wishlist with its placements.
type WishlistDetailDTO struct {
	WishlistDTO
	Items     []PlacementDTO `json:"items"`
	ArmorSets []PlacementDTO `json:"armor_sets"`
}

func toDTO(m models.Wishlist) WishlistDTO {
	return WishlistDTO{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDetailDTO(m models.Wishlist) WishlistDetailDTO {
	items := make([]PlacementDTO, 0, len(m.Items))
	for _, row := range m.Items {
		items = append(items, PlacementDTO{
			ID:        row.ID,
			TargetID:  row.ItemID,
			Path:      row.Path,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	sets := make([]PlacementDTO, 0, len(m.ArmorFamilies))
	for _, row := range m.ArmorFamilies {
		sets = append(sets, PlacementDTO{
			ID:        row.ID,
			TargetID:  row.ArmorFamilyID,
			Path:      row.Path,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return WishlistDetailDTO{
		WishlistDTO: toDTO(m),
		Items:       items,
		ArmorSets:   sets,
	}
}
