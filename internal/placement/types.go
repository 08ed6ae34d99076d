package placement

import "strings"

// Kind identifies what is being placed.
type Kind string

const (
	KindSingleItem Kind = "item"
	KindArmorSet   Kind = "armor_set"
)

// ParseKind maps the wire form onto a Kind.
func ParseKind(value string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindSingleItem:
		return KindSingleItem, true
	case KindArmorSet:
		return KindArmorSet, true
	default:
		return "", false
	}
}

// ItemSelection is the thing being added to a wishlist. It does not change during a run.
type ItemSelection struct {
	Kind Kind
	ID   int64
}

// Item builds a selection for a single catalog item.
func Item(id int64) ItemSelection {
	return ItemSelection{Kind: KindSingleItem, ID: id}
}

// ArmorSet builds a selection for a complete armor family.
func ArmorSet(id int64) ItemSelection {
	return ItemSelection{Kind: KindArmorSet, ID: id}
}

// Wishlist is the identity of a persisted wishlist.
type Wishlist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AcquisitionPath labels how an item is obtained ("Create", "Upgrade", ...).
type AcquisitionPath string

// CreatePath is the only path an armor set can be recorded under.
const CreatePath AcquisitionPath = "Create"

// ArmorFamily is the subset of an armor family the workflow needs.
type ArmorFamily struct {
	ID   int64
	Name string
}

// ModeKind distinguishes the two wishlist selection modes.
type ModeKind int

const (
	ModeRequireNewName ModeKind = iota
	ModeChooseFrom
)

func (k ModeKind) String() string {
	if k == ModeChooseFrom {
		return "choose_from"
	}
	return "require_new_name"
}

// Mode tells the caller whether a new wishlist name must be collected or one of
// Existing must be chosen.
type Mode struct {
	Kind     ModeKind
	Existing []Wishlist
}

// RequireNewName is the mode used when no wishlist exists yet.
func RequireNewName() Mode {
	return Mode{Kind: ModeRequireNewName}
}

// ChooseFrom is the mode used when at least one wishlist exists.
func ChooseFrom(existing []Wishlist) Mode {
	return Mode{Kind: ModeChooseFrom, Existing: existing}
}

// RequiresNewName reports whether the run will create a wishlist.
func (m Mode) RequiresNewName() bool {
	return m.Kind == ModeRequireNewName
}

// ValidatedInput carries inputs that passed validation.
type ValidatedInput struct {
	Quantity int
	Name     string
}

// Target picks the destination wishlist in ChooseFrom mode. A non-zero
// WishlistID takes precedence over Position.
type Target struct {
	Position   int
	WishlistID int64
}

// Outcome describes a successful placement.
type Outcome struct {
	WishlistID   int64           `json:"wishlist_id"`
	WishlistName string          `json:"wishlist_name"`
	Quantity     int             `json:"quantity"`
	Path         AcquisitionPath `json:"path"`
	Created      bool            `json:"created"`
}
