package placement

// SelectionModeFor picks the wishlist selection mode for the existing wishlists.
func SelectionModeFor(existing []Wishlist) Mode {
	if len(existing) == 0 {
		return RequireNewName()
	}
	choices := make([]Wishlist, len(existing))
	copy(choices, existing)
	return ChooseFrom(choices)
}
