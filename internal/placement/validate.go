package placement

import (
	"strconv"
	"strings"
)

const (
	MinQuantity = 0
	MaxQuantity = 99
)

// Validate checks the raw inputs and reports the first failure, in order:
// missing name (only when a new wishlist is required), non-integer quantity,
// quantity out of range.
func Validate(rawQuantity string, mode Mode, rawName string) (ValidatedInput, error) {
	name := strings.TrimSpace(rawName)
	if mode.RequiresNewName() && name == "" {
		return ValidatedInput{}, errNameRequired()
	}

	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		return ValidatedInput{}, err
	}
	return ValidatedInput{Quantity: quantity, Name: name}, nil
}

// ValidateAll checks the same constraints as Validate but reports every
// violation at once.
func ValidateAll(rawQuantity string, mode Mode, rawName string) (ValidatedInput, error) {
	var errs []error

	name := strings.TrimSpace(rawName)
	if mode.RequiresNewName() && name == "" {
		errs = append(errs, errNameRequired())
	}

	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return ValidatedInput{}, errValidationAll(errs)
	}
	return ValidatedInput{Quantity: quantity, Name: name}, nil
}

func parseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errQuantityRequired()
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return 0, errQuantityOutOfRange()
	}
	return quantity, nil
}
