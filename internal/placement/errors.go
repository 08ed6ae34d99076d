package placement

import (
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"go.uber.org/multierr"
)

// Reason is the workflow-level classification attached to every placement error.
type Reason string

const (
	ReasonNameRequired           Reason = "NAME_REQUIRED"
	ReasonQuantityRequired       Reason = "QUANTITY_REQUIRED"
	ReasonQuantityOutOfRange     Reason = "QUANTITY_OUT_OF_RANGE"
	ReasonWishlistCreationFailed Reason = "WISHLIST_CREATION_FAILED"
	ReasonNotFound               Reason = "NOT_FOUND"
	ReasonPositionOutOfRange     Reason = "POSITION_OUT_OF_RANGE"
	ReasonUnknown                Reason = "UNKNOWN"
)

const (
	detailReason  = "reason"
	detailReasons = "reasons"
)

func reasonDetails(reason Reason) map[string]any {
	return map[string]any{detailReason: string(reason)}
}

func errNameRequired() error {
	return pkgerrors.New(pkgerrors.CodeValidation, "wishlist name is required").
		WithDetails(reasonDetails(ReasonNameRequired))
}

func errQuantityRequired() error {
	return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a whole number").
		WithDetails(reasonDetails(ReasonQuantityRequired))
}

func errQuantityOutOfRange() error {
	return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be between 0 and 99").
		WithDetails(reasonDetails(ReasonQuantityOutOfRange))
}

func errPositionOutOfRange(position, size int) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "wishlist position out of range").
		WithDetails(map[string]any{
			detailReason: string(ReasonPositionOutOfRange),
			"position":   position,
			"wishlists":  size,
		})
}

func errWishlistCreationFailed(cause error) error {
	return pkgerrors.Wrap(pkgerrors.CodeDependency, cause, "wishlist could not be created").
		WithDetails(reasonDetails(ReasonWishlistCreationFailed))
}

func errNotFound(cause error, message string) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, cause, message).
		WithDetails(reasonDetails(ReasonNotFound))
}

func errUnknown(cause error) error {
	return pkgerrors.Wrap(pkgerrors.CodeInternal, cause, "placement failed").
		WithDetails(reasonDetails(ReasonUnknown))
}

// errValidationAll folds several validation failures into one error whose
// details list every reason in evaluation order.
func errValidationAll(errs []error) error {
	combined := multierr.Combine(errs...)
	reasons := ReasonsOf(combined)
	names := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		names = append(names, string(reason))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, combined, "validation failed").
		WithDetails(map[string]any{
			detailReason:  names[0],
			detailReasons: names,
		})
}

// ReasonOf extracts the workflow reason from err. Typed not-found errors from
// collaborators map to ReasonNotFound; anything unrecognized is ReasonUnknown.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		return ReasonUnknown
	}
	if details, ok := typed.Details().(map[string]any); ok {
		if value, ok := details[detailReason].(string); ok && value != "" {
			return Reason(value)
		}
	}
	if typed.Code() == pkgerrors.CodeNotFound {
		return ReasonNotFound
	}
	return ReasonUnknown
}

// ReasonsOf lists the reason of every error combined into err.
func ReasonsOf(err error) []Reason {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		if details, ok := typed.Details().(map[string]any); ok {
			if names, ok := details[detailReasons].([]string); ok {
				reasons := make([]Reason, 0, len(names))
				for _, name := range names {
					reasons = append(reasons, Reason(name))
				}
				return reasons
			}
		}
	}
	parts := multierr.Errors(err)
	reasons := make([]Reason, 0, len(parts))
	for _, part := range parts {
		reasons = append(reasons, ReasonOf(part))
	}
	return reasons
}
