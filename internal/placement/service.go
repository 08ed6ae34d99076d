package placement

import (
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
	"github.com/ghstudios/mhgen-catalog/pkg/metrics"
)

// ServiceParams groups dependencies for the placement workflow.
type ServiceParams struct {
	Store   Store
	Logger  *logger.Logger
	Metrics *metrics.PlacementMetrics
	// ReportAllErrors switches runs from first-failure validation to ValidateAll.
	ReportAllErrors bool
}

// Service runs the wishlist placement workflow against a Store.
type Service struct {
	store           Store
	logg            *logger.Logger
	metrics         *metrics.PlacementMetrics
	reportAllErrors bool
}

// NewService builds the workflow with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "placement store is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &Service{
		store:           params.Store,
		logg:            logg,
		metrics:         params.Metrics,
		reportAllErrors: params.ReportAllErrors,
	}, nil
}

// Validate applies the validation strategy configured for the service.
func (s *Service) Validate(rawQuantity string, mode Mode, rawName string) (ValidatedInput, error) {
	if s.reportAllErrors {
		return ValidateAll(rawQuantity, mode, rawName)
	}
	return Validate(rawQuantity, mode, rawName)
}
