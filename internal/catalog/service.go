package catalog

import (
	"context"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

// Service exposes read-only catalog lookups for the detail screens.
type Service interface {
	GetItem(ctx context.Context, id int64) (ItemDTO, error)
	ListAcquisitionPaths(ctx context.Context, itemID int64) ([]string, error)
	GetArmorFamily(ctx context.Context, id int64) (ArmorFamilyDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service backed by the repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (ItemDTO, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return ItemDTO{}, err
	}
	return FromItem(item), nil
}

func (s *service) ListAcquisitionPaths(ctx context.Context, itemID int64) ([]string, error) {
	return s.repo.ListAcquisitionPaths(ctx, itemID)
}

func (s *service) GetArmorFamily(ctx context.Context, id int64) (ArmorFamilyDTO, error) {
	family, err := s.repo.GetArmorFamily(ctx, id)
	if err != nil {
		return ArmorFamilyDTO{}, err
	}
	return FromArmorFamily(family), nil
}
