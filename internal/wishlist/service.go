package wishlist

import (
	"context"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

// Service exposes wishlist listing, creation and detail for the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]WishlistDTO, error)
	Create(ctx context.Context, name string) (WishlistDTO, error)
	Get(ctx context.Context, id int64) (WishlistDetailDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]WishlistDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]WishlistDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, name string) (WishlistDTO, error) {
	created, err := s.repo.Create(ctx, name)
	if err != nil {
		return WishlistDTO{}, err
	}
	return toDTO(created), nil
}

func (s *service) Get(ctx context.Context, id int64) (WishlistDetailDTO, error) {
	wishlist, err := s.repo.GetWithPlacements(ctx, id)
	if err != nil {
		return WishlistDetailDTO{}, err
	}
	return toDetailDTO(wishlist), nil
}
