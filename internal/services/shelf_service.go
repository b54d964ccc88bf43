package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// ShelfService serves shelf records populated with their rack→section chain.
type ShelfService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *ShelfService) GetAll(ctx context.Context) ([]*models.Shelf, error) {
	shelves, err := s.store.GetAllShelves(ctx)
	if err != nil {
		return nil, err
	}
	for _, sh := range shelves {
		if err := s.store.PopulateShelf(ctx, sh); err != nil {
			return nil, err
		}
	}
	return shelves, nil
}

func (s *ShelfService) GetByID(ctx context.Context, id string) (*models.Shelf, error) {
	shelf, err := s.store.GetShelf(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateShelf(ctx, shelf); err != nil {
		return nil, err
	}
	return shelf, nil
}

func (s *ShelfService) Create(ctx context.Context, in store.CreateShelfInput) (*models.Shelf, error) {
	return s.store.CreateShelf(ctx, in)
}

func (s *ShelfService) Update(ctx context.Context, id string, in store.UpdateShelfInput) (*models.Shelf, error) {
	shelf, err := s.store.UpdateShelf(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateShelf(ctx, shelf); err != nil {
		return nil, err
	}
	return shelf, nil
}

func (s *ShelfService) Remove(ctx context.Context, id string) (*models.Shelf, error) {
	shelf, err := s.store.DeleteShelf(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return shelf, nil
}

// ListByRack narrows shelves to one rack, in ascending level order,
// populated like GetAll.
func (s *ShelfService) ListByRack(ctx context.Context, rackID string) ([]*models.Shelf, error) {
	shelves, err := s.store.ShelvesByRack(ctx, rackID)
	if err != nil {
		return nil, err
	}
	for _, sh := range shelves {
		if err := s.store.PopulateShelf(ctx, sh); err != nil {
			return nil, err
		}
	}
	return shelves, nil
}
