package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// CellService serves cell records at full population depth: the
// shelf→rack→section→warehouse chain plus the held product and its
// category.
type CellService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *CellService) GetAll(ctx context.Context) ([]*models.Cell, error) {
	cells, err := s.store.GetAllCells(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := s.store.PopulateCell(ctx, c); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

func (s *CellService) GetByID(ctx context.Context, id string) (*models.Cell, error) {
	cell, err := s.store.GetCell(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateCell(ctx, cell); err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *CellService) Create(ctx context.Context, in store.CreateCellInput) (*models.Cell, error) {
	return s.store.CreateCell(ctx, in)
}

func (s *CellService) Update(ctx context.Context, id string, in store.UpdateCellInput) (*models.Cell, error) {
	cell, err := s.store.UpdateCell(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateCell(ctx, cell); err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *CellService) Remove(ctx context.Context, id string) (*models.Cell, error) {
	cell, err := s.store.DeleteCell(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return cell, nil
}

// ListByShelf narrows cells to one shelf, populated like GetAll.
func (s *CellService) ListByShelf(ctx context.Context, shelfID string) ([]*models.Cell, error) {
	cells, err := s.store.CellsByShelf(ctx, shelfID)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := s.store.PopulateCell(ctx, c); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// ListByProduct narrows cells to those holding one product, populated like
// GetAll.
func (s *CellService) ListByProduct(ctx context.Context, productID string) ([]*models.Cell, error) {
	cells, err := s.store.CellsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := s.store.PopulateCell(ctx, c); err != nil {
			return nil, err
		}
	}
	return cells, nil
}
