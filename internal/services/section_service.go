package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// SectionService serves section records populated with their warehouse.
type SectionService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *SectionService) GetAll(ctx context.Context) ([]*models.Section, error) {
	secs, err := s.store.GetAllSections(ctx)
	if err != nil {
		return nil, err
	}
	for _, sec := range secs {
		if err := s.store.PopulateSection(ctx, sec); err != nil {
			return nil, err
		}
	}
	return secs, nil
}

func (s *SectionService) GetByID(ctx context.Context, id string) (*models.Section, error) {
	sec, err := s.store.GetSection(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateSection(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *SectionService) Create(ctx context.Context, in store.CreateSectionInput) (*models.Section, error) {
	return s.store.CreateSection(ctx, in)
}

func (s *SectionService) Update(ctx context.Context, id string, in store.UpdateSectionInput) (*models.Section, error) {
	sec, err := s.store.UpdateSection(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateSection(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *SectionService) Remove(ctx context.Context, id string) (*models.Section, error) {
	sec, err := s.store.DeleteSection(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return sec, nil
}

// ListByWarehouse narrows sections to one warehouse, populated like GetAll.
func (s *SectionService) ListByWarehouse(ctx context.Context, warehouseID string) ([]*models.Section, error) {
	secs, err := s.store.SectionsByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	for _, sec := range secs {
		if err := s.store.PopulateSection(ctx, sec); err != nil {
			return nil, err
		}
	}
	return secs, nil
}
