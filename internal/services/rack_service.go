package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// RackService serves rack records populated with their section (and its
// warehouse).
type RackService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *RackService) GetAll(ctx context.Context) ([]*models.Rack, error) {
	racks, err := s.store.GetAllRacks(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range racks {
		if err := s.store.PopulateRack(ctx, r); err != nil {
			return nil, err
		}
	}
	return racks, nil
}

func (s *RackService) GetByID(ctx context.Context, id string) (*models.Rack, error) {
	rack, err := s.store.GetRack(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateRack(ctx, rack); err != nil {
		return nil, err
	}
	return rack, nil
}

func (s *RackService) Create(ctx context.Context, in store.CreateRackInput) (*models.Rack, error) {
	return s.store.CreateRack(ctx, in)
}

func (s *RackService) Update(ctx context.Context, id string, in store.UpdateRackInput) (*models.Rack, error) {
	rack, err := s.store.UpdateRack(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateRack(ctx, rack); err != nil {
		return nil, err
	}
	return rack, nil
}

func (s *RackService) Remove(ctx context.Context, id string) (*models.Rack, error) {
	rack, err := s.store.DeleteRack(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return rack, nil
}

// ListBySection narrows racks to one section, populated like GetAll.
func (s *RackService) ListBySection(ctx context.Context, sectionID string) ([]*models.Rack, error) {
	racks, err := s.store.RacksBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	for _, r := range racks {
		if err := s.store.PopulateRack(ctx, r); err != nil {
			return nil, err
		}
	}
	return racks, nil
}
