package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// WarehouseService serves warehouse records. Warehouses are roots; there is
// nothing to populate.
type WarehouseService struct {
	store *store.Store
	log   *zap.Logger
}

// WarehouseStats are the dashboard counts for one warehouse, computed
// transitively through the containment chain.
type WarehouseStats struct {
	Sections int `json:"sections"`
	Racks    int `json:"racks"`
	Shelves  int `json:"shelves"`
	Cells    int `json:"cells"`
}

func (s *WarehouseService) GetAll(ctx context.Context) ([]*models.Warehouse, error) {
	return s.store.GetAllWarehouses(ctx)
}

func (s *WarehouseService) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	wh, err := s.store.GetWarehouse(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return wh, nil
}

func (s *WarehouseService) Create(ctx context.Context, in store.CreateWarehouseInput) (*models.Warehouse, error) {
	return s.store.CreateWarehouse(ctx, in)
}

func (s *WarehouseService) Update(ctx context.Context, id string, in store.UpdateWarehouseInput) (*models.Warehouse, error) {
	wh, err := s.store.UpdateWarehouse(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return wh, nil
}

func (s *WarehouseService) Remove(ctx context.Context, id string) (*models.Warehouse, error) {
	wh, err := s.store.DeleteWarehouse(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return wh, nil
}

// Stats returns descendant counts for the warehouse, or (nil, nil) when the
// warehouse does not exist.
func (s *WarehouseService) Stats(ctx context.Context, id string) (*WarehouseStats, error) {
	wh, err := s.GetByID(ctx, id)
	if err != nil || wh == nil {
		return nil, err
	}

	stats := &WarehouseStats{}
	for _, c := range []struct {
		target models.EntityType
		dst    *int
	}{
		{models.EntitySection, &stats.Sections},
		{models.EntityRack, &stats.Racks},
		{models.EntityShelf, &stats.Shelves},
		{models.EntityCell, &stats.Cells},
	} {
		n, err := s.store.CountDescendants(ctx, models.EntityWarehouse, id, c.target)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}
