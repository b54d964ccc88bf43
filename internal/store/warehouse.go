package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateWarehouseInput carries the fields for a new warehouse.
type CreateWarehouseInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateWarehouseInput is a partial patch; nil fields are left unchanged.
type UpdateWarehouseInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateWarehouse validates and stores a new warehouse.
func (s *Store) CreateWarehouse(ctx context.Context, in CreateWarehouseInput) (*models.Warehouse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("warehouse name is required")
	}

	now := nowUTC()
	wh := &models.Warehouse{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return putDoc(txn, colWarehouses, wh.ID, wh)
	}); err != nil {
		return nil, err
	}

	s.log.Info("warehouse created", zap.String("id", wh.ID))
	return wh, nil
}

// GetWarehouse returns the warehouse or NotFoundError.
func (s *Store) GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	var wh *models.Warehouse
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		wh, err = getDoc[models.Warehouse](txn, colWarehouses, "warehouse", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wh, nil
}

// GetAllWarehouses returns every warehouse.
func (s *Store) GetAllWarehouses(ctx context.Context) ([]*models.Warehouse, error) {
	var whs []*models.Warehouse
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		whs, err = scanDocs[models.Warehouse](txn, colWarehouses)
		return err
	})
	if err != nil {
		return nil, err
	}
	return whs, nil
}

// UpdateWarehouse applies a partial patch to an existing warehouse.
func (s *Store) UpdateWarehouse(ctx context.Context, id string, in UpdateWarehouseInput) (*models.Warehouse, error) {
	var wh *models.Warehouse
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		wh, err = getDoc[models.Warehouse](txn, colWarehouses, "warehouse", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("warehouse name cannot be empty")
			}
			wh.Name = *in.Name
		}
		if in.Description != nil {
			wh.Description = *in.Description
		}
		wh.UpdatedAt = nowUTC()
		return putDoc(txn, colWarehouses, id, wh)
	})
	if err != nil {
		return nil, err
	}
	return wh, nil
}

// DeleteWarehouse removes the warehouse and cascades down the whole subtree:
// sections, their racks, those racks' shelves and every cell on them.
// Children go first, the warehouse record last, so an interrupted delete
// leaves a retryable parent rather than unreachable children.
func (s *Store) DeleteWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	wh, err := s.GetWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}

	sections, err := s.SectionsByWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if _, err := s.DeleteSection(ctx, sec.ID); err != nil && !IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return txn.Delete(key(colWarehouses, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("warehouse deleted", zap.String("id", id), zap.Int("sections", len(sections)))
	return wh, nil
}
