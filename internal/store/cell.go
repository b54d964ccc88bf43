package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateCellInput carries the fields for a new cell. Product is optional;
// an empty string means the cell starts empty.
type CreateCellInput struct {
	Name    string `json:"name"`
	Shelf   string `json:"shelf"`
	Product string `json:"product"`
}

// UpdateCellInput is a partial patch; nil fields are left unchanged.
// Setting Product to the empty string empties the cell.
type UpdateCellInput struct {
	Name    *string `json:"name"`
	Shelf   *string `json:"shelf"`
	Product *string `json:"product"`
}

// CreateCell validates and stores a new cell. The shelf reference must
// resolve; the product reference, when given, must resolve too.
func (s *Store) CreateCell(ctx context.Context, in CreateCellInput) (*models.Cell, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("cell name is required")
	}
	if in.Shelf == "" {
		return nil, validationf("cell shelf is required")
	}

	now := nowUTC()
	cell := &models.Cell{
		ID:        newID(),
		Name:      in.Name,
		Shelf:     models.NewRef[models.Shelf](in.Shelf),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Product != "" {
		ref := models.NewRef[models.Product](in.Product)
		cell.Product = &ref
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		ok, err := exists(txn, colShelves, in.Shelf)
		if err != nil {
			return err
		}
		if !ok {
			return validationf("shelf %s does not exist", in.Shelf)
		}
		if in.Product != "" {
			ok, err := exists(txn, colProducts, in.Product)
			if err != nil {
				return err
			}
			if !ok {
				return validationf("product %s does not exist", in.Product)
			}
		}
		return putDoc(txn, colCells, cell.ID, cell)
	}); err != nil {
		return nil, err
	}

	s.log.Info("cell created", zap.String("id", cell.ID))
	return cell, nil
}

// GetCell returns the cell or NotFoundError.
func (s *Store) GetCell(ctx context.Context, id string) (*models.Cell, error) {
	var cell *models.Cell
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		cell, err = getDoc[models.Cell](txn, colCells, "cell", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cell, nil
}

// GetAllCells returns every cell.
func (s *Store) GetAllCells(ctx context.Context) ([]*models.Cell, error) {
	var cells []*models.Cell
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		cells, err = scanDocs[models.Cell](txn, colCells)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// UpdateCell applies a partial patch. Re-pointing shelf or product at a
// nonexistent id is rejected with IntegrityError; clearing the product is
// always allowed.
func (s *Store) UpdateCell(ctx context.Context, id string, in UpdateCellInput) (*models.Cell, error) {
	var cell *models.Cell
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		cell, err = getDoc[models.Cell](txn, colCells, "cell", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("cell name cannot be empty")
			}
			cell.Name = *in.Name
		}
		if in.Shelf != nil {
			ok, err := exists(txn, colShelves, *in.Shelf)
			if err != nil {
				return err
			}
			if !ok {
				return integrityf("shelf %s does not exist", *in.Shelf)
			}
			cell.Shelf = models.NewRef[models.Shelf](*in.Shelf)
		}
		if in.Product != nil {
			if *in.Product == "" {
				cell.Product = nil
			} else {
				ok, err := exists(txn, colProducts, *in.Product)
				if err != nil {
					return err
				}
				if !ok {
					return integrityf("product %s does not exist", *in.Product)
				}
				ref := models.NewRef[models.Product](*in.Product)
				cell.Product = &ref
			}
		}
		cell.UpdatedAt = nowUTC()
		return putDoc(txn, colCells, id, cell)
	})
	if err != nil {
		return nil, err
	}
	return cell, nil
}

// DeleteCell removes the cell. Cells are leaves; nothing cascades.
func (s *Store) DeleteCell(ctx context.Context, id string) (*models.Cell, error) {
	cell, err := s.GetCell(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return txn.Delete(key(colCells, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("cell deleted", zap.String("id", id))
	return cell, nil
}
