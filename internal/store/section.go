package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateSectionInput carries the fields for a new section.
type CreateSectionInput struct {
	Name      string `json:"name"`
	Warehouse string `json:"warehouse"`
}

// UpdateSectionInput is a partial patch; nil fields are left unchanged.
type UpdateSectionInput struct {
	Name      *string `json:"name"`
	Warehouse *string `json:"warehouse"`
}

// CreateSection validates and stores a new section. The warehouse reference
// must resolve.
func (s *Store) CreateSection(ctx context.Context, in CreateSectionInput) (*models.Section, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("section name is required")
	}
	if in.Warehouse == "" {
		return nil, validationf("section warehouse is required")
	}

	now := nowUTC()
	sec := &models.Section{
		ID:        newID(),
		Name:      in.Name,
		Warehouse: models.NewRef[models.Warehouse](in.Warehouse),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		ok, err := exists(txn, colWarehouses, in.Warehouse)
		if err != nil {
			return err
		}
		if !ok {
			return validationf("warehouse %s does not exist", in.Warehouse)
		}
		return putDoc(txn, colSections, sec.ID, sec)
	}); err != nil {
		return nil, err
	}

	s.log.Info("section created", zap.String("id", sec.ID))
	return sec, nil
}

// GetSection returns the section or NotFoundError.
func (s *Store) GetSection(ctx context.Context, id string) (*models.Section, error) {
	var sec *models.Section
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		sec, err = getDoc[models.Section](txn, colSections, "section", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// GetAllSections returns every section.
func (s *Store) GetAllSections(ctx context.Context) ([]*models.Section, error) {
	var secs []*models.Section
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		secs, err = scanDocs[models.Section](txn, colSections)
		return err
	})
	if err != nil {
		return nil, err
	}
	return secs, nil
}

// UpdateSection applies a partial patch. Re-pointing the warehouse reference
// at a nonexistent id is rejected with IntegrityError.
func (s *Store) UpdateSection(ctx context.Context, id string, in UpdateSectionInput) (*models.Section, error) {
	var sec *models.Section
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		sec, err = getDoc[models.Section](txn, colSections, "section", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("section name cannot be empty")
			}
			sec.Name = *in.Name
		}
		if in.Warehouse != nil {
			ok, err := exists(txn, colWarehouses, *in.Warehouse)
			if err != nil {
				return err
			}
			if !ok {
				return integrityf("warehouse %s does not exist", *in.Warehouse)
			}
			sec.Warehouse = models.NewRef[models.Warehouse](*in.Warehouse)
		}
		sec.UpdatedAt = nowUTC()
		return putDoc(txn, colSections, id, sec)
	})
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// DeleteSection removes the section and cascades to its racks (and through
// them to shelves and cells).
func (s *Store) DeleteSection(ctx context.Context, id string) (*models.Section, error) {
	sec, err := s.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}

	racks, err := s.RacksBySection(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, r := range racks {
		if _, err := s.DeleteRack(ctx, r.ID); err != nil && !IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return txn.Delete(key(colSections, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("section deleted", zap.String("id", id), zap.Int("racks", len(racks)))
	return sec, nil
}
