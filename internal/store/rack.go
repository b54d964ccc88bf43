package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateRackInput carries the fields for a new rack. Position defaults to
// the section origin (0,0,0) when omitted.
type CreateRackInput struct {
	Name     string           `json:"name"`
	Section  string           `json:"section"`
	Position *models.Position `json:"position"`
}

// UpdateRackInput is a partial patch; nil fields are left unchanged.
type UpdateRackInput struct {
	Name     *string          `json:"name"`
	Section  *string          `json:"section"`
	Position *models.Position `json:"position"`
}

// CreateRack validates and stores a new rack. The section reference must
// resolve.
func (s *Store) CreateRack(ctx context.Context, in CreateRackInput) (*models.Rack, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("rack name is required")
	}
	if in.Section == "" {
		return nil, validationf("rack section is required")
	}

	position := models.Position{}
	if in.Position != nil {
		position = *in.Position
	}

	now := nowUTC()
	rack := &models.Rack{
		ID:        newID(),
		Name:      in.Name,
		Section:   models.NewRef[models.Section](in.Section),
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		ok, err := exists(txn, colSections, in.Section)
		if err != nil {
			return err
		}
		if !ok {
			return validationf("section %s does not exist", in.Section)
		}
		return putDoc(txn, colRacks, rack.ID, rack)
	}); err != nil {
		return nil, err
	}

	s.log.Info("rack created", zap.String("id", rack.ID))
	return rack, nil
}

// GetRack returns the rack or NotFoundError.
func (s *Store) GetRack(ctx context.Context, id string) (*models.Rack, error) {
	var rack *models.Rack
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		rack, err = getDoc[models.Rack](txn, colRacks, "rack", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rack, nil
}

// GetAllRacks returns every rack.
func (s *Store) GetAllRacks(ctx context.Context) ([]*models.Rack, error) {
	var racks []*models.Rack
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		racks, err = scanDocs[models.Rack](txn, colRacks)
		return err
	})
	if err != nil {
		return nil, err
	}
	return racks, nil
}

// UpdateRack applies a partial patch. Re-pointing the section reference at a
// nonexistent id is rejected with IntegrityError.
func (s *Store) UpdateRack(ctx context.Context, id string, in UpdateRackInput) (*models.Rack, error) {
	var rack *models.Rack
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		rack, err = getDoc[models.Rack](txn, colRacks, "rack", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("rack name cannot be empty")
			}
			rack.Name = *in.Name
		}
		if in.Section != nil {
			ok, err := exists(txn, colSections, *in.Section)
			if err != nil {
				return err
			}
			if !ok {
				return integrityf("section %s does not exist", *in.Section)
			}
			rack.Section = models.NewRef[models.Section](*in.Section)
		}
		if in.Position != nil {
			rack.Position = *in.Position
		}
		rack.UpdatedAt = nowUTC()
		return putDoc(txn, colRacks, id, rack)
	})
	if err != nil {
		return nil, err
	}
	return rack, nil
}

// DeleteRack removes the rack and cascades to its shelves and their cells.
// The sequence is children first, rack record last; if interrupted the rack
// survives with no shelves and the delete can simply be retried.
func (s *Store) DeleteRack(ctx context.Context, id string) (*models.Rack, error) {
	rack, err := s.GetRack(ctx, id)
	if err != nil {
		return nil, err
	}

	shelves, err := s.ShelvesByRack(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sh := range shelves {
		if _, err := s.DeleteShelf(ctx, sh.ID); err != nil && !IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return txn.Delete(key(colRacks, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("rack deleted", zap.String("id", id), zap.Int("shelves", len(shelves)))
	return rack, nil
}
