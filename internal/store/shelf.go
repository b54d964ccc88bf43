package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateShelfInput carries the fields for a new shelf. Level defaults to 0
// when omitted.
type CreateShelfInput struct {
	Name  string `json:"name"`
	Rack  string `json:"rack"`
	Level *int   `json:"level"`
}

// UpdateShelfInput is a partial patch; nil fields are left unchanged.
type UpdateShelfInput struct {
	Name  *string `json:"name"`
	Rack  *string `json:"rack"`
	Level *int    `json:"level"`
}

// CreateShelf validates and stores a new shelf. The rack reference must
// resolve and the level must be free within that rack: level is the
// ordering key, so duplicates would make shelf order ambiguous.
func (s *Store) CreateShelf(ctx context.Context, in CreateShelfInput) (*models.Shelf, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("shelf name is required")
	}
	if in.Rack == "" {
		return nil, validationf("shelf rack is required")
	}

	level := 0
	if in.Level != nil {
		if *in.Level < 0 {
			return nil, validationf("shelf level cannot be negative")
		}
		level = *in.Level
	}

	now := nowUTC()
	shelf := &models.Shelf{
		ID:        newID(),
		Name:      in.Name,
		Rack:      models.NewRef[models.Rack](in.Rack),
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		ok, err := exists(txn, colRacks, in.Rack)
		if err != nil {
			return err
		}
		if !ok {
			return validationf("rack %s does not exist", in.Rack)
		}
		taken, err := shelfLevelTaken(txn, in.Rack, level, "")
		if err != nil {
			return err
		}
		if taken {
			return validationf("rack %s already has a shelf at level %d", in.Rack, level)
		}
		return putDoc(txn, colShelves, shelf.ID, shelf)
	}); err != nil {
		return nil, err
	}

	s.log.Info("shelf created", zap.String("id", shelf.ID), zap.Int("level", level))
	return shelf, nil
}

// GetShelf returns the shelf or NotFoundError.
func (s *Store) GetShelf(ctx context.Context, id string) (*models.Shelf, error) {
	var shelf *models.Shelf
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		shelf, err = getDoc[models.Shelf](txn, colShelves, "shelf", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shelf, nil
}

// GetAllShelves returns every shelf.
func (s *Store) GetAllShelves(ctx context.Context) ([]*models.Shelf, error) {
	var shelves []*models.Shelf
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		shelves, err = scanDocs[models.Shelf](txn, colShelves)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shelves, nil
}

// UpdateShelf applies a partial patch. Rack re-pointing is checked for
// existence (IntegrityError) and the level uniqueness rule is re-applied
// against whichever rack the shelf ends up on.
func (s *Store) UpdateShelf(ctx context.Context, id string, in UpdateShelfInput) (*models.Shelf, error) {
	var shelf *models.Shelf
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		shelf, err = getDoc[models.Shelf](txn, colShelves, "shelf", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("shelf name cannot be empty")
			}
			shelf.Name = *in.Name
		}
		if in.Rack != nil {
			ok, err := exists(txn, colRacks, *in.Rack)
			if err != nil {
				return err
			}
			if !ok {
				return integrityf("rack %s does not exist", *in.Rack)
			}
			shelf.Rack = models.NewRef[models.Rack](*in.Rack)
		}
		if in.Level != nil {
			if *in.Level < 0 {
				return validationf("shelf level cannot be negative")
			}
			shelf.Level = *in.Level
		}
		if in.Rack != nil || in.Level != nil {
			taken, err := shelfLevelTaken(txn, shelf.Rack.ID, shelf.Level, id)
			if err != nil {
				return err
			}
			if taken {
				return validationf("rack %s already has a shelf at level %d", shelf.Rack.ID, shelf.Level)
			}
		}
		shelf.UpdatedAt = nowUTC()
		return putDoc(txn, colShelves, id, shelf)
	})
	if err != nil {
		return nil, err
	}
	return shelf, nil
}

// DeleteShelf removes the shelf and cascades to its cells.
func (s *Store) DeleteShelf(ctx context.Context, id string) (*models.Shelf, error) {
	shelf, err := s.GetShelf(ctx, id)
	if err != nil {
		return nil, err
	}

	cells, err := s.CellsByShelf(ctx, id)
	if err != nil {
		return nil, err
	}
	cellIDs := make([]string, 0, len(cells))
	for _, c := range cells {
		cellIDs = append(cellIDs, c.ID)
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		if err := deleteMany(txn, colCells, cellIDs); err != nil {
			return err
		}
		return txn.Delete(key(colShelves, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("shelf deleted", zap.String("id", id), zap.Int("cells", len(cellIDs)))
	return shelf, nil
}

// shelfLevelTaken reports whether another shelf on the given rack already
// occupies the level. excludeID skips the shelf being updated.
func shelfLevelTaken(txn *badger.Txn, rackID string, level int, excludeID string) (bool, error) {
	shelves, err := scanDocs[models.Shelf](txn, colShelves)
	if err != nil {
		return false, err
	}
	for _, sh := range shelves {
		if sh.ID == excludeID {
			continue
		}
		if sh.Rack.ID == rackID && sh.Level == level {
			return true, nil
		}
	}
	return false, nil
}
