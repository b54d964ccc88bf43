package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
)

// Reference resolution. Each Populate* call resolves a record's reference
// chain to its full depth in a single read transaction, so consumers never
// issue repeated point lookups to reconstruct an ancestor chain. A broken
// link is not an error: the reference is simply left unresolved and the
// caller sees the bare id.

// PopulateSection resolves section→warehouse.
func (s *Store) PopulateSection(ctx context.Context, sec *models.Section) error {
	return s.view(ctx, func(txn *badger.Txn) error {
		return populateSection(txn, sec)
	})
}

// PopulateProduct resolves product→category.
func (s *Store) PopulateProduct(ctx context.Context, p *models.Product) error {
	return s.view(ctx, func(txn *badger.Txn) error {
		return populateProduct(txn, p)
	})
}

// PopulateRack resolves rack→section→warehouse.
func (s *Store) PopulateRack(ctx context.Context, r *models.Rack) error {
	return s.view(ctx, func(txn *badger.Txn) error {
		return populateRack(txn, r)
	})
}

// PopulateShelf resolves shelf→rack→section→warehouse.
func (s *Store) PopulateShelf(ctx context.Context, sh *models.Shelf) error {
	return s.view(ctx, func(txn *badger.Txn) error {
		return populateShelf(txn, sh)
	})
}

// PopulateCell resolves cell→shelf→rack→section→warehouse plus the product
// (and its category) when the cell holds one.
func (s *Store) PopulateCell(ctx context.Context, c *models.Cell) error {
	return s.view(ctx, func(txn *badger.Txn) error {
		return populateCell(txn, c)
	})
}

func populateSection(txn *badger.Txn, sec *models.Section) error {
	wh, err := getDoc[models.Warehouse](txn, colWarehouses, "warehouse", sec.Warehouse.ID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	sec.Warehouse.Record = wh
	return nil
}

func populateProduct(txn *badger.Txn, p *models.Product) error {
	cat, err := getDoc[models.Category](txn, colCategories, "category", p.Category.ID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	p.Category.Record = cat
	return nil
}

func populateRack(txn *badger.Txn, r *models.Rack) error {
	sec, err := getDoc[models.Section](txn, colSections, "section", r.Section.ID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := populateSection(txn, sec); err != nil {
		return err
	}
	r.Section.Record = sec
	return nil
}

func populateShelf(txn *badger.Txn, sh *models.Shelf) error {
	rack, err := getDoc[models.Rack](txn, colRacks, "rack", sh.Rack.ID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := populateRack(txn, rack); err != nil {
		return err
	}
	sh.Rack.Record = rack
	return nil
}

func populateCell(txn *badger.Txn, c *models.Cell) error {
	shelf, err := getDoc[models.Shelf](txn, colShelves, "shelf", c.Shelf.ID)
	if err != nil {
		if !IsNotFound(err) {
			return err
		}
		// orphaned cell: leave the shelf chain unresolved
	} else {
		if err := populateShelf(txn, shelf); err != nil {
			return err
		}
		c.Shelf.Record = shelf
	}

	if c.Product != nil && c.Product.ID != "" {
		p, err := getDoc[models.Product](txn, colProducts, "product", c.Product.ID)
		if err != nil {
			if !IsNotFound(err) {
				return err
			}
		} else {
			if err := populateProduct(txn, p); err != nil {
				return err
			}
			c.Product.Record = p
		}
	}
	return nil
}
