package store

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
)

// Hierarchy query layer. Every "children of this parent" question the
// consumers have (filter cascades, dashboard counts) goes through here
// instead of being re-derived per caller.

// SectionsByWarehouse returns every section belonging to the warehouse.
func (s *Store) SectionsByWarehouse(ctx context.Context, warehouseID string) ([]*models.Section, error) {
	all, err := s.GetAllSections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Section, 0)
	for _, sec := range all {
		if sec.Warehouse.ID == warehouseID {
			out = append(out, sec)
		}
	}
	return out, nil
}

// RacksBySection returns every rack in the section.
func (s *Store) RacksBySection(ctx context.Context, sectionID string) ([]*models.Rack, error) {
	all, err := s.GetAllRacks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Rack, 0)
	for _, r := range all {
		if r.Section.ID == sectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ShelvesByRack returns the rack's shelves in ascending level order, the
// natural bottom-up presentation order.
func (s *Store) ShelvesByRack(ctx context.Context, rackID string) ([]*models.Shelf, error) {
	all, err := s.GetAllShelves(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Shelf, 0)
	for _, sh := range all {
		if sh.Rack.ID == rackID {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}

// CellsByShelf returns every cell on the shelf.
func (s *Store) CellsByShelf(ctx context.Context, shelfID string) ([]*models.Cell, error) {
	all, err := s.GetAllCells(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Cell, 0)
	for _, c := range all {
		if c.Shelf.ID == shelfID {
			out = append(out, c)
		}
	}
	return out, nil
}

// CellsByProduct returns every cell currently holding the product.
func (s *Store) CellsByProduct(ctx context.Context, productID string) ([]*models.Cell, error) {
	all, err := s.GetAllCells(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Cell, 0)
	for _, c := range all {
		if c.Product != nil && c.Product.ID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ProductsByCategory returns every product in the category.
func (s *Store) ProductsByCategory(ctx context.Context, categoryID string) ([]*models.Product, error) {
	all, err := s.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Product, 0)
	for _, p := range all {
		if p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ChildIDs returns the ids of a parent's immediate children. The child type
// is implied by the parent: warehouses contain sections, sections racks,
// racks shelves, shelves cells, categories products.
func (s *Store) ChildIDs(ctx context.Context, parentType models.EntityType, parentID string) ([]string, error) {
	var ids []string
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		ids, err = childIDs(txn, parentType, parentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func childIDs(txn *badger.Txn, parentType models.EntityType, parentID string) ([]string, error) {
	var out []string
	switch parentType {
	case models.EntityWarehouse:
		secs, err := scanDocs[models.Section](txn, colSections)
		if err != nil {
			return nil, err
		}
		for _, sec := range secs {
			if sec.Warehouse.ID == parentID {
				out = append(out, sec.ID)
			}
		}
	case models.EntitySection:
		racks, err := scanDocs[models.Rack](txn, colRacks)
		if err != nil {
			return nil, err
		}
		for _, r := range racks {
			if r.Section.ID == parentID {
				out = append(out, r.ID)
			}
		}
	case models.EntityRack:
		shelves, err := scanDocs[models.Shelf](txn, colShelves)
		if err != nil {
			return nil, err
		}
		for _, sh := range shelves {
			if sh.Rack.ID == parentID {
				out = append(out, sh.ID)
			}
		}
	case models.EntityShelf:
		cells, err := scanDocs[models.Cell](txn, colCells)
		if err != nil {
			return nil, err
		}
		for _, c := range cells {
			if c.Shelf.ID == parentID {
				out = append(out, c.ID)
			}
		}
	case models.EntityCategory:
		products, err := scanDocs[models.Product](txn, colProducts)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if p.Category.ID == parentID {
				out = append(out, p.ID)
			}
		}
	default:
		return nil, validationf("entity type %q has no children", parentType)
	}
	return out, nil
}

// structuralChain is the containment chain cells belong to transitively.
var structuralChain = []models.EntityType{
	models.EntityWarehouse,
	models.EntitySection,
	models.EntityRack,
	models.EntityShelf,
	models.EntityCell,
}

// CountDescendants counts how many records of descendantType ultimately
// belong to the given record, walking the containment chain one edge at a
// time. A record whose parent link is broken simply never matches; broken
// links are not errors here.
func (s *Store) CountDescendants(ctx context.Context, entityType models.EntityType, id string, descendantType models.EntityType) (int, error) {
	if entityType == models.EntityCategory && descendantType == models.EntityProduct {
		products, err := s.ProductsByCategory(ctx, id)
		if err != nil {
			return 0, err
		}
		return len(products), nil
	}

	from, to := chainIndex(entityType), chainIndex(descendantType)
	if from < 0 || to < 0 || to <= from {
		return 0, validationf("no containment path from %s to %s", entityType, descendantType)
	}

	count := 0
	err := s.view(ctx, func(txn *badger.Txn) error {
		frontier := []string{id}
		for step := from; step < to; step++ {
			next := make([]string, 0)
			for _, parentID := range frontier {
				children, err := childIDs(txn, structuralChain[step], parentID)
				if err != nil {
					return err
				}
				next = append(next, children...)
			}
			frontier = next
		}
		count = len(frontier)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func chainIndex(t models.EntityType) int {
	for i, c := range structuralChain {
		if c == t {
			return i
		}
	}
	return -1
}
