package store

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/database"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, zap.NewNop())
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

// hierarchyFixture is one warehouse with one section, one rack and three
// shelves at levels 0, 1, 2.
type hierarchyFixture struct {
	warehouse *models.Warehouse
	section   *models.Section
	rack      *models.Rack
	shelves   []*models.Shelf
}

func buildHierarchy(t *testing.T, s *Store) hierarchyFixture {
	t.Helper()
	ctx := context.Background()

	wh, err := s.CreateWarehouse(ctx, CreateWarehouseInput{Name: "W1"})
	require.NoError(t, err)
	sec, err := s.CreateSection(ctx, CreateSectionInput{Name: "S1", Warehouse: wh.ID})
	require.NoError(t, err)
	rack, err := s.CreateRack(ctx, CreateRackInput{Name: "R1", Section: sec.ID})
	require.NoError(t, err)

	var shelves []*models.Shelf
	for level := 0; level < 3; level++ {
		sh, err := s.CreateShelf(ctx, CreateShelfInput{
			Name:  "Shelf",
			Rack:  rack.ID,
			Level: intPtr(level),
		})
		require.NoError(t, err)
		shelves = append(shelves, sh)
	}

	return hierarchyFixture{warehouse: wh, section: sec, rack: rack, shelves: shelves}
}

func TestCreateMissingRequiredField(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, CreateCategoryInput{})
	assert.True(t, IsValidation(err))

	_, err = s.CreateWarehouse(ctx, CreateWarehouseInput{Name: "   "})
	assert.True(t, IsValidation(err))

	_, err = s.CreateSection(ctx, CreateSectionInput{Name: "S1"})
	assert.True(t, IsValidation(err))

	_, err = s.CreateRack(ctx, CreateRackInput{Name: "R1"})
	assert.True(t, IsValidation(err))

	_, err = s.CreateShelf(ctx, CreateShelfInput{Name: "Shelf"})
	assert.True(t, IsValidation(err))

	_, err = s.CreateCell(ctx, CreateCellInput{Name: "C1"})
	assert.True(t, IsValidation(err))

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	_, err = s.CreateProduct(ctx, CreateProductInput{Name: "Laptop", Category: cat.ID, Barcode: "123"})
	assert.True(t, IsValidation(err), "missing rfid must be rejected")

	// nothing was persisted by the failed creates
	warehouses, err := s.GetAllWarehouses(ctx)
	require.NoError(t, err)
	assert.Empty(t, warehouses)
	sections, err := s.GetAllSections(ctx)
	require.NoError(t, err)
	assert.Empty(t, sections)
	products, err := s.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateDanglingReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateSection(ctx, CreateSectionInput{Name: "S1", Warehouse: "no-such-warehouse"})
	assert.True(t, IsValidation(err))

	_, err = s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: "no-such-category", Barcode: "123", RFID: "RF1",
	})
	assert.True(t, IsValidation(err))
}

func TestCreateRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wh, err := s.CreateWarehouse(ctx, CreateWarehouseInput{Name: "Main", Description: "electronics storage"})
	require.NoError(t, err)
	require.NotEmpty(t, wh.ID)
	assert.False(t, wh.CreatedAt.IsZero())
	assert.False(t, wh.UpdatedAt.IsZero())

	got, err := s.GetWarehouse(ctx, wh.ID)
	require.NoError(t, err)
	assert.Equal(t, wh.ID, got.ID)
	assert.Equal(t, "Main", got.Name)
	assert.Equal(t, "electronics storage", got.Description)
	assert.True(t, got.CreatedAt.Equal(wh.CreatedAt))

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1", Quantity: intPtr(5),
	})
	require.NoError(t, err)

	gotProduct, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", gotProduct.Name)
	assert.Equal(t, cat.ID, gotProduct.Category.ID)
	assert.False(t, gotProduct.Category.Resolved(), "stored documents keep references unresolved")
	assert.Equal(t, 5, gotProduct.Quantity)
}

func TestProductQuantityDefaultsToOne(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)

	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, product.Quantity)
}

func TestUpdateEmptyPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wh, err := s.CreateWarehouse(ctx, CreateWarehouseInput{Name: "Main", Description: "d"})
	require.NoError(t, err)

	updated, err := s.UpdateWarehouse(ctx, wh.ID, UpdateWarehouseInput{})
	require.NoError(t, err)
	assert.Equal(t, wh.Name, updated.Name)
	assert.Equal(t, wh.Description, updated.Description)
	assert.True(t, updated.CreatedAt.Equal(wh.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(wh.UpdatedAt))
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateWarehouse(ctx, "missing", UpdateWarehouseInput{Name: strPtr("X")})
	assert.True(t, IsNotFound(err))
}

func TestUpdateDanglingReferenceRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	_, err := s.UpdateRack(ctx, fix.rack.ID, UpdateRackInput{Section: strPtr("no-such-section")})
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)

	// the rack still points at its original section
	rack, err := s.GetRack(ctx, fix.rack.ID)
	require.NoError(t, err)
	assert.Equal(t, fix.section.ID, rack.Section.ID)
}

func TestUpdatePartialFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1",
	})
	require.NoError(t, err)

	updated, err := s.UpdateProduct(ctx, product.ID, UpdateProductInput{Quantity: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, "123", updated.Barcode)
}

func TestRemoveThenGetNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)

	removed, err := s.DeleteCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, removed.ID)

	_, err = s.GetCategory(ctx, cat.ID)
	assert.True(t, IsNotFound(err))

	_, err = s.DeleteCategory(ctx, cat.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteRackCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cell, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[0].ID})
	require.NoError(t, err)

	_, err = s.DeleteRack(ctx, fix.rack.ID)
	require.NoError(t, err)

	for _, sh := range fix.shelves {
		_, err := s.GetShelf(ctx, sh.ID)
		assert.True(t, IsNotFound(err))
	}
	ids, err := s.ChildIDs(ctx, models.EntityRack, fix.rack.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// cells go with their shelves under the uniform cascade policy
	_, err = s.GetCell(ctx, cell.ID)
	assert.True(t, IsNotFound(err))

	// the rest of the hierarchy is untouched
	_, err = s.GetSection(ctx, fix.section.ID)
	require.NoError(t, err)
	_, err = s.GetWarehouse(ctx, fix.warehouse.ID)
	require.NoError(t, err)
}

func TestDeleteWarehouseCascadesSubtree(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cell, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[1].ID})
	require.NoError(t, err)

	_, err = s.DeleteWarehouse(ctx, fix.warehouse.ID)
	require.NoError(t, err)

	_, err = s.GetSection(ctx, fix.section.ID)
	assert.True(t, IsNotFound(err))
	_, err = s.GetRack(ctx, fix.rack.ID)
	assert.True(t, IsNotFound(err))
	for _, sh := range fix.shelves {
		_, err := s.GetShelf(ctx, sh.ID)
		assert.True(t, IsNotFound(err))
	}
	_, err = s.GetCell(ctx, cell.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteProductClearsCells(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1",
	})
	require.NoError(t, err)

	c1, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[0].ID, Product: product.ID})
	require.NoError(t, err)
	c2, err := s.CreateCell(ctx, CreateCellInput{Name: "C2", Shelf: fix.shelves[1].ID, Product: product.ID})
	require.NoError(t, err)

	_, err = s.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)

	for _, id := range []string{c1.ID, c2.ID} {
		cell, err := s.GetCell(ctx, id)
		require.NoError(t, err, "cells must survive product deletion")
		assert.Nil(t, cell.Product)
	}
}

func TestDeleteCategoryCascadesProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1",
	})
	require.NoError(t, err)
	cell, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[0].ID, Product: product.ID})
	require.NoError(t, err)

	_, err = s.DeleteCategory(ctx, cat.ID)
	require.NoError(t, err)

	_, err = s.GetProduct(ctx, product.ID)
	assert.True(t, IsNotFound(err))

	got, err := s.GetCell(ctx, cell.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Product)
}

func TestShelfLevelUniquePerRack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	_, err := s.CreateShelf(ctx, CreateShelfInput{Name: "Dup", Rack: fix.rack.ID, Level: intPtr(1)})
	assert.True(t, IsValidation(err))

	// same level on a different rack is fine
	rack2, err := s.CreateRack(ctx, CreateRackInput{Name: "R2", Section: fix.section.ID})
	require.NoError(t, err)
	_, err = s.CreateShelf(ctx, CreateShelfInput{Name: "Ok", Rack: rack2.ID, Level: intPtr(1)})
	require.NoError(t, err)

	// moving a shelf onto an occupied level is rejected
	_, err = s.UpdateShelf(ctx, fix.shelves[0].ID, UpdateShelfInput{Level: intPtr(2)})
	assert.True(t, IsValidation(err))

	// a shelf keeping its own level is not its own duplicate
	_, err = s.UpdateShelf(ctx, fix.shelves[0].ID, UpdateShelfInput{Name: strPtr("Bottom"), Level: intPtr(0)})
	require.NoError(t, err)
}

func TestCellPopulateFullChain(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cat, err := s.CreateCategory(ctx, CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := s.CreateProduct(ctx, CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1", Quantity: intPtr(5),
	})
	require.NoError(t, err)
	cell, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[0].ID, Product: product.ID})
	require.NoError(t, err)

	got, err := s.GetCell(ctx, cell.ID)
	require.NoError(t, err)
	require.NoError(t, s.PopulateCell(ctx, got))

	require.True(t, got.Shelf.Resolved())
	shelf := got.Shelf.Record
	require.True(t, shelf.Rack.Resolved())
	rack := shelf.Rack.Record
	require.True(t, rack.Section.Resolved())
	section := rack.Section.Record
	require.True(t, section.Warehouse.Resolved())

	assert.Equal(t, "Shelf", shelf.Name)
	assert.Equal(t, "R1", rack.Name)
	assert.Equal(t, "S1", section.Name)
	assert.Equal(t, "W1", section.Warehouse.Record.Name)

	require.NotNil(t, got.Product)
	require.True(t, got.Product.Resolved())
	assert.Equal(t, "Laptop", got.Product.Record.Name)
	require.True(t, got.Product.Record.Category.Resolved())
	assert.Equal(t, "Electronics", got.Product.Record.Category.Record.Name)
}

func TestOrphanCellPopulateDoesNotFail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	fix := buildHierarchy(t, s)

	cell, err := s.CreateCell(ctx, CreateCellInput{Name: "C1", Shelf: fix.shelves[0].ID})
	require.NoError(t, err)

	// rip the shelf document out from under the cell, bypassing the
	// cascade, to simulate data from a deployment without it
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(colShelves, fix.shelves[0].ID))
	}))

	got, err := s.GetCell(ctx, cell.ID)
	require.NoError(t, err)
	require.NoError(t, s.PopulateCell(ctx, got))

	assert.Equal(t, fix.shelves[0].ID, got.Shelf.ID)
	assert.False(t, got.Shelf.Resolved(), "broken link stays unresolved")
}
