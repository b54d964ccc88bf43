package services

import (
	"context"
	"testing"

	"github.com/oleksiiv/warehouse-golang/internal/database"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(store.New(db, zap.NewNop()), zap.NewNop())
}

func intPtr(n int) *int { return &n }

func TestGetByIDAbsentIsSentinel(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	wh, err := svc.Warehouses.GetByID(ctx, "missing")
	require.NoError(t, err, "absence is not a failure at the facade")
	assert.Nil(t, wh)

	cell, err := svc.Cells.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, cell)
}

func TestUpdateAndRemoveAbsentAreSentinels(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	name := "X"
	wh, err := svc.Warehouses.Update(ctx, "missing", store.UpdateWarehouseInput{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, wh)

	removed, err := svc.Warehouses.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestValidationErrorsStillPropagate(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{})
	assert.True(t, store.IsValidation(err))
}

func TestReadsComePopulated(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	wh, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{Name: "W1"})
	require.NoError(t, err)
	sec, err := svc.Sections.Create(ctx, store.CreateSectionInput{Name: "S1", Warehouse: wh.ID})
	require.NoError(t, err)
	rack, err := svc.Racks.Create(ctx, store.CreateRackInput{Name: "R1", Section: sec.ID})
	require.NoError(t, err)
	shelf, err := svc.Shelves.Create(ctx, store.CreateShelfInput{Name: "Bottom", Rack: rack.ID})
	require.NoError(t, err)

	cat, err := svc.Categories.Create(ctx, store.CreateCategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	product, err := svc.Products.Create(ctx, store.CreateProductInput{
		Name: "Laptop", Category: cat.ID, Barcode: "123", RFID: "RF1", Quantity: intPtr(5),
	})
	require.NoError(t, err)
	cell, err := svc.Cells.Create(ctx, store.CreateCellInput{Name: "C1", Shelf: shelf.ID, Product: product.ID})
	require.NoError(t, err)

	got, err := svc.Cells.GetByID(ctx, cell.ID)
	require.NoError(t, err)
	require.True(t, got.Shelf.Resolved())
	require.True(t, got.Shelf.Record.Rack.Resolved())
	require.True(t, got.Shelf.Record.Rack.Record.Section.Resolved())
	require.NotNil(t, got.Product)
	require.True(t, got.Product.Resolved())
	assert.Equal(t, "Laptop", got.Product.Record.Name)
	assert.Equal(t, "Electronics", got.Product.Record.Category.Record.Name)

	gotShelf, err := svc.Shelves.GetByID(ctx, shelf.ID)
	require.NoError(t, err)
	require.True(t, gotShelf.Rack.Resolved())
	require.True(t, gotShelf.Rack.Record.Section.Resolved())

	gotProduct, err := svc.Products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, gotProduct.Category.Resolved())
}

func TestListFiltersNarrowByParent(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	wh, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{Name: "W1"})
	require.NoError(t, err)
	wh2, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{Name: "W2"})
	require.NoError(t, err)
	sec, err := svc.Sections.Create(ctx, store.CreateSectionInput{Name: "S1", Warehouse: wh.ID})
	require.NoError(t, err)
	_, err = svc.Sections.Create(ctx, store.CreateSectionInput{Name: "S2", Warehouse: wh2.ID})
	require.NoError(t, err)

	secs, err := svc.Sections.ListByWarehouse(ctx, wh.ID)
	require.NoError(t, err)
	require.Len(t, secs, 1)
	assert.Equal(t, sec.ID, secs[0].ID)
	assert.True(t, secs[0].Warehouse.Resolved())
}

func TestWarehouseStats(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	wh, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{Name: "W1"})
	require.NoError(t, err)
	sec, err := svc.Sections.Create(ctx, store.CreateSectionInput{Name: "S1", Warehouse: wh.ID})
	require.NoError(t, err)
	rack, err := svc.Racks.Create(ctx, store.CreateRackInput{Name: "R1", Section: sec.ID})
	require.NoError(t, err)
	for level := 0; level < 3; level++ {
		shelf, err := svc.Shelves.Create(ctx, store.CreateShelfInput{Name: "Shelf", Rack: rack.ID, Level: intPtr(level)})
		require.NoError(t, err)
		_, err = svc.Cells.Create(ctx, store.CreateCellInput{Name: "Cell", Shelf: shelf.ID})
		require.NoError(t, err)
	}

	stats, err := svc.Warehouses.Stats(ctx, wh.ID)
	require.NoError(t, err)
	assert.Equal(t, &WarehouseStats{Sections: 1, Racks: 1, Shelves: 3, Cells: 3}, stats)

	stats, err = svc.Warehouses.Stats(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestRemoveReturnsDeletedRecord(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	wh, err := svc.Warehouses.Create(ctx, store.CreateWarehouseInput{Name: "W1"})
	require.NoError(t, err)

	removed, err := svc.Warehouses.Remove(ctx, wh.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, wh.ID, removed.ID)
	assert.Equal(t, "W1", removed.Name)
}
