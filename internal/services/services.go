// Package services is the façade the HTTP layer talks to: one service per
// entity type, each pre-wired to the population depth its records are
// served at. Services hold no state of their own; every side effect lives
// in the store.
package services

import (
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// Services bundles one façade per entity type.
type Services struct {
	Warehouses *WarehouseService
	Sections   *SectionService
	Racks      *RackService
	Shelves    *ShelfService
	Cells      *CellService
	Products   *ProductService
	Categories *CategoryService
}

// New wires every façade to the shared store.
func New(st *store.Store, log *zap.Logger) *Services {
	if log == nil {
		log = zap.NewNop()
	}
	return &Services{
		Warehouses: &WarehouseService{store: st, log: log},
		Sections:   &SectionService{store: st, log: log},
		Racks:      &RackService{store: st, log: log},
		Shelves:    &ShelfService{store: st, log: log},
		Cells:      &CellService{store: st, log: log},
		Products:   &ProductService{store: st, log: log},
		Categories: &CategoryService{store: st, log: log},
	}
}

// absent converts the store's NotFoundError into the (nil, nil) sentinel so
// callers can tell "absent" from "failed" without type assertions.
func absent(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if store.IsNotFound(err) {
		return true, nil
	}
	return false, err
}
