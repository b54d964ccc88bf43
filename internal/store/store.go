// Package store is the entity store: durable CRUD primitives for every
// record type, the referential-integrity rules between them, and the
// hierarchy queries built on top. Records are JSON documents in badger,
// one collection per entity type, keyed "<collection>/<id>".
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection name per entity type.
const (
	colCategories = "categories"
	colProducts   = "products"
	colWarehouses = "warehouses"
	colSections   = "sections"
	colRacks      = "racks"
	colShelves    = "shelves"
	colCells      = "cells"
)

// Store holds the database handle and implements all entity operations.
type Store struct {
	db  *badger.DB
	log *zap.Logger
}

// New creates a Store over an open database.
func New(db *badger.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

func key(col, id string) []byte {
	return []byte(col + "/" + id)
}

func colPrefix(col string) []byte {
	return []byte(col + "/")
}

func newID() string {
	return uuid.NewString()
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// view runs fn in a read-only transaction.
func (s *Store) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return wrapStoreErr(s.db.View(fn))
}

// rw runs fn in a read-write transaction and commits it.
func (s *Store) rw(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return wrapStoreErr(s.db.Update(fn))
}

// wrapStoreErr converts database-down conditions into StoreUnavailableError
// and passes every other error through unchanged.
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, badger.ErrDBClosed) || errors.Is(err, badger.ErrBlockedWrites) {
		return &StoreUnavailableError{Err: err}
	}
	return err
}

// getDoc loads one document or reports NotFoundError.
func getDoc[T any](txn *badger.Txn, col, entity, id string) (*T, error) {
	item, err := txn.Get(key(col, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, &NotFoundError{Entity: entity, ID: id}
	}
	if err != nil {
		return nil, err
	}
	var doc T
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	}); err != nil {
		return nil, err
	}
	return &doc, nil
}

// putDoc marshals and writes one document.
func putDoc[T any](txn *badger.Txn, col, id string, doc *T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return txn.Set(key(col, id), raw)
}

// scanDocs loads every document in a collection. Iteration order is key
// order, which for uuid keys carries no meaning; callers must not rely on it.
func scanDocs[T any](txn *badger.Txn, col string) ([]*T, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = colPrefix(col)
	it := txn.NewIterator(opts)
	defer it.Close()

	var out []*T
	for it.Rewind(); it.Valid(); it.Next() {
		var doc T
		if err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		}); err != nil {
			return nil, err
		}
		out = append(out, &doc)
	}
	return out, nil
}

// exists reports whether a document is present without decoding it.
func exists(txn *badger.Txn, col, id string) (bool, error) {
	_, err := txn.Get(key(col, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// deleteMany removes a batch of documents from one collection.
func deleteMany(txn *badger.Txn, col string, ids []string) error {
	for _, id := range ids {
		if err := txn.Delete(key(col, id)); err != nil {
			return err
		}
	}
	return nil
}
