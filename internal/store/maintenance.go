package store

import (
	"context"
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// NormalizeShelfLevels backfills level 0 onto shelf documents stored
// without a level field. Documents written by this store always carry one;
// this exists for data imported from older deployments. Returns the number
// of shelves updated.
func (s *Store) NormalizeShelfLevels(ctx context.Context) (int, error) {
	updated := 0
	err := s.rw(ctx, func(txn *badger.Txn) error {
		type patch struct {
			key []byte
			val []byte
		}
		var patches []patch

		opts := badger.DefaultIteratorOptions
		opts.Prefix = colPrefix(colShelves)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var doc map[string]json.RawMessage
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			}); err != nil {
				return err
			}
			if _, ok := doc["level"]; ok {
				continue
			}
			doc["level"] = json.RawMessage("0")
			ts, err := json.Marshal(nowUTC())
			if err != nil {
				return err
			}
			doc["updatedAt"] = ts
			raw, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			patches = append(patches, patch{key: item.KeyCopy(nil), val: raw})
		}
		it.Close()

		for _, p := range patches {
			if err := txn.Set(p.key, p.val); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		s.log.Info("shelf levels normalized", zap.Int("updated", updated))
	}
	return updated, nil
}
