// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/core"
)

// Store implements catalog.Store for BadgerDB.
type Store struct {
	backend *Backend
}

var _ catalog.Store = (*Store)(nil)

// NewStore creates a new Store on top of an open backend.
func NewStore(backend *Backend) *Store {
	return &Store{
		backend: backend,
	}
}

// Close releases store resources. The backend stays open; its owner
// closes it.
func (s *Store) Close() error {
	return nil
}

// PutProduct stores the records for one product, replacing whatever was
// stored for it before.
func (s *Store) PutProduct(ctx context.Context, product string, records []core.RawAssetRecord) error {
	if s.backend.IsClosed() {
		return catalog.ErrStoreClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, makeProductPrefix(product)); err != nil {
			return err
		}
		for i := range records {
			if err := putRecord(tx, &records[i]); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Product retrieves the stored records for one product.
func (s *Store) Product(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	if s.backend.IsClosed() {
		return nil, catalog.ErrStoreClosed
	}

	var records []core.RawAssetRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var readErr error
		records, readErr = readPrefix(tx, makeProductPrefix(product))
		return readErr
	}, false)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, catalog.ErrProductNotFound
	}
	return records, nil
}

// Products returns the sorted product identifiers present in the store.
func (s *Store) Products(ctx context.Context) ([]string, error) {
	if s.backend.IsClosed() {
		return nil, catalog.ErrStoreClosed
	}

	seen := make(map[string]struct{})
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeRecordPrefix()

		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if product := productFromKey(it.Item().Key()); product != "" {
				seen[product] = struct{}{}
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	products := make([]string, 0, len(seen))
	for product := range seen {
		products = append(products, product)
	}
	slices.Sort(products)
	return products, nil
}

// All retrieves every stored record.
func (s *Store) All(ctx context.Context) ([]core.RawAssetRecord, error) {
	if s.backend.IsClosed() {
		return nil, catalog.ErrStoreClosed
	}

	var records []core.RawAssetRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var readErr error
		records, readErr = readPrefix(tx, makeRecordPrefix())
		return readErr
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceAll atomically replaces the full store contents.
func (s *Store) ReplaceAll(ctx context.Context, records []core.RawAssetRecord) error {
	if s.backend.IsClosed() {
		return catalog.ErrStoreClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, makeRecordPrefix()); err != nil {
			return err
		}
		for i := range records {
			if err := putRecord(tx, &records[i]); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// putRecord writes one record under its derived key.
func putRecord(tx *badger.Txn, record *core.RawAssetRecord) error {
	key := makeRecordKey(record.Product, recordID(record))
	return tx.Set(key, catalog.MarshalRecord(record))
}

// readPrefix collects and deserializes every record under a key prefix.
func readPrefix(tx *badger.Txn, prefix []byte) ([]core.RawAssetRecord, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix

	it := tx.NewIterator(opts)
	defer it.Close()

	var records []core.RawAssetRecord
	for it.Rewind(); it.Valid(); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			record, unmarshalErr := catalog.UnmarshalRecord(val)
			if unmarshalErr != nil {
				return unmarshalErr
			}
			records = append(records, *record)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// deletePrefix removes every key under a prefix within the transaction.
// Keys are collected first; deleting while iterating invalidates the
// iterator.
func deletePrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix

	it := tx.NewIterator(opts)
	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
