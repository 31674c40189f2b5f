package catalog

import (
	"context"

	"github.com/poiesic/brandsearch/core"
)

// Source supplies raw asset records. Implementations must be thread-safe;
// the repository calls them from multiple goroutines.
type Source interface {
	// FetchProduct returns the raw records for a single product.
	// Returns ErrProductNotFound when the source holds nothing for it.
	FetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error)

	// FetchAll returns the entire catalog in one call.
	FetchAll(ctx context.Context) ([]core.RawAssetRecord, error)
}

// Store persists raw asset records keyed by product.
// Implementations must be thread-safe and support concurrent access.
type Store interface {
	// PutProduct stores the records for one product, replacing any
	// previously stored records for that product.
	PutProduct(ctx context.Context, product string, records []core.RawAssetRecord) error

	// Product retrieves the stored records for one product.
	// Returns ErrProductNotFound if the product has never been stored.
	Product(ctx context.Context, product string) ([]core.RawAssetRecord, error)

	// Products returns the sorted product identifiers present in the store.
	Products(ctx context.Context) ([]string, error)

	// All retrieves every stored record.
	All(ctx context.Context) ([]core.RawAssetRecord, error)

	// ReplaceAll atomically replaces the full store contents.
	// This is the only invalidation mechanism: caches are refreshed
	// wholesale, never mutated in place.
	ReplaceAll(ctx context.Context, records []core.RawAssetRecord) error

	// Close closes the store and releases resources.
	Close() error
}
