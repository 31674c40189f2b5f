package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/brandsearch/core"
)

// CachedSource layers a Store in front of an upstream Source.
//
// Reads are served from the store when the product is present and fall
// through to the upstream on a miss; upstream results are written back
// best-effort. The cache is keyed by product identifier and only ever
// invalidated wholesale via Refresh, never mutated in place.
type CachedSource struct {
	upstream Source
	store    Store
	logger   *slog.Logger
}

// CachedSourceOption configures a CachedSource.
type CachedSourceOption func(*CachedSource)

// WithCacheLogger sets a custom logger.
// Default is slog.Default().
func WithCacheLogger(logger *slog.Logger) CachedSourceOption {
	return func(c *CachedSource) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCachedSource creates a caching source.
func NewCachedSource(upstream Source, store Store, opts ...CachedSourceOption) (*CachedSource, error) {
	if upstream == nil {
		return nil, ErrSourceRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	c := &CachedSource{
		upstream: upstream,
		store:    store,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ Source = (*CachedSource)(nil)

// FetchProduct serves a product from the store, falling through to the
// upstream on a miss.
func (c *CachedSource) FetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	records, err := c.store.Product(ctx, product)
	if err == nil {
		return records, nil
	}
	if !errors.Is(err, ErrProductNotFound) {
		c.logger.Warn("cache read failed, falling through to upstream", "product", product, "err", err)
	}

	records, err = c.upstream.FetchProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	if putErr := c.store.PutProduct(ctx, product, records); putErr != nil {
		c.logger.Warn("cache write failed", "product", product, "err", putErr)
	}
	return records, nil
}

// FetchAll serves the whole catalog from the store when it has been
// seeded, otherwise from the upstream.
func (c *CachedSource) FetchAll(ctx context.Context) ([]core.RawAssetRecord, error) {
	products, err := c.store.Products(ctx)
	if err == nil && len(products) > 0 {
		return c.store.All(ctx)
	}

	records, err := c.upstream.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if putErr := c.store.ReplaceAll(ctx, records); putErr != nil {
		c.logger.Warn("cache seed failed", "err", putErr)
	}
	return records, nil
}

// Refresh refetches the full catalog from the upstream and replaces the
// store contents wholesale.
func (c *CachedSource) Refresh(ctx context.Context) (int, error) {
	records, err := c.upstream.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := c.store.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
