package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/brandsearch/core"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 250 * time.Millisecond
)

// Repository fetches and merges raw asset records from a Source.
//
// Given a non-empty product set, each product is fetched independently on
// a worker pool; a product whose fetch keeps failing degrades to zero
// records instead of aborting the request. An empty product set fetches
// the entire catalog in one call.
type Repository struct {
	source      Source
	pool        *ants.Pool
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository) error

// WithPoolSize sets the worker pool size for concurrent product fetches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) RepositoryOption {
	return func(r *Repository) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithRetry sets the bounded-backoff retry policy for source fetches.
func WithRetry(maxAttempts int, baseDelay time.Duration) RepositoryOption {
	return func(r *Repository) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		r.maxAttempts = maxAttempts
		r.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RepositoryOption {
	return func(r *Repository) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRepository creates a repository over the given source.
func NewRepository(source Source, opts ...RepositoryOption) (*Repository, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Repository{
		source:      source,
		pool:        pool,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.pool.Release()
			return nil, err
		}
	}

	return r, nil
}

// Close releases the worker pool.
func (r *Repository) Close() {
	r.pool.Release()
}

// Fetch retrieves the raw records for the given products, merged in the
// given order. An empty product list means the whole catalog.
//
// A cancelled or expired context returns ErrDataSourceUnavailable rather
// than a partial record list. If every requested product fails to fetch,
// the source is considered unreachable and ErrDataSourceUnavailable is
// returned; a subset of failures degrades to zero records for those
// products only.
func (r *Repository) Fetch(ctx context.Context, products []string) ([]core.RawAssetRecord, error) {
	if len(products) == 0 {
		return r.fetchAll(ctx)
	}

	products = dedupe(products)
	results := make([][]core.RawAssetRecord, len(products))
	failures := make([]error, len(products))

	var wg sync.WaitGroup
	for i, product := range products {
		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()
			records, err := r.fetchProduct(ctx, product)
			if err != nil {
				failures[i] = err
				return
			}
			results[i] = records
		})
		if submitErr != nil {
			wg.Done()
			failures[i] = submitErr
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}

	failed := 0
	var lastErr error
	for i, err := range failures {
		if err == nil {
			continue
		}
		failed++
		lastErr = err
		r.logger.Warn("product fetch failed, degrading to zero records",
			"product", products[i], "err", err)
	}
	if failed == len(products) {
		return nil, fmt.Errorf("%w: all %d product fetches failed: %w",
			ErrDataSourceUnavailable, len(products), lastErr)
	}

	var merged []core.RawAssetRecord
	for _, records := range results {
		merged = append(merged, records...)
	}
	return merged, nil
}

func (r *Repository) fetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	var records []core.RawAssetRecord
	err := RetryWithBackoff(ctx, r.logger, func() error {
		recs, err := r.source.FetchProduct(ctx, product)
		if err != nil {
			// An unknown product is an empty result, not a source failure.
			if errors.Is(err, ErrProductNotFound) {
				records = nil
				return nil
			}
			return err
		}
		records = recs
		return nil
	}, r.maxAttempts, r.retryDelay)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) fetchAll(ctx context.Context) ([]core.RawAssetRecord, error) {
	var records []core.RawAssetRecord
	err := RetryWithBackoff(ctx, r.logger, func() error {
		recs, err := r.source.FetchAll(ctx)
		if err != nil {
			return err
		}
		records = recs
		return nil
	}, r.maxAttempts, r.retryDelay)
	if err != nil {
		if errors.Is(err, ErrDataSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}
	return records, nil
}

func dedupe(products []string) []string {
	seen := make(map[string]bool, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
