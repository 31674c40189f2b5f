package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/brandsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a minimal Source for repository tests.
// The repository fetches products concurrently, so call counting is
// guarded by a mutex.
type stubSource struct {
	mu      sync.Mutex
	records map[string][]core.RawAssetRecord
	fail    map[string]error
	allErr  error
	calls   map[string]int
}

func (s *stubSource) countCall(key string) {
	s.mu.Lock()
	s.calls[key]++
	s.mu.Unlock()
}

func (s *stubSource) callCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

func newStubSource() *stubSource {
	return &stubSource{
		records: map[string][]core.RawAssetRecord{
			"fuzzball": {
				{Product: "fuzzball", Category: core.CategoryProductLogo, Layout: core.LayoutHorizontal},
				{Product: "fuzzball", Category: core.CategoryProductLogo, Layout: core.LayoutSymbol},
			},
			"warewulf": {
				{Product: "warewulf", Category: core.CategoryProductLogo, Layout: core.LayoutHorizontal},
			},
		},
		fail:  map[string]error{},
		calls: map[string]int{},
	}
}

func (s *stubSource) FetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	s.countCall(product)
	if err := s.fail[product]; err != nil {
		return nil, err
	}
	records, ok := s.records[product]
	if !ok {
		return nil, ErrProductNotFound
	}
	return records, nil
}

func (s *stubSource) FetchAll(ctx context.Context) ([]core.RawAssetRecord, error) {
	s.countCall("*")
	if s.allErr != nil {
		return nil, s.allErr
	}
	var all []core.RawAssetRecord
	for _, product := range []string{"fuzzball", "warewulf"} {
		all = append(all, s.records[product]...)
	}
	return all, nil
}

func newTestRepository(t *testing.T, source Source) *Repository {
	t.Helper()
	repo, err := NewRepository(source, WithRetry(2, time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := NewRepository(nil)
		assert.Equal(t, ErrSourceRequired, err)
	})

	t.Run("invalid retry config", func(t *testing.T) {
		_, err := NewRepository(newStubSource(), WithRetry(0, time.Millisecond))
		assert.Equal(t, ErrInvalidMaxAttempts, err)
	})

	t.Run("pool size floor", func(t *testing.T) {
		repo, err := NewRepository(newStubSource(), WithPoolSize(-5))
		require.NoError(t, err)
		repo.Close()
	})
}

func TestRepository_Fetch_Merge(t *testing.T) {
	source := newStubSource()
	repo := newTestRepository(t, source)

	records, err := repo.Fetch(context.Background(), []string{"fuzzball", "warewulf"})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// Merge preserves request order.
	assert.Equal(t, "fuzzball", records[0].Product)
	assert.Equal(t, "warewulf", records[2].Product)
}

func TestRepository_Fetch_DedupesProducts(t *testing.T) {
	source := newStubSource()
	repo := newTestRepository(t, source)

	records, err := repo.Fetch(context.Background(), []string{"fuzzball", "fuzzball"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, source.callCount("fuzzball"))
}

func TestRepository_Fetch_EmptySetFetchesAll(t *testing.T) {
	source := newStubSource()
	repo := newTestRepository(t, source)

	records, err := repo.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 1, source.callCount("*"))
}

func TestRepository_Fetch_PartialFailureDegrades(t *testing.T) {
	source := newStubSource()
	source.fail["warewulf"] = errors.New("connection refused")
	repo := newTestRepository(t, source)

	records, err := repo.Fetch(context.Background(), []string{"fuzzball", "warewulf"})
	require.NoError(t, err, "one failing product must not abort the request")
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "fuzzball", record.Product)
	}
	// The failing product was retried up to the attempt limit.
	assert.Equal(t, 2, source.callCount("warewulf"))
}

func TestRepository_Fetch_AllFailuresSurface(t *testing.T) {
	source := newStubSource()
	source.fail["fuzzball"] = errors.New("connection refused")
	source.fail["warewulf"] = errors.New("connection refused")
	repo := newTestRepository(t, source)

	_, err := repo.Fetch(context.Background(), []string{"fuzzball", "warewulf"})
	assert.ErrorIs(t, err, ErrDataSourceUnavailable)
}

func TestRepository_Fetch_UnknownProductIsEmpty(t *testing.T) {
	source := newStubSource()
	repo := newTestRepository(t, source)

	records, err := repo.Fetch(context.Background(), []string{"fuzzball", "nonesuch"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	// Not-found is not retried.
	assert.Equal(t, 1, source.callCount("nonesuch"))
}

func TestRepository_Fetch_CancelledContext(t *testing.T) {
	source := newStubSource()
	repo := newTestRepository(t, source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Fetch(ctx, []string{"fuzzball"})
	assert.ErrorIs(t, err, ErrDataSourceUnavailable,
		"cancellation must surface as unavailability, never a partial result")
}

func TestRepository_Fetch_AllError(t *testing.T) {
	source := newStubSource()
	source.allErr = errors.New("boom")
	repo := newTestRepository(t, source)

	_, err := repo.Fetch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDataSourceUnavailable)
}
