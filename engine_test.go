package brandsearch

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/catalog/mock"
	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
	"github.com/poiesic/brandsearch/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(mock.NewMockSource())
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	return engine
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, catalog.ErrSourceRequired)
}

func TestSearch_ShortProductQuery(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Search(context.Background(), Request{Query: "fuzz"})
	require.NoError(t, err)

	assert.Equal(t, query.IntentSpecificProduct, result.Intent.Type)
	assert.Equal(t, query.ConfidenceHigh, result.Intent.Confidence)
	assert.Equal(t, "fuzzball", result.Intent.Product)

	// The presentation default narrows a bare product query to its
	// one primary asset.
	require.Len(t, result.Assets, 1)
	asset := result.Assets[0]
	assert.Equal(t, "fuzzball", asset.Brand)
	assert.Equal(t, core.LayoutHorizontal, asset.Metadata.Layout)
	assert.Equal(t, core.BackgroundLight, asset.Metadata.Background)
	assert.True(t, asset.Metadata.Primary)
}

func TestSearch_EmptyQueryBrowsesPrimaries(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Search(context.Background(), Request{Query: ""})
	require.NoError(t, err)

	assert.Equal(t, query.IntentGeneralSearch, result.Intent.Type)

	// One primary per product, company brand included.
	byBrand := map[string]int{}
	for _, asset := range result.Assets {
		byBrand[asset.Brand]++
		assert.True(t, asset.Metadata.Primary)
	}
	assert.Equal(t, map[string]int{
		"fuzzball":  1,
		"warewulf":  1,
		"apptainer": 1,
		"ciq":       1,
	}, byBrand)
}

func TestSearch_ShowAllVariants(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Search(context.Background(), Request{
		Query:           "fuzzball",
		ShowAllVariants: true,
	})
	require.NoError(t, err)

	// Two pair-expanded logos, one dark-only icon, one document.
	assert.Len(t, result.Assets, 6)
	for _, asset := range result.Assets {
		assert.Equal(t, "fuzzball", asset.Brand)
	}
}

func TestSearch_ColorQuerySkipsCatalog(t *testing.T) {
	source := mock.NewMockSource()
	engine, err := New(source)
	require.NoError(t, err)
	defer engine.Close()

	result, err := engine.Search(context.Background(), Request{Query: "brand colors"})
	require.NoError(t, err)

	assert.Equal(t, query.IntentColorQuery, result.Intent.Type)
	assert.Empty(t, result.Assets)
	assert.Zero(t, source.CallCount(), "color queries never touch the catalog")
}

func TestSearch_Filters(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Search(context.Background(), Request{
		Query:           "fuzzball",
		Filters:         resolve.Filters{FileType: "png"},
		ShowAllVariants: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Assets, 1)
	assert.Equal(t, core.LayoutSymbol, result.Assets[0].Metadata.Layout)
	assert.Equal(t, core.BackgroundDark, result.Assets[0].Metadata.Background)
}

func TestSearch_NoMatchIsEmptyNotError(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Search(context.Background(), Request{
		Query:   "fuzzball",
		Filters: resolve.Filters{FileType: "webm"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Assets)
}

func TestSearch_SourceFailurePropagates(t *testing.T) {
	source := mock.NewMockSource()
	source.FetchProductFunc = func(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
		return nil, catalog.ErrDataSourceUnavailable
	}
	engine, err := New(source, WithRetry(1, 0))
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Search(context.Background(), Request{Query: "fuzzball"})
	assert.ErrorIs(t, err, catalog.ErrDataSourceUnavailable)
}

func TestListing(t *testing.T) {
	engine := newTestEngine(t)

	view, err := engine.Listing(context.Background(), Request{Query: "fuzzball"})
	require.NoError(t, err)

	assert.Equal(t, 1, view.Total)
	assert.Equal(t, query.ConfidenceHigh, view.Confidence)
	assert.Contains(t, view.Recommendation, "Fuzzball")
}

func TestDirectMatch(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("product query links the primary", func(t *testing.T) {
		view, err := engine.DirectMatch(context.Background(), Request{Query: "warewulf"})
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(view.DeepLinkURL, DefaultBaseURL+"?"))
		u, err := url.Parse(view.DeepLinkURL)
		require.NoError(t, err)
		params := u.Query()
		assert.Equal(t, "warewulf", params.Get("product"))
		assert.Equal(t, "horizontal", params.Get("variant"))
		assert.Equal(t, "light", params.Get("background"))
	})

	t.Run("color query answers without a link", func(t *testing.T) {
		view, err := engine.DirectMatch(context.Background(), Request{Query: "colors"})
		require.NoError(t, err)
		assert.Contains(t, view.Message, "palette")
		assert.Empty(t, view.DeepLinkURL)
	})

	t.Run("no match reports none confidence", func(t *testing.T) {
		view, err := engine.DirectMatch(context.Background(), Request{
			Query:   "fuzzball",
			Filters: resolve.Filters{FileType: "webm"},
		})
		require.NoError(t, err)
		assert.Equal(t, query.ConfidenceNone, view.Confidence)
		assert.Empty(t, view.DeepLinkURL)
	})
}

func TestChannelsShareOneResolution(t *testing.T) {
	// Both views of the same request must derive from the same canonical
	// asset set: the direct match's deep link always names an asset the
	// listing contains.
	engine := newTestEngine(t)
	req := Request{Query: "fuzzball", ShowAllVariants: true}

	listing, err := engine.Listing(context.Background(), req)
	require.NoError(t, err)

	direct, err := engine.DirectMatch(context.Background(), req)
	require.NoError(t, err)

	u, err := url.Parse(direct.DeepLinkURL)
	require.NoError(t, err)
	params := u.Query()
	id := core.AssetID(params.Get("product"), params.Get("variant"), core.BackgroundMode(params.Get("background")))

	found := false
	for _, asset := range listing.Assets {
		if asset.ID == id {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFetchSet(t *testing.T) {
	tests := []struct {
		name   string
		intent query.Intent
		want   []string
	}{
		{
			name: "resolved product narrows",
			intent: query.Intent{
				Type:     query.IntentSpecificProduct,
				Product:  "fuzzball",
				Products: []string{"fuzzball"},
			},
			want: []string{"fuzzball"},
		},
		{
			name: "tied set fetches all candidates",
			intent: query.Intent{
				Type:     query.IntentSpecificProduct,
				Products: []string{"rlc", "rlc-ai"},
			},
			want: []string{"rlc", "rlc-ai"},
		},
		{
			name:   "general search browses everything",
			intent: query.Intent{Type: query.IntentGeneralSearch},
			want:   nil,
		},
		{
			name:   "category browse browses everything",
			intent: query.Intent{Type: query.IntentBrowseCategory},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetchSet(tt.intent))
		})
	}
}
