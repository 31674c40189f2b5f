package channel

import (
	"net/url"
	"strings"
	"testing"

	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
	"github.com/poiesic/brandsearch/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://brand.example.com/assets"

func testAssets() []core.Asset {
	return resolve.Expand([]core.RawAssetRecord{
		{
			Product:  "fuzzball",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutHorizontal,
			BaseRef:  "https://assets.example.com/fuzzball_h.svg",
			FileType: "svg",
			Primary:  true,
		},
		{
			Product:    "fuzzball",
			Category:   core.CategoryProductLogo,
			Layout:     core.LayoutSymbol,
			Background: core.BackgroundDark,
			BaseRef:    "https://assets.example.com/fuzzball_icon.png",
			FileType:   "png",
		},
	})
}

func specificProductIntent() query.Intent {
	return query.Intent{
		Type:       query.IntentSpecificProduct,
		Confidence: query.ConfidenceHigh,
		Product:    "fuzzball",
		Products:   []string{"fuzzball"},
	}
}

func TestToListing(t *testing.T) {
	t.Run("carries assets through untouched", func(t *testing.T) {
		assets := testAssets()
		view := ToListing(assets, specificProductIntent())

		assert.Equal(t, assets, view.Assets, "the listing never re-filters the canonical list")
		assert.Equal(t, len(assets), view.Total)
		assert.Equal(t, query.ConfidenceHigh, view.Confidence)
		assert.NotEmpty(t, view.Recommendation)
	})

	t.Run("empty result has confidence none", func(t *testing.T) {
		view := ToListing(nil, specificProductIntent())
		assert.Equal(t, 0, view.Total)
		assert.Equal(t, query.ConfidenceNone, view.Confidence)
		assert.NotEmpty(t, view.Recommendation)
	})

	t.Run("color query keeps the classifier confidence", func(t *testing.T) {
		intent := query.Intent{Type: query.IntentColorQuery, Confidence: query.ConfidenceHigh}
		view := ToListing(nil, intent)
		assert.Equal(t, query.ConfidenceHigh, view.Confidence,
			"both channel views report the same confidence for a color query")
		assert.Contains(t, view.Recommendation, "palette")
	})

	t.Run("ambiguity produces a recommendation", func(t *testing.T) {
		intent := query.Intent{
			Type:       query.IntentSpecificProduct,
			Confidence: query.ConfidenceMedium,
			Products:   []string{"fuzzball", "warewulf"},
		}
		view := ToListing(testAssets(), intent)
		assert.Contains(t, view.Recommendation, "Fuzzball")
		assert.Contains(t, view.Recommendation, "Warewulf")
	})
}

func TestToDirectMatch_TieBreak(t *testing.T) {
	assets := testAssets()

	t.Run("primary wins", func(t *testing.T) {
		view := ToDirectMatch(assets, specificProductIntent(), testBaseURL)
		u, err := url.Parse(view.DeepLinkURL)
		require.NoError(t, err)
		params := u.Query()
		assert.Equal(t, "fuzzball", params.Get("product"))
		assert.Equal(t, "horizontal", params.Get("variant"))
		assert.Equal(t, "light", params.Get("background"))
	})

	t.Run("light beats dark without a primary", func(t *testing.T) {
		noPrimary := resolve.Expand([]core.RawAssetRecord{{
			Product:  "warewulf",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutVertical,
			BaseRef:  "https://assets.example.com/warewulf_v.svg",
			FileType: "svg",
		}})
		view := ToDirectMatch(noPrimary, specificProductIntent(), testBaseURL)
		u, err := url.Parse(view.DeepLinkURL)
		require.NoError(t, err)
		assert.Equal(t, "light", u.Query().Get("background"))
	})

	t.Run("declared order breaks remaining ties", func(t *testing.T) {
		var darks []core.Asset
		for _, asset := range assets {
			if asset.Metadata.Background == core.BackgroundDark && !asset.Metadata.Primary {
				darks = append(darks, asset)
			}
		}
		require.Len(t, darks, 2)
		view := ToDirectMatch(darks, specificProductIntent(), testBaseURL)
		u, err := url.Parse(view.DeepLinkURL)
		require.NoError(t, err)
		assert.Equal(t, string(darks[0].Metadata.Layout), u.Query().Get("variant"))
	})
}

func TestToDirectMatch_DeepLinkRoundTrip(t *testing.T) {
	assets := testAssets()
	view := ToDirectMatch(assets, specificProductIntent(), testBaseURL)

	require.True(t, strings.HasPrefix(view.DeepLinkURL, testBaseURL+"?"))
	u, err := url.Parse(view.DeepLinkURL)
	require.NoError(t, err)
	params := u.Query()

	// The encoded tuple re-derives the winning asset's ID.
	id := core.AssetID(params.Get("product"), params.Get("variant"), core.BackgroundMode(params.Get("background")))
	assert.Equal(t, assets[0].ID, id)
	assert.Equal(t, "svg", params.Get("format"))
}

func TestToDirectMatch_Messages(t *testing.T) {
	assets := testAssets()

	t.Run("specific product", func(t *testing.T) {
		view := ToDirectMatch(assets, specificProductIntent(), testBaseURL)
		assert.Equal(t, "Here's your Fuzzball horizontal logo:", view.Message)
		assert.Equal(t, query.ConfidenceHigh, view.Confidence)
	})

	t.Run("color query gets the fixed palette message", func(t *testing.T) {
		intent := query.Intent{Type: query.IntentColorQuery, Confidence: query.ConfidenceHigh}
		view := ToDirectMatch(nil, intent, testBaseURL)
		assert.Contains(t, view.Message, "palette")
		assert.Empty(t, view.DeepLinkURL)
		assert.Equal(t, query.ConfidenceHigh, view.Confidence)
	})

	t.Run("empty result", func(t *testing.T) {
		view := ToDirectMatch(nil, specificProductIntent(), testBaseURL)
		assert.Equal(t, query.ConfidenceNone, view.Confidence)
		assert.Empty(t, view.DeepLinkURL)
		assert.Contains(t, view.Message, "Fuzzball")
	})

	t.Run("document links straight to the file", func(t *testing.T) {
		docs := resolve.Expand([]core.RawAssetRecord{{
			Product:  "fuzzball",
			Category: core.CategoryDocument,
			DocType:  "solution brief",
			BaseRef:  "https://assets.example.com/fuzzball_brief.pdf",
			FileType: "pdf",
		}})
		view := ToDirectMatch(docs, specificProductIntent(), testBaseURL)
		assert.Equal(t, "https://assets.example.com/fuzzball_brief.pdf", view.DeepLinkURL)
		assert.Equal(t, "Here's your Fuzzball document:", view.Message)
	})
}

func TestChannelConsistency(t *testing.T) {
	// The direct match is always a selection from the listing's asset
	// set, never a disjoint computation.
	assets := testAssets()
	intent := specificProductIntent()

	listing := ToListing(assets, intent)
	direct := ToDirectMatch(assets, intent, testBaseURL)

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
