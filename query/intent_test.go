package query

import (
	"testing"

	"github.com/poiesic/brandsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultRegistry())
	require.NoError(t, err)
	return c
}

func TestNewClassifier(t *testing.T) {
	t.Run("valid registry", func(t *testing.T) {
		c, err := NewClassifier(DefaultRegistry())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("nil registry", func(t *testing.T) {
		_, err := NewClassifier(nil)
		assert.Equal(t, ErrRegistryRequired, err)
	})
}

func TestClassify_Cascade(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name           string
		query          string
		wantType       IntentType
		wantConfidence Confidence
		wantProduct    string
	}{
		{
			name:           "color vocabulary wins first",
			query:          "what are the brand colors",
			wantType:       IntentColorQuery,
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "palette word",
			query:          "show me the color palette",
			wantType:       IntentColorQuery,
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "color beats product mention",
			query:          "fuzzball brand colors",
			wantType:       IntentColorQuery,
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "asset phrase with product",
			query:          "i need the fuzzball logo",
			wantType:       IntentSpecificProduct,
			wantConfidence: ConfidenceHigh,
			wantProduct:    "fuzzball",
		},
		{
			name:           "asset phrase without product",
			query:          "get me a nice logo in svg",
			wantType:       IntentSpecificAsset,
			wantConfidence: ConfidenceMedium,
		},
		{
			name:           "browse phrase",
			query:          "show me everything",
			wantType:       IntentBrowseCategory,
			wantConfidence: ConfidenceMedium,
		},
		{
			name:           "browse phrase outranks verb-led asset phrasing",
			query:          "show me all logos",
			wantType:       IntentBrowseCategory,
			wantConfidence: ConfidenceMedium,
		},
		{
			name:           "bare exact alias",
			query:          "fuzz",
			wantType:       IntentSpecificProduct,
			wantConfidence: ConfidenceHigh,
			wantProduct:    "fuzzball",
		},
		{
			name:           "bare full product name",
			query:          "fuzzball",
			wantType:       IntentSpecificProduct,
			wantConfidence: ConfidenceHigh,
			wantProduct:    "fuzzball",
		},
		{
			name:           "short non-alias product query",
			query:          "fuzzball please",
			wantType:       IntentSpecificProduct,
			wantConfidence: ConfidenceMedium,
			wantProduct:    "fuzzball",
		},
		{
			name:           "long product mention falls to general",
			query:          "tell me something interesting about the fuzzball scheduler internals",
			wantType:       IntentGeneralSearch,
			wantConfidence: ConfidenceLow,
			wantProduct:    "fuzzball",
		},
		{
			name:           "empty query",
			query:          "",
			wantType:       IntentGeneralSearch,
			wantConfidence: ConfidenceLow,
		},
		{
			name:           "unrecognized query",
			query:          "quarterly revenue projections",
			wantType:       IntentGeneralSearch,
			wantConfidence: ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := c.Classify(tt.query)
			assert.Equal(t, tt.wantType, intent.Type, "intent type")
			assert.Equal(t, tt.wantConfidence, intent.Confidence, "confidence")
			assert.Equal(t, tt.wantProduct, intent.Product, "product")
		})
	}
}

func TestClassify_AmbiguousTie(t *testing.T) {
	reg, err := NewRegistry([]Pattern{
		{Product: "alpha", Aliases: []string{"north"}},
		{Product: "beta", Aliases: []string{"south"}},
	})
	require.NoError(t, err)
	c, err := NewClassifier(reg)
	require.NoError(t, err)

	intent := c.Classify("north south")
	assert.Equal(t, IntentSpecificProduct, intent.Type)
	assert.Equal(t, ConfidenceMedium, intent.Confidence)
	assert.Empty(t, intent.Product, "no arbitrary winner on a tie")
	assert.Equal(t, []string{"alpha", "beta"}, intent.Products)
	assert.True(t, intent.Ambiguous())
}

func TestClassify_Params(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{
			name:  "layout and background",
			query: "fuzzball icon for dark mode",
			want:  Params{Layout: core.LayoutSymbol, Background: core.BackgroundDark, FileType: ""},
		},
		{
			name:  "file type",
			query: "warewulf logo in svg",
			want:  Params{FileType: "svg"},
		},
		{
			name:  "color variant",
			query: "ciq twocolor logo",
			want:  Params{Variant: core.VariantTwoColor},
		},
		{
			name:  "longest keyword wins within a family",
			query: "logo for a dark background",
			want:  Params{Background: core.BackgroundDark},
		},
		{
			name:  "nothing extracted",
			query: "fuzzball",
			want:  Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := c.Classify(tt.query)
			assert.Equal(t, tt.want, intent.Params)
		})
	}
}
