package query

import (
	"regexp"
	"strings"

	"github.com/poiesic/brandsearch/core"
)

// IntentType is the high-level purpose of a query.
type IntentType string

const (
	// IntentSpecificProduct is a request scoped to one named product.
	IntentSpecificProduct IntentType = "specific_product"
	// IntentSpecificAsset is an asset-shaped request with no recognized product.
	IntentSpecificAsset IntentType = "specific_asset"
	// IntentBrowseCategory is a "show me everything" style request.
	IntentBrowseCategory IntentType = "browse_category"
	// IntentColorQuery asks about the color palette or design system.
	IntentColorQuery IntentType = "color_query"
	// IntentGeneralSearch is the fallback for unclassifiable queries.
	IntentGeneralSearch IntentType = "general_search"
)

// Confidence grades how certain the classifier is about an intent.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	// ConfidenceNone marks an empty result, not a classification outcome.
	ConfidenceNone Confidence = "none"
)

// Params holds the structural parameters extracted from a query,
// independently of the intent cascade. Zero values mean "not mentioned".
type Params struct {
	Layout     core.Layout
	Background core.BackgroundMode
	Variant    core.ColorVariant
	FileType   string
}

// Intent is the classified purpose of a query plus its extracted parameters.
type Intent struct {
	Type       IntentType
	Confidence Confidence
	// Product is the single resolved product, set only when resolution
	// was unambiguous. For a tied set it stays empty and Products
	// carries the full set.
	Product  string
	Products []string
	Params   Params
	// Terms are the meaningful search words extracted from the query,
	// used for guidance text when nothing resolves.
	Terms []string
}

// Ambiguous reports whether product resolution tied between several products.
func (i Intent) Ambiguous() bool {
	return len(i.Products) > 1
}

// Asset-shaped phrasings: "<verb> the <noun> logo", "logo in svg", ...
var assetPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:i need|i want|get me|find me|give me|show me|grab|download)\b.*\b(?:logo|icon|symbol|mark)s?\b`),
	regexp.MustCompile(`\b(?:the|a|an)\s+\S+\s+(?:logo|icon)s?\b`),
	regexp.MustCompile(`\b(?:logo|icon)s?\s+(?:in|for|as|on)\b`),
}

// Token-level vocabularies. Phrase matching here is on word boundaries so
// "twocolor" never triggers the color-palette intent.
var colorPhrases = []string{
	"colors", "colours", "palette", "color palette", "colour palette",
	"design system", "design tokens", "brand colors", "swatches",
}

var browsePhrases = []string{
	"everything", "all assets", "all logos", "all icons", "all materials",
	"complete set", "full package", "what do you have",
}

// Keyword tables for parameter extraction, matched by substring with the
// longest keyword winning within each family.
var layoutKeywords = map[string][]string{
	string(core.LayoutHorizontal): {"horizontal", "wide", "header", "lockup"},
	string(core.LayoutVertical):   {"vertical", "tall", "stacked"},
	string(core.LayoutSymbol):     {"symbol", "icon", "favicon", "app icon", "square"},
}

var backgroundKeywords = map[string][]string{
	string(core.BackgroundLight): {"light", "white", "light background", "light mode"},
	string(core.BackgroundDark):  {"dark", "black", "dark background", "dark mode", "dark theme"},
}

var variantKeywords = map[string][]string{
	string(core.VariantOneColor): {"onecolor", "one color", "1-color", "1 color"},
	string(core.VariantTwoColor): {"twocolor", "two color", "2-color", "2 color"},
	string(core.VariantGreen):    {"green", "accent"},
}

var fileTypeKeywords = map[string][]string{
	"svg": {"svg", "vector"},
	"png": {"png", "raster", "bitmap"},
	"pdf": {"pdf", "document"},
}

// Classifier determines query intent against a fixed pattern registry.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a Classifier over the given registry.
func NewClassifier(registry *Registry) (*Classifier, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Classifier{registry: registry}, nil
}

// Classify determines the intent of a query.
//
// The cascade is ordered and the first rule wins:
//  1. color/design-system vocabulary -> color_query, high
//  2. browse-everything phrasing -> browse_category, medium ("show me
//     all logos" is a browse, not an asset request, so this outranks
//     the verb-led asset patterns)
//  3. asset-shaped phrasing -> specific_product (high, or medium on an
//     alias tie) when a product resolved, else specific_asset, medium
//  4. a resolved product and a query of at most two tokens ->
//     specific_product; high when the query is itself a declared alias
//     of an unambiguous product, medium otherwise (ties included)
//  5. fallback -> general_search, low
//
// Parameter extraction runs independently of the cascade; classification
// never fails, and an empty query falls through to general_search.
func (c *Classifier) Classify(query string) Intent {
	q := normalize(query)
	tokens := tokenize(q)
	products := ResolveProducts(c.registry, query)

	intent := Intent{
		Type:       IntentGeneralSearch,
		Confidence: ConfidenceLow,
		Products:   products,
		Params:     extractParams(q),
		Terms:      SearchTerms(query),
	}
	if len(products) == 1 {
		intent.Product = products[0]
	}

	switch {
	case matchesAnyPhrase(tokens, colorPhrases):
		intent.Type = IntentColorQuery
		intent.Confidence = ConfidenceHigh

	case matchesAnyPhrase(tokens, browsePhrases):
		intent.Type = IntentBrowseCategory
		intent.Confidence = ConfidenceMedium

	case matchesAssetPhrase(q):
		if len(products) > 0 {
			intent.Type = IntentSpecificProduct
			if len(products) == 1 {
				intent.Confidence = ConfidenceHigh
			} else {
				intent.Confidence = ConfidenceMedium
			}
		} else {
			intent.Type = IntentSpecificAsset
			intent.Confidence = ConfidenceMedium
		}

	case len(products) == 1 && len(tokens) <= 2:
		intent.Type = IntentSpecificProduct
		if isExactAlias(c.registry, products[0], q) {
			intent.Confidence = ConfidenceHigh
		} else {
			intent.Confidence = ConfidenceMedium
		}

	case len(products) > 1 && len(tokens) <= 2:
		// Tied alias match. The set is preserved and no winner is
		// picked; lower confidence signals the ambiguity instead.
		intent.Type = IntentSpecificProduct
		intent.Confidence = ConfidenceMedium
	}

	return intent
}

func matchesAssetPhrase(q string) bool {
	for _, p := range assetPhrasePatterns {
		if p.MatchString(q) {
			return true
		}
	}
	return false
}

func matchesAnyPhrase(tokens []string, phrases []string) bool {
	for _, phrase := range phrases {
		if containsPhrase(tokens, phrase) {
			return true
		}
	}
	return false
}

// extractParams scans the normalized query for layout, background, color
// variant, and file type keywords. Families are independent; within a
// family the longest matching keyword wins.
func extractParams(q string) Params {
	var params Params
	if v := longestKeyword(q, layoutKeywords); v != "" {
		params.Layout = core.Layout(v)
	}
	if v := longestKeyword(q, backgroundKeywords); v != "" {
		params.Background = core.BackgroundMode(v)
	}
	if v := longestKeyword(q, variantKeywords); v != "" {
		params.Variant = core.ColorVariant(v)
	}
	params.FileType = longestKeyword(q, fileTypeKeywords)
	return params
}

func longestKeyword(q string, table map[string][]string) string {
	best := ""
	bestLen := 0
	for value, keywords := range table {
		for _, kw := range keywords {
			if len(kw) > bestLen && strings.Contains(q, kw) {
				best = value
				bestLen = len(kw)
			}
		}
	}
	return best
}
