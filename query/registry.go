package query

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern maps one product identifier to its alias strings.
// Aliases are abbreviations, misspellings, and synonyms that should
// resolve to the product.
type Pattern struct {
	Product string
	Aliases []string
}

// Registry is an immutable product-alias table.
// It is constructed once at startup, validated, and then safe for
// unsynchronized concurrent reads.
type Registry struct {
	patterns []Pattern
	products []string
}

// NewRegistry builds a Registry from the given patterns.
//
// Alias strings are case-folded and trimmed during construction. Returns
// ErrMalformedRegistry (wrapping the specific defect) for empty product
// identifiers, empty aliases, within-product duplicate aliases, or
// duplicate products. Aliases repeating across different products are
// allowed: that ambiguity is intentional and preserved at resolution time.
func NewRegistry(patterns []Pattern) (*Registry, error) {
	seen := make(map[string]bool, len(patterns))
	normalized := make([]Pattern, 0, len(patterns))
	products := make([]string, 0, len(patterns))

	for _, p := range patterns {
		product := strings.ToLower(strings.TrimSpace(p.Product))
		if product == "" {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRegistry, ErrEmptyProductID)
		}
		if seen[product] {
			return nil, fmt.Errorf("%w: %w: %q", ErrMalformedRegistry, ErrDuplicateProduct, product)
		}
		seen[product] = true

		aliasSeen := make(map[string]bool, len(p.Aliases))
		aliases := make([]string, 0, len(p.Aliases))
		for _, a := range p.Aliases {
			alias := strings.ToLower(strings.TrimSpace(a))
			if alias == "" {
				return nil, fmt.Errorf("%w: %w: product %q", ErrMalformedRegistry, ErrEmptyAlias, product)
			}
			if aliasSeen[alias] {
				return nil, fmt.Errorf("%w: %w: %q (product %q)", ErrMalformedRegistry, ErrDuplicateAlias, alias, product)
			}
			aliasSeen[alias] = true
			aliases = append(aliases, alias)
		}

		normalized = append(normalized, Pattern{Product: product, Aliases: aliases})
		products = append(products, product)
	}

	sort.Strings(products)
	return &Registry{patterns: normalized, products: products}, nil
}

// Products returns the sorted product identifiers in the registry.
func (r *Registry) Products() []string {
	out := make([]string, len(r.products))
	copy(out, r.products)
	return out
}

// Aliases returns the declared aliases for a product, or nil if the
// product is not in the registry.
func (r *Registry) Aliases(product string) []string {
	product = strings.ToLower(strings.TrimSpace(product))
	for _, p := range r.patterns {
		if p.Product == product {
			out := make([]string, len(p.Aliases))
			copy(out, p.Aliases)
			return out
		}
	}
	return nil
}

// CompanyBrand is the product identifier for the corporate brand itself,
// as opposed to the individual product brands.
const CompanyBrand = "ciq"

// defaultPatterns is the built-in alias table for the CIQ brand catalog.
var defaultPatterns = []Pattern{
	{Product: CompanyBrand, Aliases: []string{"ciq", "company", "brand", "main"}},
	{Product: "fuzzball", Aliases: []string{"fuzzball", "fuzz ball", "fuzz", "fuz", "workload", "hpc"}},
	{Product: "warewulf", Aliases: []string{"warewulf", "ware", "war", "cluster", "provisioning"}},
	{Product: "apptainer", Aliases: []string{"apptainer", "app", "container", "scientific"}},
	{Product: "ascender", Aliases: []string{"ascender", "asc", "automation", "ansible"}},
	{Product: "bridge", Aliases: []string{"bridge", "bri", "centos", "migration"}},
	{Product: "support", Aliases: []string{"support", "sup", "ciq support"}},
	{Product: "rlc", Aliases: []string{"rlc", "rocky linux commercial", "rocky linux"}},
	{Product: "rlc-ai", Aliases: []string{"rlc-ai", "rlc ai", "rocky linux ai"}},
	{Product: "rlc-hardened", Aliases: []string{"rlc-hardened", "rlc hardened", "rocky linux hardened"}},
	// "rocky linux commercial lts" must out-length rlc's "rocky linux
	// commercial" so longest-match routes LTS queries here.
	{Product: "rlc-lts", Aliases: []string{"rlc-lts", "rlc lts", "rocky linux commercial lts", "rocky linux lts", "long term support", "long-term support", "lts"}},
}

// DefaultRegistry returns the built-in alias table.
// The table is a compile-time constant; a validation failure here is a
// programming error, so it panics rather than returning an error.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultPatterns)
	if err != nil {
		panic(err)
	}
	return r
}
