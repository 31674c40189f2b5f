package query

import (
	"sort"
	"strings"
)

// ResolveProducts resolves a free-text query to a set of product
// identifiers using substring alias matching.
//
// Every alias of every pattern is tested for containment in the
// normalized query; a product's score is the length of its longest
// matching alias. The result is the sorted set of products whose score
// equals the best score overall, so longer, more specific aliases always
// beat shorter ones, and an exact length tie between products returns
// all of them. Callers must not pick an arbitrary winner from a tied
// set; see Intent.Ambiguous.
//
// A match inside an unrelated larger token ("war" in "warranty") is an
// accepted imprecision of the scheme.
func ResolveProducts(reg *Registry, query string) []string {
	q := normalize(query)
	if q == "" {
		return nil
	}

	best := make(map[string]int)
	maxLen := 0
	for _, p := range reg.patterns {
		for _, alias := range p.Aliases {
			if len(alias) <= best[p.Product] {
				continue
			}
			if strings.Contains(q, alias) {
				best[p.Product] = len(alias)
				if len(alias) > maxLen {
					maxLen = len(alias)
				}
			}
		}
	}

	if maxLen == 0 {
		return nil
	}

	products := make([]string, 0, len(best))
	for product, length := range best {
		if length == maxLen {
			products = append(products, product)
		}
	}
	sort.Strings(products)
	return products
}

// isExactAlias reports whether the normalized query is itself one of the
// product's declared aliases.
func isExactAlias(reg *Registry, product, query string) bool {
	q := normalize(query)
	for _, alias := range reg.Aliases(product) {
		if alias == q {
			return true
		}
	}
	return false
}
