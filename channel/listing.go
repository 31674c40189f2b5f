// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package channel

import (
	"fmt"
	"strings"

	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
	"github.com/poiesic/brandsearch/resolve"
)

// ListingView is the multi-item result shape.
// It is assembled only here, never inline elsewhere.
type ListingView struct {
	Assets         []core.Asset     `json:"assets"`
	Total          int              `json:"total"`
	Confidence     query.Confidence `json:"confidence"`
	Recommendation string           `json:"recommendation,omitempty"`
}

// ToListing adapts a resolved asset list into the listing view.
// It applies presentation concerns only; the assets arrive already
// boundary-enforced and filtered.
func ToListing(assets []core.Asset, intent query.Intent) *ListingView {
	view := &ListingView{
		Assets:     assets,
		Total:      len(assets),
		Confidence: intent.Confidence,
	}
	// A color query is answered from the palette, so its empty asset
	// list is expected and keeps the classifier's confidence.
	if len(assets) == 0 && intent.Type != query.IntentColorQuery {
		view.Confidence = query.ConfidenceNone
	}
	view.Recommendation = recommendation(assets, intent)
	return view
}

func recommendation(assets []core.Asset, intent query.Intent) string {
	if intent.Ambiguous() {
		names := make([]string, len(intent.Products))
		for i, product := range intent.Products {
			names[i] = resolve.DisplayName(product)
		}
		return fmt.Sprintf("Multiple products match: %s. Try a more specific name.", strings.Join(names, ", "))
	}

	switch {
	case intent.Type == query.IntentColorQuery:
		return "Brand colors live in the design palette; ask for the palette overview or a specific color family."
	case len(assets) == 0:
		if len(intent.Terms) > 0 {
			return fmt.Sprintf("No assets matched %q. Try a product name like Fuzzball or Warewulf, or ask for everything.", strings.Join(intent.Terms, " "))
		}
		return "No assets matched. Try a product name like Fuzzball or Warewulf, or ask for everything."
	case intent.Type == query.IntentSpecificProduct && intent.Product != "":
		return fmt.Sprintf("Showing %s assets. Ask for all variants to see every layout and background.", resolve.DisplayName(intent.Product))
	default:
		return fmt.Sprintf("Found %d assets.", len(assets))
	}
}
