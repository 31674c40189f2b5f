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
	"net/url"

	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
	"github.com/poiesic/brandsearch/resolve"
)

// DirectMatchView is the single best-match result shape.
// It is assembled only here, never inline elsewhere.
type DirectMatchView struct {
	Message     string           `json:"message"`
	DeepLinkURL string           `json:"deepLinkUrl,omitempty"`
	Confidence  query.Confidence `json:"confidence"`
}

// ToDirectMatch adapts a resolved asset list into the single-result view.
//
// The pick is deterministic: prefer the primary asset, then a light
// background, then declared order. The winner's defining tuple is
// encoded into the deep link's query parameters so the asset ID
// round-trips; documents link straight to their file.
func ToDirectMatch(assets []core.Asset, intent query.Intent, baseURL string) *DirectMatchView {
	if intent.Type == query.IntentColorQuery {
		return &DirectMatchView{
			Message:    "Brand colors live in the design palette, not the asset catalog. Ask for the palette overview or a specific color family.",
			Confidence: intent.Confidence,
		}
	}

	if len(assets) == 0 {
		return &DirectMatchView{
			Message:    notFoundMessage(intent),
			Confidence: query.ConfidenceNone,
		}
	}

	best := pickBest(assets)
	return &DirectMatchView{
		Message:     matchMessage(best, intent),
		DeepLinkURL: deepLink(best, baseURL),
		Confidence:  intent.Confidence,
	}
}

// pickBest applies the tie-break: primary beats non-primary, light
// background beats dark, earlier declared order beats later.
func pickBest(assets []core.Asset) *core.Asset {
	best := &assets[0]
	bestScore := assetScore(best)
	for i := 1; i < len(assets); i++ {
		if score := assetScore(&assets[i]); score > bestScore {
			best = &assets[i]
			bestScore = score
		}
	}
	return best
}

func assetScore(a *core.Asset) int {
	score := 0
	if a.Metadata.Primary {
		score += 2
	}
	if a.Metadata.Background == core.BackgroundLight {
		score++
	}
	return score
}

// deepLink encodes the asset's defining tuple into query parameters.
func deepLink(asset *core.Asset, baseURL string) string {
	if asset.Category == core.CategoryDocument {
		return asset.URL
	}

	variant := string(asset.Metadata.ColorVariant)
	if variant == "" {
		variant = string(asset.Metadata.Layout)
	}

	params := url.Values{}
	params.Set("product", asset.Brand)
	params.Set("variant", variant)
	params.Set("background", string(asset.Metadata.Background))
	if asset.FileType != "" {
		params.Set("format", asset.FileType)
	}
	return baseURL + "?" + params.Encode()
}

func matchMessage(asset *core.Asset, intent query.Intent) string {
	name := resolve.DisplayName(asset.Brand)
	variant := string(asset.Metadata.ColorVariant)
	if variant == "" {
		variant = string(asset.Metadata.Layout)
	}

	switch intent.Type {
	case query.IntentSpecificProduct:
		if asset.Category == core.CategoryDocument {
			return fmt.Sprintf("Here's your %s document:", name)
		}
		return fmt.Sprintf("Here's your %s %s logo:", name, variant)
	case query.IntentSpecificAsset:
		return fmt.Sprintf("Closest match: %s %s logo.", name, variant)
	case query.IntentBrowseCategory:
		return fmt.Sprintf("Top pick from the catalog: %s %s logo.", name, variant)
	default:
		return fmt.Sprintf("Best match: %s %s logo.", name, variant)
	}
}

func notFoundMessage(intent query.Intent) string {
	if intent.Ambiguous() {
		return "Several products match that name. Try a more specific one."
	}
	if intent.Type == query.IntentSpecificProduct && intent.Product != "" {
		return fmt.Sprintf("No %s asset matched those constraints.", resolve.DisplayName(intent.Product))
	}
	return "No matching brand asset found."
}
