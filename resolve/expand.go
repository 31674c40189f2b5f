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


package resolve

import (
	"strings"

	"github.com/poiesic/brandsearch/core"
)

// displayNames maps product slugs to their human names. Slugs not
// listed fall back to simple capitalization.
var displayNames = map[string]string{
	"ciq":          "CIQ",
	"fuzzball":     "Fuzzball",
	"warewulf":     "Warewulf",
	"apptainer":    "Apptainer",
	"ascender":     "Ascender",
	"bridge":       "Bridge",
	"support":      "Support",
	"rlc":          "RLC",
	"rlc-ai":       "RLC-AI",
	"rlc-hardened": "RLC-Hardened",
	"rlc-lts":      "RLC-LTS",
}

// usageContexts describes where each layout is typically used.
var usageContexts = map[string]string{
	string(core.LayoutHorizontal): "headers, hero sections, wide placements",
	string(core.LayoutVertical):   "square placements, social media",
	string(core.LayoutSymbol):     "favicons, app icons, small spaces",
}

// Expand turns raw catalog records into their full canonical asset sets.
//
// A record with an explicit background yields exactly one asset. A logo
// record without one yields a light/dark pair sharing the same artwork.
// Documents carry no background axis and yield a single asset. When a
// record is marked primary and expands into a pair, the light-mode asset
// carries the primary flag; a single-asset expansion carries it directly.
func Expand(records []core.RawAssetRecord) []core.Asset {
	var assets []core.Asset
	for i := range records {
		assets = append(assets, expandRecord(&records[i])...)
	}
	return assets
}

func expandRecord(record *core.RawAssetRecord) []core.Asset {
	if record.Category == core.CategoryDocument {
		return []core.Asset{documentAsset(record)}
	}

	if record.Background != "" {
		return []core.Asset{logoAsset(record, record.Background, record.Primary)}
	}

	return []core.Asset{
		logoAsset(record, core.BackgroundLight, record.Primary),
		logoAsset(record, core.BackgroundDark, false),
	}
}

func logoAsset(record *core.RawAssetRecord, background core.BackgroundMode, primary bool) core.Asset {
	variant := record.VariantKey()
	return core.Asset{
		ID:           core.AssetID(record.Product, variant, background),
		Title:        logoTitle(record, background),
		URL:          record.BaseRef,
		ThumbnailURL: record.Thumbnail,
		FileType:     record.FileType,
		Brand:        record.Product,
		Category:     record.Category,
		Metadata: core.AssetMetadata{
			Layout:       record.Layout,
			ColorVariant: record.Variant,
			Background:   background,
			Primary:      primary,
			UsageContext: usageContexts[string(record.Layout)],
		},
	}
}

func documentAsset(record *core.RawAssetRecord) core.Asset {
	docType := record.DocType
	if docType == "" {
		docType = "document"
	}
	docSlug := strings.ReplaceAll(docType, " ", "-")
	return core.Asset{
		ID:           record.Product + "-doc-" + docSlug,
		Title:        DisplayName(record.Product) + " " + titleWords(docType),
		URL:          record.BaseRef,
		ThumbnailURL: record.Thumbnail,
		FileType:     record.FileType,
		Brand:        record.Product,
		Category:     core.CategoryDocument,
		Metadata: core.AssetMetadata{
			Primary: record.Primary,
		},
	}
}

func logoTitle(record *core.RawAssetRecord, background core.BackgroundMode) string {
	name := DisplayName(record.Product)
	variant := record.VariantKey()
	return name + " " + variant + " logo (" + string(background) + " background)"
}

// DisplayName returns the human-readable name for a product slug.
func DisplayName(product string) string {
	if name, ok := displayNames[product]; ok {
		return name
	}
	if product == "" {
		return ""
	}
	return strings.ToUpper(product[:1]) + product[1:]
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
