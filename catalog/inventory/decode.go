package inventory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/core"
)

// companyBrand is the product slug whose logos are company-brand marks
// with color-treatment variants rather than product logos.
const companyBrand = "ciq"

// inventoryDocument mirrors the published asset-inventory JSON layout:
// a two-level map of product slug to asset key to entry.
type inventoryDocument struct {
	Assets map[string]map[string]assetEntry `json:"assets"`
}

type assetEntry struct {
	URL        string   `json:"url"`
	Filename   string   `json:"filename"`
	Background string   `json:"background"`
	Color      string   `json:"color"`
	Layout     string   `json:"layout"`
	Type       string   `json:"type"`
	DocType    string   `json:"doc_type"`
	Ext        string   `json:"ext"`
	Size       string   `json:"size"`
	Thumbnail  string   `json:"thumbnail"`
	Tags       []string `json:"tags"`
	Primary    bool     `json:"primary"`
}

// decodeRecords parses an inventory document into raw catalog records.
// Entries that fail validation are skipped and logged; a document that
// cannot be parsed at all is a source failure.
func decodeRecords(data []byte, logger *slog.Logger) ([]core.RawAssetRecord, error) {
	var doc inventoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding inventory: %w", catalog.ErrDataSourceUnavailable, err)
	}

	// Map iteration order is random; sort for deterministic output.
	products := make([]string, 0, len(doc.Assets))
	for product := range doc.Assets {
		products = append(products, product)
	}
	sort.Strings(products)

	var records []core.RawAssetRecord
	for _, product := range products {
		entries := doc.Assets[product]
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			record := toRecord(product, entries[key])
			if err := core.ValidateRawRecord(&record); err != nil {
				logger.Warn("skipping invalid inventory entry",
					"product", product,
					"key", key,
					"error", err)
				continue
			}
			records = append(records, record)
		}
	}
	return records, nil
}

// toRecord maps one inventory entry onto the raw record model.
func toRecord(product string, entry assetEntry) core.RawAssetRecord {
	record := core.RawAssetRecord{
		Product:   strings.ToLower(strings.TrimSpace(product)),
		Filename:  entry.Filename,
		BaseRef:   entry.URL,
		Thumbnail: entry.Thumbnail,
		Tags:      entry.Tags,
		Primary:   entry.Primary || hasTag(entry.Tags, "primary"),
	}

	if entry.Type == "document" {
		record.Category = core.CategoryDocument
		record.DocType = entry.DocType
		record.FileType = fileType(entry.Ext, entry.Filename, "pdf")
		return record
	}

	switch entry.Layout {
	case "onecolor", "twocolor", "green":
		record.Variant = core.ColorVariant(entry.Layout)
	case "icon", "square", "symbol":
		record.Layout = core.LayoutSymbol
	default:
		record.Layout = core.Layout(entry.Layout)
	}

	switch entry.Background {
	case "light":
		record.Background = core.BackgroundLight
	case "dark":
		record.Background = core.BackgroundDark
	default:
		// "any" and unset both mean background-agnostic artwork.
	}

	if record.Product == companyBrand {
		record.Category = core.CategoryCompanyLogo
	} else {
		record.Category = core.CategoryProductLogo
	}
	record.FileType = fileType(entry.Ext, entry.Filename, "png")
	return record
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}

// fileType resolves the file extension from the explicit field, the
// filename, or a fallback, in that order.
func fileType(ext, filename, fallback string) string {
	if ext != "" {
		return strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return strings.ToLower(filename[idx+1:])
	}
	return fallback
}
