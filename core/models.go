package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique 64-bit identifier derived from content.
// It is used for catalog cache keys, not for canonical asset IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Layout describes the geometry of a product logo.
type Layout string

const (
	// LayoutHorizontal is the wide lockup used in headers.
	LayoutHorizontal Layout = "horizontal"
	// LayoutVertical is the tall, stacked lockup.
	LayoutVertical Layout = "vertical"
	// LayoutSymbol is the square mark used for favicons and app icons.
	LayoutSymbol Layout = "symbol"
)

// BackgroundMode identifies the background a rendered asset is optimized for.
type BackgroundMode string

const (
	BackgroundLight BackgroundMode = "light"
	BackgroundDark  BackgroundMode = "dark"
)

// ColorVariant describes a company-brand color treatment.
// Product logos use Layout instead; the two axes are mutually exclusive.
type ColorVariant string

const (
	VariantOneColor ColorVariant = "onecolor"
	VariantTwoColor ColorVariant = "twocolor"
	VariantGreen    ColorVariant = "green"
)

// Category classifies a canonical asset.
type Category string

const (
	CategoryProductLogo Category = "product-logo"
	CategoryCompanyLogo Category = "company-logo"
	CategoryDocument    Category = "document"
)

// RawAssetRecord is a source-of-truth catalog entry for one asset file.
//
// A record carries either a Layout (product logos) or a ColorVariant
// (company-brand logos), never both. Background is the explicit background
// axis; when empty the record expands into both light and dark canonical
// assets. Documents carry neither axis and expand into a single asset.
type RawAssetRecord struct {
	Product    string
	Category   Category
	Layout     Layout
	Variant    ColorVariant
	Background BackgroundMode // empty means both modes
	Filename   string
	BaseRef    string // background-agnostic file reference (URL or path)
	Thumbnail  string
	FileType   string
	DocType    string // documents only: "brief", "datasheet", ...
	Tags       []string
	Primary    bool
}

// VariantKey returns the layout-or-colorVariant axis value for the record.
func (r *RawAssetRecord) VariantKey() string {
	if r.Variant != "" {
		return string(r.Variant)
	}
	if r.Layout != "" {
		return string(r.Layout)
	}
	if r.Category == CategoryDocument {
		return "document"
	}
	return ""
}

// AssetMetadata holds the variant axes of a canonical asset.
type AssetMetadata struct {
	Layout       Layout
	ColorVariant ColorVariant
	Background   BackgroundMode
	Primary      bool
	UsageContext string
}

// Asset is the canonical, per-variant unit returned by the engine.
// Its ID is deterministically derived from (brand, variant, background),
// see AssetID.
type Asset struct {
	ID           string
	Title        string
	URL          string
	ThumbnailURL string
	FileType     string
	Brand        string
	Category     Category
	Metadata     AssetMetadata
}

// AssetID derives the canonical asset identifier from its defining tuple.
// The same tuple always yields the same ID, so IDs round-trip through
// deep-link query parameters. Format: "<brand>-<variant>-<background>".
func AssetID(brand, variant string, background BackgroundMode) string {
	return brand + "-" + variant + "-" + string(background)
}

// ParseAssetID splits an asset ID back into its defining tuple.
// Brands may themselves contain hyphens ("rlc-lts"), so the variant and
// background are taken from the right.
func ParseAssetID(id string) (brand, variant string, background BackgroundMode, err error) {
	parts := strings.Split(id, "-")
	if len(parts) < 3 {
		return "", "", "", ErrInvalidAssetID
	}
	background = BackgroundMode(parts[len(parts)-1])
	if background != BackgroundLight && background != BackgroundDark {
		return "", "", "", ErrInvalidAssetID
	}
	variant = parts[len(parts)-2]
	brand = strings.Join(parts[:len(parts)-2], "-")
	if brand == "" || variant == "" {
		return "", "", "", ErrInvalidAssetID
	}
	return brand, variant, background, nil
}
