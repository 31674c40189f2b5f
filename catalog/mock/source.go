package mock

import (
	"context"
	"sync"

	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/core"
)

// MockSource is a test double for catalog.Source.
// It allows custom behavior injection via function fields.
type MockSource struct {
	// FetchProductFunc is called by FetchProduct if set.
	// If nil, serves from the fixture records.
	FetchProductFunc func(ctx context.Context, product string) ([]core.RawAssetRecord, error)

	// FetchAllFunc is called by FetchAll if set.
	// If nil, serves from the fixture records.
	FetchAllFunc func(ctx context.Context) ([]core.RawAssetRecord, error)

	// Records is the fixture catalog served by the default behavior.
	Records []core.RawAssetRecord

	mu        sync.Mutex
	callCount int
}

var _ catalog.Source = (*MockSource)(nil)

// NewMockSource creates a mock source seeded with the fixture catalog.
func NewMockSource() *MockSource {
	return &MockSource{
		Records: FixtureRecords(),
	}
}

// FetchProduct serves records for one product from the fixtures.
func (m *MockSource) FetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	m.count()

	if m.FetchProductFunc != nil {
		return m.FetchProductFunc(ctx, product)
	}

	var matched []core.RawAssetRecord
	for _, record := range m.Records {
		if record.Product == product {
			matched = append(matched, record)
		}
	}
	if len(matched) == 0 {
		return nil, catalog.ErrProductNotFound
	}
	return matched, nil
}

// FetchAll serves the full fixture catalog.
func (m *MockSource) FetchAll(ctx context.Context) ([]core.RawAssetRecord, error) {
	m.count()

	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx)
	}
	return m.Records, nil
}

func (m *MockSource) count() {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
}

// CallCount returns the number of times any method was called.
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockSource) Reset() {
	m.mu.Lock()
	m.callCount = 0
	m.mu.Unlock()
	m.FetchProductFunc = nil
	m.FetchAllFunc = nil
}

// FixtureRecords returns a small but representative catalog.
func FixtureRecords() []core.RawAssetRecord {
	return []core.RawAssetRecord{
		{
			Product:  "fuzzball",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutHorizontal,
			Filename: "Fuzzball_logo_horizontal.svg",
			BaseRef:  "https://assets.example.com/fuzzball/Fuzzball_logo_horizontal.svg",
			FileType: "svg",
			Tags:     []string{"hero", "primary"},
			Primary:  true,
		},
		{
			Product:  "fuzzball",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutVertical,
			Filename: "Fuzzball_logo_vertical.svg",
			BaseRef:  "https://assets.example.com/fuzzball/Fuzzball_logo_vertical.svg",
			FileType: "svg",
		},
		{
			Product:    "fuzzball",
			Category:   core.CategoryProductLogo,
			Layout:     core.LayoutSymbol,
			Background: core.BackgroundDark,
			Filename:   "Fuzzball_icon_white.png",
			BaseRef:    "https://assets.example.com/fuzzball/Fuzzball_icon_white.png",
			FileType:   "png",
			Tags:       []string{"favicon"},
		},
		{
			Product:  "fuzzball",
			Category: core.CategoryDocument,
			Filename: "Fuzzball_Solution_Brief.pdf",
			BaseRef:  "https://assets.example.com/fuzzball/Fuzzball_Solution_Brief.pdf",
			FileType: "pdf",
			DocType:  "solution brief",
			Tags:     []string{"document"},
		},
		{
			Product:  "warewulf",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutHorizontal,
			Filename: "Warewulf_logo_horizontal.svg",
			BaseRef:  "https://assets.example.com/warewulf/Warewulf_logo_horizontal.svg",
			FileType: "svg",
			Primary:  true,
		},
		{
			Product:    "warewulf",
			Category:   core.CategoryProductLogo,
			Layout:     core.LayoutSymbol,
			Background: core.BackgroundLight,
			Filename:   "Warewulf_icon_black.png",
			BaseRef:    "https://assets.example.com/warewulf/Warewulf_icon_black.png",
			FileType:   "png",
		},
		{
			Product:  "apptainer",
			Category: core.CategoryProductLogo,
			Layout:   core.LayoutHorizontal,
			Filename: "Apptainer_logo_horizontal.svg",
			BaseRef:  "https://assets.example.com/apptainer/Apptainer_logo_horizontal.svg",
			FileType: "svg",
			Primary:  true,
		},
		{
			Product:  "ciq",
			Category: core.CategoryCompanyLogo,
			Variant:  core.VariantTwoColor,
			Filename: "CIQ_logo_twocolor.svg",
			BaseRef:  "https://assets.example.com/ciq/CIQ_logo_twocolor.svg",
			FileType: "svg",
			Primary:  true,
		},
		{
			Product:  "ciq",
			Category: core.CategoryCompanyLogo,
			Variant:  core.VariantOneColor,
			Filename: "CIQ_logo_onecolor.svg",
			BaseRef:  "https://assets.example.com/ciq/CIQ_logo_onecolor.svg",
			FileType: "svg",
		},
		{
			Product:    "ciq",
			Category:   core.CategoryCompanyLogo,
			Variant:    core.VariantGreen,
			Background: core.BackgroundLight,
			Filename:   "CIQ_logo_green.svg",
			BaseRef:    "https://assets.example.com/ciq/CIQ_logo_green.svg",
			FileType:   "svg",
		},
	}
}
