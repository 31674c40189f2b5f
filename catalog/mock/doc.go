// Package mock provides a test double implementation of catalog.Source.
//
// The mock allows tests to run without a real inventory document or any
// network access, and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with the built-in fixture catalog
//	source := mock.NewMockSource()
//	records, err := source.FetchAll(ctx)
//
//	// Custom behavior injection
//	source.FetchProductFunc = func(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
//	    return nil, catalog.ErrDataSourceUnavailable
//	}
//
//	// Check call counts
//	count := source.CallCount()
//
// The default fixture covers product logos with and without explicit
// backgrounds, company-brand color variants, and a document, so
// expansion and filtering paths are all reachable from it.
package mock
