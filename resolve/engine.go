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
	"log/slog"

	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
)

// Filters are the caller-supplied predicates applied conjunctively
// after boundary enforcement. Zero values mean "not supplied".
type Filters struct {
	Brand      string
	FileType   string
	Background core.BackgroundMode
	Layout     core.Layout
	Category   core.Category
}

func (f Filters) pinsVariantAxis() bool {
	return f.Background != "" || f.Layout != ""
}

// Engine runs the resolution pipeline over raw catalog records.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a resolution engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve runs the full pipeline: expansion, product-boundary
// enforcement, explicit filters, intent parameters, and presentation
// defaults, in that order. An empty result is not an error.
func (e *Engine) Resolve(records []core.RawAssetRecord, intent query.Intent, filters Filters, showAll bool) []core.Asset {
	return e.ResolveWithMonitor(records, intent, filters, showAll, nil)
}

// ResolveWithMonitor runs Resolve with monitoring.
// The monitor receives callbacks after each pipeline stage.
func (e *Engine) ResolveWithMonitor(records []core.RawAssetRecord, intent query.Intent, filters Filters, showAll bool, monitor Monitor) []core.Asset {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(intent, len(records))

	assets := Expand(records)
	monitor.AfterExpansion(assets)

	// The boundary is a hard filter and comes before everything else.
	// Channels downstream must never re-derive or loosen it.
	if intent.Type == query.IntentSpecificProduct && intent.Product != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool {
			return a.Brand == intent.Product
		})
	}
	monitor.AfterBoundary(assets)

	assets = applyFilters(assets, filters)
	assets = applyParams(assets, intent.Params)
	monitor.AfterFilters(assets)

	// When the request pins a variant axis the caller asked for a
	// specific rendition, so the primary-only default would filter out
	// exactly what was requested.
	pinned := filters.pinsVariantAxis() ||
		intent.Params.Layout != "" || intent.Params.Background != "" || intent.Params.Variant != ""
	if !showAll && !pinned {
		assets = filterAssets(assets, func(a *core.Asset) bool {
			return a.Metadata.Primary
		})
	}

	e.logger.Debug("resolved assets",
		"intent", string(intent.Type),
		"product", intent.Product,
		"count", len(assets))
	monitor.Finish(assets)
	return assets
}

func applyFilters(assets []core.Asset, filters Filters) []core.Asset {
	if filters.Brand != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Brand == filters.Brand })
	}
	if filters.FileType != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.FileType == filters.FileType })
	}
	if filters.Background != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Metadata.Background == filters.Background })
	}
	if filters.Layout != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Metadata.Layout == filters.Layout })
	}
	if filters.Category != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Category == filters.Category })
	}
	return assets
}

// applyParams narrows results by the parameters extracted from the
// query text itself, e.g. "fuzzball icon dark" pins symbol layout and
// dark background.
func applyParams(assets []core.Asset, params query.Params) []core.Asset {
	if params.Layout != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Metadata.Layout == params.Layout })
	}
	if params.Background != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Metadata.Background == params.Background })
	}
	if params.Variant != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.Metadata.ColorVariant == params.Variant })
	}
	if params.FileType != "" {
		assets = filterAssets(assets, func(a *core.Asset) bool { return a.FileType == params.FileType })
	}
	return assets
}

func filterAssets(assets []core.Asset, keep func(*core.Asset) bool) []core.Asset {
	filtered := make([]core.Asset, 0, len(assets))
	for i := range assets {
		if keep(&assets[i]) {
			filtered = append(filtered, assets[i])
		}
	}
	return filtered
}
