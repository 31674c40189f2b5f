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


package brandsearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/channel"
	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/palette"
	"github.com/poiesic/brandsearch/query"
	"github.com/poiesic/brandsearch/resolve"
)

// DefaultBaseURL is the deep-link endpoint encoded into direct-match views.
const DefaultBaseURL = "https://brand.ciq.com/assets"

// Engine is the main entry point. It wires the pattern registry, intent
// classifier, catalog repository, and resolution pipeline, and derives
// both channel views from the same canonical result so they never
// diverge for the same query and filters.
type Engine struct {
	registry   *query.Registry
	classifier *query.Classifier
	repository *catalog.Repository
	resolver   *resolve.Engine
	palettes   *palette.Source
	baseURL    string
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	registry      *query.Registry
	paletteSource *palette.Source
	logger        *slog.Logger
	baseURL       string
	timeout       time.Duration
	maxAttempts   int
	retryDelay    time.Duration
	poolSize      int
}

// WithRegistry overrides the default product pattern registry.
func WithRegistry(registry *query.Registry) Option {
	return func(o *engineOptions) {
		o.registry = registry
	}
}

// WithPaletteSource sets the palette document source.
func WithPaletteSource(source *palette.Source) Option {
	return func(o *engineOptions) {
		o.paletteSource = source
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithBaseURL sets the deep-link base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *engineOptions) {
		o.baseURL = baseURL
	}
}

// WithFetchTimeout bounds each catalog fetch. Zero means no bound
// beyond the caller's context.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(o *engineOptions) {
		o.timeout = timeout
	}
}

// WithRetry configures catalog fetch retries.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(o *engineOptions) {
		o.maxAttempts = maxAttempts
		o.retryDelay = baseDelay
	}
}

// WithPoolSize sets the catalog fetch worker pool size.
func WithPoolSize(size int) Option {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// New creates an engine over a catalog source.
func New(source catalog.Source, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, catalog.ErrSourceRequired
	}

	options := &engineOptions{
		logger:  slog.Default(),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(options)
	}

	registry := options.registry
	if registry == nil {
		registry = query.DefaultRegistry()
	}

	classifier, err := query.NewClassifier(registry)
	if err != nil {
		return nil, err
	}

	repoOpts := []catalog.RepositoryOption{catalog.WithLogger(options.logger)}
	if options.maxAttempts > 0 {
		repoOpts = append(repoOpts, catalog.WithRetry(options.maxAttempts, options.retryDelay))
	}
	if options.poolSize > 0 {
		repoOpts = append(repoOpts, catalog.WithPoolSize(options.poolSize))
	}
	repository, err := catalog.NewRepository(source, repoOpts...)
	if err != nil {
		return nil, err
	}

	paletteSource := options.paletteSource
	if paletteSource == nil {
		paletteSource = palette.NewSource(palette.WithLogger(options.logger))
	}

	return &Engine{
		registry:   registry,
		classifier: classifier,
		repository: repository,
		resolver:   resolve.NewEngine(resolve.WithLogger(options.logger)),
		palettes:   paletteSource,
		baseURL:    options.baseURL,
		timeout:    options.timeout,
		logger:     options.logger,
	}, nil
}

// Close releases the engine's resources.
func (e *Engine) Close() {
	e.repository.Close()
}

// Registry returns the engine's pattern registry.
func (e *Engine) Registry() *query.Registry {
	return e.registry
}

// Request is one search invocation.
type Request struct {
	Query           string
	Filters         resolve.Filters
	ShowAllVariants bool
}

// Result is the canonical outcome both channel views derive from.
type Result struct {
	Intent query.Intent
	Assets []core.Asset
}

// Search classifies the query, fetches the catalog slice the intent
// calls for, and resolves it into canonical assets. Ordinary "no
// result" cases come back as an empty asset list, never an error; only
// infrastructure failures propagate.
func (e *Engine) Search(ctx context.Context, req Request) (*Result, error) {
	intent := e.classifier.Classify(req.Query)

	// Color queries are answered from the palette, not the catalog.
	if intent.Type == query.IntentColorQuery {
		return &Result{Intent: intent}, nil
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	records, err := e.repository.Fetch(ctx, fetchSet(intent))
	if err != nil {
		return nil, err
	}

	monitor := resolve.NewLogMonitor(e.logger)
	assets := e.resolver.ResolveWithMonitor(records, intent, req.Filters, req.ShowAllVariants, monitor)
	return &Result{Intent: intent, Assets: assets}, nil
}

// Listing runs Search and adapts the result into the listing view.
func (e *Engine) Listing(ctx context.Context, req Request) (*channel.ListingView, error) {
	result, err := e.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return channel.ToListing(result.Assets, result.Intent), nil
}

// DirectMatch runs Search and adapts the result into the single
// best-match view.
func (e *Engine) DirectMatch(ctx context.Context, req Request) (*channel.DirectMatchView, error) {
	result, err := e.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return channel.ToDirectMatch(result.Assets, result.Intent, e.baseURL), nil
}

// Palette loads the brand color palette.
func (e *Engine) Palette(ctx context.Context) (*palette.Palette, error) {
	return palette.Load(ctx, e.palettes)
}

// fetchSet maps an intent to the products worth fetching. An
// unambiguous product match narrows the fetch; a tied set fetches all
// candidates; everything else browses the full catalog.
func fetchSet(intent query.Intent) []string {
	if intent.Type == query.IntentSpecificProduct {
		if intent.Product != "" {
			return []string{intent.Product}
		}
		if len(intent.Products) > 0 {
			return intent.Products
		}
	}
	return nil
}
