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


package inventory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/poiesic/brandsearch/catalog"
	"github.com/poiesic/brandsearch/core"
)

// DefaultURL is the published location of the asset inventory document.
const DefaultURL = "https://raw.githubusercontent.com/b-ciq/brand-assets/main/metadata/asset-inventory.json"

const defaultHTTPTimeout = 10 * time.Second

// Source reads the asset inventory document and exposes it as raw
// catalog records.
type Source struct {
	path   string
	url    string
	client *http.Client
	logger *slog.Logger
}

var _ catalog.Source = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithLocalFile sets a local inventory file, tried before any remote URL.
func WithLocalFile(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithRemoteURL sets the remote inventory URL.
func WithRemoteURL(url string) Option {
	return func(s *Source) {
		s.url = url
	}
}

// WithHTTPClient sets a custom HTTP client for remote fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// NewSource creates an inventory source. At least one location must be
// configured; without options the published DefaultURL is used.
func NewSource(opts ...Option) (*Source, error) {
	s := &Source{
		client: &http.Client{Timeout: defaultHTTPTimeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.path == "" && s.url == "" {
		s.url = DefaultURL
	}
	return s, nil
}

// FetchAll returns every record in the inventory document.
func (s *Source) FetchAll(ctx context.Context) ([]core.RawAssetRecord, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecords(data, s.logger)
}

// FetchProduct returns the records for a single product.
func (s *Source) FetchProduct(ctx context.Context, product string) ([]core.RawAssetRecord, error) {
	records, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []core.RawAssetRecord
	for _, record := range records {
		if record.Product == product {
			matched = append(matched, record)
		}
	}
	if len(matched) == 0 {
		return nil, catalog.ErrProductNotFound
	}
	return matched, nil
}

// load reads the raw inventory document, local file first when
// configured, then the remote URL.
func (s *Source) load(ctx context.Context) ([]byte, error) {
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err == nil {
			return data, nil
		}
		if s.url == "" {
			return nil, fmt.Errorf("%w: reading %s: %w", catalog.ErrDataSourceUnavailable, s.path, err)
		}
		s.logger.Warn("local inventory unavailable, falling back to remote",
			"path", s.path,
			"error", err)
	}
	return s.fetchRemote(ctx)
}

func (s *Source) fetchRemote(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrDataSourceUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", catalog.ErrDataSourceUnavailable, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: status %d", catalog.ErrDataSourceUnavailable, s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", catalog.ErrDataSourceUnavailable, s.url, err)
	}
	return data, nil
}
