package palette

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// DefaultURL is the published location of the palette document.
const DefaultURL = "https://raw.githubusercontent.com/b-ciq/brand-assets/main/assets/global/colors/color-palette-dark.json"

const defaultHTTPTimeout = 10 * time.Second

// ErrPaletteUnavailable indicates the palette document could not be read.
var ErrPaletteUnavailable = errors.New("palette document unavailable")

// Source reads the palette document from a local file or a remote URL.
// A configured local path is tried first with the URL as fallback.
type Source struct {
	path   string
	url    string
	client *http.Client
	logger *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLocalFile sets a local palette file, tried before any remote URL.
func WithLocalFile(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithRemoteURL sets the remote palette URL.
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

// NewSource creates a palette source. Without options the published
// DefaultURL is used.
func NewSource(opts ...Option) *Source {
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
	return s
}

// Load reads and parses the palette document.
func Load(ctx context.Context, source *Source) (*Palette, error) {
	data, err := source.load(ctx)
	if err != nil {
		return nil, err
	}

	var palette Palette
	if err := json.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrPaletteUnavailable, err)
	}
	return &palette, nil
}

func (s *Source) load(ctx context.Context) ([]byte, error) {
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err == nil {
			return data, nil
		}
		if s.url == "" {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrPaletteUnavailable, s.path, err)
		}
		s.logger.Warn("local palette unavailable, falling back to remote",
			"path", s.path,
			"error", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaletteUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrPaletteUnavailable, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: status %d", ErrPaletteUnavailable, s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrPaletteUnavailable, s.url, err)
	}
	return data, nil
}
