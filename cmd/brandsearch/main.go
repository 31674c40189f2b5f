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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/brandsearch"
	"github.com/poiesic/brandsearch/catalog"
	badgerstore "github.com/poiesic/brandsearch/catalog/badger"
	"github.com/poiesic/brandsearch/catalog/inventory"
	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/palette"
	"github.com/poiesic/brandsearch/resolve"
)

func main() {
	sourceFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "inventory-file",
			Usage: "Path to a local asset-inventory JSON file",
		},
		&cli.StringFlag{
			Name:  "inventory-url",
			Usage: "Remote asset-inventory URL",
			Value: inventory.DefaultURL,
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to a BadgerDB catalog cache directory",
		},
		&cli.IntFlag{
			Name:  "max-retries",
			Usage: "Maximum retry attempts for catalog fetches",
			Value: 3,
		},
		&cli.DurationFlag{
			Name:  "retry-delay",
			Usage: "Base delay for exponential backoff",
			Value: 1 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request catalog fetch timeout",
			Value: 15 * time.Second,
		},
	}

	filterFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "all-variants",
			Aliases: []string{"a"},
			Usage:   "Show every variant and background combination",
		},
		&cli.StringFlag{
			Name:  "brand",
			Usage: "Filter by brand slug",
		},
		&cli.StringFlag{
			Name:  "file-type",
			Usage: "Filter by file type (svg, png, pdf)",
		},
		&cli.StringFlag{
			Name:  "background",
			Usage: "Filter by background mode (light, dark)",
		},
		&cli.StringFlag{
			Name:  "layout",
			Usage: "Filter by layout (horizontal, vertical, symbol)",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "Filter by category (product-logo, company-logo, document)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit the raw view as JSON",
		},
	}

	app := &cli.App{
		Name:  "brandsearch",
		Usage: "Search and resolve brand assets from free-text queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Resolve a query into a listing of matching assets",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     append(append([]cli.Flag{}, sourceFlags...), filterFlags...),
			},
			{
				Name:      "link",
				Usage:     "Resolve a query into a single best-match deep link",
				ArgsUsage: "<query>",
				Action:    linkCommand,
				Flags:     append(append([]cli.Flag{}, sourceFlags...), filterFlags...),
			},
			{
				Name:   "sync",
				Usage:  "Refresh the local catalog cache from the inventory source",
				Action: syncCommand,
				Flags:  sourceFlags,
			},
			{
				Name:      "palette",
				Usage:     "Show the brand color palette, or one family of it",
				ArgsUsage: "[family]",
				Action:    paletteCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "palette-file",
						Usage: "Path to a local palette JSON file",
					},
					&cli.StringFlag{
						Name:  "palette-url",
						Usage: "Remote palette URL",
						Value: palette.DefaultURL,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit the palette as JSON",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	view, err := engine.Listing(context.Background(), buildRequest(c))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(view)
	}

	fmt.Printf("%d assets (confidence: %s)\n", view.Total, view.Confidence)
	for _, asset := range view.Assets {
		fmt.Printf("  %-40s %s\n", asset.Title, asset.URL)
	}
	if view.Recommendation != "" {
		fmt.Println(view.Recommendation)
	}
	return nil
}

func linkCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	view, err := engine.DirectMatch(context.Background(), buildRequest(c))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(view)
	}

	fmt.Println(view.Message)
	if view.DeepLinkURL != "" {
		fmt.Println(view.DeepLinkURL)
	}
	return nil
}

func syncCommand(c *cli.Context) error {
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("sync requires --db")
	}

	upstream, err := buildInventorySource(c)
	if err != nil {
		return err
	}

	backend, err := badgerstore.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open catalog cache: %w", err)
	}
	defer backend.Close()

	cached, err := catalog.NewCachedSource(upstream, badgerstore.NewStore(backend))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	count, err := cached.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}
	fmt.Printf("Synced %d records into %s\n", count, dbPath)
	return nil
}

func paletteCommand(c *cli.Context) error {
	var opts []palette.Option
	if path := c.String("palette-file"); path != "" {
		opts = append(opts, palette.WithLocalFile(path))
	}
	if url := c.String("palette-url"); url != "" {
		opts = append(opts, palette.WithRemoteURL(url))
	}

	pal, err := palette.Load(context.Background(), palette.NewSource(opts...))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(pal)
	}

	if family := c.Args().First(); family != "" {
		shades, ok := pal.Family(family)
		if !ok {
			return fmt.Errorf("unknown color family %q (have: %s)", family, strings.Join(pal.FamilyNames(), ", "))
		}
		for _, shade := range shades {
			fmt.Printf("  %-6s %-36s %s\n", shade.Shade, shade.Property, shade.Value)
		}
		return nil
	}

	fmt.Println(pal.Overview())
	return nil
}

// buildEngine assembles the engine behind the CLI flags: an inventory
// source, optionally fronted by a BadgerDB cache when --db is set.
func buildEngine(c *cli.Context) (*brandsearch.Engine, func(), error) {
	source, err := buildInventorySource(c)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var catalogSource catalog.Source = source
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badgerstore.OpenBackend(dbPath, false)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open catalog cache: %w", err)
		}
		cached, err := catalog.NewCachedSource(source, badgerstore.NewStore(backend))
		if err != nil {
			backend.Close()
			return nil, nil, err
		}
		catalogSource = cached
		cleanup = func() { backend.Close() }
	}

	engine, err := brandsearch.New(catalogSource,
		brandsearch.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		brandsearch.WithFetchTimeout(c.Duration("timeout")),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	engineCleanup := func() {
		engine.Close()
		cleanup()
	}
	return engine, engineCleanup, nil
}

func buildInventorySource(c *cli.Context) (*inventory.Source, error) {
	var opts []inventory.Option
	if path := c.String("inventory-file"); path != "" {
		opts = append(opts, inventory.WithLocalFile(path))
	}
	if url := c.String("inventory-url"); url != "" {
		opts = append(opts, inventory.WithRemoteURL(url))
	}
	return inventory.NewSource(opts...)
}

func buildRequest(c *cli.Context) brandsearch.Request {
	return brandsearch.Request{
		Query: strings.Join(c.Args().Slice(), " "),
		Filters: resolve.Filters{
			Brand:      c.String("brand"),
			FileType:   c.String("file-type"),
			Background: core.BackgroundMode(c.String("background")),
			Layout:     core.Layout(c.String("layout")),
			Category:   core.Category(c.String("category")),
		},
		ShowAllVariants: c.Bool("all-variants"),
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
