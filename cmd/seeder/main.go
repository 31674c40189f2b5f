package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	badgerstore "github.com/poiesic/brandsearch/catalog/badger"
	"github.com/poiesic/brandsearch/catalog/inventory"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// Seeds a BadgerDB catalog cache from an inventory document so the
// engine can serve queries without touching the network.
func main() {
	dbPath := flag.String("db", "./catalog_db", "path to the BadgerDB catalog cache")
	inventoryFile := flag.String("inventory", "", "path to a local asset-inventory JSON file")
	inventoryURL := flag.String("url", inventory.DefaultURL, "remote asset-inventory URL")
	flag.Parse()

	var opts []inventory.Option
	if *inventoryFile != "" {
		opts = append(opts, inventory.WithLocalFile(*inventoryFile))
	}
	if *inventoryURL != "" {
		opts = append(opts, inventory.WithRemoteURL(*inventoryURL))
	}

	source, err := inventory.NewSource(opts...)
	if err != nil {
		slog.Error("failed to create inventory source", "err", err)
		os.Exit(1)
	}

	records, err := source.FetchAll(context.Background())
	if err != nil {
		slog.Error("failed to fetch inventory", "err", err)
		os.Exit(1)
	}

	backend, err := badgerstore.OpenBackend(*dbPath, false)
	if err != nil {
		slog.Error("failed to open catalog cache", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	store := badgerstore.NewStore(backend)
	if err := store.ReplaceAll(context.Background(), records); err != nil {
		slog.Error("failed to seed catalog cache", "err", err)
		os.Exit(1)
	}

	slog.Info("seeded catalog cache", "records", len(records), "path", *dbPath)
}
