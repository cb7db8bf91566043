// Command tavern searches hh.ru vacancies and keeps the ones you like.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/tavern/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tavern/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/tavern/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tavern/internal/adapters/driving/cli"
	"github.com/custodia-labs/tavern/internal/connectors/hh"
	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
	"github.com/custodia-labs/tavern/internal/core/services"
	"github.com/custodia-labs/tavern/internal/logger"
	hhnormaliser "github.com/custodia-labs/tavern/internal/normalisers/hh"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetInitializer(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires configuration, the store backend and the hh.ru source.
func buildServices(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if opts.StorePath != "" {
		settings.StorePath = opts.StorePath
	}
	if settings.UserAgent == "" {
		settings.UserAgent = fmt.Sprintf("tavern/%s (https://github.com/custodia-labs/tavern)", version)
	}

	store, changes, closeStore, err := openStore(settings)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("store backend: %s", settings.Backend)

	source := hh.New(hh.ConfigFromSettings(settings))
	listingService := services.NewListingService(source, hhnormaliser.New(), store)

	cleanup := func() {
		if err := source.Close(); err != nil {
			logger.Warn("close source: %v", err)
		}
		if closeStore != nil {
			if err := closeStore(); err != nil {
				logger.Warn("close store: %v", err)
			}
		}
	}

	return &cli.Services{
		Listing:  listingService,
		Settings: settingsService,
		Changes:  changes,
	}, cleanup, nil
}

// openStore builds the configured listing store. Only the JSON backend
// can report changes; the returned closer may be nil.
//
//nolint:ireturn // the store is chosen at runtime
func openStore(settings domain.Settings) (driven.ListingStore, driving.ChangeNotifier, func() error, error) {
	switch settings.Backend {
	case domain.StorageBackendSQLite:
		store, err := sqlite.NewStore(sqlitePath(settings.StorePath))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil, store.Close, nil

	case domain.StorageBackendJSON:
		store := jsonfile.NewStore(settings.StorePath)
		return store, store, nil, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: storage backend %q", domain.ErrUnsupportedType, settings.Backend)
	}
}

// sqlitePath swaps a .json store path for its .db sibling.
func sqlitePath(path string) string {
	if path == domain.DefaultStorePath {
		return sqlite.DefaultFileName
	}
	if filepath.Ext(path) == ".json" {
		return strings.TrimSuffix(path, ".json") + ".db"
	}
	return path
}
