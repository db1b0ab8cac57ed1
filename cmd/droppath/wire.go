package main

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/droppath/internal/adapters/driven/config/file"
	"github.com/custodia-labs/droppath/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/droppath/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/droppath/internal/adapters/driving/cli"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
	"github.com/custodia-labs/droppath/internal/core/services"
	"github.com/custodia-labs/droppath/internal/logger"
)

// build creates the services for one command run.
func build(opts cli.Options) (*cli.Services, func(), error) {
	if opts.Memory {
		logger.Debug("using in-memory stores")
		return newServices(memory.NewConfigStore(), memory.NewTargetStore(), memory.NewDropStore()), func() {}, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("locating config directory: %w", err)
		}
		dir = d
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
	}
	return newServices(configStore, store.TargetStore(), store.DropStore()), cleanup, nil
}

func newServices(config driven.ConfigStore, targets driven.TargetStore, drops driven.DropStore) *cli.Services {
	settings := services.NewSettingsService(config)
	targetService := services.NewTargetService(targets, settings)
	return &cli.Services{
		Drop:     services.NewDropService(targetService, drops, settings),
		Target:   targetService,
		Settings: settings,
	}
}
