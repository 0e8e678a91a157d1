// Command scopegen generates HVAC preventive-maintenance agreements from
// service intake workbooks.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	configfile "github.com/custodia-labs/scopegen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/intake/xlsx"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/render/docx"
	storagefile "github.com/custodia-labs/scopegen/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/scopegen/internal/adapters/driving/cli"
	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/core/services"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// homeEnv overrides the scopegen home directory (default ~/.scopegen).
const homeEnv = "SCOPEGEN_HOME"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	app, err := wire(ctx, os.Getenv(homeEnv))
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	defer app.Close()

	cli.SetVersion(version)
	cli.SetServices(app.agreement, app.settings)
	cli.SetOutputDir(app.outputDir)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// app holds the wired services and the resources to release on exit.
type app struct {
	agreement *services.AgreementService
	settings  *services.SettingsService
	outputDir string
	closers   []io.Closer
}

// Close releases storage resources.
func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// wire builds the services from the settings stored under home.
func wire(ctx context.Context, home string) (*app, error) {
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		home = filepath.Join(userHome, ".scopegen")
	}

	configStore, err := configfile.NewConfigStore(home)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	logger.Debug("config %s, backend %s", configStore.Path(), settings.Storage.Backend)

	a := &app{settings: settingsService, outputDir: settings.OutputDir}

	versions, history, err := a.openStorage(settings.Storage, home)
	if err != nil {
		return nil, err
	}

	writer := docx.NewWriter()
	allocator, err := services.NewVersionAllocator(ctx, versions, writer.Extension())
	if err != nil {
		a.Close()
		return nil, err
	}

	a.agreement = services.NewAgreementService(
		xlsx.NewReader(settings.IntakeSheet),
		writer,
		allocator,
		history,
		services.AgreementOptions{
			DefaultPropertyName: settings.DefaultPropertyName,
			Alphabetize:         settings.Document.Alphabetize,
			FontName:            settings.Document.FontName,
			FontSize:            settings.Document.FontSize,
		},
	)
	return a, nil
}

// openStorage returns the version store and generation log for the backend.
// A relative data dir is resolved against home.
func (a *app) openStorage(cfg domain.StorageSettings, home string) (driven.VersionStore, driven.GenerationLog, error) {
	dataDir := cfg.DataDir
	if dataDir != "" && !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(home, dataDir)
	}

	switch cfg.Backend {
	case domain.StorageSQLite:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		a.closers = append(a.closers, store)
		return store.VersionStore(), store.GenerationLog(), nil
	case domain.StorageMemory:
		return memory.NewVersionStore(), memory.NewGenerationLog(), nil
	default:
		// The JSON tracker has no history of its own; history lasts for the run.
		return storagefile.NewVersionStore(dataDir), memory.NewGenerationLog(), nil
	}
}
