// Command samediff compares documents by TF-IDF cosine similarity.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/samediff/internal/adapters/driven/config/file"
	"github.com/custodia-labs/samediff/internal/adapters/driven/samples"
	"github.com/custodia-labs/samediff/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/samediff/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/samediff/internal/adapters/driving/cli"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
	"github.com/custodia-labs/samediff/internal/core/services"
	"github.com/custodia-labs/samediff/internal/extractors"
)

// version is set at build time via ldflags.
var version = "dev"

// homeEnv overrides the config and data directory.
const homeEnv = "SAMEDIFF_HOME"

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	home := os.Getenv(homeEnv)

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	dataDir := configStore.GetString(services.KeyDataDir)
	if dataDir == "" && home != "" {
		dataDir = filepath.Join(home, "data")
	}

	var reports driven.ReportStore
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: report storage unavailable, reports will not be kept: %v\n", err)
		reports = memory.NewReportStore()
	} else {
		defer store.Close()
		reports = store.ReportStore()
	}

	catalog, err := loadCatalog(configStore.GetString(services.KeySamplesCatalog))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading samples: %v\n", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore)
	sampleService := services.NewSampleService(catalog)

	cli.SetServices(cli.Services{
		Comparison: services.NewComparisonService(extractors.NewDefaultRegistry(), reports, sampleService, settingsService),
		Samples:    sampleService,
		Settings:   settingsService,
		Export:     services.NewExportService(),
	})
	cli.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra reports the error itself.
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// loadCatalog opens the configured sample catalog, or the bundled one.
func loadCatalog(path string) (*samples.Catalog, error) {
	if path == "" {
		return samples.NewBundledCatalog()
	}
	return samples.NewFileCatalog(path)
}
