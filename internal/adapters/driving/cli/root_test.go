package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/adapters/driven/samples"
	"github.com/custodia-labs/samediff/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/samediff/internal/core/services"
	"github.com/custodia-labs/samediff/internal/extractors"
	"github.com/custodia-labs/samediff/internal/logger"
)

// setupTestServices wires real services backed by in-memory stores and
// the bundled sample catalog.
func setupTestServices(t *testing.T) *memory.ReportStore {
	t.Helper()

	catalog, err := samples.NewBundledCatalog()
	require.NoError(t, err)

	reports := memory.NewReportStore()
	settings := services.NewSettingsService(memory.NewConfigStore())
	sampleSvc := services.NewSampleService(catalog)

	SetServices(Services{
		Comparison: services.NewComparisonService(extractors.NewDefaultRegistry(), reports, sampleSvc, settings),
		Samples:    sampleSvc,
		Settings:   settings,
		Export:     services.NewExportService(),
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return reports
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeFiles creates the named files in a temp dir and returns their paths.
func writeFiles(t *testing.T, files map[string]string, order ...string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(order))
	for _, name := range order {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0o600))
		paths = append(paths, path)
	}
	return paths
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "samediff", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"compare", "samples", "report", "words", "settings", "mcp", "tui", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_VerboseEnablesLogging(t *testing.T) {
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	_, err := executeCommand(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}

func TestSetServices(t *testing.T) {
	setupTestServices(t)

	assert.NotNil(t, comparisonService)
	assert.NotNil(t, sampleService)
	assert.NotNil(t, settingsService)
	assert.NotNil(t, exportService)

	SetServices(Services{})
	assert.Nil(t, comparisonService)
}
