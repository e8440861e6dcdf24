// Package cli implements the samediff command line interface using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samediff/internal/core/ports/driving"
	"github.com/custodia-labs/samediff/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Set once at start-up via SetServices.
var (
	comparisonService driving.ComparisonService
	sampleService     driving.SampleService
	settingsService   driving.SettingsService
	exportService     driving.ExportService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "samediff",
	Short: "Compare documents by word usage",
	Long: `SameDiff compares documents by the words they use.

Each document is weighted with TF-IDF and every pair is scored by cosine
similarity. Reports list the most similar and most different pairs, the
most unique document, per-document similarity bands, and the words any
two documents have in common.

Supported inputs: .txt, .csv, .md, .html, .docx, .rtf and .xlsx files,
raw texts (via MCP) and the bundled samples.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline and storage details to stderr")
}

// Services bundles the core services the commands depend on.
type Services struct {
	Comparison driving.ComparisonService
	Samples    driving.SampleService
	Settings   driving.SettingsService
	Export     driving.ExportService
}

// SetServices wires the core services into the commands.
func SetServices(s Services) {
	comparisonService = s.Comparison
	sampleService = s.Samples
	settingsService = s.Settings
	exportService = s.Export
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
