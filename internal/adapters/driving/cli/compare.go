package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/watch"
)

var (
	compareJSON  bool
	compareWatch bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [files...]",
	Short: "Compare files by TF-IDF cosine similarity",
	Long: `Extracts the text of each file, scores every pair of documents and
stores the result as a report.

With --watch the comparison is re-run whenever one of the files changes.
Re-runs are throttled by the watch.min_interval_ms setting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output the report as JSON")
	compareCmd.Flags().BoolVarP(&compareWatch, "watch", "w", false, "re-run when the files change")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	if compareWatch {
		return runCompareWatch(cmd, args)
	}
	return compareFiles(cmd.Context(), cmd, args)
}

func compareFiles(ctx context.Context, cmd *cobra.Command, paths []string) error {
	record, err := comparisonService.CompareFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}
	return printRecord(cmd, record, compareJSON)
}

func runCompareWatch(cmd *cobra.Command, paths []string) error {
	interval := time.Duration(domain.DefaultWatchIntervalMs) * time.Millisecond
	if settingsService != nil {
		interval = time.Duration(settingsService.WatchInterval()) * time.Millisecond
	}

	w, err := watch.New(paths, interval)
	if err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	ctx := cmd.Context()
	if err := compareFiles(ctx, cmd, paths); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}
	cmd.PrintErrln("Watching for changes. Press Ctrl+C to stop.")

	return w.Run(ctx, func(ctx context.Context) error {
		cmd.Println()
		return compareFiles(ctx, cmd, paths)
	})
}
