package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

var (
	reportJSON   bool
	exportTable  string
	exportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage stored reports",
	Long:  `List, view, delete or export the reports of earlier comparisons.`,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports",
	RunE:  runReportList,
}

var reportShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportShow,
}

var reportDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportDelete,
}

var reportExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a report table as CSV",
	Long: `Writes one table of a report as CSV.

Tables:
  similarity - the similarity matrix with a header row of document names
  tfidf      - one row per document term with its frequency and weight`,
	Args: cobra.ExactArgs(1),
	RunE: runReportExport,
}

func init() {
	reportShowCmd.Flags().BoolVar(&reportJSON, "json", false, "output the report as JSON")
	reportExportCmd.Flags().StringVarP(&exportTable, "table", "t", string(driving.ExportSimilarity),
		"table to export (similarity|tfidf)")
	reportExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportDeleteCmd)
	reportCmd.AddCommand(reportExportCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportList(cmd *cobra.Command, _ []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	records, err := comparisonService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No reports found.")
		return nil
	}

	width := terminalWidth()
	cmd.Println("Reports:")
	for i := range records {
		r := &records[i]
		prefix := fmt.Sprintf("  %s  %s  %-8s  %-7s  ",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Status, r.Origin)
		names := strings.Join(r.Names, ", ")
		cmd.Println(prefix + truncate(names, max(width-len(prefix), minNamesWidth)))
	}
	return nil
}

func runReportShow(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	record, err := comparisonService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}
	return printRecord(cmd, record, reportJSON)
}

func runReportDelete(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	if err := comparisonService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	cmd.Printf("Deleted report %s\n", args[0])
	return nil
}

func runReportExport(cmd *cobra.Command, args []string) error {
	if comparisonService == nil || exportService == nil {
		return errors.New("export service not configured")
	}

	table := driving.ExportTable(exportTable)
	if table != driving.ExportSimilarity && table != driving.ExportTfIdf {
		return fmt.Errorf("unknown table %q (want similarity or tfidf)", exportTable)
	}

	record, err := comparisonService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}
	if !record.IsComplete() {
		return fmt.Errorf("report %s is %s", record.ID, record.Status)
	}

	return writeOutput(cmd, exportOutput, func(w io.Writer) error {
		return exportService.Write(w, record.Report, table)
	})
}

// writeOutput runs write against the named file, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
