package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var samplesJSON bool

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Work with the bundled sample texts",
	Long:  `List the preset sample texts and compare them without any files of your own.`,
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available samples",
	RunE:  runSamplesList,
}

var samplesCompareCmd = &cobra.Command{
	Use:   "compare [ids...]",
	Short: "Compare samples by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSamplesCompare,
}

func init() {
	samplesCompareCmd.Flags().BoolVar(&samplesJSON, "json", false, "output the report as JSON")
	samplesCmd.AddCommand(samplesListCmd)
	samplesCmd.AddCommand(samplesCompareCmd)
	rootCmd.AddCommand(samplesCmd)
}

func runSamplesList(cmd *cobra.Command, _ []string) error {
	if sampleService == nil {
		return errors.New("sample service not configured")
	}

	items, err := sampleService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list samples: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No samples available.")
		return nil
	}

	cmd.Println("Samples:")
	for _, s := range items {
		cmd.Printf("  %-20s %s\n", s.ID, s.Title)
	}
	return nil
}

func runSamplesCompare(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	record, err := comparisonService.CompareSamples(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}
	return printRecord(cmd, record, samplesJSON)
}
