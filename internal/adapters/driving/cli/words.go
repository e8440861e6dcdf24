package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	wordsLimit int
	wordsCSV   bool
)

var wordsCmd = &cobra.Command{
	Use:   "words [report-id] [name1] [name2]",
	Short: "List the words two documents have in common",
	Long: `Lists the words used by both documents of a stored report, with the
count in each document, the total and the average. Most shared words
come first.

Documents are named as they appear in the report.`,
	Args: cobra.ExactArgs(3),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVarP(&wordsLimit, "limit", "n", 20, "maximum number of words (0 = all)")
	wordsCmd.Flags().BoolVar(&wordsCSV, "csv", false, "output all words as CSV")
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	words, err := comparisonService.CommonWords(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to get common words: %w", err)
	}

	if wordsCSV {
		if exportService == nil {
			return errors.New("export service not configured")
		}
		return writeOutput(cmd, "", func(w io.Writer) error {
			return exportService.WriteCommonWords(w, words)
		})
	}

	if len(words) == 0 {
		cmd.Printf("%s and %s have no words in common.\n", args[1], args[2])
		return nil
	}

	shown := words
	if wordsLimit > 0 && len(shown) > wordsLimit {
		shown = shown[:wordsLimit]
	}

	cmd.Printf("Words in common: %s and %s\n\n", args[1], args[2])
	cmd.Printf("  %-20s %6s %6s %6s %7s\n", "word", "doc1", "doc2", "total", "avg")
	for _, w := range shown {
		cmd.Printf("  %-20s %6d %6d %6d %7.1f\n", truncate(w.Term, 20), w.First, w.Second, w.Total, w.Average)
	}
	if len(shown) < len(words) {
		cmd.Printf("  ... and %d more\n", len(words)-len(shown))
	}
	return nil
}
