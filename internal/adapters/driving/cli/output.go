package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

const (
	defaultWidth = 80
	minNameWidth = 6
	maxNameWidth = 24

	// minNamesWidth is the narrowest document name list shown by report list.
	minNamesWidth = 20
)

// terminalWidth returns the width of stdout, or defaultWidth when stdout
// is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func topTerms() int {
	if settingsService == nil {
		return domain.DefaultAnalysisSettings().TopTerms
	}
	return settingsService.Analysis().TopTerms
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printRecord writes a report record as JSON or as a text summary.
func printRecord(cmd *cobra.Command, record *domain.ReportRecord, asJSON bool) error {
	if asJSON {
		return outputJSON(cmd, record)
	}

	cmd.Printf("Report %s (%s, %s)\n", record.ID, record.Origin, record.Status)
	if !record.IsComplete() {
		if record.Error != "" {
			cmd.Printf("Error: %s\n", record.Error)
		}
		return nil
	}
	printReport(cmd, record.Report, terminalWidth())
	return nil
}

// printReport writes the facets, the matrix and the top terms of a report.
func printReport(cmd *cobra.Command, r *domain.Report, width int) {
	names := r.Names()
	cmd.Printf("%d documents compared\n\n", len(names))

	if r.Interpretation != "" {
		cmd.Printf("These two documents are %s (%.2f)\n", r.Interpretation, r.Matrix[0][1])
	}
	if p := r.MostSimilar; p != nil {
		cmd.Printf("Most similar:   %s and %s (%.2f)\n", names[p.First], names[p.Second], p.Score)
	}
	if p := r.MostDifferent; p != nil {
		cmd.Printf("Most different: %s and %s (%.2f)\n", names[p.First], names[p.Second], p.Score)
	}
	if len(names) > 2 {
		cmd.Printf("Most unique:    %s\n", names[r.MostUnique])
	}
	for _, i := range r.EmptyDocuments {
		cmd.Printf("Warning: %s has no countable words\n", names[i])
	}
	cmd.Println()

	printMatrix(cmd, r, width)
	cmd.Println()
	printTopTerms(cmd, r, topTerms(), width)
}

// printMatrix writes the similarity matrix with each document's average.
// Columns that do not fit the width are dropped.
func printMatrix(cmd *cobra.Command, r *domain.Report, width int) {
	names := r.Names()
	nameWidth := minNameWidth
	for _, n := range names {
		nameWidth = max(nameWidth, len([]rune(n)))
	}
	nameWidth = min(nameWidth, maxNameWidth, max(width/4, minNameWidth))

	cols := len(names)
	if fit := (width - nameWidth - 8) / 7; fit < cols {
		cols = max(fit, 1)
	}

	cmd.Println("Similarity")
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameWidth))
	for j := range cols {
		b.WriteString(fmt.Sprintf(" %6s", truncate(names[j], 6)))
	}
	b.WriteString(fmt.Sprintf(" %7s", "avg"))
	cmd.Println(b.String())

	for i, row := range r.Matrix {
		b.Reset()
		b.WriteString(fmt.Sprintf("%-*s", nameWidth, truncate(names[i], nameWidth)))
		for j := range cols {
			b.WriteString(fmt.Sprintf(" %6.2f", row[j]))
		}
		b.WriteString(fmt.Sprintf(" %7.2f", r.Averages[i]))
		cmd.Println(b.String())
	}
	if cols < len(names) {
		cmd.Printf("(%d of %d columns shown)\n", cols, len(names))
	}
}

// printTopTerms writes the highest weighted terms of each document on one line.
func printTopTerms(cmd *cobra.Command, r *domain.Report, n, width int) {
	cmd.Println("Top terms")
	for i, name := range r.Names() {
		entries := r.TopTerms(i, n)
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, fmt.Sprintf("%s (%.2f)", e.Term, e.Weight))
		}
		line := fmt.Sprintf("  %s: %s", name, strings.Join(parts, ", "))
		cmd.Println(truncate(line, width))
	}
}

// truncate shortens s to maxLen runes, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
