package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService writes report tables as CSV.
type ExportService struct{}

// NewExportService creates a new export service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Write writes the named report table.
func (s *ExportService) Write(w io.Writer, report *domain.Report, table driving.ExportTable) error {
	switch table {
	case driving.ExportSimilarity:
		return s.WriteSimilarity(w, report)
	case driving.ExportTfIdf:
		return s.WriteTfIdf(w, report)
	default:
		return fmt.Errorf("%w: unknown table %q", domain.ErrInvalidInput, table)
	}
}

// WriteSimilarity writes the matrix with a header row of document names.
func (s *ExportService) WriteSimilarity(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, report.Names()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range report.Matrix {
		record := make([]string, 0, len(row)+1)
		record = append(record, report.Documents[i].Name)
		for _, v := range row {
			record = append(record, formatFloat(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTfIdf writes one row per document term.
func (s *ExportService) WriteTfIdf(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"document", "term", "frequency", "tfidf"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, entries := range report.Scores {
		name := report.Documents[i].Name
		for _, e := range entries {
			if err := cw.Write([]string{name, e.Term, strconv.Itoa(e.Frequency), formatFloat(e.Weight)}); err != nil {
				return fmt.Errorf("write %s/%s: %w", name, e.Term, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCommonWords writes the terms shared by two documents.
func (s *ExportService) WriteCommonWords(w io.Writer, words []domain.CommonWord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"term", "doc1", "doc2", "total", "avg"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, word := range words {
		record := []string{
			word.Term,
			strconv.Itoa(word.First),
			strconv.Itoa(word.Second),
			strconv.Itoa(word.Total),
			formatFloat(word.Average),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", word.Term, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
