package driving

import (
	"io"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// ExportTable names a report table that can be exported.
type ExportTable string

// Exportable tables.
const (
	ExportSimilarity ExportTable = "similarity"
	ExportTfIdf      ExportTable = "tfidf"
)

// ExportService writes report tables as CSV.
type ExportService interface {
	// WriteSimilarity writes the matrix with a header row of document names.
	WriteSimilarity(w io.Writer, report *domain.Report) error

	// WriteTfIdf writes one row per document term.
	WriteTfIdf(w io.Writer, report *domain.Report) error

	// WriteCommonWords writes the terms shared by two documents.
	WriteCommonWords(w io.Writer, words []domain.CommonWord) error

	// Write writes the named report table.
	Write(w io.Writer, report *domain.Report, table ExportTable) error
}
