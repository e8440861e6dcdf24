package driving

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// ComparisonService runs and manages similarity comparisons.
type ComparisonService interface {
	// CompareFiles extracts text from files on disk and compares them.
	CompareFiles(ctx context.Context, paths []string) (*domain.ReportRecord, error)

	// CompareTexts compares raw named texts.
	CompareTexts(ctx context.Context, inputs []domain.DocumentInput) (*domain.ReportRecord, error)

	// CompareSamples compares preset samples by ID.
	CompareSamples(ctx context.Context, ids []string) (*domain.ReportRecord, error)

	// Get retrieves a stored report.
	Get(ctx context.Context, id string) (*domain.ReportRecord, error)

	// List returns stored reports, newest first.
	List(ctx context.Context) ([]domain.ReportRecord, error)

	// Delete removes a stored report.
	Delete(ctx context.Context, id string) error

	// CommonWords lists the terms shared by two documents of a stored report.
	CommonWords(ctx context.Context, id, name1, name2 string) ([]domain.CommonWord, error)
}
