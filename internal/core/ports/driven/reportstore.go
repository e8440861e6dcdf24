package driven

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// ReportStore persists comparison reports.
type ReportStore interface {
	// Save creates or replaces a report record.
	Save(ctx context.Context, record *domain.ReportRecord) error

	// Get retrieves a report record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.ReportRecord, error)

	// List returns all report records, newest first.
	List(ctx context.Context) ([]domain.ReportRecord, error)

	// Delete removes a report record.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}
