package driven

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// SampleCatalog provides read-only access to preset sample texts.
type SampleCatalog interface {
	// List returns the samples available to SameDiff in catalog order.
	List(ctx context.Context) ([]domain.Sample, error)

	// Get returns a sample and its text.
	// Returns domain.ErrNotFound for an unknown ID.
	Get(ctx context.Context, id string) (*domain.Sample, string, error)
}
