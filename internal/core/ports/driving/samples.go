package driving

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// SampleService exposes the preset sample catalog.
type SampleService interface {
	// List returns the available samples.
	List(ctx context.Context) ([]domain.Sample, error)

	// Inputs loads the texts of the given samples as comparison inputs.
	Inputs(ctx context.Context, ids []string) ([]domain.DocumentInput, error)
}
