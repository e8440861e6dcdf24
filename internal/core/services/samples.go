package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
	"github.com/custodia-labs/samediff/internal/logger"
)

// Ensure SampleService implements the interface.
var _ driving.SampleService = (*SampleService)(nil)

// SampleService exposes the preset sample catalog.
type SampleService struct {
	catalog driven.SampleCatalog
}

// NewSampleService creates a new sample service.
func NewSampleService(catalog driven.SampleCatalog) *SampleService {
	return &SampleService{catalog: catalog}
}

// List returns the available samples.
func (s *SampleService) List(ctx context.Context) ([]domain.Sample, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.catalog.List(ctx)
}

// Inputs loads the texts of the given samples in the order requested.
// Each input is named after the sample title.
func (s *SampleService) Inputs(ctx context.Context, ids []string) ([]domain.DocumentInput, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(ids) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	inputs := make([]domain.DocumentInput, 0, len(ids))
	for _, id := range ids {
		sample, text, err := s.catalog.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load sample %q: %w", id, err)
		}
		logger.Debug("Loaded sample %s (%d bytes)", sample.ID, len(text))

		name := sample.Title
		if name == "" {
			name = sample.ID
		}
		inputs = append(inputs, domain.DocumentInput{Name: name, Text: text})
	}
	return inputs, nil
}
