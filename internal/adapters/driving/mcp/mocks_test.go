package mcp

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// mockComparisonService is a mock implementation of driving.ComparisonService.
type mockComparisonService struct {
	record  *domain.ReportRecord
	records []domain.ReportRecord
	words   []domain.CommonWord
	err     error

	lastInputs []domain.DocumentInput
	lastIDs    []string
}

func (m *mockComparisonService) CompareFiles(_ context.Context, _ []string) (*domain.ReportRecord, error) {
	return m.record, m.err
}

func (m *mockComparisonService) CompareTexts(_ context.Context, inputs []domain.DocumentInput) (*domain.ReportRecord, error) {
	m.lastInputs = inputs
	return m.record, m.err
}

func (m *mockComparisonService) CompareSamples(_ context.Context, ids []string) (*domain.ReportRecord, error) {
	m.lastIDs = ids
	return m.record, m.err
}

func (m *mockComparisonService) Get(_ context.Context, _ string) (*domain.ReportRecord, error) {
	return m.record, m.err
}

func (m *mockComparisonService) List(_ context.Context) ([]domain.ReportRecord, error) {
	return m.records, m.err
}

func (m *mockComparisonService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockComparisonService) CommonWords(_ context.Context, _, _, _ string) ([]domain.CommonWord, error) {
	return m.words, m.err
}

// mockSampleService is a mock implementation of driving.SampleService.
type mockSampleService struct {
	samples []domain.Sample
	err     error
}

func (m *mockSampleService) List(_ context.Context) ([]domain.Sample, error) {
	return m.samples, m.err
}

func (m *mockSampleService) Inputs(_ context.Context, _ []string) ([]domain.DocumentInput, error) {
	return nil, m.err
}
