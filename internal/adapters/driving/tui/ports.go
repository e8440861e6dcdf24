// Package tui provides an interactive terminal user interface for samediff.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Comparison runs comparisons and serves stored reports.
	Comparison driving.ComparisonService

	// Samples lists preset samples. Optional.
	Samples driving.SampleService

	// Settings provides the number of top terms to show. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	comparison driving.ComparisonService,
	samples driving.SampleService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Comparison: comparison,
		Samples:    samples,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Comparison == nil {
		return ErrMissingComparisonService
	}
	return nil
}

// topTerms returns the configured number of weighted terms per document.
func (p *Ports) topTerms() int {
	if p.Settings == nil {
		return 0
	}
	return p.Settings.Analysis().TopTerms
}
