package mcp

import (
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Comparison runs comparisons and serves stored reports.
	Comparison driving.ComparisonService

	// Samples lists the preset sample texts. Optional.
	Samples driving.SampleService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Comparison == nil {
		return ErrMissingComparisonService
	}
	return nil
}
