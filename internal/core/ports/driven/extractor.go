package driven

import (
	"context"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// TextExtractor converts a raw file of one format into plain text.
type TextExtractor interface {
	// Name identifies the extractor in logs.
	Name() string

	// SupportedExtensions returns lowercase file extensions including the dot.
	SupportedExtensions() []string

	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors return 50-89, fallbacks 1-9.
	Priority() int

	// Extract returns the document's display name and plain-text body.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error)
}

// ExtractorRegistry selects the extractor for a raw document.
type ExtractorRegistry interface {
	// Extract converts a raw document using the best matching extractor.
	// Returns domain.ErrUnsupportedType when nothing matches.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error)

	// Register adds an extractor to the registry.
	Register(extractor TextExtractor)

	// SupportedExtensions returns every extension some extractor handles.
	SupportedExtensions() []string
}
