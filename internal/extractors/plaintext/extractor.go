// Package plaintext extracts text from plain text and CSV files.
package plaintext

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor.
func (e *Extractor) Name() string {
	return "plaintext"
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".text", ".csv", ".log"}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/csv"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract returns the file contents as text. CSV is treated as plain
// text: separators are not letters, so cells tokenise as words.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := bytes.TrimPrefix(raw.Content, utf8BOM)

	return &domain.DocumentInput{
		Name: displayName(raw),
		Text: strings.ToValidUTF8(string(content), " "),
	}, nil
}

// displayName prefers the filename hint, then the URI base name.
func displayName(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if name, ok := raw.Metadata["filename"].(string); ok && name != "" {
			return name
		}
	}
	return filepath.Base(raw.URI)
}
