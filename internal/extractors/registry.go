package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
	"github.com/custodia-labs/samediff/internal/extractors/docx"
	"github.com/custodia-labs/samediff/internal/extractors/html"
	"github.com/custodia-labs/samediff/internal/extractors/markdown"
	"github.com/custodia-labs/samediff/internal/extractors/plaintext"
	"github.com/custodia-labs/samediff/internal/extractors/rtf"
	"github.com/custodia-labs/samediff/internal/extractors/xlsx"
	"github.com/custodia-labs/samediff/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches raw documents to the best matching extractor.
type Registry struct {
	mu         sync.RWMutex
	extractors []driven.TextExtractor
}

// NewRegistry creates a registry holding the given extractors.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// NewDefaultRegistry creates a registry with every built-in extractor.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		plaintext.New(),
		markdown.New(),
		html.New(),
		docx.New(),
		rtf.New(),
		xlsx.New(),
	)
}

// Register adds an extractor. Higher priorities are tried first;
// equal priorities keep registration order.
func (r *Registry) Register(extractor driven.TextExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
	sort.SliceStable(r.extractors, func(i, j int) bool {
		return r.extractors[i].Priority() > r.extractors[j].Priority()
	})
}

// Select returns the extractor for a raw document.
func (r *Registry) Select(raw *domain.RawDocument) (driven.TextExtractor, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	ext := strings.ToLower(filepath.Ext(raw.URI))
	mimeType := strings.ToLower(raw.MIMEType)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.extractors {
		if (ext != "" && contains(e.SupportedExtensions(), ext)) ||
			(mimeType != "" && contains(e.SupportedMIMETypes(), mimeType)) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Base(raw.URI))
}

// Extract converts a raw document using the best matching extractor.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	e, err := r.Select(raw)
	if err != nil {
		logger.Warn("No extractor for %s (mime %q)", raw.URI, raw.MIMEType)
		return nil, err
	}
	logger.Debug("Extracting %s with %s extractor", raw.URI, e.Name())
	return e.Extract(ctx, raw)
}

// SupportedExtensions returns every extension some extractor handles, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, e := range r.extractors {
		for _, ext := range e.SupportedExtensions() {
			if _, ok := seen[ext]; !ok {
				seen[ext] = struct{}{}
				out = append(out, ext)
			}
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
