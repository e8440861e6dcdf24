package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStopwords        = "analysis.stopwords"
	KeyDefaultStopwords = "analysis.default_stopwords"
	KeyTopTerms         = "report.top_terms"
	KeyDataDir          = "storage.data_dir"
	KeySamplesCatalog   = "samples.catalog"
	KeyWatchInterval    = "watch.min_interval_ms"
)

// SettingsService manages analysis settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Analysis returns the current analysis settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Analysis() domain.AnalysisSettings {
	settings := domain.DefaultAnalysisSettings()
	if s.configStore == nil {
		return settings
	}

	settings.Stopwords = s.configStore.GetStringSlice(KeyStopwords)
	settings.DefaultStopwords = s.configStore.GetBool(KeyDefaultStopwords)
	if n := s.configStore.GetInt(KeyTopTerms); n > 0 {
		settings.TopTerms = n
	}
	return settings
}

// SetStopwords replaces the configured stopword list.
// Words are lowercased, trimmed and deduplicated.
func (s *SettingsService) SetStopwords(words []string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	seen := make(map[string]struct{}, len(words))
	clean := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		clean = append(clean, w)
	}

	if err := s.configStore.Set(KeyStopwords, clean); err != nil {
		return fmt.Errorf("save stopwords: %w", err)
	}
	return nil
}

// SetDefaultStopwords toggles the bundled English stopword list.
func (s *SettingsService) SetDefaultStopwords(enabled bool) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(KeyDefaultStopwords, enabled); err != nil {
		return fmt.Errorf("save default stopwords: %w", err)
	}
	return nil
}

// SetTopTerms sets how many weighted terms are shown per document.
func (s *SettingsService) SetTopTerms(n int) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if n <= 0 {
		return fmt.Errorf("%w: top terms must be positive, got %d", domain.ErrInvalidInput, n)
	}
	if err := s.configStore.Set(KeyTopTerms, n); err != nil {
		return fmt.Errorf("save top terms: %w", err)
	}
	return nil
}

// WatchInterval returns the minimum delay between watch re-runs in milliseconds.
func (s *SettingsService) WatchInterval() int {
	if s.configStore == nil {
		return domain.DefaultWatchIntervalMs
	}
	if ms := s.configStore.GetInt(KeyWatchInterval); ms > 0 {
		return ms
	}
	return domain.DefaultWatchIntervalMs
}

// ConfigPath returns the configuration file location.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
