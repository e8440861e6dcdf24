package driving

import "github.com/custodia-labs/samediff/internal/core/domain"

// SettingsService manages analysis settings.
type SettingsService interface {
	// Analysis returns the current analysis settings.
	Analysis() domain.AnalysisSettings

	// SetStopwords replaces the configured stopword list.
	SetStopwords(words []string) error

	// SetDefaultStopwords toggles the bundled English stopword list.
	SetDefaultStopwords(enabled bool) error

	// SetTopTerms sets how many weighted terms are shown per document.
	SetTopTerms(n int) error

	// WatchInterval returns the minimum delay between watch re-runs in milliseconds.
	WatchInterval() int

	// ConfigPath returns the configuration file location.
	ConfigPath() string
}
