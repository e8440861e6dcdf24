package domain

// DefaultTopTerms is the number of TF-IDF terms shown per document.
const DefaultTopTerms = 10

// DefaultWatchIntervalMs is the minimum delay between watch re-runs.
const DefaultWatchIntervalMs = 500

// AnalysisSettings controls tokenisation and report rendering.
type AnalysisSettings struct {
	// Stopwords are excluded from all frequency counts.
	Stopwords []string

	// DefaultStopwords adds the bundled English stopword list.
	DefaultStopwords bool

	// TopTerms is how many weighted terms to show per document.
	TopTerms int
}

// DefaultAnalysisSettings returns settings with no stopwords.
func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{TopTerms: DefaultTopTerms}
}
