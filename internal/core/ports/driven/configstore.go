package driven

// ConfigStore holds SameDiff settings under dot keys such as
// "analysis.stopwords" or "report.top_terms".
//
// Typed getters return the zero value when a key is missing or holds a
// value of another type. Set persists immediately.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string

	Set(key string, value any) error

	// Save writes every value back to storage.
	Save() error

	// Load discards in-memory values and rereads storage.
	Load() error

	// Path names the backing file for display.
	Path() string
}
