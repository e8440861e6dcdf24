package domain

// Document is one member of a submitted document set.
// It is immutable once ingested and lives only as long as its report.
type Document struct {
	// Index is the stable 0-based position within the submitted set.
	Index int `json:"index"`

	// Name is the display name (file name or sample title).
	Name string `json:"name"`

	// Text is the normalised plain-text body.
	Text string `json:"-"`
}

// DocumentInput is a (display name, plain-text body) pair produced by
// the extraction layer and consumed by the scoring pipeline.
type DocumentInput struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// RawDocument represents opaque bytes read from a file before text extraction.
type RawDocument struct {
	// URI is the original location (usually a file path).
	URI string

	// MIMEType is the content type if known (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains extractor hints such as a preferred title.
	Metadata map[string]any
}

// MaxUploadSize is the largest file accepted for comparison (10 MiB).
const MaxUploadSize = 10 << 20
