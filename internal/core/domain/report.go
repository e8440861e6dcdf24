package domain

import (
	"fmt"
	"time"
)

// TfIdfEntry is a weighted term of a single document.
type TfIdfEntry struct {
	// Term is the normalised token.
	Term string `json:"term"`

	// Frequency is the raw occurrence count within the document.
	Frequency int `json:"frequency"`

	// Weight is frequency multiplied by the corpus IDF of the term.
	Weight float64 `json:"tfidf"`
}

// SimilarityMatrix holds pairwise cosine similarity for N documents.
// It is square, symmetric and every entry lies in [0,1].
type SimilarityMatrix [][]float64

// Size returns the number of documents covered by the matrix.
func (m SimilarityMatrix) Size() int {
	return len(m)
}

// DocumentPair identifies two documents of a report and their score.
type DocumentPair struct {
	First  int     `json:"first"`
	Second int     `json:"second"`
	Score  float64 `json:"score"`
}

// SimilarityBand is one of the fixed score ranges used to group documents.
type SimilarityBand int

// Similarity bands, lowest first.
const (
	BandBelow50 SimilarityBand = iota
	Band50To70
	Band70To80
	Band80To90
	Band90To100
)

// BandCount is the number of similarity bands.
const BandCount = 5

// BandFor returns the band a similarity score falls into.
// Scores at or above 0.9 (including 1.0) land in the top band.
func BandFor(score float64) SimilarityBand {
	switch {
	case score < 0.5:
		return BandBelow50
	case score < 0.7:
		return Band50To70
	case score < 0.8:
		return Band70To80
	case score < 0.9:
		return Band80To90
	default:
		return Band90To100
	}
}

// Label returns a short human-readable range for the band.
func (b SimilarityBand) Label() string {
	switch b {
	case BandBelow50:
		return "below 0.5"
	case Band50To70:
		return "0.5 to 0.7"
	case Band70To80:
		return "0.7 to 0.8"
	case Band80To90:
		return "0.8 to 0.9"
	case Band90To100:
		return "0.9 to 1.0"
	default:
		return "unknown"
	}
}

// BucketEntry is a compared document placed in a similarity band.
type BucketEntry struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// String formats the entry as "name (0.83)".
func (e BucketEntry) String() string {
	return fmt.Sprintf("%s (%.2f)", e.Name, e.Score)
}

// SimilarityBuckets groups the other documents of a report by band.
type SimilarityBuckets [BandCount][]BucketEntry

// Interpretation is the qualitative label given to a two-document report.
type Interpretation string

// Interpretation labels, most similar first.
const (
	InterpretationSimilar         Interpretation = "similar"
	InterpretationSortOfSimilar   Interpretation = "sort of similar"
	InterpretationPrettyDifferent Interpretation = "pretty different"
	InterpretationVeryDifferent   Interpretation = "very different"
)

// CommonWord is a term present in both documents of a pair.
type CommonWord struct {
	Term    string  `json:"term"`
	First   int     `json:"doc1"`
	Second  int     `json:"doc2"`
	Total   int     `json:"total"`
	Average float64 `json:"avg"`
}

// Report is the terminal aggregate of a comparison.
// It is built once by the scoring pipeline and never mutated afterwards.
type Report struct {
	// Documents in submission order.
	Documents []Document `json:"documents"`

	// Scores holds one ordered TF-IDF entry set per document.
	Scores [][]TfIdfEntry `json:"tfidf"`

	// Matrix is the pairwise cosine similarity.
	Matrix SimilarityMatrix `json:"cosine_similarity"`

	// MostSimilar and MostDifferent are set only when more than two documents are compared.
	MostSimilar   *DocumentPair `json:"most_similar,omitempty"`
	MostDifferent *DocumentPair `json:"most_different,omitempty"`

	// Averages is each document's mean similarity to the others.
	Averages []float64 `json:"averages"`

	// MostUnique is the index of the document with the lowest average.
	MostUnique int `json:"most_unique"`

	// Buckets holds per-document similarity bands.
	Buckets []SimilarityBuckets `json:"similarity_lists"`

	// Interpretation is set only when exactly two documents are compared.
	Interpretation Interpretation `json:"interpretation,omitempty"`

	// MaxWeight is the largest TF-IDF weight across all documents.
	MaxWeight float64 `json:"max_tfidf"`

	// EmptyDocuments lists indices of documents that produced no terms.
	EmptyDocuments []int `json:"empty_documents,omitempty"`
}

// Names returns the display names in document order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Documents))
	for i, doc := range r.Documents {
		names[i] = doc.Name
	}
	return names
}

// DocumentIndex resolves a display name to its index.
func (r *Report) DocumentIndex(name string) (int, error) {
	for _, doc := range r.Documents {
		if doc.Name == name {
			return doc.Index, nil
		}
	}
	return -1, &UnknownFilenameError{Name: name}
}

// TopTerms returns up to n of the highest weighted entries for a document.
// A non-positive n returns every entry.
func (r *Report) TopTerms(index, n int) []TfIdfEntry {
	if index < 0 || index >= len(r.Scores) {
		return nil
	}
	entries := r.Scores[index]
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// ReportStatus tracks a comparison job through its lifecycle.
type ReportStatus string

// Report statuses.
const (
	ReportPending  ReportStatus = "pending"
	ReportComplete ReportStatus = "complete"
	ReportFailed   ReportStatus = "failed"
)

// ReportOrigin records where the compared documents came from.
type ReportOrigin string

// Report origins.
const (
	OriginFiles   ReportOrigin = "files"
	OriginTexts   ReportOrigin = "texts"
	OriginSamples ReportOrigin = "samples"
)

// ReportRecord is a persisted comparison job and its result.
type ReportRecord struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Status is the job state.
	Status ReportStatus `json:"status"`

	// Origin is the kind of input that was compared.
	Origin ReportOrigin `json:"origin"`

	// Names are the display names of the compared documents.
	Names []string `json:"names"`

	// Report is nil until Status is complete.
	Report *Report `json:"report,omitempty"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsComplete returns true if the record holds a finished report.
func (r *ReportRecord) IsComplete() bool {
	return r.Status == ReportComplete && r.Report != nil
}
