package scoring

import (
	"math"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// TokenizedDocument pairs a document with its terms.
type TokenizedDocument struct {
	Document domain.Document
	Terms    []string
}

// Statistics holds corpus-wide document frequencies.
// It is derived once per comparison and shared read-only by all scoring steps.
type Statistics struct {
	// DocumentCount is N, the number of documents in the corpus.
	DocumentCount int

	// DocumentFrequency maps each term to the number of documents containing it.
	DocumentFrequency map[string]int
}

// IDF returns ln(N / df) for a term, or 0 for a term no document contains.
// Terms present in every document get exactly 0.
func (s Statistics) IDF(term string) float64 {
	df := s.DocumentFrequency[term]
	if df == 0 || s.DocumentCount == 0 {
		return 0
	}
	return math.Log(float64(s.DocumentCount) / float64(df))
}

// Corpus is the tokenised document set with its term counts.
type Corpus struct {
	// Documents in submission order.
	Documents []domain.Document

	// Frequencies holds one term count vector per document.
	Frequencies []map[string]int

	// Statistics are the corpus-wide document frequencies.
	Statistics Statistics

	// Anomalies records documents that produced no terms.
	Anomalies []*domain.EmptyDocumentError
}

// BuildCorpus counts term occurrences per document and document frequencies
// across the set. It fails with domain.ErrEmptyCorpus when docs is empty.
// Documents without terms are kept with empty vectors and recorded in Anomalies.
func BuildCorpus(docs []TokenizedDocument) (*Corpus, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	c := &Corpus{
		Documents:   make([]domain.Document, len(docs)),
		Frequencies: make([]map[string]int, len(docs)),
		Statistics: Statistics{
			DocumentCount:     len(docs),
			DocumentFrequency: make(map[string]int),
		},
	}

	for i, doc := range docs {
		c.Documents[i] = doc.Document
		c.Frequencies[i] = TermFrequencies(doc.Terms)

		if len(doc.Terms) == 0 {
			c.Anomalies = append(c.Anomalies, &domain.EmptyDocumentError{
				Index: doc.Document.Index,
				Name:  doc.Document.Name,
			})
		}

		// Each term counts once per document.
		for term := range c.Frequencies[i] {
			c.Statistics.DocumentFrequency[term]++
		}
	}

	return c, nil
}

// TermFrequencies counts raw occurrences of each term.
func TermFrequencies(terms []string) map[string]int {
	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}
	return tf
}

// EmptyIndices returns the indices of documents recorded as empty.
func (c *Corpus) EmptyIndices() []int {
	if len(c.Anomalies) == 0 {
		return nil
	}
	out := make([]int, len(c.Anomalies))
	for i, a := range c.Anomalies {
		out[i] = a.Index
	}
	return out
}
