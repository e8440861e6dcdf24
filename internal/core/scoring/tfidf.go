package scoring

import (
	"sort"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// Score computes the TF-IDF entries of every document in the corpus.
// tf is the raw count and idf is ln(N/df), so a term found in every document
// weighs 0. Every term of a document yields an entry, including zero weights,
// so raw frequencies remain available to later facets.
func Score(c *Corpus) [][]domain.TfIdfEntry {
	out := make([][]domain.TfIdfEntry, len(c.Frequencies))
	for i, tf := range c.Frequencies {
		entries := make([]domain.TfIdfEntry, 0, len(tf))
		for term, freq := range tf {
			entries = append(entries, domain.TfIdfEntry{
				Term:      term,
				Frequency: freq,
				Weight:    float64(freq) * c.Statistics.IDF(term),
			})
		}
		SortEntries(entries)
		out[i] = entries
	}
	return out
}

// SortEntries orders entries by descending weight, then descending
// frequency, then ascending term.
func SortEntries(entries []domain.TfIdfEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Term < b.Term
	})
}

// MaxWeight returns the largest weight across all documents.
func MaxWeight(scores [][]domain.TfIdfEntry) float64 {
	maxW := 0.0
	for _, entries := range scores {
		// Entries are sorted, the first is the document maximum.
		if len(entries) > 0 && entries[0].Weight > maxW {
			maxW = entries[0].Weight
		}
	}
	return maxW
}
