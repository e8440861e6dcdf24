package scoring

import (
	"github.com/custodia-labs/samediff/internal/core/domain"
)

// Interpretation thresholds on the distance 1 - score.
const (
	similarDistance       = 0.1
	sortOfSimilarDistance = 0.2
	prettyDiffDistance    = 0.3
)

// Extremes returns the most similar and most different pairs of distinct
// documents. The walk covers r < c in row-major order; later ties replace
// earlier ones. Both are nil when there are fewer than two documents.
func Extremes(m domain.SimilarityMatrix) (most, least *domain.DocumentPair) {
	n := m.Size()
	if n < 2 {
		return nil, nil
	}

	most = &domain.DocumentPair{First: 0, Second: 1, Score: m[0][1]}
	least = &domain.DocumentPair{First: 0, Second: 1, Score: m[0][1]}

	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			s := m[r][c]
			if s >= most.Score {
				most = &domain.DocumentPair{First: r, Second: c, Score: s}
			}
			if s <= least.Score {
				least = &domain.DocumentPair{First: r, Second: c, Score: s}
			}
		}
	}
	return most, least
}

// Interpret maps a similarity score to a coarse label using the distance
// 1 - score.
func Interpret(score float64) domain.Interpretation {
	d := 1 - score
	switch {
	case d <= similarDistance:
		return domain.InterpretationSimilar
	case d <= sortOfSimilarDistance:
		return domain.InterpretationSortOfSimilar
	case d <= prettyDiffDistance:
		return domain.InterpretationPrettyDifferent
	default:
		return domain.InterpretationVeryDifferent
	}
}

// RowAverages returns the mean similarity of each document to every other
// document. The diagonal is excluded; a single document averages 0.
func RowAverages(m domain.SimilarityMatrix) []float64 {
	n := m.Size()
	avgs := make([]float64, n)
	if n < 2 {
		return avgs
	}
	for r := 0; r < n; r++ {
		sum := 0.0
		for c := 0; c < n; c++ {
			if c != r {
				sum += m[r][c]
			}
		}
		avgs[r] = sum / float64(n-1)
	}
	return avgs
}

// MostUnique returns the index with the lowest average, lowest index on ties.
func MostUnique(avgs []float64) int {
	idx := 0
	for i, a := range avgs {
		if a < avgs[idx] {
			idx = i
		}
	}
	return idx
}

// Buckets groups, for each document, every other document by score band.
// Entries within a band keep document order.
func Buckets(docs []domain.Document, m domain.SimilarityMatrix) []domain.SimilarityBuckets {
	out := make([]domain.SimilarityBuckets, len(docs))
	for r := range docs {
		for c, other := range docs {
			if r == c {
				continue
			}
			s := m[r][c]
			band := domain.BandFor(s)
			out[r][band] = append(out[r][band], domain.BucketEntry{
				Index: c,
				Name:  other.Name,
				Score: s,
			})
		}
	}
	return out
}

// Synthesize assembles the report facets from the scored corpus.
func Synthesize(c *Corpus, scores [][]domain.TfIdfEntry, m domain.SimilarityMatrix) *domain.Report {
	r := &domain.Report{
		Documents:      c.Documents,
		Scores:         scores,
		Matrix:         m,
		Averages:       RowAverages(m),
		Buckets:        Buckets(c.Documents, m),
		MaxWeight:      MaxWeight(scores),
		EmptyDocuments: c.EmptyIndices(),
	}
	r.MostUnique = MostUnique(r.Averages)

	switch n := m.Size(); {
	case n == 2:
		r.Interpretation = Interpret(m[0][1])
	case n > 2:
		r.MostSimilar, r.MostDifferent = Extremes(m)
	}
	return r
}
