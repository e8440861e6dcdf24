package scoring

import (
	"math"
	"sort"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// sparseVector holds a document's nonzero weights sorted by term.
// Sorting fixes the order of floating-point summation so repeated runs
// produce bit-identical scores.
type sparseVector struct {
	terms   []string
	weights []float64
	norm    float64
}

func newSparseVector(entries []domain.TfIdfEntry) sparseVector {
	nonzero := make([]domain.TfIdfEntry, 0, len(entries))
	for _, e := range entries {
		if e.Weight != 0 {
			nonzero = append(nonzero, e)
		}
	}
	sort.Slice(nonzero, func(i, j int) bool { return nonzero[i].Term < nonzero[j].Term })

	v := sparseVector{
		terms:   make([]string, len(nonzero)),
		weights: make([]float64, len(nonzero)),
	}
	sum := 0.0
	for i, e := range nonzero {
		v.terms[i] = e.Term
		v.weights[i] = e.Weight
		sum += e.Weight * e.Weight
	}
	v.norm = math.Sqrt(sum)
	return v
}

// dot merges two term-sorted vectors.
func (v sparseVector) dot(o sparseVector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(v.terms) && j < len(o.terms) {
		switch {
		case v.terms[i] == o.terms[j]:
			sum += v.weights[i] * o.weights[j]
			i++
			j++
		case v.terms[i] < o.terms[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func cosine(a, b sparseVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	return clamp(a.dot(b) / (a.norm * b.norm))
}

func clamp(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Cosine returns the cosine similarity of two TF-IDF entry sets.
// It is 0 when either side has no nonzero weight.
func Cosine(a, b []domain.TfIdfEntry) float64 {
	return cosine(newSparseVector(a), newSparseVector(b))
}

// BuildMatrix computes the symmetric pairwise similarity matrix.
// Each unordered pair, including the diagonal, is computed once and mirrored.
// Every entry is clamped to [0,1].
func BuildMatrix(scores [][]domain.TfIdfEntry) domain.SimilarityMatrix {
	n := len(scores)
	vectors := make([]sparseVector, n)
	for i, entries := range scores {
		vectors[i] = newSparseVector(entries)
	}

	m := make(domain.SimilarityMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := cosine(vectors[i], vectors[j])
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m
}
