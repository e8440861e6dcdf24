package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func matrixFor(t *testing.T, texts ...string) domain.SimilarityMatrix {
	t.Helper()
	c, err := BuildCorpus(tokenized(texts...))
	require.NoError(t, err)
	return BuildMatrix(Score(c))
}

func TestBuildMatrix_SymmetricAndInRange(t *testing.T) {
	m := matrixFor(t,
		"the quick brown fox jumps over the lazy dog",
		"a quick brown dog outpaces a lazy fox",
		"lorem ipsum dolor sit amet",
		"the dog sleeps all day",
	)

	require.Equal(t, 4, m.Size())
	for i := range m {
		require.Len(t, m[i], 4)
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i], "M[%d][%d] != M[%d][%d]", i, j, j, i)
			assert.False(t, math.IsNaN(m[i][j]))
			assert.GreaterOrEqual(t, m[i][j], 0.0)
			assert.LessOrEqual(t, m[i][j], 1.0)
		}
	}
}

func TestBuildMatrix_IdenticalDocuments(t *testing.T) {
	m := matrixFor(t, "red green blue", "red green blue", "yellow orange")
	assert.InDelta(t, 1.0, m[0][1], 1e-9)
	assert.InDelta(t, 1.0, m[0][0], 1e-9)
}

func TestBuildMatrix_DisjointDocuments(t *testing.T) {
	m := matrixFor(t, "alpha beta", "gamma delta", "epsilon zeta")
	for i := range m {
		for j := range m[i] {
			if i != j {
				assert.Equal(t, 0.0, m[i][j])
			}
		}
	}
}

func TestBuildMatrix_SharedTermsOnlyZeroWeight(t *testing.T) {
	m := matrixFor(t, "the cat sat", "the dog sat")
	assert.Equal(t, 0.0, m[0][1])
	assert.Equal(t, 0.0, m[1][0])
}

func TestBuildMatrix_AllIdenticalNoNaN(t *testing.T) {
	m := matrixFor(t, "a b c", "a b c", "a b c")
	for i := range m {
		for j := range m[i] {
			assert.False(t, math.IsNaN(m[i][j]))
			assert.Equal(t, 0.0, m[i][j])
		}
	}
}

func TestBuildMatrix_EmptyDocument(t *testing.T) {
	m := matrixFor(t, "hello world", "", "world peace")
	for j := range m {
		assert.Equal(t, 0.0, m[1][j])
		assert.Equal(t, 0.0, m[j][1])
	}
}

func TestBuildMatrix_Idempotent(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a quick brown dog outpaces a lazy fox",
		"foxes and dogs rarely agree",
	}
	first := matrixFor(t, texts...)
	for range 10 {
		assert.Equal(t, first, matrixFor(t, texts...))
	}
}

func TestCosine(t *testing.T) {
	a := []domain.TfIdfEntry{{Term: "x", Weight: 1}, {Term: "y", Weight: 1}}
	b := []domain.TfIdfEntry{{Term: "x", Weight: 1}}

	assert.InDelta(t, 1/math.Sqrt2, Cosine(a, b), 1e-12)
	assert.Equal(t, 0.0, Cosine(a, nil))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}
