package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func tokenized(texts ...string) []TokenizedDocument {
	tok := NewTokenizer(nil)
	docs := make([]TokenizedDocument, len(texts))
	for i, text := range texts {
		docs[i] = TokenizedDocument{
			Document: domain.Document{Index: i, Name: string(rune('A' + i)), Text: text},
			Terms:    tok.Tokenize(text),
		}
	}
	return docs
}

func TestBuildCorpus_Empty(t *testing.T) {
	c, err := BuildCorpus(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestBuildCorpus_Frequencies(t *testing.T) {
	c, err := BuildCorpus(tokenized("apple apple banana", "banana cherry"))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"apple": 2, "banana": 1}, c.Frequencies[0])
	assert.Equal(t, map[string]int{"banana": 1, "cherry": 1}, c.Frequencies[1])
	assert.Equal(t, 2, c.Statistics.DocumentCount)
	assert.Equal(t, map[string]int{"apple": 1, "banana": 2, "cherry": 1}, c.Statistics.DocumentFrequency)
	assert.Empty(t, c.Anomalies)
}

func TestBuildCorpus_EmptyDocumentRecorded(t *testing.T) {
	c, err := BuildCorpus(tokenized("hello world", "  ...  "))
	require.NoError(t, err)

	require.Len(t, c.Anomalies, 1)
	assert.Equal(t, 1, c.Anomalies[0].Index)
	assert.Equal(t, "B", c.Anomalies[0].Name)
	assert.True(t, errors.Is(c.Anomalies[0], domain.ErrEmptyDocument))
	assert.Empty(t, c.Frequencies[1])
	assert.Equal(t, []int{1}, c.EmptyIndices())
}

func TestStatistics_IDF(t *testing.T) {
	s := Statistics{
		DocumentCount:     4,
		DocumentFrequency: map[string]int{"everywhere": 4, "once": 1, "twice": 2},
	}

	assert.Equal(t, 0.0, s.IDF("everywhere"))
	assert.InDelta(t, math.Log(4), s.IDF("once"), 1e-12)
	assert.InDelta(t, math.Log(2), s.IDF("twice"), 1e-12)
	assert.Equal(t, 0.0, s.IDF("missing"))
}
