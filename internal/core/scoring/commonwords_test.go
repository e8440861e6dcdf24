package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func TestCommonWords(t *testing.T) {
	report, err := NewPipeline(domain.DefaultAnalysisSettings()).Run([]domain.DocumentInput{
		{Name: "fruit.txt", Text: "apple apple banana"},
		{Name: "more.txt", Text: "banana banana cherry"},
	})
	require.NoError(t, err)

	words, err := CommonWords(report, "fruit.txt", "more.txt")
	require.NoError(t, err)
	assert.Equal(t, []domain.CommonWord{
		{Term: "banana", First: 1, Second: 2, Total: 3, Average: 1.5},
	}, words)
}

func TestCommonWords_Ordering(t *testing.T) {
	report, err := NewPipeline(domain.DefaultAnalysisSettings()).Run([]domain.DocumentInput{
		{Name: "a", Text: "x x x y z z"},
		{Name: "b", Text: "x y y y z z w"},
	})
	require.NoError(t, err)

	words := CommonWordsByIndex(report, 0, 1)
	var terms []string
	for _, w := range words {
		terms = append(terms, w.Term)
	}
	// x and y both total 4, z totals 4 as well; ties fall back to the term.
	assert.Equal(t, []string{"x", "y", "z"}, terms)
}

func TestCommonWords_UnknownName(t *testing.T) {
	report, err := NewPipeline(domain.DefaultAnalysisSettings()).Run([]domain.DocumentInput{
		{Name: "a", Text: "one two"},
		{Name: "b", Text: "two three"},
	})
	require.NoError(t, err)

	_, err = CommonWords(report, "a", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownFilename))

	var unknown *domain.UnknownFilenameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)
}

func TestCommonWordsByIndex_OutOfRange(t *testing.T) {
	report := &domain.Report{Scores: [][]domain.TfIdfEntry{{}}}
	assert.Nil(t, CommonWordsByIndex(report, 0, 3))
}
