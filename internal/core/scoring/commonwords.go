package scoring

import (
	"sort"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// CommonWords lists the terms present in both named documents of a report.
// An unknown name yields a *domain.UnknownFilenameError.
func CommonWords(r *domain.Report, name1, name2 string) ([]domain.CommonWord, error) {
	i, err := r.DocumentIndex(name1)
	if err != nil {
		return nil, err
	}
	j, err := r.DocumentIndex(name2)
	if err != nil {
		return nil, err
	}
	return CommonWordsByIndex(r, i, j), nil
}

// CommonWordsByIndex lists the terms present in both documents i and j,
// sorted by average frequency, then total, both descending, then term.
func CommonWordsByIndex(r *domain.Report, i, j int) []domain.CommonWord {
	if i < 0 || j < 0 || i >= len(r.Scores) || j >= len(r.Scores) {
		return nil
	}

	second := make(map[string]int, len(r.Scores[j]))
	for _, e := range r.Scores[j] {
		second[e.Term] = e.Frequency
	}

	var words []domain.CommonWord
	for _, e := range r.Scores[i] {
		f2, ok := second[e.Term]
		if !ok || e.Frequency == 0 || f2 == 0 {
			continue
		}
		total := e.Frequency + f2
		words = append(words, domain.CommonWord{
			Term:    e.Term,
			First:   e.Frequency,
			Second:  f2,
			Total:   total,
			Average: float64(total) / 2,
		})
	}

	sort.Slice(words, func(a, b int) bool {
		x, y := words[a], words[b]
		if x.Average != y.Average {
			return x.Average > y.Average
		}
		if x.Total != y.Total {
			return x.Total > y.Total
		}
		return x.Term < y.Term
	})
	return words
}
