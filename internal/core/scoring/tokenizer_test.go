package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		stopwords []string
		text      string
		want      []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "whitespace only", text: "  \n\t ", want: nil},
		{name: "lowercases", text: "The Cat SAT", want: []string{"the", "cat", "sat"}},
		{name: "strips punctuation", text: "hello, world! (again)", want: []string{"hello", "world", "again"}},
		{name: "keeps inner apostrophe", text: "don't stop", want: []string{"don't", "stop"}},
		{name: "rejoins contractions", text: "It's what they'll say, won't it?", want: []string{"it's", "what", "they'll", "say", "won't", "it"}},
		{name: "curly apostrophe", text: "Don’t panic", want: []string{"don’t", "panic"}},
		{name: "splits inner punctuation", text: "state-of-the-art e-mail/post", want: []string{"state", "of", "the", "art", "e", "mail", "post"}},
		{name: "punctuation only", text: "... !!! ?", want: nil},
		{name: "trims edge apostrophes", text: "'quoted' words'", want: []string{"quoted", "words"}},
		{name: "keeps digits", text: "route 66", want: []string{"route", "66"}},
		{name: "unicode letters", text: "Café Über", want: []string{"café", "über"}},
		{name: "drops stopwords", stopwords: []string{"The", "sat"}, text: "the cat sat", want: []string{"cat"}},
		{name: "only stopwords", stopwords: []string{"a"}, text: "a a a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(tt.stopwords)
			assert.Equal(t, tt.want, tok.Tokenize(tt.text))
		})
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tok := NewTokenizer(EnglishStopwords())
	text := "It was the best of times, it was the worst of times."
	assert.Equal(t, tok.Tokenize(text), tok.Tokenize(text))
}

func TestTokenizer_IsStopword(t *testing.T) {
	tok := NewTokenizer([]string{" And "})
	assert.True(t, tok.IsStopword("and"))
	assert.False(t, tok.IsStopword("cat"))
}

func TestEnglishStopwords_Lowercase(t *testing.T) {
	for _, w := range EnglishStopwords() {
		assert.Equal(t, NewTokenizer(nil).Tokenize(w), []string{w}, "stopword %q must survive tokenisation unchanged", w)
	}
}
