package scoring

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// apostrophes are kept inside terms ("don't") but trimmed from their edges.
const apostrophes = "'’"

// contractionSuffixes are the pieces prose splits off a word. They are
// joined back so "don't" stays one term.
var contractionSuffixes = map[string]bool{
	"n't": true, "'s": true, "'re": true, "'m": true, "'ll": true, "'ve": true, "'d": true,
}

// Tokenizer turns raw text into an ordered sequence of normalised terms.
// prose finds the word boundaries; terms are then lowercased and split on
// any rune that is not a letter, digit or apostrophe. Configured stopwords
// are excluded from the output.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer that drops the given stopwords.
// Stopwords are normalised the same way as document text.
func NewTokenizer(stopwords []string) *Tokenizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.Trim(strings.ToLower(strings.TrimSpace(w)), apostrophes)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Tokenizer{stopwords: set}
}

// Tokenize returns the terms of text in order of appearance.
// The same input always yields the same sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var terms []string
	for _, span := range wordSpans(strings.ToLower(text)) {
		for _, tok := range strings.FieldsFunc(span, isSeparator) {
			tok = strings.Trim(tok, apostrophes)
			if tok == "" {
				continue
			}
			if _, stop := t.stopwords[tok]; stop {
				continue
			}
			terms = append(terms, tok)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// IsStopword reports whether term is excluded by this tokenizer.
func (t *Tokenizer) IsStopword(term string) bool {
	_, ok := t.stopwords[term]
	return ok
}

// wordSpans returns prose's tokens of text with contractions rejoined.
// Tagging stays enabled because prose only tokenizes when tagging or
// extraction is on.
func wordSpans(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return []string{text}
	}

	tokens := doc.Tokens()
	spans := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n := len(spans); n > 0 && contractionSuffixes[tok.Text] {
			spans[n-1] += tok.Text
			continue
		}
		spans = append(spans, tok.Text)
	}
	return spans
}

func isSeparator(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !strings.ContainsRune(apostrophes, r)
}

// EnglishStopwords returns the bundled English stopword list.
// It is only applied when analysis.default_stopwords is enabled.
func EnglishStopwords() []string {
	return []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on",
		"at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its",
		"this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through", "during", "before", "after",
		"above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don",
		"should", "now", "i", "me", "my", "we", "our", "you", "your", "he", "him", "his", "she",
		"her", "they", "them", "their", "what", "which", "who", "whom", "when", "where", "why",
		"how", "not", "no", "nor", "all", "any", "both", "each", "few", "more", "most", "other",
		"some", "only", "do", "does", "did", "have", "has", "had", "would", "could", "shall",
		"may", "might", "must", "there", "here", "once",
	}
}
