// Package rtf extracts text from Rich Text Format documents.
package rtf

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles RTF documents.
type Extractor struct{}

// New creates a new RTF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor.
func (e *Extractor) Name() string {
	return "rtf"
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".rtf"}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/rtf", "text/rtf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract strips RTF control words and groups, keeping document text.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw.Content), []byte(`{\rtf`)) {
		return nil, domain.ErrInvalidInput
	}

	return &domain.DocumentInput{
		Name: displayName(raw),
		Text: strip(raw.Content),
	}, nil
}

// Destinations whose content is never document text.
var ignoredDestinations = map[string]bool{
	"fonttbl":            true,
	"colortbl":           true,
	"stylesheet":         true,
	"info":               true,
	"pict":               true,
	"object":             true,
	"themedata":          true,
	"colorschememapping": true,
	"datastore":          true,
	"latentstyles":       true,
	"listtable":          true,
	"listoverridetable":  true,
	"rsidtbl":            true,
	"generator":          true,
	"xmlnstbl":           true,
	"header":             true,
	"footer":             true,
}

type group struct {
	skip bool
	uc   int // fallback characters following \uN
}

// strip walks the RTF stream. Hex escapes and literal high bytes are
// decoded as Latin-1.
func strip(data []byte) string {
	var out strings.Builder
	stack := []group{{uc: 1}}
	fallback := 0

	top := func() *group { return &stack[len(stack)-1] }
	emit := func(r rune) {
		if fallback > 0 {
			fallback--
			return
		}
		if !top().skip {
			out.WriteRune(r)
		}
	}

	for i := 0; i < len(data); {
		c := data[i]
		switch c {
		case '{':
			stack = append(stack, *top())
			i++
		case '}':
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			fallback = 0
			i++
		case '\r', '\n':
			i++
		case '\\':
			i = controlSequence(data, i+1, top, emit, &fallback)
		default:
			emit(rune(c))
			i++
		}
	}

	return tidy(out.String())
}

// controlSequence handles the sequence after a backslash and returns the
// next read position.
func controlSequence(data []byte, i int, top func() *group, emit func(rune), fallback *int) int {
	if i >= len(data) {
		return i
	}

	n := data[i]
	switch {
	case n == '\\' || n == '{' || n == '}':
		emit(rune(n))
		return i + 1
	case n == '\'':
		if i+2 < len(data) && isHex(data[i+1]) && isHex(data[i+2]) {
			emit(rune(unhex(data[i+1])<<4 | unhex(data[i+2])))
			return i + 3
		}
		return i + 1
	case n == '*':
		top().skip = true
		return i + 1
	case n == '~':
		emit(' ')
		return i + 1
	case n == '\r' || n == '\n':
		emit('\n')
		return i + 1
	case !isLetter(n):
		// Other control symbols (\- \_ \|) carry no text.
		return i + 1
	}

	start := i
	for i < len(data) && isLetter(data[i]) {
		i++
	}
	word := string(data[start:i])

	param, hasParam := 0, false
	neg := false
	if i < len(data) && data[i] == '-' {
		neg = true
		i++
	}
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		param = param*10 + int(data[i]-'0')
		hasParam = true
		i++
	}
	if neg {
		param = -param
	}
	if i < len(data) && data[i] == ' ' {
		i++
	}

	if ignoredDestinations[word] {
		top().skip = true
		return i
	}

	switch word {
	case "par", "line", "row":
		emit('\n')
	case "tab", "cell":
		emit(' ')
	case "uc":
		if hasParam {
			top().uc = param
		}
	case "u":
		if hasParam {
			if param < 0 {
				param += 0x10000
			}
			emit(rune(param))
			*fallback = top().uc
		}
	}
	return i
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func unhex(b byte) rune {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0')
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10
	default:
		return rune(b-'A') + 10
	}
}

// tidy trims each line and drops blank ones.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func displayName(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if name, ok := raw.Metadata["filename"].(string); ok && name != "" {
			return name
		}
	}
	return filepath.Base(raw.URI)
}
