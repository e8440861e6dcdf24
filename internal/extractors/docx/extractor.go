// Package docx extracts text from Office Open XML word documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

const documentPart = "word/document.xml"

// Extractor handles DOCX documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor.
func (e *Extractor) Name() string {
	return "docx"
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".docx"}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the paragraph text of the document body.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.DocumentInput, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive: %v", domain.ErrInvalidInput, err)
	}

	body, err := readPart(reader, documentPart)
	if err != nil {
		return nil, err
	}

	text, err := parseDocumentXML(body)
	if err != nil {
		return nil, err
	}

	return &domain.DocumentInput{
		Name: displayName(raw),
		Text: text,
	}, nil
}

func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, name, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(io.LimitReader(rc, domain.MaxUploadSize*4))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, name, err)
		}
		return content, nil
	}
	return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, name)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
		Tables     []table     `xml:"tbl"`
	} `xml:"body"`
}

type table struct {
	Rows []struct {
		Cells []struct {
			Paragraphs []paragraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

type paragraph struct {
	Runs  []run `xml:"r"`
	Links []struct {
		Runs []run `xml:"r"`
	} `xml:"hyperlink"`
}

// run keeps its children in document order so tabs and breaks separate
// the text on either side.
type run struct {
	Children []struct {
		XMLName xml.Name
		Content string `xml:",chardata"`
	} `xml:",any"`
}

func (p paragraph) text() string {
	var b strings.Builder
	write := func(runs []run) {
		for _, r := range runs {
			for _, c := range r.Children {
				switch c.XMLName.Local {
				case "t":
					b.WriteString(c.Content)
				case "tab", "br", "cr":
					b.WriteByte(' ')
				}
			}
		}
	}
	write(p.Runs)
	for _, l := range p.Links {
		write(l.Runs)
	}
	return b.String()
}

// parseDocumentXML joins paragraphs with newlines. Table text follows the
// body paragraphs.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, documentPart, err)
	}

	var lines []string
	for _, p := range doc.Body.Paragraphs {
		lines = append(lines, p.text())
	}
	for _, t := range doc.Body.Tables {
		for _, row := range t.Rows {
			var cells []string
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs {
					cells = append(cells, p.text())
				}
			}
			lines = append(lines, strings.Join(cells, " "))
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func displayName(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if name, ok := raw.Metadata["filename"].(string); ok && name != "" {
			return name
		}
	}
	return filepath.Base(raw.URI)
}
