package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// TextInput is a named text to compare.
type TextInput struct {
	Name string `json:"name" jsonschema:"display name of the document"`
	Text string `json:"text" jsonschema:"full text of the document"`
}

// CompareTextsInput is the input schema for the compare_texts tool.
type CompareTextsInput struct {
	Documents []TextInput `json:"documents" jsonschema:"the documents to compare, at least one"`
	TopTerms  int         `json:"top_terms,omitempty" jsonschema:"weighted terms to list per document (default 10)"`
}

// CompareSamplesInput is the input schema for the compare_samples tool.
type CompareSamplesInput struct {
	IDs      []string `json:"ids" jsonschema:"preset sample ids to compare"`
	TopTerms int      `json:"top_terms,omitempty" jsonschema:"weighted terms to list per document (default 10)"`
}

// CommonWordsInput is the input schema for the common_words tool.
type CommonWordsInput struct {
	ReportID string `json:"report_id" jsonschema:"id of a stored report"`
	First    string `json:"first" jsonschema:"name of the first document"`
	Second   string `json:"second" jsonschema:"name of the second document"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of words to return (default all)"`
}

// PairOutput names two documents and their similarity.
type PairOutput struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Score  float64 `json:"score"`
}

// TermOutput is a weighted term.
type TermOutput struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"tfidf"`
}

// DocumentTermsOutput lists the top terms of one document.
type DocumentTermsOutput struct {
	Document string       `json:"document"`
	Terms    []TermOutput `json:"terms"`
}

// ScoreOutput is another document's similarity to the listed one.
type ScoreOutput struct {
	Document string  `json:"document"`
	Score    float64 `json:"score"`
}

// BandOutput holds the documents falling in one similarity range.
type BandOutput struct {
	Range     string        `json:"range"`
	Documents []ScoreOutput `json:"documents"`
}

// SimilarityListOutput groups every other document by similarity band,
// lowest band first.
type SimilarityListOutput struct {
	Document string       `json:"document"`
	Bands    []BandOutput `json:"bands"`
}

// ReportOutput is the output schema for the compare tools.
type ReportOutput struct {
	ID             string                 `json:"id"`
	Documents      []string               `json:"documents"`
	Matrix         [][]float64            `json:"cosine_similarity"`
	Interpretation string                 `json:"interpretation,omitempty"`
	MostSimilar    *PairOutput            `json:"most_similar,omitempty"`
	MostDifferent  *PairOutput            `json:"most_different,omitempty"`
	MostUnique     string                 `json:"most_unique"`
	Averages       []float64              `json:"averages"`
	TopTerms       []DocumentTermsOutput  `json:"top_terms"`
	Lists          []SimilarityListOutput `json:"similarity_lists"`
	MaxWeight      float64                `json:"max_tfidf"`
	EmptyDocuments []string               `json:"empty_documents,omitempty"`
}

// CommonWordsOutput is the output schema for the common_words tool.
type CommonWordsOutput struct {
	Words []domain.CommonWord `json:"words"`
	Count int                 `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "compare_texts",
		Description: "Compare named texts by TF-IDF cosine similarity and store the report",
	}, s.handleCompareTexts)

	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "compare_samples",
		Description: "Compare preset sample texts by id",
	}, s.handleCompareSamples)

	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "common_words",
		Description: "List the words two documents of a stored report share",
	}, s.handleCommonWords)
}

// handleCompareTexts handles the compare_texts tool invocation.
func (s *Server) handleCompareTexts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareTextsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	inputs := make([]domain.DocumentInput, len(input.Documents))
	for i, d := range input.Documents {
		inputs[i] = domain.DocumentInput{Name: d.Name, Text: d.Text}
	}

	record, err := s.ports.Comparison.CompareTexts(ctx, inputs)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	return nil, toReportOutput(record, input.TopTerms), nil
}

// handleCompareSamples handles the compare_samples tool invocation.
func (s *Server) handleCompareSamples(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareSamplesInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	record, err := s.ports.Comparison.CompareSamples(ctx, input.IDs)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	return nil, toReportOutput(record, input.TopTerms), nil
}

// handleCommonWords handles the common_words tool invocation.
func (s *Server) handleCommonWords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommonWordsInput,
) (*mcp.CallToolResult, CommonWordsOutput, error) {
	words, err := s.ports.Comparison.CommonWords(ctx, input.ReportID, input.First, input.Second)
	if err != nil {
		return nil, CommonWordsOutput{}, err
	}
	if input.Limit > 0 && len(words) > input.Limit {
		words = words[:input.Limit]
	}
	if words == nil {
		words = []domain.CommonWord{}
	}
	return nil, CommonWordsOutput{Words: words, Count: len(words)}, nil
}

// toReportOutput flattens a record into names rather than indices.
func toReportOutput(record *domain.ReportRecord, topTerms int) ReportOutput {
	if topTerms <= 0 {
		topTerms = domain.DefaultTopTerms
	}

	out := ReportOutput{ID: record.ID, Documents: record.Names}
	r := record.Report
	if r == nil {
		return out
	}

	names := r.Names()
	out.Documents = names
	out.Matrix = r.Matrix
	out.Interpretation = string(r.Interpretation)
	out.MostSimilar = toPairOutput(names, r.MostSimilar)
	out.MostDifferent = toPairOutput(names, r.MostDifferent)
	if r.MostUnique >= 0 && r.MostUnique < len(names) {
		out.MostUnique = names[r.MostUnique]
	}
	out.Averages = r.Averages

	out.TopTerms = make([]DocumentTermsOutput, len(names))
	for i, name := range names {
		entries := r.TopTerms(i, topTerms)
		terms := make([]TermOutput, len(entries))
		for j, e := range entries {
			terms[j] = TermOutput{Term: e.Term, Frequency: e.Frequency, Weight: e.Weight}
		}
		out.TopTerms[i] = DocumentTermsOutput{Document: name, Terms: terms}
	}

	out.Lists = make([]SimilarityListOutput, len(r.Buckets))
	for i, buckets := range r.Buckets {
		list := SimilarityListOutput{Document: names[i], Bands: make([]BandOutput, domain.BandCount)}
		for b, entries := range buckets {
			docs := make([]ScoreOutput, len(entries))
			for j, e := range entries {
				docs[j] = ScoreOutput{Document: e.Name, Score: e.Score}
			}
			list.Bands[b] = BandOutput{Range: domain.SimilarityBand(b).Label(), Documents: docs}
		}
		out.Lists[i] = list
	}
	out.MaxWeight = r.MaxWeight

	for _, i := range r.EmptyDocuments {
		out.EmptyDocuments = append(out.EmptyDocuments, names[i])
	}
	return out
}

func toPairOutput(names []string, pair *domain.DocumentPair) *PairOutput {
	if pair == nil {
		return nil
	}
	return &PairOutput{
		First:  names[pair.First],
		Second: names[pair.Second],
		Score:  pair.Score,
	}
}
