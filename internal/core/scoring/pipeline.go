package scoring

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/logger"
)

// Pipeline runs the scoring stages over one document set.
// A Pipeline holds no per-run state and may be reused concurrently.
type Pipeline struct {
	tokenizer *Tokenizer
}

// NewPipeline creates a pipeline using the stopwords of the given settings.
func NewPipeline(settings domain.AnalysisSettings) *Pipeline {
	stopwords := append([]string(nil), settings.Stopwords...)
	if settings.DefaultStopwords {
		stopwords = append(stopwords, EnglishStopwords()...)
	}
	return &Pipeline{tokenizer: NewTokenizer(stopwords)}
}

// Tokenizer returns the tokenizer used by the pipeline.
func (p *Pipeline) Tokenizer() *Tokenizer {
	return p.tokenizer
}

// Run scores the inputs and returns the full report. It either returns a
// complete report or an error, never a partial result.
func (p *Pipeline) Run(inputs []domain.DocumentInput) (*domain.Report, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	logger.Section("Scoring")
	logger.Debug("Documents: %d", len(inputs))

	docs := Ingest(inputs)

	// Fan out tokenisation; IDF needs every vector.
	tokenized := make([]TokenizedDocument, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokenized[i] = TokenizedDocument{
				Document: docs[i],
				Terms:    p.tokenizer.Tokenize(docs[i].Text),
			}
		}(i)
	}
	wg.Wait()

	corpus, err := BuildCorpus(tokenized)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	logger.Debug("Vocabulary: %d terms", len(corpus.Statistics.DocumentFrequency))
	for _, a := range corpus.Anomalies {
		logger.Warn("%v", a)
	}

	scores := Score(corpus)
	matrix := BuildMatrix(scores)
	report := Synthesize(corpus, scores, matrix)

	logger.Debug("Most unique: %s", report.Documents[report.MostUnique].Name)
	return report, nil
}

// Ingest assigns indices and unique display names in submission order.
// A repeated name gets a " (2)", " (3)" ... suffix.
func Ingest(inputs []domain.DocumentInput) []domain.Document {
	docs := make([]domain.Document, len(inputs))
	seen := make(map[string]int, len(inputs))
	taken := make(map[string]struct{}, len(inputs))

	for i, in := range inputs {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("Document %d", i+1)
		}
		base := name
		for {
			if _, dup := taken[name]; !dup {
				break
			}
			seen[base]++
			name = fmt.Sprintf("%s (%d)", base, seen[base]+1)
		}
		taken[name] = struct{}{}

		docs[i] = domain.Document{Index: i, Name: name, Text: in.Text}
	}
	return docs
}
