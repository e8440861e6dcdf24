package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
	"github.com/custodia-labs/samediff/internal/core/scoring"
	"github.com/custodia-labs/samediff/internal/logger"
)

// Ensure ComparisonService implements the interface.
var _ driving.ComparisonService = (*ComparisonService)(nil)

// ComparisonService runs comparisons and tracks them as report records.
// Each comparison is one unit of work: the record is either saved complete
// with its report, or saved failed with the error message.
type ComparisonService struct {
	extractors driven.ExtractorRegistry
	reports    driven.ReportStore
	samples    driving.SampleService
	settings   driving.SettingsService
	now        func() time.Time
}

// NewComparisonService creates a new comparison service.
// reports may be nil, in which case results are returned but not stored.
func NewComparisonService(
	extractors driven.ExtractorRegistry,
	reports driven.ReportStore,
	samples driving.SampleService,
	settings driving.SettingsService,
) *ComparisonService {
	return &ComparisonService{
		extractors: extractors,
		reports:    reports,
		samples:    samples,
		settings:   settings,
		now:        time.Now,
	}
}

// CompareFiles extracts text from files on disk and compares them.
func (s *ComparisonService) CompareFiles(ctx context.Context, paths []string) (*domain.ReportRecord, error) {
	if s.extractors == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(paths) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	logger.Section("Extraction")
	done := logger.Timed("extraction")
	inputs := make([]domain.DocumentInput, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		input, err := s.extractFile(ctx, path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}
	done()

	return s.run(ctx, domain.OriginFiles, inputs)
}

// ReadFile loads a file as a raw document, enforcing the upload size limit.
func ReadFile(path string) (*domain.RawDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > domain.MaxUploadSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d",
			domain.ErrInvalidInput, path, info.Size(), domain.MaxUploadSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
		Metadata: map[string]any{"filename": filepath.Base(path)},
	}, nil
}

func (s *ComparisonService) extractFile(ctx context.Context, path string) (*domain.DocumentInput, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	input, err := s.extractors.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	logger.Debug("Extracted %s: %d characters", input.Name, len(input.Text))
	return input, nil
}

// CompareTexts compares raw named texts.
func (s *ComparisonService) CompareTexts(ctx context.Context, inputs []domain.DocumentInput) (*domain.ReportRecord, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	return s.run(ctx, domain.OriginTexts, inputs)
}

// CompareSamples compares preset samples by ID.
func (s *ComparisonService) CompareSamples(ctx context.Context, ids []string) (*domain.ReportRecord, error) {
	if s.samples == nil {
		return nil, domain.ErrNotImplemented
	}
	inputs, err := s.samples.Inputs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, domain.OriginSamples, inputs)
}

// run scores the inputs and records the outcome.
func (s *ComparisonService) run(
	ctx context.Context,
	origin domain.ReportOrigin,
	inputs []domain.DocumentInput,
) (*domain.ReportRecord, error) {
	now := s.now()
	record := &domain.ReportRecord{
		ID:        uuid.New().String(),
		Status:    domain.ReportPending,
		Origin:    origin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, in := range inputs {
		record.Names = append(record.Names, in.Name)
	}

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	report, err := s.pipeline().Run(inputs)
	record.UpdatedAt = s.now()
	if err != nil {
		record.Status = domain.ReportFailed
		record.Error = err.Error()
		if saveErr := s.save(ctx, record); saveErr != nil {
			logger.Warn("Failed to record failure for %s: %v", record.ID, saveErr)
		}
		return nil, fmt.Errorf("compare: %w", err)
	}

	record.Status = domain.ReportComplete
	record.Report = report
	record.Names = report.Names()
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Report %s complete: %d documents", record.ID, len(report.Documents))
	return record, nil
}

func (s *ComparisonService) pipeline() *scoring.Pipeline {
	settings := domain.DefaultAnalysisSettings()
	if s.settings != nil {
		settings = s.settings.Analysis()
	}
	return scoring.NewPipeline(settings)
}

func (s *ComparisonService) save(ctx context.Context, record *domain.ReportRecord) error {
	if s.reports == nil {
		return nil
	}
	if err := s.reports.Save(ctx, record); err != nil {
		return fmt.Errorf("save report %s: %w", record.ID, err)
	}
	logger.Debug("Saved report %s (%s)", record.ID, record.Status)
	return nil
}

// Get retrieves a stored report.
func (s *ComparisonService) Get(ctx context.Context, id string) (*domain.ReportRecord, error) {
	if s.reports == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reports.Get(ctx, id)
}

// List returns stored reports, newest first.
func (s *ComparisonService) List(ctx context.Context) ([]domain.ReportRecord, error) {
	if s.reports == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reports.List(ctx)
}

// Delete removes a stored report.
func (s *ComparisonService) Delete(ctx context.Context, id string) error {
	if s.reports == nil {
		return domain.ErrNotImplemented
	}
	return s.reports.Delete(ctx, id)
}

// CommonWords lists the terms shared by two documents of a stored report.
// A report that did not complete yields domain.ErrInvalidInput.
func (s *ComparisonService) CommonWords(ctx context.Context, id, name1, name2 string) ([]domain.CommonWord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.IsComplete() {
		return nil, fmt.Errorf("%w: report %s is %s", domain.ErrInvalidInput, id, record.Status)
	}

	words, err := scoring.CommonWords(record.Report, name1, name2)
	if err != nil {
		var unknown *domain.UnknownFilenameError
		if errors.As(err, &unknown) {
			logger.Debug("Common words: %v in report %s", unknown, id)
		}
		return nil, err
	}
	return words, nil
}
