package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
// Reports are immutable once complete, so records share their *Report.
type ReportStore struct {
	mu      sync.RWMutex
	records map[string]domain.ReportRecord
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		records: make(map[string]domain.ReportRecord),
	}
}

// Save creates or replaces a report record.
func (s *ReportStore) Save(_ context.Context, record *domain.ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *record
	r.Names = append([]string(nil), record.Names...)
	s.records[record.ID] = r
	return nil
}

// Get retrieves a report record by ID.
func (s *ReportStore) Get(_ context.Context, id string) (*domain.ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// List returns all report records, newest first.
func (s *ReportStore) List(_ context.Context) ([]domain.ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ReportRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a report record.
func (s *ReportStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
