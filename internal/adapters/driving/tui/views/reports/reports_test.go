package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/core/domain"
)

type mockComparisonService struct {
	records []domain.ReportRecord
	err     error
	deleted []string
}

func (m *mockComparisonService) CompareFiles(context.Context, []string) (*domain.ReportRecord, error) {
	return nil, m.err
}

func (m *mockComparisonService) CompareTexts(context.Context, []domain.DocumentInput) (*domain.ReportRecord, error) {
	return nil, m.err
}

func (m *mockComparisonService) CompareSamples(context.Context, []string) (*domain.ReportRecord, error) {
	return nil, m.err
}

func (m *mockComparisonService) Get(context.Context, string) (*domain.ReportRecord, error) {
	return nil, m.err
}

func (m *mockComparisonService) List(context.Context) ([]domain.ReportRecord, error) {
	return m.records, m.err
}

func (m *mockComparisonService) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockComparisonService) CommonWords(context.Context, string, string, string) ([]domain.CommonWord, error) {
	return nil, m.err
}

func testRecords() []domain.ReportRecord {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.ReportRecord{
		{ID: "r1", Status: domain.ReportComplete, Origin: domain.OriginFiles, Names: []string{"a.txt", "b.txt"}, CreatedAt: created},
		{ID: "r2", Status: domain.ReportFailed, Origin: domain.OriginTexts, Names: []string{"x"}, CreatedAt: created},
	}
}

func loadedView(t *testing.T, mock *mockComparisonService) *View {
	t.Helper()
	view := NewView(nil, mock)
	view.SetDimensions(120, 30)
	cmd := view.Init()
	require.NotNil(t, cmd)
	view.Update(cmd())
	return view
}

func TestView_Init_LoadsReports(t *testing.T) {
	view := loadedView(t, &mockComparisonService{records: testRecords()})

	assert.Len(t, view.Records(), 2)
	assert.NoError(t, view.Err())
	assert.Contains(t, view.View(), "Reports (2)")
	assert.Contains(t, view.View(), "a.txt, b.txt")
}

func TestView_Init_NilService(t *testing.T) {
	view := NewView(nil, nil)

	msg := view.Init()()

	loaded, ok := msg.(messages.ReportsLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestView_LoadError(t *testing.T) {
	view := loadedView(t, &mockComparisonService{err: errors.New("db down")})

	assert.Error(t, view.Err())
	assert.Contains(t, view.View(), "Error: db down")
}

func TestView_Empty(t *testing.T) {
	view := loadedView(t, &mockComparisonService{})

	assert.Contains(t, view.View(), "No reports yet")
}

func TestView_NavigateAndOpen(t *testing.T) {
	view := loadedView(t, &mockComparisonService{records: testRecords()})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.ReportSelected)
	require.True(t, ok)
	assert.Equal(t, "r2", selected.ID)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Delete(t *testing.T) {
	mock := &mockComparisonService{records: testRecords()}
	view := loadedView(t, mock)

	t.Run("cancelled", func(t *testing.T) {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
		assert.Contains(t, view.View(), "Delete this report?")

		_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		assert.Nil(t, cmd)
		assert.Empty(t, mock.deleted)
	})

	t.Run("confirmed", func(t *testing.T) {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
		_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
		require.NotNil(t, cmd)

		deleted, ok := cmd().(messages.ReportDeleted)
		require.True(t, ok)
		assert.Equal(t, "r1", deleted.ID)
		assert.Equal(t, []string{"r1"}, mock.deleted)

		// A successful delete reloads the list.
		_, cmd = view.Update(deleted)
		require.NotNil(t, cmd)
		_, ok = cmd().(messages.ReportsLoaded)
		assert.True(t, ok)
	})
}

func TestView_Esc(t *testing.T) {
	view := loadedView(t, &mockComparisonService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_SelectionClampedAfterReload(t *testing.T) {
	view := loadedView(t, &mockComparisonService{records: testRecords()})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	view.Update(messages.ReportsLoaded{Records: testRecords()[:1]})

	assert.Equal(t, 0, view.Selected())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "héllo", truncate("héllo", 5))
}
