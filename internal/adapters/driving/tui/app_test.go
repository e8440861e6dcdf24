package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/scoring"
)

func testRecord(t *testing.T) *domain.ReportRecord {
	t.Helper()
	r, err := scoring.NewPipeline(domain.DefaultAnalysisSettings()).Run([]domain.DocumentInput{
		{Name: "a", Text: "apple pear fig"},
		{Name: "b", Text: "apple pear plum"},
		{Name: "c", Text: "boat sail"},
	})
	require.NoError(t, err)
	return &domain.ReportRecord{ID: "r1", Status: domain.ReportComplete, Names: r.Names(), Report: r}
}

func newTestApp(t *testing.T, record *domain.ReportRecord) *App {
	t.Helper()
	comparison := &MockComparisonService{
		GetFunc: func(_ context.Context, id string) (*domain.ReportRecord, error) {
			if record != nil && id == record.ID {
				return record, nil
			}
			return nil, domain.ErrNotFound
		},
		ListFunc: func(context.Context) ([]domain.ReportRecord, error) {
			if record == nil {
				return nil, nil
			}
			return []domain.ReportRecord{*record}, nil
		},
	}
	app, err := NewApp(NewPorts(comparison, nil, &MockSettingsService{TopTerms: 3}))
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

// run delivers a command's message back to the app.
func run(app *App, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := app.Update(cmd())
	return next
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&Ports{Comparison: &MockComparisonService{}})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingComparisonService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, nil)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, nil)

	assert.NotNil(t, app.Init())
	assert.NotNil(t, app.WithReport("r1").Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Comparison: &MockComparisonService{}})
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "SameDiff")
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
}

func TestApp_ReportsFlow(t *testing.T) {
	record := testRecord(t)
	app := newTestApp(t, record)

	// Menu -> Reports
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cmd = run(app, cmd)
	assert.Equal(t, messages.ViewReports, app.CurrentView())
	run(app, cmd)
	assert.Contains(t, app.View(), "Reports (1)")
	assert.Contains(t, app.View(), "1 reports")

	// Reports -> Report
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cmd = run(app, cmd) // ReportSelected -> loadReport
	cmd = run(app, cmd) // ReportLoaded -> common words
	run(app, cmd)
	assert.Equal(t, messages.ViewReport, app.CurrentView())
	assert.Contains(t, app.View(), "Report r1")
	assert.Contains(t, app.View(), "3 documents")

	// Report -> Reports on esc
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	run(app, cmd)
	assert.Equal(t, messages.ViewReports, app.CurrentView())
}

func TestApp_WithReport_OpensOnStart(t *testing.T) {
	record := testRecord(t)
	app := newTestApp(t, record).WithReport("r1")

	run(app, app.loadReport(app.initialReport))

	assert.Equal(t, messages.ViewReport, app.CurrentView())
	assert.NoError(t, app.Err())
}

func TestApp_ReportLoaded_Error(t *testing.T) {
	app := newTestApp(t, nil)

	run(app, app.loadReport("missing"))

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)
	assert.Contains(t, app.View(), "Error: not found")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, nil)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "Error: boom")
}

func TestApp_Help(t *testing.T) {
	app := newTestApp(t, nil)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Select comparison partner")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_QuitFromReport(t *testing.T) {
	app := newTestApp(t, testRecord(t))
	run(app, app.loadReport("r1"))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_SamplesView(t *testing.T) {
	app := newTestApp(t, nil)

	cmd := run(app, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSamples} })
	run(app, cmd)

	assert.Equal(t, messages.ViewSamples, app.CurrentView())
	assert.Contains(t, app.View(), "no sample catalog configured")
}
