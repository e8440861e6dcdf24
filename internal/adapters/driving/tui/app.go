package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/views/report"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/views/reports"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/views/samples"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	reportsView *reports.View
	reportView  *report.View
	samplesView *samples.View
	statusBar   *status.Bar

	// initialReport is opened on start when set.
	initialReport string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		reportsView: reports.NewView(s, ports.Comparison),
		reportView:  report.NewView(s, ports.Comparison, ports.topTerms()),
		samplesView: samples.NewView(s, ports.Samples, ports.Comparison),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithReport opens the given report when the app starts.
func (a *App) WithReport(id string) *App {
	a.initialReport = id
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("samediff"),
	}
	if a.initialReport != "" {
		cmds = append(cmds, a.loadReport(a.initialReport))
	}
	return tea.Batch(cmds...)
}

// loadReport returns a command that fetches a stored report.
func (a *App) loadReport(id string) tea.Cmd {
	return func() tea.Msg {
		record, err := a.ports.Comparison.Get(a.ctx, id)
		return messages.ReportLoaded{Record: record, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		cmd = a.handleKey(msg)
		a.updateStatus()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		a.err = nil
		switch msg.View {
		case messages.ViewReports:
			cmd = a.reportsView.Init()
		case messages.ViewSamples:
			cmd = a.samplesView.Init()
		case messages.ViewMenu, messages.ViewReport, messages.ViewHelp:
			// No initialisation needed
		}
		a.updateStatus()
		return a, cmd

	case messages.ReportsLoaded, messages.ReportDeleted:
		a.reportsView, cmd = a.reportsView.Update(msg)
		a.updateStatus()
		return a, cmd

	case messages.ReportSelected:
		return a, a.loadReport(msg.ID)

	case messages.ReportLoaded:
		if a.currentView == messages.ViewSamples {
			a.samplesView, _ = a.samplesView.Update(msg)
		}
		if msg.Err != nil {
			a.err = msg.Err
			if a.currentView == messages.ViewReports {
				a.reportsView, _ = a.reportsView.Update(messages.ErrorOccurred{Err: msg.Err})
			}
			a.updateStatus()
			return a, nil
		}
		a.err = nil
		a.currentView = messages.ViewReport
		cmd = a.reportView.SetRecord(msg.Record)
		a.updateStatus()
		return a, cmd

	case messages.CommonWordsLoaded:
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd

	case messages.SamplesLoaded:
		a.samplesView, cmd = a.samplesView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.updateStatus()
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey forwards a key press to the active view.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	if keymap.Matches(msg.String(), a.keymap.Help) &&
		a.currentView != messages.ViewHelp && a.currentView != messages.ViewSamples {
		a.currentView = messages.ViewHelp
		return nil
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewReports:
		a.reportsView, cmd = a.reportsView.Update(msg)
	case messages.ViewReport:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return tea.Quit
		}
		a.reportView, cmd = a.reportView.Update(msg)
	case messages.ViewSamples:
		a.samplesView, cmd = a.samplesView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || keymap.Matches(msg.String(), a.keymap.Help) {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// updateStatus reflects the active view in the status bar.
func (a *App) updateStatus() {
	if a.err != nil {
		a.statusBar.Show(status.Status{Mode: status.ModeError, Text: a.err.Error()})
		return
	}

	st := status.Status{Mode: status.ModeIdle}
	switch a.currentView {
	case messages.ViewReports:
		st = status.Status{Mode: status.ModeList, Count: len(a.reportsView.Records()), Noun: "reports"}
	case messages.ViewReport:
		st.Mode = status.ModeReport
		if record := a.reportView.Record(); record != nil {
			st.Text = string(record.Status)
			if record.Report != nil {
				st.Count, st.Noun = len(record.Report.Documents), "documents"
			}
		}
	case messages.ViewHelp:
		st.Mode = status.ModeHelp
	}
	a.statusBar.Show(st)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewReports:
		body = a.reportsView.View()
	case messages.ViewReport:
		body = a.reportView.View()
	case messages.ViewSamples:
		body = a.samplesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Reports:
  j/k, ↑/↓    Navigate reports
  enter       Open report
  d           Delete report
  r           Refresh

Report:
  j/k, ↑/↓    Select document
  h/l, ←/→    Select comparison partner
  tab         Next pane (summary, matrix, bands, common words)
  q           Quit

Samples:
  space       Mark sample
  enter       Compare marked samples

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.reportsView.SetDimensions(width, height)
	// Leave room for the status bar.
	a.reportView.SetDimensions(width, height-2)
	a.samplesView.SetDimensions(width, height)
	a.statusBar.Resize(width)
}
