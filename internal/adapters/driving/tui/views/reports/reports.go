// Package reports provides the stored reports list view for the TUI.
package reports

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// View is the reports list view.
type View struct {
	styles     *styles.Styles
	comparison driving.ComparisonService

	records       []domain.ReportRecord
	selected      int
	scrollOffset  int
	width         int
	height        int
	ready         bool
	err           error
	loading       bool
	confirmDelete bool
}

// NewView creates a new reports view.
func NewView(s *styles.Styles, comparison driving.ComparisonService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		comparison: comparison,
		width:      80,
		height:     24,
	}
}

// Init loads the stored reports.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.confirmDelete = false
	return v.loadReports()
}

// loadReports returns a command that lists stored reports.
func (v *View) loadReports() tea.Cmd {
	return func() tea.Msg {
		if v.comparison == nil {
			return messages.ReportsLoaded{Err: fmt.Errorf("comparison service not available")}
		}
		records, err := v.comparison.List(context.Background())
		return messages.ReportsLoaded{Records: records, Err: err}
	}
}

// deleteReport returns a command that deletes a stored report.
func (v *View) deleteReport(id string) tea.Cmd {
	return func() tea.Msg {
		if v.comparison == nil {
			return messages.ReportDeleted{ID: id, Err: fmt.Errorf("comparison service not available")}
		}
		return messages.ReportDeleted{ID: id, Err: v.comparison.Delete(context.Background(), id)}
	}
}

// Update handles messages for the reports view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.confirmDelete {
			return v.handleConfirmKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.ReportsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.records = msg.Records
		if v.selected >= len(v.records) {
			v.selected = max(len(v.records)-1, 0)
		}
		v.adjustScroll()
		return v, nil

	case messages.ReportDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.loading = true
		return v, v.loadReports()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if len(v.records) > 0 {
			id := v.records[v.selected].ID
			return v, func() tea.Msg {
				return messages.ReportSelected{ID: id}
			}
		}
	case "d":
		if len(v.records) > 0 {
			v.confirmDelete = true
		}
	case "r":
		v.loading = true
		return v, v.loadReports()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleConfirmKeyMsg handles the delete confirmation prompt.
func (v *View) handleConfirmKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.confirmDelete = false
	if msg.String() == "y" && v.selected < len(v.records) {
		return v, v.deleteReport(v.records[v.selected].ID)
	}
	return v, nil
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visible := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, help, and padding
	return max(v.height-7, 1)
}

// View renders the reports view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Reports (%d)", len(v.records))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading reports..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No reports yet. Run 'samediff compare' or compare samples."))
	default:
		visible := v.visibleItemCount()
		end := min(v.scrollOffset+visible, len(v.records))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.renderRecord(i, &v.records[i]))
			b.WriteString("\n")
		}
		if len(v.records) > visible {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1, end, len(v.records))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	if v.confirmDelete {
		b.WriteString(v.styles.Warning.Render("Delete this report? [y] yes  [any] cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [d] Delete  [r] Refresh  [Esc] Back"))
	}
	return b.String()
}

// renderRecord renders a single report line.
func (v *View) renderRecord(index int, r *domain.ReportRecord) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	created := r.CreatedAt.Local().Format("2006-01-02 15:04")
	names := truncate(strings.Join(r.Names, ", "), max(v.width-40, 10))
	line := fmt.Sprintf("%s%s  %-8s  %-7s  %s", indicator, created, r.Status, r.Origin, names)

	switch {
	case index == v.selected:
		return v.styles.Selected.Render(line)
	case r.Status == domain.ReportFailed:
		return v.styles.Error.Render(line)
	default:
		return v.styles.Normal.Render(line)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Records returns the loaded reports.
func (v *View) Records() []domain.ReportRecord {
	return v.records
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
