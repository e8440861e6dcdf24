// Package samples provides the sample picker view for the TUI.
package samples

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// View lets the user mark preset samples and compare them.
type View struct {
	styles     *styles.Styles
	samples    driving.SampleService
	comparison driving.ComparisonService

	items     []domain.Sample
	marked    map[string]bool
	selected  int
	loading   bool
	comparing bool
	err       error
	width     int
	height    int
}

// NewView creates a new sample picker.
func NewView(s *styles.Styles, samples driving.SampleService, comparison driving.ComparisonService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		samples:    samples,
		comparison: comparison,
		marked:     make(map[string]bool),
		width:      80,
		height:     24,
	}
}

// Init loads the sample catalog.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.comparing = false
	v.err = nil
	return func() tea.Msg {
		if v.samples == nil {
			return messages.SamplesLoaded{Err: errors.New("no sample catalog configured")}
		}
		items, err := v.samples.List(context.Background())
		return messages.SamplesLoaded{Samples: items, Err: err}
	}
}

// compare returns a command comparing the marked samples in catalog order.
func (v *View) compare() tea.Cmd {
	ids := v.MarkedIDs()
	return func() tea.Msg {
		if v.comparison == nil {
			return messages.ReportLoaded{Err: errors.New("comparison service not available")}
		}
		record, err := v.comparison.CompareSamples(context.Background(), ids)
		return messages.ReportLoaded{Record: record, Err: err}
	}
}

// Update handles messages for the sample picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SamplesLoaded:
		v.loading = false
		v.err = msg.Err
		v.items = msg.Samples
		v.selected = 0
		return v, nil

	case messages.ReportLoaded:
		// A successful comparison is handled by the app.
		v.comparing = false
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		if v.comparing {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case " ", "space", "x":
			if len(v.items) > 0 {
				id := v.items[v.selected].ID
				v.marked[id] = !v.marked[id]
			}
		case "enter":
			if len(v.MarkedIDs()) == 0 {
				v.err = errors.New("mark at least one sample with space")
				return v, nil
			}
			v.comparing = true
			v.err = nil
			return v, v.compare()
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the sample picker.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Compare samples"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading samples..."))
	case len(v.items) == 0 && v.err == nil:
		b.WriteString(v.styles.Muted.Render("No samples available."))
	default:
		for i, s := range v.items {
			cursor := "  "
			if i == v.selected {
				cursor = "> "
			}
			box := "[ ]"
			if v.marked[s.ID] {
				box = "[x]"
			}
			line := fmt.Sprintf("%s%s %s", cursor, box, s.Title)
			if i == v.selected {
				b.WriteString(v.styles.Subtitle.Render(line))
			} else {
				b.WriteString(v.styles.Normal.Render(line))
			}
			b.WriteString(v.styles.Muted.Render("  " + s.ID))
			b.WriteString("\n")
		}
	}

	if v.comparing {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Comparing..."))
	}
	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Space] Mark  [Enter] Compare  [Esc] Back"))
	return b.String()
}

// MarkedIDs returns the marked sample IDs in catalog order.
func (v *View) MarkedIDs() []string {
	var ids []string
	for _, s := range v.items {
		if v.marked[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
