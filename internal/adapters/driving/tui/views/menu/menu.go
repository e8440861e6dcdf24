// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Reports", Hint: "Browse stored comparison reports", View: messages.ViewReports},
			{Label: "Compare samples", Hint: "Score documents from the sample catalog", View: messages.ViewSamples},
			{Label: "Help", Hint: "Key bindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and activates items. Navigation wraps, and the
// digit keys jump straight to an item.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) tea.Cmd {
	n := len(v.items)
	switch k {
	case "up", "k":
		v.selected = (v.selected + n - 1) % n
	case "down", "j":
		v.selected = (v.selected + 1) % n
	case "enter":
		return v.activate(v.selected)
	case "q":
		return tea.Quit
	default:
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'0') <= n {
			v.selected = int(k[0] - '1')
			return v.activate(v.selected)
		}
	}
	return nil
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("SameDiff"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Document Similarity"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if hint := v.items[v.selected].Hint; hint != "" {
		b.WriteString(v.styles.Muted.Render(hint))
		b.WriteString("\n\n")
	}
	b.WriteString(v.styles.Help.Render(fmt.Sprintf("[j/k] Navigate  [1-%d] Jump  [Enter] Select  [q] Quit", len(v.items))))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries in display order.
func (v *View) Items() []Item {
	return v.items
}
