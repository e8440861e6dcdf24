// Package status renders the one-line bar at the bottom of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
)

// Mode picks the key hints shown on the right of the bar.
type Mode int

const (
	ModeIdle Mode = iota
	ModeList
	ModeReport
	ModeHelp
	ModeError
)

// Status is the content of the left side of the bar.
type Status struct {
	Mode Mode

	// Text is an error message in ModeError, otherwise a short note
	// appended after the count.
	Text string

	// Count and Noun render as "3 documents" when Count is positive.
	Count int
	Noun  string
}

// Bar is a passive component: the app pushes a Status whenever the
// active view changes.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	status Status
	width  int
}

func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80}
}

// Show replaces the current status.
func (b *Bar) Show(st Status) {
	b.status = st
}

func (b *Bar) Status() Status {
	return b.status
}

func (b *Bar) Resize(width int) {
	b.width = width
}

func (b *Bar) View() string {
	left, right := b.summary(), b.hints()
	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) summary() string {
	st := b.status
	switch st.Mode {
	case ModeError:
		msg := "Error"
		if st.Text != "" {
			msg += ": " + st.Text
		}
		return b.styles.Error.Render(msg)
	case ModeHelp:
		return b.styles.Normal.Render("Help")
	}

	var parts []string
	if st.Count > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", st.Count, st.Noun))
	}
	if st.Text != "" {
		parts = append(parts, st.Text)
	}
	if len(parts) == 0 {
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Normal.Render(strings.Join(parts, " · "))
}

func (b *Bar) hints() string {
	var bindings []key.Binding
	switch b.status.Mode {
	case ModeList:
		bindings = b.keymap.ListHelp()
	case ModeReport:
		bindings = b.keymap.ReportHelp()
	default:
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, len(bindings))
	for i, binding := range bindings {
		h := binding.Help()
		hints[i] = h.Key + ": " + h.Desc
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}
