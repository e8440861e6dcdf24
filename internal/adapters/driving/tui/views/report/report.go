// Package report provides the single report viewer for the TUI.
//
// The viewer has four panes: a summary, the similarity matrix, the
// similarity bands of the selected document, and the words the selected
// document shares with its comparison partner.
package report

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/samediff/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driving"
)

// Pane identifies a section of the report view.
type Pane int

const (
	PaneSummary Pane = iota
	PaneMatrix
	PaneBuckets
	PaneWords
	paneCount
)

// String returns the pane tab label.
func (p Pane) String() string {
	switch p {
	case PaneSummary:
		return "Summary"
	case PaneMatrix:
		return "Matrix"
	case PaneBuckets:
		return "Bands"
	case PaneWords:
		return "Common words"
	default:
		return "unknown"
	}
}

// nameWidth is the column width of document names in the matrix.
const nameWidth = 12

// View is the report viewer.
type View struct {
	styles     *styles.Styles
	comparison driving.ComparisonService
	topTerms   int

	record   *domain.ReportRecord
	pane     Pane
	selected int
	partner  int

	words        []domain.CommonWord
	wordsErr     error
	loadingWords bool

	width  int
	height int
	ready  bool
}

// NewView creates a new report view showing topTerms weighted terms per document.
func NewView(s *styles.Styles, comparison driving.ComparisonService, topTerms int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if topTerms <= 0 {
		topTerms = domain.DefaultTopTerms
	}
	return &View{
		styles:     s,
		comparison: comparison,
		topTerms:   topTerms,
		width:      80,
		height:     24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecord shows a report and resets the selection.
func (v *View) SetRecord(record *domain.ReportRecord) tea.Cmd {
	v.record = record
	v.pane = PaneSummary
	v.selected = 0
	v.partner = v.nextPartner(0, 1)
	v.words = nil
	v.wordsErr = nil
	return v.loadWords()
}

// Record returns the displayed report.
func (v *View) Record() *domain.ReportRecord {
	return v.record
}

// report returns the complete report, or nil.
func (v *View) report() *domain.Report {
	if v.record == nil || !v.record.IsComplete() {
		return nil
	}
	return v.record.Report
}

func (v *View) docCount() int {
	if r := v.report(); r != nil {
		return len(r.Documents)
	}
	return 0
}

// nextPartner walks from current in direction dir, skipping the selected document.
// It returns -1 when there is no other document.
func (v *View) nextPartner(current, dir int) int {
	n := v.docCount()
	if n < 2 {
		return -1
	}
	p := current
	for range n {
		p = ((p+dir)%n + n) % n
		if p != v.selected {
			return p
		}
	}
	return -1
}

// loadWords returns a command that fetches the common words of the current pair.
func (v *View) loadWords() tea.Cmd {
	r := v.report()
	if r == nil || v.partner < 0 || v.comparison == nil {
		return nil
	}
	v.loadingWords = true
	id := v.record.ID
	first, second := v.selected, v.partner
	name1, name2 := r.Documents[first].Name, r.Documents[second].Name
	return func() tea.Msg {
		words, err := v.comparison.CommonWords(context.Background(), id, name1, name2)
		return messages.CommonWordsLoaded{First: first, Second: second, Words: words, Err: err}
	}
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CommonWordsLoaded:
		// Ignore results for a pair that is no longer selected.
		if msg.First != v.selected || msg.Second != v.partner {
			return v, nil
		}
		v.loadingWords = false
		v.words = msg.Words
		v.wordsErr = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles navigation keys.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	n := v.docCount()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selectDocument(v.selected - 1)
			return v, v.loadWords()
		}
	case "down", "j":
		if v.selected < n-1 {
			v.selectDocument(v.selected + 1)
			return v, v.loadWords()
		}
	case "left", "h":
		if p := v.nextPartner(v.partner, -1); p >= 0 && p != v.partner {
			v.partner = p
			return v, v.loadWords()
		}
	case "right", "l":
		if p := v.nextPartner(v.partner, 1); p >= 0 && p != v.partner {
			v.partner = p
			return v, v.loadWords()
		}
	case "tab":
		v.pane = (v.pane + 1) % paneCount
	case "shift+tab":
		v.pane = (v.pane + paneCount - 1) % paneCount
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewReports}
		}
	}
	return v, nil
}

// selectDocument changes the selected document, keeping the partner distinct.
func (v *View) selectDocument(i int) {
	v.selected = i
	if v.partner == i || v.partner < 0 {
		v.partner = v.nextPartner(i, 1)
	}
	v.words = nil
	v.wordsErr = nil
}

// View renders the report.
func (v *View) View() string {
	var b strings.Builder

	if v.record == nil {
		b.WriteString(v.styles.Muted.Render("No report selected."))
		return b.String()
	}

	b.WriteString(v.styles.Title.Render("Report " + shortID(v.record.ID)))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s · %s",
		v.record.Origin, v.record.CreatedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	r := v.report()
	if r == nil {
		if v.record.Status == domain.ReportFailed {
			b.WriteString(v.styles.Error.Render("Comparison failed: " + v.record.Error))
		} else {
			b.WriteString(v.styles.Muted.Render("Report is " + string(v.record.Status) + "."))
		}
		return b.String()
	}

	b.WriteString(v.renderTabs())
	b.WriteString("\n")

	var body string
	switch v.pane {
	case PaneSummary:
		body = v.renderSummary(r)
	case PaneMatrix:
		body = v.renderMatrix(r)
	case PaneBuckets:
		body = v.renderBuckets(r)
	case PaneWords:
		body = v.renderWords(r)
	}
	b.WriteString(v.styles.Pane.Width(max(v.width-4, 20)).Render(body))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Document  [h/l] Partner  [Tab] Pane  [Esc] Back"))

	return b.String()
}

// renderTabs renders the pane selector.
func (v *View) renderTabs() string {
	tabs := make([]string, 0, paneCount)
	for p := PaneSummary; p < paneCount; p++ {
		label := " " + p.String() + " "
		if p == v.pane {
			tabs = append(tabs, v.styles.Selected.Render(label))
		} else {
			tabs = append(tabs, v.styles.Muted.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSummary renders the report facets and the selected document's top terms.
func (v *View) renderSummary(r *domain.Report) string {
	var b strings.Builder
	names := r.Names()

	if r.Interpretation != "" {
		score := r.Matrix[0][1]
		b.WriteString(fmt.Sprintf("These two documents are %s ",
			v.styles.Subtitle.Render(string(r.Interpretation))))
		b.WriteString(v.styles.Score(score).Render(fmt.Sprintf("(%.2f)", score)))
		b.WriteString("\n")
	}
	if p := r.MostSimilar; p != nil {
		b.WriteString(fmt.Sprintf("Most similar:   %s and %s %s\n", names[p.First], names[p.Second],
			v.styles.Score(p.Score).Render(fmt.Sprintf("(%.2f)", p.Score))))
	}
	if p := r.MostDifferent; p != nil {
		b.WriteString(fmt.Sprintf("Most different: %s and %s %s\n", names[p.First], names[p.Second],
			v.styles.Score(p.Score).Render(fmt.Sprintf("(%.2f)", p.Score))))
	}
	if len(names) > 2 {
		b.WriteString(fmt.Sprintf("Most unique:    %s\n", names[r.MostUnique]))
	}
	for _, i := range r.EmptyDocuments {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("%s has no countable words", names[i])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Top terms: " + names[v.selected]))
	b.WriteString("\n")
	entries := r.TopTerms(v.selected, v.topTerms)
	if len(entries) == 0 {
		b.WriteString(v.styles.Muted.Render("  (none)"))
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %-20s %4d  %.4f\n", truncate(e.Term, 20), e.Frequency, e.Weight))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMatrix renders the similarity matrix with the selected row marked.
func (v *View) renderMatrix(r *domain.Report) string {
	var b strings.Builder
	names := r.Names()

	b.WriteString(strings.Repeat(" ", nameWidth+2))
	for _, name := range names {
		b.WriteString(fmt.Sprintf(" %6s", truncate(name, 6)))
	}
	b.WriteString("\n")

	for i, row := range r.Matrix {
		marker := "  "
		if i == v.selected {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(fmt.Sprintf("%-*s", nameWidth, truncate(names[i], nameWidth)))
		for j, score := range row {
			cell := fmt.Sprintf(" %6.2f", score)
			switch {
			case i == j:
				b.WriteString(v.styles.Muted.Render(fmt.Sprintf(" %6s", "-")))
			case i == v.selected && j == v.partner:
				b.WriteString(v.styles.Selected.Render(cell))
			default:
				b.WriteString(v.styles.Score(score).Render(cell))
			}
		}
		b.WriteString("\n")
	}
	if v.selected < len(r.Averages) {
		b.WriteString(fmt.Sprintf("\nAverage similarity of %s: %.2f", names[v.selected], r.Averages[v.selected]))
	}
	return b.String()
}

// renderBuckets renders the similarity bands of the selected document, highest first.
func (v *View) renderBuckets(r *domain.Report) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Compared with " + r.Documents[v.selected].Name))
	b.WriteString("\n")

	if v.selected >= len(r.Buckets) {
		return b.String()
	}
	buckets := r.Buckets[v.selected]
	for band := domain.BandCount - 1; band >= 0; band-- {
		entries := buckets[band]
		label := fmt.Sprintf("%-11s", domain.SimilarityBand(band).Label())
		b.WriteString(v.styles.Band(domain.SimilarityBand(band)).Render(label))
		b.WriteString(" ")
		if len(entries) == 0 {
			b.WriteString(v.styles.Muted.Render("-"))
		} else {
			parts := make([]string, len(entries))
			for i, e := range entries {
				parts[i] = e.String()
			}
			b.WriteString(strings.Join(parts, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderWords renders the words the selected pair shares.
func (v *View) renderWords(r *domain.Report) string {
	var b strings.Builder
	if v.partner < 0 {
		return v.styles.Muted.Render("Compare at least two documents to see common words.")
	}

	first, second := r.Documents[v.selected].Name, r.Documents[v.partner].Name
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%s and %s", first, second)))
	b.WriteString("\n")

	switch {
	case v.wordsErr != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.wordsErr.Error()))
		return b.String()
	case v.loadingWords && v.words == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	case len(v.words) == 0:
		b.WriteString(v.styles.Muted.Render("No words in common."))
		return b.String()
	}

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-20s %6s %6s %6s %7s", "word", "doc1", "doc2", "total", "avg")))
	b.WriteString("\n")
	limit := min(len(v.words), max(v.height-12, 5))
	for _, w := range v.words[:limit] {
		b.WriteString(fmt.Sprintf("%-20s %6d %6d %6d %7.1f\n", truncate(w.Term, 20), w.First, w.Second, w.Total, w.Average))
	}
	if limit < len(v.words) {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("... and %d more", len(v.words)-limit)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Pane returns the active pane.
func (v *View) Pane() Pane {
	return v.pane
}

// Selected returns the selected document index.
func (v *View) Selected() int {
	return v.selected
}

// Partner returns the comparison partner index, or -1.
func (v *View) Partner() int {
	return v.partner
}

// Words returns the loaded common words.
func (v *View) Words() []domain.CommonWord {
	return v.words
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
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
