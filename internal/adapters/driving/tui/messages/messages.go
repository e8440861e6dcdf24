// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/samediff/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewReports lists stored reports.
	ViewReports
	// ViewReport shows a single report.
	ViewReport
	// ViewSamples picks preset samples to compare.
	ViewSamples
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewReports:
		return "reports"
	case ViewReport:
		return "report"
	case ViewSamples:
		return "samples"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// ReportsLoaded carries the stored reports, newest first.
type ReportsLoaded struct {
	Records []domain.ReportRecord
	Err     error
}

// ReportSelected asks for a stored report to be opened.
type ReportSelected struct {
	ID string
}

// ReportLoaded carries a report to display.
type ReportLoaded struct {
	Record *domain.ReportRecord
	Err    error
}

// ReportDeleted signals a stored report was removed.
type ReportDeleted struct {
	ID  string
	Err error
}

// SamplesLoaded carries the sample catalog.
type SamplesLoaded struct {
	Samples []domain.Sample
	Err     error
}

// CommonWordsLoaded carries the words shared by two documents.
type CommonWordsLoaded struct {
	First  int
	Second int
	Words  []domain.CommonWord
	Err    error
}
