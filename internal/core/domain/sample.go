package domain

// SampleModule is the catalog module name that marks SameDiff samples.
const SampleModule = "samediff"

// Sample is a preset text offered for comparison.
type Sample struct {
	// ID is the stable catalog identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the display name used in reports.
	Title string `json:"title" yaml:"title"`

	// Source is the location of the text, relative to the catalog.
	Source string `json:"source" yaml:"source"`

	// Modules lists the tools the sample is offered to.
	Modules []string `json:"modules,omitempty" yaml:"modules"`
}

// SupportsModule returns true if the sample is offered to the named tool.
func (s Sample) SupportsModule(module string) bool {
	for _, m := range s.Modules {
		if m == module {
			return true
		}
	}
	return false
}
