package tui

import "errors"

// ErrMissingComparisonService is returned when the comparison service is not provided.
var ErrMissingComparisonService = errors.New("tui: comparison service is required")
