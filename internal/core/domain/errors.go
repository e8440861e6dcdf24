package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required port was not wired.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates no extractor handles a file format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Scoring Errors.

	// ErrEmptyCorpus indicates zero documents were supplied.
	// It is fatal to the comparison and no report is produced.
	ErrEmptyCorpus = errors.New("empty corpus: at least one document is required")

	// ErrEmptyDocument indicates a document tokenised to zero terms.
	// Match with errors.Is against an *EmptyDocumentError.
	ErrEmptyDocument = errors.New("empty document")

	// ErrUnknownFilename indicates a document name is not part of a report.
	// Match with errors.Is against an *UnknownFilenameError.
	ErrUnknownFilename = errors.New("unknown filename")
)

// EmptyDocumentError records a document that produced no terms.
// It is non-fatal: the document stays in the report with an all-zero vector.
type EmptyDocumentError struct {
	Index int
	Name  string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %d (%q) contains no terms", e.Index, e.Name)
}

// Is reports whether target is ErrEmptyDocument.
func (e *EmptyDocumentError) Is(target error) bool {
	return target == ErrEmptyDocument
}

// UnknownFilenameError is returned when a requested display name is not in a report.
type UnknownFilenameError struct {
	Name string
}

func (e *UnknownFilenameError) Error() string {
	return fmt.Sprintf("unknown filename %q", e.Name)
}

// Is reports whether target is ErrUnknownFilename.
func (e *UnknownFilenameError) Is(target error) bool {
	return target == ErrUnknownFilename
}
