// Package domain defines the core business entities for SameDiff.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A submitted text with its position and display name
//   - TfIdfEntry: A weighted term of one document
//   - SimilarityMatrix: Pairwise cosine similarity across the set
//   - Report: The terminal aggregate handed to storage and rendering
//   - RawDocument: Opaque bytes before text extraction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
