// Package scoring is the similarity-scoring core of SameDiff.
//
// It turns plain-text document bodies into a domain.Report in one forward pass:
//
//	text -> terms -> term counts -> corpus IDF -> TF-IDF entries -> similarity matrix -> facets
//
// Every function in this package is synchronous, deterministic and free of I/O.
// Callers that need persistence, logging or job tracking wrap the Pipeline
// (see internal/core/services).
package scoring
