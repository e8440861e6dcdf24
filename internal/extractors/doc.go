// Package extractors converts uploaded files into plain text for comparison.
//
// Each supported format has its own driven.TextExtractor in a subpackage.
// The Registry selects an extractor by file extension or MIME type,
// preferring the highest priority match:
//
//   - docx, html, markdown, rtf, xlsx: format-specific (priority 50)
//   - plaintext: .txt and .csv fallback (priority 5)
//
// Files no extractor accepts are rejected with domain.ErrUnsupportedType.
package extractors
