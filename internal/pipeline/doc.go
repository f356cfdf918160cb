// Package pipeline converts a Markdown token tree into ADF nodes.
//
// The stages mirror the structure of a document:
//   - Markdown preprocessing (line normalization, front matter)
//   - Block dispatch (headings, code, quotes, rules)
//   - Paragraph splitting around images
//   - List, task list and table construction
//   - Inline leaves and mark resolution
//   - Optional resolution of relative media and link URLs
//
// Tokenization lives in internal/token and JSON encoding in the adf
// package. A Builder carries only per-conversion settings, so one
// conversion never observes another.
package pipeline
