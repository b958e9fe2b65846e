// Package pipeline turns Markdown into an enriched HTML fragment.
//
// Rendering happens in two stages:
//   - Markdown to HTML via goldmark, with chroma syntax highlighting and
//     two inline hooks (images, code spans)
//   - Post-processing of the parsed fragment by a fixed chain of passes:
//     custom ids, custom classes, heading anchors, table of contents,
//     curl highlighting, code filenames
//
// The pass order is significant. Directive ids must land before automatic
// ids are derived, the table of contents needs final ids, and code blocks
// are only moved into figures once nothing else will look for them.
package pipeline
