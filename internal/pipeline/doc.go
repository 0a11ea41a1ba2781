// Package pipeline implements the Markdown-to-DOCX conversion stages.
//
// A conversion runs four stages in order:
//   - Preprocessing (BOM strip, line ending normalization, UTF-8 check)
//   - Line classification into document blocks
//   - Inline run splitting for bold and code spans
//   - DOCX serialization via gooxml
//
// The package also reads DOCX files back into the document model
// (ExtractDOCX) and reports Markdown constructs outside the supported
// line-oriented subset (Lint).
package pipeline
