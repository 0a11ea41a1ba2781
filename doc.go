// Package md2docx converts line-oriented Markdown to Word documents (.docx).
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := conv.ConvertFile(ctx, "user_stories.md", "user_stories.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written to", out)
//
// Convert works on in-memory Markdown and returns both the DOCX bytes
// (result.DOCX) and the document model (result.Document).
//
// # Supported Markdown
//
// Each non-empty line becomes exactly one block. The first matching rule wins:
//
//	# Title            heading 1, centered
//	## Section         heading 2
//	### Subsection     heading 3
//	---                separator of underscores
//	**Bold line**      bold paragraph, 12pt
//	1. Step            numbered item (the numeral is kept in the text)
//	- Item **bold**    bullet, with inline bold
//	  - Nested         second-level bullet, plain text
//	Text `code`        paragraph, with inline bold and code
//
// Everything else (tables, images, links, block quotes, code blocks) is
// copied as plain text. Lint reports such constructs.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithRuleWidth(60),
//	    md2docx.WithCodeTheme("monokai"),
//	    md2docx.WithLegacyLevel3(true),
//	)
//
// # Capability Check
//
// Probe initializes the DOCX backend once and reports ErrMissingCapability
// if it cannot build a document. Call it at startup to fail fast.
//
// # Concurrency
//
// A Converter holds no mutable state after construction and may be shared
// by any number of goroutines. ResolvePoolSize picks a worker count for
// batch conversion.
package md2docx
