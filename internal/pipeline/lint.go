package pipeline

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// maxHeadingLevel is the deepest heading the converter styles.
const maxHeadingLevel = 3

// maxListDepth is the deepest list nesting the converter recognizes.
const maxListDepth = 2

// Finding kinds.
const (
	FindingTable         = "table"
	FindingImage         = "image"
	FindingLink          = "link"
	FindingBlockquote    = "blockquote"
	FindingCodeBlock     = "code-block"
	FindingHTML          = "html"
	FindingHeadingLevel  = "heading-level"
	FindingSetextHeading = "setext-heading"
	FindingNestedList    = "nested-list"
	FindingItalic        = "italic"
	FindingStrikethrough = "strikethrough"
)

// Finding is one Markdown construct the converter renders as plain text.
type Finding struct {
	Line    int    // 1-based
	Column  int    // 1-based, in runes
	Kind    string // one of the Finding* constants
	Message string
}

// String formats the finding as "line:col kind message".
func (f Finding) String() string {
	return fmt.Sprintf("%d:%d %s %s", f.Line, f.Column, f.Kind, f.Message)
}

// Linter reports unsupported Markdown constructs.
type Linter interface {
	Lint(ctx context.Context, source []byte) ([]Finding, error)
}

// GoldmarkLinter parses Markdown with goldmark and walks the AST.
type GoldmarkLinter struct {
	md goldmark.Markdown
}

// NewGoldmarkLinter creates a GoldmarkLinter that also recognizes GFM
// tables and strikethrough so they can be reported.
func NewGoldmarkLinter() *GoldmarkLinter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
	)
	return &GoldmarkLinter{md: md}
}

// Lint returns findings ordered by position. Supports context
// cancellation via goroutine + select since goldmark does not.
func (l *GoldmarkLinter) Lint(ctx context.Context, source []byte) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan []Finding, 1)
	go func() {
		root := l.md.Parser().Parse(text.NewReader(source))
		done <- collectFindings(root, source)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case findings := <-done:
		return findings, nil
	}
}

func collectFindings(root ast.Node, source []byte) []Finding {
	pos := newLineIndex(source)
	var findings []Finding
	add := func(n ast.Node, kind, msg string) {
		line, col := pos.position(offsetOf(n))
		findings = append(findings, Finding{Line: line, Column: col, Kind: kind, Message: msg})
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *extast.Table:
			add(n, FindingTable, "tables are not converted")
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			add(n, FindingImage, "images are not embedded")
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			add(n, FindingLink, "links keep their Markdown syntax")
		case *ast.AutoLink:
			add(n, FindingLink, "autolinks keep their angle brackets")
		case *ast.Blockquote:
			add(n, FindingBlockquote, "block quotes keep their '>' marker")
		case *ast.FencedCodeBlock:
			add(n, FindingCodeBlock, "fenced code lines become separate paragraphs")
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			add(n, FindingCodeBlock, "indented code lines become separate paragraphs")
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			add(n, FindingHTML, "raw HTML is copied as text")
		case *ast.Heading:
			if node.Level > maxHeadingLevel {
				add(n, FindingHeadingLevel, fmt.Sprintf("level %d headings are not styled (max %d)", node.Level, maxHeadingLevel))
			} else if isSetext(node, source) {
				add(n, FindingSetextHeading, "underlined headings are not recognized; use '#' markers")
			}
		case *ast.List:
			if listDepth(node) > maxListDepth {
				add(n, FindingNestedList, fmt.Sprintf("lists nested deeper than %d levels are flattened", maxListDepth))
			}
		case *ast.Emphasis:
			if node.Level == 1 {
				add(n, FindingItalic, "single-asterisk emphasis is not converted")
			}
		case *extast.Strikethrough:
			add(n, FindingStrikethrough, "strikethrough is not converted")
		}
		return ast.WalkContinue, nil
	})

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Column < findings[j].Column
	})
	return findings
}

// isSetext reports whether the heading uses the underline form.
func isSetext(h *ast.Heading, source []byte) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	start := h.Lines().At(0).Start
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	for start < len(source) && (source[start] == ' ' || source[start] == '\t') {
		start++
	}
	return start < len(source) && source[start] != '#'
}

func listDepth(n ast.Node) int {
	depth := 0
	for p := ast.Node(n); p != nil; p = p.Parent() {
		if p.Kind() == ast.KindList {
			depth++
		}
	}
	return depth
}

// offsetOf returns the byte offset of the first source text belonging to
// n, searching its descendants first and then its ancestors.
func offsetOf(n ast.Node) int {
	for p := n; p != nil; p = p.Parent() {
		if off, ok := firstOffset(p); ok {
			return off
		}
	}
	return 0
}

func firstOffset(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if fc, ok := n.(*ast.FencedCodeBlock); ok && fc.Info != nil {
		return fc.Info.Segment.Start, true
	}
	// Lines panics on inline nodes.
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := firstOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}

// lineIndex maps byte offsets to line and column.
type lineIndex struct {
	source []byte
	starts []int
}

func newLineIndex(source []byte) lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{source: source, starts: starts}
}

func (li lineIndex) position(offset int) (line, col int) {
	i := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	start := li.starts[i]
	if offset > len(li.source) {
		offset = len(li.source)
	}
	return i + 1, utf8.RuneCount(li.source[start:offset]) + 1
}
