package pipeline

import (
	"regexp"

	"github.com/alnah/go-md2docx/internal/document"
)

// Inline span patterns. Both are non-greedy and non-nested.
var (
	boldSpan       = regexp.MustCompile(`\*\*.*?\*\*`)
	boldOrCodeSpan = regexp.MustCompile("\\*\\*.*?\\*\\*|`.*?`")
)

// CodeStyle is applied to backtick spans.
type CodeStyle struct {
	Font  string
	Color document.Color
}

// splitBold splits text into plain and bold runs on **...** spans.
func splitBold(text string) []document.Run {
	return splitSpans(text, boldSpan, nil)
}

// splitBoldAndCode splits text into plain, bold and monospace runs.
func splitBoldAndCode(text string, code CodeStyle) []document.Run {
	return splitSpans(text, boldOrCodeSpan, &code)
}

// splitSpans walks the matches of re in order, emitting the text between
// matches as plain runs and each match as a styled run with its
// delimiters removed. Empty segments are dropped.
func splitSpans(text string, re *regexp.Regexp, code *CodeStyle) []document.Run {
	var runs []document.Run
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		runs = appendPlain(runs, text[last:m[0]])
		runs = appendSpan(runs, text[m[0]:m[1]], code)
		last = m[1]
	}
	return appendPlain(runs, text[last:])
}

func appendPlain(runs []document.Run, text string) []document.Run {
	if text == "" {
		return runs
	}
	return append(runs, document.Run{Text: text})
}

func appendSpan(runs []document.Run, span string, code *CodeStyle) []document.Run {
	if span[0] == '`' {
		inner := span[1 : len(span)-1]
		if inner == "" {
			return runs
		}
		c := code.Color
		return append(runs, document.Run{
			Text:      inner,
			Monospace: true,
			Font:      code.Font,
			Color:     &c,
		})
	}

	inner := span[2 : len(span)-2]
	if inner == "" {
		return runs
	}
	return append(runs, document.Run{Text: inner, Bold: true})
}
