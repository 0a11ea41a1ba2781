package pipeline

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates the input is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// byteOrderMark is stripped from the start of the input.
const byteOrderMark = "\uFEFF"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// LineSplitter defines the contract for turning raw input into lines.
type LineSplitter interface {
	SplitLines(ctx context.Context, content []byte) ([]string, error)
}

// TextPreprocessor validates and splits UTF-8 Markdown input.
type TextPreprocessor struct{}

// SplitLines validates content, strips a leading BOM, normalizes line
// endings and returns the lines without their terminators.
// A trailing newline does not produce an extra empty line.
func (p *TextPreprocessor) SplitLines(ctx context.Context, content []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}

	text := strings.TrimPrefix(string(content), byteOrderMark)
	text = normalizeLineEndings(text)
	if text == "" {
		return nil, nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
