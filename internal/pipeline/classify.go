package pipeline

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/alnah/go-md2docx/internal/document"
)

// numberedItem matches "1.", "23." at the start of a line.
var numberedItem = regexp.MustCompile(`^\d+\.`)

// Line prefixes, checked in this order.
const (
	prefixHeading1    = "# "
	prefixHeading2    = "## "
	prefixHeading3    = "### "
	prefixBullet      = "- "
	prefixNested      = "  - "
	prefixNestedTight = "   -"
	ruleMarker        = "---"
	boldMarker        = "**"
)

// BuildOptions controls how lines become blocks.
type BuildOptions struct {
	// LegacyLevel3 makes "### " lines emit the text of the most recent
	// "## " heading instead of their own.
	LegacyLevel3 bool
	RuleWidth    int     // underscores per separator
	BoldSize     float64 // points, for standalone bold lines
	Code         CodeStyle
}

// DefaultBuildOptions returns the options of the stock converter.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		RuleWidth: 80,
		BoldSize:  12,
		Code: CodeStyle{
			Font:  "Courier New",
			Color: document.Color{R: 200, G: 0, B: 0},
		},
	}
}

// BlockBuilder turns Markdown lines into a document.
type BlockBuilder interface {
	Build(ctx context.Context, lines []string) (*document.Document, error)
}

// LineClassifier builds one block per non-empty line using a fixed,
// ordered set of prefix rules. It keeps no state between calls.
type LineClassifier struct {
	opts BuildOptions
}

// NewLineClassifier creates a LineClassifier. Zero-valued numeric options
// take their defaults.
func NewLineClassifier(opts BuildOptions) *LineClassifier {
	def := DefaultBuildOptions()
	if opts.RuleWidth <= 0 {
		opts.RuleWidth = def.RuleWidth
	}
	if opts.BoldSize <= 0 {
		opts.BoldSize = def.BoldSize
	}
	if opts.Code.Font == "" {
		opts.Code.Font = def.Code.Font
	}
	return &LineClassifier{opts: opts}
}

// Build classifies lines top to bottom. Empty lines (after trimming
// trailing whitespace) produce no block; every other line produces exactly one.
func (c *LineClassifier) Build(ctx context.Context, lines []string) (*document.Document, error) {
	doc := document.New()
	var lastHeading2 string

	for _, raw := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		if line == "" {
			continue
		}
		doc.Append(c.classify(line, &lastHeading2))
	}

	return doc, nil
}

// classify maps one non-empty, right-trimmed line to a block.
// The first matching rule wins.
func (c *LineClassifier) classify(line string, lastHeading2 *string) document.Block {
	switch {
	case strings.HasPrefix(line, prefixHeading1):
		return heading(1, strings.TrimSpace(line[len(prefixHeading1):]), document.AlignCenter)

	case strings.HasPrefix(line, prefixHeading2):
		text := strings.TrimSpace(line[len(prefixHeading2):])
		*lastHeading2 = text
		return heading(2, text, document.AlignLeft)

	case strings.HasPrefix(line, prefixHeading3):
		text := strings.TrimSpace(line[len(prefixHeading3):])
		if c.opts.LegacyLevel3 {
			text = *lastHeading2
		}
		return heading(3, text, document.AlignLeft)

	case strings.TrimSpace(line) == ruleMarker:
		return document.Block{
			Kind: document.KindRule,
			Runs: plainRuns(strings.Repeat("_", c.opts.RuleWidth)),
		}

	case isBoldLine(line):
		block := document.Block{Kind: document.KindParagraph}
		if text := line[len(boldMarker) : len(line)-len(boldMarker)]; text != "" {
			block.Runs = []document.Run{{Text: text, Bold: true, Size: c.opts.BoldSize}}
		}
		return block

	case numberedItem.MatchString(line):
		return document.Block{Kind: document.KindNumberedItem, Runs: plainRuns(line)}

	case strings.HasPrefix(line, prefixBullet):
		return document.Block{
			Kind: document.KindBulletItem,
			Runs: splitBold(line[len(prefixBullet):]),
		}

	case strings.HasPrefix(line, prefixNested), strings.HasPrefix(line, prefixNestedTight):
		return document.Block{
			Kind:  document.KindBulletItem,
			Level: 1,
			Runs:  plainRuns(dropRunes(strings.TrimSpace(line), 2)),
		}

	default:
		return document.Block{
			Kind: document.KindParagraph,
			Runs: splitBoldAndCode(line, c.opts.Code),
		}
	}
}

// isBoldLine reports whether the whole line is wrapped in ** markers
// that do not overlap.
func isBoldLine(line string) bool {
	return len(line) >= 2*len(boldMarker) &&
		strings.HasPrefix(line, boldMarker) &&
		strings.HasSuffix(line, boldMarker)
}

func heading(level int, text string, align document.Alignment) document.Block {
	return document.Block{
		Kind:  document.KindHeading,
		Level: level,
		Align: align,
		Runs:  plainRuns(text),
	}
}

// plainRuns returns a single unstyled run, or none for empty text.
func plainRuns(text string) []document.Run {
	if text == "" {
		return nil
	}
	return []document.Run{{Text: text}}
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
