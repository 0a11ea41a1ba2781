package pipeline

// Notes:
// - Each case feeds a single line through Build and checks the one block it
//   produces. Block-count and ordering properties use multi-line inputs.
// - Code runs carry font and color; the plain-run helpers below ignore them.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/document"
)

func buildLines(t *testing.T, opts BuildOptions, lines ...string) *document.Document {
	t.Helper()

	doc, err := NewLineClassifier(opts).Build(context.Background(), lines)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return doc
}

func buildOne(t *testing.T, line string) document.Block {
	t.Helper()

	doc := buildLines(t, DefaultBuildOptions(), line)
	if doc.Len() != 1 {
		t.Fatalf("Build(%q) produced %d blocks, want 1", line, doc.Len())
	}
	return doc.Blocks()[0]
}

// ---------------------------------------------------------------------------
// TestLineClassifier_Rules - One rule per line shape
// ---------------------------------------------------------------------------

func TestLineClassifier_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		kind  document.Kind
		level int
		align document.Alignment
		text  string
	}{
		{"heading 1 centered", "# Title", document.KindHeading, 1, document.AlignCenter, "Title"},
		{"heading 1 trims", "#   Spaced  ", document.KindHeading, 1, document.AlignCenter, "Spaced"},
		{"heading 2", "## Section", document.KindHeading, 2, document.AlignLeft, "Section"},
		{"heading 3", "### Sub", document.KindHeading, 3, document.AlignLeft, "Sub"},
		{"heading 4 is a paragraph", "#### Deep", document.KindParagraph, 0, document.AlignLeft, "#### Deep"},
		{"hash without space", "#tag", document.KindParagraph, 0, document.AlignLeft, "#tag"},
		{"rule", "---", document.KindRule, 0, document.AlignLeft, strings.Repeat("_", 80)},
		{"indented rule", "  ---", document.KindRule, 0, document.AlignLeft, strings.Repeat("_", 80)},
		{"four dashes", "----", document.KindParagraph, 0, document.AlignLeft, "----"},
		{"bold line", "**Bold Only**", document.KindParagraph, 0, document.AlignLeft, "Bold Only"},
		{"numbered", "1. First step", document.KindNumberedItem, 0, document.AlignLeft, "1. First step"},
		{"numbered multi digit", "23.Next", document.KindNumberedItem, 0, document.AlignLeft, "23.Next"},
		{"bullet", "- item", document.KindBulletItem, 0, document.AlignLeft, "item"},
		{"nested bullet two spaces", "  - child", document.KindBulletItem, 1, document.AlignLeft, "child"},
		{"nested bullet three spaces", "   -child", document.KindBulletItem, 1, document.AlignLeft, "hild"},
		{"nested bullet multibyte", "  - é**x**", document.KindBulletItem, 1, document.AlignLeft, "é**x**"},
		{"plain paragraph", "Just text", document.KindParagraph, 0, document.AlignLeft, "Just text"},
		{"trailing whitespace trimmed", "Just text \t ", document.KindParagraph, 0, document.AlignLeft, "Just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := buildOne(t, tt.line)
			if b.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", b.Kind, tt.kind)
			}
			if b.Level != tt.level {
				t.Errorf("level = %d, want %d", b.Level, tt.level)
			}
			if b.Align != tt.align {
				t.Errorf("align = %v, want %v", b.Align, tt.align)
			}
			if got := b.Text(); got != tt.text {
				t.Errorf("text = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestLineClassifier_BoldLine(t *testing.T) {
	t.Parallel()

	b := buildOne(t, "**Bold Only**")
	if len(b.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(b.Runs))
	}
	r := b.Runs[0]
	if !r.Bold || r.Size != 12 || r.Text != "Bold Only" {
		t.Errorf("run = %+v, want bold 12pt %q", r, "Bold Only")
	}
}

func TestLineClassifier_ShortBoldMarkers(t *testing.T) {
	t.Parallel()

	// "***" has overlapping markers and falls through to a paragraph.
	b := buildOne(t, "***")
	if b.Kind != document.KindParagraph || b.Text() != "***" {
		t.Errorf("block = %+v, want plain paragraph %q", b, "***")
	}
}

// ---------------------------------------------------------------------------
// TestLineClassifier_InlineRuns - Bold and code splitting
// ---------------------------------------------------------------------------

type wantRun struct {
	text string
	bold bool
	mono bool
}

func checkRuns(t *testing.T, got []document.Run, want []wantRun) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("runs = %+v, want %d runs", got, len(want))
	}
	for i, w := range want {
		g := got[i]
		if g.Text != w.text || g.Bold != w.bold || g.Monospace != w.mono {
			t.Errorf("run[%d] = {%q bold=%v mono=%v}, want {%q bold=%v mono=%v}",
				i, g.Text, g.Bold, g.Monospace, w.text, w.bold, w.mono)
		}
	}
}

func TestLineClassifier_InlineRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []wantRun
	}{
		{
			name: "bullet with bold",
			line: "- item with **bold** word",
			want: []wantRun{{"item with ", false, false}, {"bold", true, false}, {" word", false, false}},
		},
		{
			name: "bullet ignores code",
			line: "- use `code`",
			want: []wantRun{{"use `code`", false, false}},
		},
		{
			name: "bullet bold is non-greedy",
			line: "- **a** and **b**",
			want: []wantRun{{"a", true, false}, {" and ", false, false}, {"b", true, false}},
		},
		{
			name: "paragraph with code",
			line: "Use `code` here",
			want: []wantRun{{"Use ", false, false}, {"code", false, true}, {" here", false, false}},
		},
		{
			name: "paragraph with bold and code",
			line: "**Note:** run `make`",
			want: []wantRun{{"Note:", true, false}, {" run ", false, false}, {"make", false, true}},
		},
		{
			name: "code inside bold is not nested",
			line: "x **a `b` c** y",
			want: []wantRun{{"x ", false, false}, {"a `b` c", true, false}, {" y", false, false}},
		},
		{
			name: "bold inside code is not nested",
			line: "x `a **b**` y",
			want: []wantRun{{"x ", false, false}, {"a **b**", false, true}, {" y", false, false}},
		},
		{
			name: "unclosed bold stays plain",
			line: "a **b",
			want: []wantRun{{"a **b", false, false}},
		},
		{
			name: "empty code span dropped",
			line: "a `` b",
			want: []wantRun{{"a ", false, false}, {" b", false, false}},
		},
		{
			name: "nested bullet has no inline parsing",
			line: "  - **x**",
			want: []wantRun{{"**x**", false, false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkRuns(t, buildOne(t, tt.line).Runs, tt.want)
		})
	}
}

func TestLineClassifier_CodeStyle(t *testing.T) {
	t.Parallel()

	opts := DefaultBuildOptions()
	opts.Code = CodeStyle{Font: "Consolas", Color: document.Color{R: 1, G: 2, B: 3}}

	doc := buildLines(t, opts, "`x`")
	r := doc.Blocks()[0].Runs[0]
	if r.Font != "Consolas" {
		t.Errorf("font = %q, want Consolas", r.Font)
	}
	if r.Color == nil || *r.Color != (document.Color{R: 1, G: 2, B: 3}) {
		t.Errorf("color = %v, want {1 2 3}", r.Color)
	}
}

func TestLineClassifier_DefaultCodeStyle(t *testing.T) {
	t.Parallel()

	r := buildOne(t, "`x`").Runs[0]
	if r.Font != "Courier New" {
		t.Errorf("font = %q, want Courier New", r.Font)
	}
	if r.Color == nil || r.Color.Hex() != "C80000" {
		t.Errorf("color = %v, want C80000", r.Color)
	}
}

// ---------------------------------------------------------------------------
// TestLineClassifier_Level3 - Fixed and legacy heading text
// ---------------------------------------------------------------------------

func TestLineClassifier_Level3(t *testing.T) {
	t.Parallel()

	lines := []string{"### Orphan", "## Section A", "### Sub 1", "## Section B", "### Sub 2"}

	t.Run("default uses own text", func(t *testing.T) {
		t.Parallel()

		doc := buildLines(t, DefaultBuildOptions(), lines...)
		want := []string{"Orphan", "Section A", "Sub 1", "Section B", "Sub 2"}
		assertTexts(t, doc.Texts(), want)
	})

	t.Run("legacy reuses last level 2 text", func(t *testing.T) {
		t.Parallel()

		opts := DefaultBuildOptions()
		opts.LegacyLevel3 = true
		doc := buildLines(t, opts, lines...)
		want := []string{"", "Section A", "Section A", "Section B", "Section B"}
		assertTexts(t, doc.Texts(), want)

		for i, b := range doc.Blocks() {
			if b.Kind != document.KindHeading {
				t.Errorf("block %d kind = %v, want heading", i, b.Kind)
			}
		}
	})
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestLineClassifier_BlockCount - One block per non-empty line
// ---------------------------------------------------------------------------

func TestLineClassifier_BlockCount(t *testing.T) {
	t.Parallel()

	lines := []string{
		"# Title",
		"",
		"   ",
		"## Section",
		"- a",
		"  - b",
		"",
		"1. one",
		"---",
		"**Bold**",
		"text with `code`",
		"\t",
	}

	nonEmpty := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty++
		}
	}

	doc := buildLines(t, DefaultBuildOptions(), lines...)
	if doc.Len() != nonEmpty {
		t.Errorf("blocks = %d, want %d", doc.Len(), nonEmpty)
	}
}

func TestLineClassifier_RuleWidth(t *testing.T) {
	t.Parallel()

	opts := DefaultBuildOptions()
	opts.RuleWidth = 10
	doc := buildLines(t, opts, "---")

	if got := doc.Blocks()[0].Text(); got != "__________" {
		t.Errorf("rule = %q, want 10 underscores", got)
	}
}

func TestNewLineClassifier_ZeroOptionsUseDefaults(t *testing.T) {
	t.Parallel()

	doc := buildLines(t, BuildOptions{}, "---", "**b**", "`c`")
	blocks := doc.Blocks()

	if got := len(blocks[0].Text()); got != 80 {
		t.Errorf("rule width = %d, want 80", got)
	}
	if got := blocks[1].Runs[0].Size; got != 12 {
		t.Errorf("bold size = %v, want 12", got)
	}
	if got := blocks[2].Runs[0].Font; got != "Courier New" {
		t.Errorf("code font = %q, want Courier New", got)
	}
}

func TestLineClassifier_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLineClassifier(DefaultBuildOptions()).Build(ctx, []string{"a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDropRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"- x", 2, "x"},
		{"ab", 2, ""},
		{"a", 2, ""},
		{"éèx", 2, "x"},
		{"", 2, ""},
	}

	for _, tt := range tests {
		if got := dropRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("dropRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
