// Package document holds the in-memory model built from Markdown lines and
// serialized to DOCX. A Document is an append-only sequence of blocks; each
// block owns an ordered sequence of styled runs.
package document

import "strings"

// Kind identifies the type of a block.
type Kind int

// Block kinds.
const (
	KindParagraph Kind = iota
	KindHeading
	KindBulletItem
	KindNumberedItem
	KindRule
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBulletItem:
		return "bullet"
	case KindNumberedItem:
		return "numbered"
	case KindRule:
		return "rule"
	}
	return "unknown"
}

// Alignment is the horizontal alignment of a block.
type Alignment int

// Alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string (no leading '#').
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	b := []byte{
		digits[c.R>>4], digits[c.R&0x0f],
		digits[c.G>>4], digits[c.G&0x0f],
		digits[c.B>>4], digits[c.B&0x0f],
	}
	return string(b)
}

// Run is a contiguous span of text with optional style attributes.
type Run struct {
	Text      string
	Bold      bool
	Monospace bool
	Font      string  // font family; empty = inherit
	Color     *Color  // nil = inherit
	Size      float64 // points; 0 = inherit
}

// Block is one paragraph-like element of the document.
type Block struct {
	Kind  Kind
	Level int // heading level (1-3) or list indent level (0-1)
	Align Alignment
	Runs  []Run
}

// Text returns the concatenated text of all runs.
func (b Block) Text() string {
	if len(b.Runs) == 1 {
		return b.Runs[0].Text
	}
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is an ordered, append-only sequence of blocks.
type Document struct {
	blocks []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Append adds a block at the end of the document.
func (d *Document) Append(b Block) {
	d.blocks = append(d.blocks, b)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Blocks returns a copy of the blocks in document order.
func (d *Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Texts returns the text of every block in document order.
func (d *Document) Texts() []string {
	out := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = b.Text()
	}
	return out
}

// Equivalent reports whether a and b have the same structure and content:
// block kinds, levels, alignment, run text, bold and monospace flags.
// Fonts, colors and sizes are not compared.
func Equivalent(a, b *Document) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.blocks {
		x, y := a.blocks[i], b.blocks[i]
		if x.Kind != y.Kind || x.Level != y.Level || x.Align != y.Align {
			return false
		}
		if len(x.Runs) != len(y.Runs) {
			return false
		}
		for j := range x.Runs {
			rx, ry := x.Runs[j], y.Runs[j]
			if rx.Text != ry.Text || rx.Bold != ry.Bold || rx.Monospace != ry.Monospace {
				return false
			}
		}
	}
	return true
}
