package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/alnah/go-md2docx/internal/codetheme"
	model "github.com/alnah/go-md2docx/internal/document"
)

// ErrDOCXRead indicates a DOCX package could not be opened.
var ErrDOCXRead = errors.New("failed to read DOCX")

// ExtractDOCX reads the body paragraphs of a DOCX package back into the
// document model. Style IDs map to block kinds, run bold and font
// properties to run flags. A lone unstyled run of underscores is a rule.
func ExtractDOCX(r io.ReaderAt, size int64) (doc *model.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrDOCXRead, rec)
		}
	}()

	src, err := document.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXRead, err)
	}

	doc = model.New()
	for _, p := range src.Paragraphs() {
		doc.Append(extractBlock(p))
	}
	return doc, nil
}

// ExtractFile reads the DOCX file at path.
func ExtractFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXRead, err)
	}
	return ExtractDOCX(bytes.NewReader(data), int64(len(data)))
}

func extractBlock(p document.Paragraph) model.Block {
	var b model.Block
	for _, r := range p.Runs() {
		b.Runs = append(b.Runs, extractRun(r))
	}

	switch paragraphStyle(p) {
	case StyleHeading1:
		b.Kind, b.Level = model.KindHeading, 1
	case StyleHeading2:
		b.Kind, b.Level = model.KindHeading, 2
	case StyleHeading3:
		b.Kind, b.Level = model.KindHeading, 3
	case StyleListBullet:
		b.Kind = model.KindBulletItem
	case StyleListBullet2:
		b.Kind, b.Level = model.KindBulletItem, 1
	case StyleListNumber:
		b.Kind = model.KindNumberedItem
	default:
		b.Kind = model.KindParagraph
		if isRule(b.Runs) {
			b.Kind = model.KindRule
		}
	}

	if ppr := p.X().PPr; ppr != nil && ppr.Jc != nil && ppr.Jc.ValAttr == wml.ST_JcCenter {
		b.Align = model.AlignCenter
	}
	return b
}

func extractRun(r document.Run) model.Run {
	run := model.Run{Text: r.Text()}

	rpr := r.X().RPr
	if rpr == nil {
		return run
	}
	run.Bold = rpr.B != nil
	if rpr.RFonts != nil && rpr.RFonts.AsciiAttr != nil && *rpr.RFonts.AsciiAttr != "" {
		run.Font = *rpr.RFonts.AsciiAttr
		run.Monospace = true
	}
	if rpr.Sz != nil && rpr.Sz.ValAttr.ST_UnsignedDecimalNumber != nil {
		run.Size = float64(*rpr.Sz.ValAttr.ST_UnsignedDecimalNumber) / 2
	}
	if rpr.Color != nil && rpr.Color.ValAttr.ST_HexColorRGB != nil {
		if c, err := codetheme.ParseHex(*rpr.Color.ValAttr.ST_HexColorRGB); err == nil {
			run.Color = &c
		}
	}
	return run
}

func paragraphStyle(p document.Paragraph) string {
	ppr := p.X().PPr
	if ppr == nil || ppr.PStyle == nil {
		return ""
	}
	return ppr.PStyle.ValAttr
}

// isRule reports whether runs are a single plain run of underscores.
func isRule(runs []model.Run) bool {
	if len(runs) != 1 || runs[0].Bold || runs[0].Monospace {
		return false
	}
	text := runs[0].Text
	return text != "" && strings.Trim(text, "_") == ""
}
