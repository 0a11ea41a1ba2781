package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	model "github.com/alnah/go-md2docx/internal/document"
)

// ErrDOCXGeneration indicates the DOCX package could not be built or saved.
var ErrDOCXGeneration = errors.New("DOCX generation failed")

// Paragraph style IDs written to word/styles.xml.
const (
	StyleHeading1    = "Heading1"
	StyleHeading2    = "Heading2"
	StyleHeading3    = "Heading3"
	StyleListBullet  = "ListBullet"
	StyleListBullet2 = "ListBullet2"
	StyleListNumber  = "ListNumber"
)

// baseStyle is the style every added style derives from.
const baseStyle = "Normal"

// paragraphStyles lists the styles the writer relies on.
// Missing ones are added to the package before writing.
var paragraphStyles = []struct {
	id     string
	name   string
	bold   bool
	size   measurement.Distance
	indent measurement.Distance
}{
	{id: StyleHeading1, name: "heading 1", bold: true, size: 16 * measurement.Point},
	{id: StyleHeading2, name: "heading 2", bold: true, size: 13 * measurement.Point},
	{id: StyleHeading3, name: "heading 3", bold: true, size: 12 * measurement.Point},
	{id: StyleListBullet, name: "List Bullet"},
	{id: StyleListBullet2, name: "List Bullet 2"},
	{id: StyleListNumber, name: "List Number", indent: 0.25 * measurement.Inch},
}

// bulletSymbols are the markers for list levels 0 and 1.
var bulletSymbols = []string{"•", "◦"}

// DOCXWriter serializes a document model to DOCX bytes.
type DOCXWriter interface {
	Write(ctx context.Context, doc *model.Document) ([]byte, error)
}

// GooxmlWriter writes DOCX packages with baliance.com/gooxml.
type GooxmlWriter struct{}

// NewGooxmlWriter creates a GooxmlWriter.
func NewGooxmlWriter() *GooxmlWriter {
	return &GooxmlWriter{}
}

// Write builds a DOCX package containing one paragraph per block, in order.
// gooxml panics on some malformed inputs; panics are returned as ErrDOCXGeneration.
func (w *GooxmlWriter) Write(ctx context.Context, doc *model.Document) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: %v", ErrDOCXGeneration, r)
		}
	}()

	pkg := newPackage()
	for _, b := range doc.Blocks() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pkg.writeBlock(b)
	}

	var buf bytes.Buffer
	if err := pkg.doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	return buf.Bytes(), nil
}

// Probe builds and validates an empty package with every style and
// numbering definition Write needs, then saves it to memory.
// It is the startup capability check for the DOCX backend.
func (w *GooxmlWriter) Probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDOCXGeneration, r)
		}
	}()

	pkg := newPackage()
	if err := pkg.doc.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	var buf bytes.Buffer
	if err := pkg.doc.Save(&buf); err != nil {
		return fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	return nil
}

// docxPackage is a gooxml document plus the list definitions blocks refer to.
type docxPackage struct {
	doc     *document.Document
	bullets document.NumberingDefinition
}

func newPackage() *docxPackage {
	doc := document.New()
	ensureStyles(doc)
	return &docxPackage{
		doc:     doc,
		bullets: addBulletDefinition(doc),
	}
}

// ensureStyles adds the paragraph styles the writer uses if the base
// template does not define them.
func ensureStyles(doc *document.Document) {
	have := make(map[string]bool)
	for _, s := range doc.Styles.Styles() {
		have[s.StyleID()] = true
	}

	for _, ps := range paragraphStyles {
		if have[ps.id] {
			continue
		}
		s := doc.Styles.AddStyle(ps.id, wml.ST_StyleTypeParagraph, false)
		s.SetName(ps.name)
		s.SetBasedOn(baseStyle)
		if ps.bold {
			s.RunProperties().SetBold(true)
		}
		if ps.size > 0 {
			s.RunProperties().SetSize(ps.size)
		}
		if ps.indent > 0 {
			s.ParagraphProperties().SetLeftIndent(ps.indent)
		}
	}
}

func addBulletDefinition(doc *document.Document) document.NumberingDefinition {
	nd := doc.Numbering.AddDefinition()
	for i, sym := range bulletSymbols {
		lvl := nd.AddLevel()
		lvl.SetFormat(wml.ST_NumberFormatBullet)
		lvl.SetAlignment(wml.ST_JcLeft)
		lvl.Properties().SetLeftIndent(0.5 * measurement.Distance(i+1) * measurement.Inch)
		lvl.Properties().SetHangingIndent(0.25 * measurement.Inch)
		lvl.SetText(sym)
	}
	return nd
}

func (p *docxPackage) writeBlock(b model.Block) {
	para := p.doc.AddParagraph()

	switch b.Kind {
	case model.KindHeading:
		para.SetStyle(headingStyle(b.Level))
	case model.KindBulletItem:
		if b.Level > 0 {
			para.SetStyle(StyleListBullet2)
		} else {
			para.SetStyle(StyleListBullet)
		}
		para.SetNumberingDefinition(p.bullets)
		para.SetNumberingLevel(min(b.Level, len(bulletSymbols)-1))
	case model.KindNumberedItem:
		para.SetStyle(StyleListNumber)
	}

	if b.Align == model.AlignCenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}

	for _, r := range b.Runs {
		writeRun(para.AddRun(), r)
	}
}

func writeRun(run document.Run, r model.Run) {
	run.AddText(r.Text)
	props := run.Properties()
	if r.Bold {
		props.SetBold(true)
	}
	if r.Size > 0 {
		props.SetSize(measurement.Distance(r.Size) * measurement.Point)
	}
	if r.Font != "" {
		props.SetFontFamily(r.Font)
	}
	if r.Color != nil {
		props.SetColor(color.RGB(r.Color.R, r.Color.G, r.Color.B))
	}
}

func headingStyle(level int) string {
	switch level {
	case 1:
		return StyleHeading1
	case 2:
		return StyleHeading2
	default:
		return StyleHeading3
	}
}
