package md2docx

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2docx/internal/codetheme"
	"github.com/alnah/go-md2docx/internal/document"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Document model types.
type (
	Document  = document.Document
	Block     = document.Block
	Run       = document.Run
	Kind      = document.Kind
	Alignment = document.Alignment
	Color     = document.Color
)

// Block kinds.
const (
	KindParagraph    = document.KindParagraph
	KindHeading      = document.KindHeading
	KindBulletItem   = document.KindBulletItem
	KindNumberedItem = document.KindNumberedItem
	KindRule         = document.KindRule
)

// Alignments.
const (
	AlignLeft   = document.AlignLeft
	AlignCenter = document.AlignCenter
)

// Finding is a Markdown construct that converts to plain text only.
type Finding = pipeline.Finding

// Equivalent reports whether two documents have the same block structure,
// run text and bold/monospace flags.
func Equivalent(a, b *Document) bool {
	return document.Equivalent(a, b)
}

// Bounds for converter options.
const (
	DefaultRuleWidth = 80
	MinRuleWidth     = 1
	MaxRuleWidth     = 500

	DefaultBoldSize = 12.0
	MinBoldSize     = 1.0
	MaxBoldSize     = 96.0

	DefaultCodeFont = codetheme.DefaultFont
)

// Input contains conversion parameters.
type Input struct {
	Markdown []byte // UTF-8 Markdown; a leading BOM and CRLF line endings are accepted
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	DOCX     []byte    // serialized .docx package
	Document *Document // block model the package was built from
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	legacyLevel3 bool
	ruleWidth    int
	boldSize     float64
	codeFont     string
	codeTheme    string
	codeColor    string
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		ruleWidth: DefaultRuleWidth,
		boldSize:  DefaultBoldSize,
		codeFont:  DefaultCodeFont,
	}
}

// buildOptions checks option values and resolves the inline code accent.
func (c converterConfig) buildOptions() (pipeline.BuildOptions, error) {
	if c.ruleWidth < MinRuleWidth || c.ruleWidth > MaxRuleWidth {
		return pipeline.BuildOptions{}, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidRuleWidth, c.ruleWidth, MinRuleWidth, MaxRuleWidth)
	}
	if c.boldSize < MinBoldSize || c.boldSize > MaxBoldSize {
		return pipeline.BuildOptions{}, fmt.Errorf("%w: %.1f (must be between %.0f and %.0f)",
			ErrInvalidBoldSize, c.boldSize, MinBoldSize, MaxBoldSize)
	}
	if c.codeFont == "" {
		return pipeline.BuildOptions{}, fmt.Errorf("%w: empty", ErrInvalidCodeFont)
	}

	accent, err := codetheme.Resolve(c.codeTheme, c.codeColor)
	if err != nil {
		return pipeline.BuildOptions{}, err
	}

	return pipeline.BuildOptions{
		LegacyLevel3: c.legacyLevel3,
		RuleWidth:    c.ruleWidth,
		BoldSize:     c.boldSize,
		Code:         pipeline.CodeStyle{Font: c.codeFont, Color: accent},
	}, nil
}

// WithLegacyLevel3 makes "### " lines emit the text of the most recent
// "## " heading, as the legacy user_stories script did.
func WithLegacyLevel3(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.legacyLevel3 = enabled
	}
}

// WithRuleWidth sets the number of underscores a "---" line becomes.
func WithRuleWidth(n int) Option {
	return func(c *Converter) {
		c.cfg.ruleWidth = n
	}
}

// WithBoldSize sets the point size of standalone "**...**" lines.
func WithBoldSize(pt float64) Option {
	return func(c *Converter) {
		c.cfg.boldSize = pt
	}
}

// WithCodeFont sets the font family of inline code runs.
func WithCodeFont(font string) Option {
	return func(c *Converter) {
		c.cfg.codeFont = font
	}
}

// WithCodeTheme takes the inline code color from a chroma style.
// See CodeThemes for valid names.
func WithCodeTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.codeTheme = name
	}
}

// WithCodeColor sets the inline code color as "#RRGGBB".
// It takes precedence over WithCodeTheme.
func WithCodeColor(hex string) Option {
	return func(c *Converter) {
		c.cfg.codeColor = hex
	}
}

// WithLogger sets the logger for conversion diagnostics.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// CodeThemes returns the names accepted by WithCodeTheme.
func CodeThemes() []string {
	return codetheme.Available()
}
