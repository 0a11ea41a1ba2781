package md2docx

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.LineSplitter = (*pipeline.TextPreprocessor)(nil)
	_ pipeline.BlockBuilder = (*pipeline.LineClassifier)(nil)
	_ pipeline.DOCXWriter   = (*pipeline.GooxmlWriter)(nil)
	_ pipeline.Linter       = (*pipeline.GoldmarkLinter)(nil)
	_ prober                = (*pipeline.GooxmlWriter)(nil)
)

// outputPerm is the mode of written .docx files.
const outputPerm = 0o644

// Converter orchestrates the Markdown-to-DOCX pipeline.
// Create with NewConverter(); a Converter is safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	log      zerolog.Logger
	splitter pipeline.LineSplitter
	builder  pipeline.BlockBuilder
	writer   pipeline.DOCXWriter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithRuleWidth, WithCodeTheme).
// Returns error if an option value is out of range or the code theme is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      defaultConverterConfig(),
		log:      zerolog.Nop(),
		splitter: &pipeline.TextPreprocessor{},
		writer:   pipeline.NewGooxmlWriter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	buildOpts, err := c.cfg.buildOptions()
	if err != nil {
		return nil, err
	}

	// Builder may be injected by tests.
	if c.builder == nil {
		c.builder = pipeline.NewLineClassifier(buildOpts)
	}

	c.log.Debug().
		Bool("legacy_h3", buildOpts.LegacyLevel3).
		Int("rule_width", buildOpts.RuleWidth).
		Str("code_font", buildOpts.Code.Font).
		Str("code_color", buildOpts.Code.Color.Hex()).
		Msg("converter ready")

	return c, nil
}

// Convert runs the full pipeline on in-memory Markdown.
// The context is checked between lines and blocks.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	lines, err := c.splitter.SplitLines(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}

	doc, err := c.builder.Build(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("classifying lines: %w", err)
	}

	data, err := c.writer.Write(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("writing DOCX: %w", err)
	}

	c.log.Debug().
		Int("lines", len(lines)).
		Int("blocks", doc.Len()).
		Int("bytes", len(data)).
		Msg("converted")

	return &ConvertResult{DOCX: data, Document: doc}, nil
}

// ConvertFile converts the Markdown file at inputPath and writes the
// result to outputPath, replacing any existing file. The write is atomic:
// on failure no partial file is left behind.
// Returns the absolute path of the written file.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (string, error) {
	if inputPath == "" {
		return "", ErrEmptyInputPath
	}
	if outputPath == "" {
		return "", ErrEmptyOutputPath
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
		}
		return "", fmt.Errorf("reading %s: %w", inputPath, err)
	}

	result, err := c.Convert(ctx, Input{Markdown: content})
	if err != nil {
		return "", fmt.Errorf("%s: %w", inputPath, err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := fileutil.WriteFileAtomic(absPath, result.DOCX, outputPerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	c.log.Debug().Str("input", inputPath).Str("output", absPath).Msg("written")
	return absPath, nil
}

// Lint reports Markdown constructs that the converter renders as plain text.
func Lint(ctx context.Context, markdown []byte) ([]Finding, error) {
	lines, err := (&pipeline.TextPreprocessor{}).SplitLines(ctx, markdown)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return pipeline.NewGoldmarkLinter().Lint(ctx, markdown)
}

// Extract reads a .docx package back into the document model.
func Extract(r io.ReaderAt, size int64) (*Document, error) {
	return pipeline.ExtractDOCX(r, size)
}

// ExtractFile reads the .docx file at path into the document model.
func ExtractFile(path string) (*Document, error) {
	return pipeline.ExtractFile(path)
}
