package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/codetheme"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrMissingCapability = errors.New("DOCX backend unavailable")
	ErrMissingInput      = errors.New("input file not found")
	ErrEmptyInputPath    = errors.New("input path cannot be empty")
	ErrEmptyOutputPath   = errors.New("output path cannot be empty")
	ErrWriteOutput       = errors.New("failed to write output")

	// Option validation errors.
	ErrInvalidRuleWidth = errors.New("invalid rule width")
	ErrInvalidBoldSize  = errors.New("invalid bold size")
	ErrInvalidCodeFont  = errors.New("invalid code font")
	ErrUnknownCodeTheme = codetheme.ErrUnknownCodeTheme
	ErrInvalidCodeColor = codetheme.ErrInvalidColor

	// Pipeline errors, re-exported for errors.Is checks.
	ErrInvalidUTF8    = pipeline.ErrInvalidUTF8
	ErrDOCXGeneration = pipeline.ErrDOCXGeneration
	ErrDOCXRead       = pipeline.ErrDOCXRead
)
