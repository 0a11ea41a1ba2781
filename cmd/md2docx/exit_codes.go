package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Exit codes for the md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error, or findings from check
	ExitUsage      = 2 // Invalid flags, config, or input encoding
	ExitIO         = 3 // Missing input, unwritable output
	ExitCapability = 4 // DOCX backend failed its startup probe
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, md2docx.ErrMissingCapability) {
		return ExitCapability
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2docx.ErrMissingInput) ||
		errors.Is(err, md2docx.ErrWriteOutput) ||
		errors.Is(err, md2docx.ErrDOCXRead) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2docx.ErrInvalidUTF8) ||
		errors.Is(err, md2docx.ErrEmptyInputPath) ||
		errors.Is(err, md2docx.ErrEmptyOutputPath) ||
		errors.Is(err, md2docx.ErrInvalidRuleWidth) ||
		errors.Is(err, md2docx.ErrInvalidBoldSize) ||
		errors.Is(err, md2docx.ErrInvalidCodeFont) ||
		errors.Is(err, md2docx.ErrUnknownCodeTheme) ||
		errors.Is(err, md2docx.ErrInvalidCodeColor) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
