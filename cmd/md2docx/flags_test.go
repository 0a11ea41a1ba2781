package main

// Notes:
// - parseConvertFlags: shorthand and long forms, positional args, ErrUsage
//   wrapping and --help.
// - mergeFlags: only flags the user passed override the config.

import (
	"errors"
	"io"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseConvertFlags([]string{
		"stories.md", "-o", "out.docx", "-w", "4", "-q",
		"--legacy-h3", "--rule-width", "40", "--code-theme", "monokai",
		"--code-color", "#112233", "--code-font", "Consolas", "--bold-size", "14",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if len(args) != 1 || args[0] != "stories.md" {
		t.Errorf("args = %v, want [stories.md]", args)
	}
	if flags.output != "out.docx" || flags.workers != 4 || !flags.common.quiet {
		t.Errorf("io flags = %+v", flags)
	}
	s := flags.style
	if !s.legacyH3 || s.ruleWidth != 40 || s.codeTheme != "monokai" ||
		s.codeColor != "#112233" || s.codeFont != "Consolas" || s.boldSize != 14 {
		t.Errorf("style flags = %+v", s)
	}
}

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag wraps ErrUsage", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseConvertFlags([]string{"--page-size", "a4"}, io.Discard)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("bad int wraps ErrUsage", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseConvertFlags([]string{"--rule-width", "wide"}, io.Discard)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("help is not an error class", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseConvertFlags([]string{"--help"}, io.Discard)
		if !errors.Is(err, errHelp) {
			t.Errorf("error = %v, want errHelp", err)
		}
		if errors.Is(err, ErrUsage) {
			t.Error("help should not be reported as a usage error")
		}
	})
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("unset flags keep config values", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseConvertFlags(nil, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		cfg := config.DefaultConfig()
		cfg.Rule.Width = 10
		cfg.Code.Theme = "github"
		cfg.Headings.LegacyLevel3 = true

		mergeFlags(flags, cfg)

		if cfg.Rule.Width != 10 || cfg.Code.Theme != "github" || !cfg.Headings.LegacyLevel3 {
			t.Errorf("config overridden by defaults: %+v", cfg)
		}
	})

	t.Run("passed flags win", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseConvertFlags([]string{
			"--rule-width", "20", "--legacy-h3=false", "-o", "dist", "--code-color", "#000000",
		}, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		cfg := config.DefaultConfig()
		cfg.Headings.LegacyLevel3 = true

		mergeFlags(flags, cfg)

		if cfg.Rule.Width != 20 {
			t.Errorf("Rule.Width = %d, want 20", cfg.Rule.Width)
		}
		if cfg.Headings.LegacyLevel3 {
			t.Error("--legacy-h3=false should override config")
		}
		if cfg.Output.Path != "dist" {
			t.Errorf("Output.Path = %q, want dist", cfg.Output.Path)
		}
		if cfg.Code.Color != "#000000" {
			t.Errorf("Code.Color = %q", cfg.Code.Color)
		}
	})

	t.Run("zero-value flags struct is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		mergeFlags(&convertFlags{}, cfg)
		if cfg.Rule.Width != config.DefaultRuleWidth {
			t.Errorf("Rule.Width = %d", cfg.Rule.Width)
		}
	})
}

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Code.Theme = "monokai"

	if _, err := md2docx.NewConverter(converterOptions(cfg)...); err != nil {
		t.Errorf("default config should build a converter: %v", err)
	}

	cfg.Code.Theme = "no-such-theme"
	if _, err := md2docx.NewConverter(converterOptions(cfg)...); !errors.Is(err, md2docx.ErrUnknownCodeTheme) {
		t.Errorf("error = %v, want ErrUnknownCodeTheme", err)
	}
}
