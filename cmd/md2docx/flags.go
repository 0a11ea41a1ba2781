package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds rendering overrides. Only flags the user passed
// override the config (see convertFlags.changed).
type styleFlags struct {
	legacyH3  bool
	ruleWidth int
	boldSize  float64
	codeFont  string
	codeTheme string
	codeColor string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	style   styleFlags
	output  string
	workers int

	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addStyleFlags adds rendering flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.BoolVar(&f.legacyH3, "legacy-h3", false, `"### " lines repeat the last "## " heading`)
	fs.IntVar(&f.ruleWidth, "rule-width", config.DefaultRuleWidth, "underscores per \"---\" rule")
	fs.Float64Var(&f.boldSize, "bold-size", config.DefaultBoldSize, "point size of standalone bold lines")
	fs.StringVar(&f.codeFont, "code-font", config.DefaultCodeFont, "font family for inline code")
	fs.StringVar(&f.codeTheme, "code-theme", "", "chroma style for the inline code color")
	fs.StringVar(&f.codeColor, "code-color", "", "inline code color as #RRGGBB (wins over --code-theme)")
}

// buildConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parsing and shell completion.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors wrap ErrUsage; --help returns flag.ErrHelp unchanged.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// mergeFlags merges CLI flags into config. Flags the user passed win.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	set := flags.changed
	if set == nil {
		return
	}

	if set("output") {
		cfg.Output.Path = flags.output
	}
	if set("legacy-h3") {
		cfg.Headings.LegacyLevel3 = flags.style.legacyH3
	}
	if set("rule-width") {
		cfg.Rule.Width = flags.style.ruleWidth
	}
	if set("bold-size") {
		cfg.Emphasis.Size = flags.style.boldSize
	}
	if set("code-font") {
		cfg.Code.Font = flags.style.codeFont
	}
	if set("code-theme") {
		cfg.Code.Theme = flags.style.codeTheme
	}
	if set("code-color") {
		cfg.Code.Color = flags.style.codeColor
	}
}

// converterOptions maps a merged config to library options.
func converterOptions(cfg *config.Config) []md2docx.Option {
	return []md2docx.Option{
		md2docx.WithLegacyLevel3(cfg.Headings.LegacyLevel3),
		md2docx.WithRuleWidth(cfg.Rule.Width),
		md2docx.WithBoldSize(cfg.Emphasis.Size),
		md2docx.WithCodeFont(cfg.Code.Font),
		md2docx.WithCodeTheme(cfg.Code.Theme),
		md2docx.WithCodeColor(cfg.Code.Color),
	}
}

// parseSimpleFlags parses a command that only takes the common output
// flags plus --json. Used by check and inspect.
func parseSimpleFlags(name string, args []string, usage io.Writer, printUsage func(io.Writer)) (quiet, jsonOut bool, positional []string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&jsonOut, "json", false, "print JSON")
	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, false, nil, err
		}
		return false, false, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return quiet, jsonOut, fs.Args(), nil
}

// errHelp is returned by parsers when -h/--help was requested.
var errHelp = flag.ErrHelp
