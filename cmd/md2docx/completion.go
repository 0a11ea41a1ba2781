package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Desc     string   // help text
	IsBool   bool     // takes no value
	Values   []string // for enum flags
	FileGlob string   // for file flags
	IsDir    bool     // directory completion
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"code-theme": {Values: md2docx.CodeThemes},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:   f.Name,
			Short:  f.Shorthand,
			Desc:   f.Usage,
			IsBool: f.Value.Type() == "bool",
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.Values != nil {
				fd.Values = meta.Values()
			}
			fd.FileGlob = meta.FileGlob
			fd.IsDir = meta.IsDir
		}
		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files to DOCX",
			Flags:       extractFlagsFromFlagSet(buildConvertFlagSet(&convertFlags{})),
			FilePattern: "*.md,*.markdown",
		},
		{
			Name: "check",
			Desc: "Report markdown that converts to plain text",
			Flags: []flagDef{
				{Long: "quiet", Short: "q", Desc: "only show errors", IsBool: true},
				{Long: "json", Desc: "print JSON", IsBool: true},
			},
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        "inspect",
			Desc:        "Show the block structure of a DOCX file",
			Flags:       []flagDef{{Long: "json", Desc: "print JSON", IsBool: true}},
			FilePattern: "*.docx",
		},
		{
			Name:  "doctor",
			Desc:  "Check the DOCX backend and environment",
			Flags: []flagDef{{Long: "json", Desc: "print JSON", IsBool: true}},
		},
		{
			Name: "config",
			Desc: "Print the effective configuration",
			Flags: []flagDef{
				{Long: "config", Short: "c", Desc: "config file name or path", FileGlob: "*.yaml,*.yml"},
				{Long: "paths", Desc: "list the locations searched for --config", IsBool: true},
			},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}

	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("# bash completion for md2docx\n")
	sb.WriteString("_md2docx() {\n")
	sb.WriteString("    local cur prev cmd\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	sb.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	fmt.Fprintf(&sb, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -f -X '!*.@(md|markdown)' -- \"$cur\"))\n", commandNames(cmds))
	sb.WriteString("        return\n    fi\n\n")

	sb.WriteString("    case \"$prev\" in\n")
	for _, f := range extractFlagsFromFlagSet(buildConvertFlagSet(&convertFlags{})) {
		names := "--" + f.Long
		if f.Short != "" {
			names += "|-" + f.Short
		}
		switch {
		case len(f.Values) > 0:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"$cur\")); return ;;\n", names, strings.Join(f.Values, " "))
		case f.IsDir:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", names)
		case f.FileGlob != "":
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", names)
		}
	}
	sb.WriteString("    esac\n\n")

	sb.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FilePattern == "" {
			continue
		}
		fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -f -- \"$cur\")) ;;\n", c.Name, flagWords(c.Flags))
	}
	sb.WriteString("    esac\n")
	sb.WriteString("}\n")
	sb.WriteString("complete -o filenames -F _md2docx md2docx\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("#compdef md2docx\n\n")
	sb.WriteString("_md2docx() {\n")
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        _files -g '*.(md|markdown)'\n")
	sb.WriteString("        return\n    fi\n\n")
	sb.WriteString("    case $words[2] in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FilePattern == "" {
			continue
		}
		fmt.Fprintf(&sb, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "                '--%s[%s]%s' \\\n", f.Long, zshEscape(f.Desc), zshAction(f))
		}
		sb.WriteString("                '*:file:_files'\n            ;;\n")
	}
	sb.WriteString("    esac\n")
	sb.WriteString("}\n\n")
	sb.WriteString("compdef _md2docx md2docx\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func zshAction(f flagDef) string {
	switch {
	case f.IsBool:
		return ""
	case len(f.Values) > 0:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case f.IsDir:
		return ":dir:_files -/"
	case f.FileGlob != "":
		return ":file:_files"
	}
	return ":value:"
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("# fish completion for md2docx\n")
	sb.WriteString("complete -c md2docx -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c md2docx -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := "__fish_seen_subcommand_from " + c.Name
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2docx -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch {
			case len(f.Values) > 0:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case f.IsDir || f.FileGlob != "":
				line += " -r -F"
			case !f.IsBool:
				line += " -x"
			}
			line += " -d '" + fishEscape(f.Desc) + "'"
			sb.WriteString(line + "\n")
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&sb, "complete -c md2docx -n '%s' -F\n", cond)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(md2docx completion bash)\"            # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(md2docx completion zsh)\"             # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  md2docx completion fish > ~/.config/fish/completions/md2docx.fish")
}
