package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no arguments, converts user_stories.md to user_stories.docx")
	fmt.Fprintln(w, "in the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to DOCX (default)")
	fmt.Fprintln(w, "  check       Report markdown that converts to plain text")
	fmt.Fprintln(w, "  inspect     Show the block structure of a DOCX file")
	fmt.Fprintln(w, "  doctor      Check the DOCX backend and environment")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (default: input.path from config, then user_stories.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --legacy-h3           \"### \" lines repeat the last \"## \" heading")
	fmt.Fprintln(w, "      --rule-width <n>      Underscores per \"---\" rule (default 80)")
	fmt.Fprintln(w, "      --bold-size <pt>      Point size of standalone bold lines (default 12)")
	fmt.Fprintln(w, "      --code-font <name>    Inline code font (default Courier New)")
	fmt.Fprintln(w, "      --code-theme <name>   Take the inline code color from a chroma style")
	fmt.Fprintln(w, "      --code-color <hex>    Inline code color, e.g. #C80000 (wins over theme)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx check [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report tables, links, images, code blocks and other markdown that")
	fmt.Fprintln(w, "the converter renders as plain text. Exits 1 when anything is found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet    Only print the summary")
	fmt.Fprintln(w, "      --json     Print findings as JSON")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx inspect <file.docx> [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print one line per paragraph: kind, level and text.")
	fmt.Fprintln(w, "Centered paragraphs are marked with '*'.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx config [-c name] [--paths]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "With --paths, list where a config name is looked up.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: md2docx doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that the DOCX writer works and report the environment.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
