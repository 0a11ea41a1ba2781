package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2docx/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain sets up process-wide state and dispatches. args includes the program name.
func runMain(args []string, env *Environment) int {
	args = args[1:]

	log := logging.ForFlags(env.Stderr, false, wantsVerbose(args))
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, a ...any) {
		log.Debug().Msgf(format, a...)
	}))
	defer undo()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return run(ctx, args, env)
}

// run dispatches to a command. With no arguments it converts the default input.
// A first argument that is a flag or a markdown file implies convert.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		return runConvertCmd(ctx, nil, env)
	}

	switch args[0] {
	case "convert":
		return runConvertCmd(ctx, args[1:], env)
	case "check":
		return runCheckCmd(ctx, args[1:], env)
	case "inspect":
		return runInspectCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "config":
		return runConfigCmd(args[1:], env)
	case "completion":
		return runCompletion(args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	}

	if strings.HasPrefix(args[0], "-") || looksLikeMarkdown(args[0]) {
		return runConvertCmd(ctx, args, env)
	}

	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
	printUsage(env.Stderr)
	return ExitUsage
}

// wantsVerbose scans raw args for -v/--verbose before any flag set parses them.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
