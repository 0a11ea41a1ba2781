package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/logging"
)

// runConvertCmd parses convert flags, runs the conversion and returns an exit code.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return ExitSuccess
		}
		printError(env, err)
		return ExitUsage
	}

	log := logging.ForFlags(env.Stderr, flags.common.quiet, flags.common.verbose)
	if err := runConvert(ctx, positional, flags, log, env); err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, log zerolog.Logger, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	if err := env.probe(); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath := resolveInputPath(positionalArgs, cfg)

	files, err := discoverFiles(inputPath, cfg.Output.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", md2docx.ErrMissingInput, inputPath)
		}
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInput, inputPath)
	}

	conv, err := md2docx.NewConverter(append(converterOptions(cfg), md2docx.WithLogger(log))...)
	if err != nil {
		return err
	}

	workers := md2docx.ResolvePoolSize(flags.workers)
	log.Debug().Int("files", len(files)).Int("workers", workers).Msg("starting conversion")

	results := convertBatch(ctx, conv, workers, files)

	// A single named file keeps its underlying error so the exit code
	// reflects the cause.
	if len(files) == 1 && files[0].InputPath == inputPath {
		if results[0].Err != nil {
			return results[0].Err
		}
		printSingleResult(files[0], results[0], flags.common.quiet, flags.common.verbose, env)
		return nil
	}

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}

	return nil
}

// loadConfig loads the named config, or returns the environment base.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		return env.baseConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveInputPath determines the input path from args or config.
// With neither, user_stories.md in the current directory.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path
	}
	return config.DefaultInputPath
}

// printError writes err with a hint for the failures users can act on.
func printError(env *Environment, err error) {
	fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
}

// hintFor picks a hint by error class. Config hints are already part of the message.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2docx.ErrMissingCapability):
		return hints.ForMissingCapability()
	case errors.Is(err, md2docx.ErrMissingInput):
		return hints.ForMissingInput(config.DefaultInputPath)
	case errors.Is(err, md2docx.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2docx.ErrUnknownCodeTheme):
		return hints.ForUnknownTheme(md2docx.CodeThemes())
	}
	return ""
}
