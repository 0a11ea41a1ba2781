package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

// fileFindings groups lint findings by input file.
type fileFindings struct {
	File     string        `json:"file"`
	Findings []jsonFinding `json:"findings"`
}

type jsonFinding struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// runCheckCmd lints markdown files for constructs that convert to plain text.
// Exit codes: 0 = clean, 1 = findings, 2/3 = usage or I/O errors.
func runCheckCmd(ctx context.Context, args []string, env *Environment) int {
	quiet, jsonOut, positional, err := parseSimpleFlags("check", args, env.Stderr, printCheckUsage)
	if err != nil {
		if errors.Is(err, errHelp) {
			return ExitSuccess
		}
		printError(env, err)
		return ExitUsage
	}

	reports, err := runCheck(ctx, positional)
	if err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}

	total := 0
	for _, r := range reports {
		total += len(r.Findings)
	}

	if jsonOut {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(reports)
	} else if !quiet {
		for _, r := range reports {
			for _, f := range r.Findings {
				fmt.Fprintf(env.Stdout, "%s:%d:%d %s %s\n", r.File, f.Line, f.Column, f.Kind, f.Message)
			}
		}
	}

	if total > 0 {
		fmt.Fprintf(env.Stderr, "%d unsupported construct(s) in %d file(s)%s\n",
			total, countWithFindings(reports), hints.ForUnsupportedConstructs())
		return ExitGeneral
	}
	if !quiet && !jsonOut {
		fmt.Fprintf(env.Stdout, "No unsupported constructs in %d file(s)\n", len(reports))
	}
	return ExitSuccess
}

// runCheck lints the input (file or directory) in discovery order.
func runCheck(ctx context.Context, args []string) ([]fileFindings, error) {
	inputPath := config.DefaultInputPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	files, err := discoverFiles(inputPath, "")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", md2docx.ErrMissingInput, inputPath)
		}
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, inputPath)
	}

	reports := make([]fileFindings, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		findings, err := md2docx.Lint(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.InputPath, err)
		}

		report := fileFindings{File: f.InputPath, Findings: make([]jsonFinding, 0, len(findings))}
		for _, fd := range findings {
			report.Findings = append(report.Findings, jsonFinding(fd))
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func countWithFindings(reports []fileFindings) int {
	n := 0
	for _, r := range reports {
		if len(r.Findings) > 0 {
			n++
		}
	}
	return n
}
