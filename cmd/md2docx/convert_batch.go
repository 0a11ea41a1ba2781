package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

// dirPermissions is the mode of output directories created for a batch.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Sentinel errors for batch operations.
var (
	ErrNoInput          = errors.New("no markdown files found")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrConversionFailed = errors.New("conversion failed")
)

// CLIConverter is the subset of *md2docx.Converter the batch needs.
type CLIConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string) (string, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2docx.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string // absolute on success
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with at most workers goroutines.
// The converter is shared: it holds no per-call state.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: creating output directory: %v", md2docx.ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	written, err := conv.ConvertFile(ctx, f.InputPath, f.OutputPath)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}

	result.OutputPath = written
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs batch results and returns the failure count.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// printSingleResult prints the confirmation for a one-file conversion:
// the paths as requested, then the absolute location written.
func printSingleResult(f FileToConvert, r ConversionResult, quiet, verbose bool, env *Environment) {
	if quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "Successfully converted %s to %s\n", f.InputPath, f.OutputPath)
	fmt.Fprintf(env.Stdout, "Document location: %s\n", r.OutputPath)
	if verbose {
		fmt.Fprintf(env.Stdout, "Took %v\n", r.Duration.Round(time.Millisecond))
	}
}
