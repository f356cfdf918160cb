package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2adf "github.com/alnah/go-md2adf"
	"github.com/alnah/go-md2adf/internal/fileutil"
	"github.com/alnah/go-md2adf/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteJSON    = errors.New("failed to write JSON file")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	InputSize  int
	OutputSize int
}

// convertBatch processes files concurrently with up to workers goroutines
// sharing one Converter. Results keep the order of files.
func convertBatch(ctx context.Context, conv Converter, workers int, files []FileToConvert, params *conversionParams, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))
	if concurrency < 1 {
		concurrency = 1
	}

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
				results[idx] = convertFile(ctx, conv, files[idx], params, env)
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
func convertFile(ctx context.Context, conv Converter, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := env.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	content, err := readInput(f.InputPath, env)
	if err != nil {
		return fail(err)
	}
	result.InputSize = len(content)

	if params.dump != nil {
		params.dump.Dump(ctx, f.InputPath, string(content))
	}

	convResult, err := conv.Convert(ctx, md2adf.Input{Markdown: string(content)})
	if err != nil {
		if errors.Is(err, md2adf.ErrInputTooLarge) {
			err = fmt.Errorf("%w%s", err, hints.ForInputTooLarge(params.maxInputSize))
		}
		return fail(err)
	}

	data, err := convResult.JSON(params.indent)
	if err != nil {
		return fail(err)
	}

	if err := writeOutput(f.OutputPath, data, env); err != nil {
		return fail(err)
	}
	result.OutputSize = len(data)
	result.Duration = env.Now().Sub(start)

	params.logger.Debug("converted",
		"input", f.InputPath,
		"output", f.OutputPath,
		"size", humanize.Bytes(uint64(len(data))),
		"duration", result.Duration.Round(time.Microsecond),
	)
	return result
}

// writeOutput writes JSON to path, or to stdout for "-". Files are
// replaced atomically.
func writeOutput(path string, data []byte, env *Environment) error {
	if path == stdioPath {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteJSON, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteJSON, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Bytes += r.OutputSize
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Results written to stdout are not announced, so piped JSON stays clean.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet || r.OutputPath == stdioPath {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, r.OutputPath, humanize.Bytes(uint64(r.OutputSize)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%s succeeded, %s failed (%s written)\n",
			humanize.Comma(int64(summary.Succeeded)), humanize.Comma(int64(summary.Failed)), humanize.Bytes(uint64(summary.Bytes)))
	}

	return summary.Failed
}
