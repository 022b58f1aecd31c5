package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/assets"
	"github.com/alnah/go-md2kb/internal/fileutil"
	"github.com/alnah/go-md2kb/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrWritePDF        = errors.New("failed to write PDF file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string // empty unless a PDF was written
	Title      string
	HTMLSize   int
	PDFSize    int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("initializing converter: %w", err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
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

// convertFile processes a single file and returns the result. Nothing is
// written unless the conversion succeeded.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := fileutil.ReadText(f.InputPath)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	convResult, err := conv.Convert(ctx, md2kb.Input{
		Markdown:  content,
		Title:     params.title,
		SourceDir: filepath.Dir(f.InputPath),
		TOC:       params.toc,
		PDF:       params.pdf,
	})
	if err != nil {
		return fail(err)
	}
	result.Title = convResult.Title

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCreateOutputDir, err))
	}

	// #nosec G306 -- HTML pages are meant to be readable
	if err := fileutil.WriteFile(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}
	result.HTMLSize = len(convResult.HTML)

	if convResult.PDF != nil {
		pdfPath := pdfOutputPath(f.OutputPath)
		// #nosec G306 -- PDFs are meant to be readable
		if err := fileutil.WriteFile(pdfPath, convResult.PDF, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWritePDF, err))
		}
		result.PDFPath = pdfPath
		result.PDFSize = len(convResult.PDF)
	}

	result.Duration = time.Since(start)
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

// printResultsWithWriter outputs conversion results using the provided
// writers and returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		fmt.Fprintf(env.Stdout, "Converted %s to %s\n", r.InputPath, r.OutputPath)
		fmt.Fprintf(env.Stdout, "File size: %.1f KB\n", kilobytes(r.HTMLSize))
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Exported %s (%.1f KB)\n", r.PDFPath, kilobytes(r.PDFSize))
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "Title: %s (%v)\n", r.Title, r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

func kilobytes(n int) float64 {
	return float64(n) / 1024
}

// hintFor returns an actionable hint for a per-file error, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2kb.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, md2kb.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	case errors.Is(err, md2kb.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	}
	return ""
}
