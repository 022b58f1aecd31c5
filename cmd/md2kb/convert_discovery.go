package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrOutputIsInput      = errors.New("output path is the input path")
)

const htmlExt = ".html"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert. A file input is
// converted whatever its extension; a directory input contributes its
// .md and .markdown files, recursively.
func discoverFiles(inputPath, outputPath string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		outPath := resolveOutputPath(inputPath, outputPath, "")
		if samePath(inputPath, outPath) {
			return nil, fmt.Errorf("%w: %s", ErrOutputIsInput, inputPath)
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputPath, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
// For a single file the output is used as given, unless it names an
// existing directory or ends in a path separator. A walk mirrors the input
// tree under the output directory.
func resolveOutputPath(inputPath, outputPath, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExt(inputPath, htmlExt))

	if outputPath == "" {
		return fileutil.ReplaceExt(inputPath, htmlExt)
	}

	if baseInputDir == "" {
		if isDirTarget(outputPath) {
			return filepath.Join(outputPath, base)
		}
		return outputPath
	}

	relPath, err := filepath.Rel(baseInputDir, inputPath)
	if err != nil {
		return filepath.Join(outputPath, base)
	}
	return filepath.Join(outputPath, filepath.Dir(relPath), base)
}

// isDirTarget reports whether path ends in a separator or is an existing
// directory.
func isDirTarget(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// pdfOutputPath names the PDF written next to an HTML output. An HTML
// output that already ends in .pdf gets a second extension rather than
// being overwritten.
func pdfOutputPath(htmlPath string) string {
	pdfPath := fileutil.ReplaceExt(htmlPath, ".pdf")
	if pdfPath == htmlPath {
		return htmlPath + ".pdf"
	}
	return pdfPath
}

// samePath reports whether a and b resolve to the same cleaned absolute path.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2kb.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2kb.MaxPoolSize)
	}
	return nil
}
