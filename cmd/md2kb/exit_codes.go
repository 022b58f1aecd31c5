package main

import (
	"errors"
	"os"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/config"
)

// Exit codes for md2kb CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, md2kb.ErrBrowserConnect) ||
		errors.Is(err, md2kb.ErrPageCreate) ||
		errors.Is(err, md2kb.ErrPageLoad) ||
		errors.Is(err, md2kb.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrOutputIsInput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2kb.ErrInvalidEngine) ||
		errors.Is(err, md2kb.ErrInvalidPageSize) ||
		errors.Is(err, md2kb.ErrInvalidTOCDepth) ||
		errors.Is(err, md2kb.ErrStyleNotFound) ||
		errors.Is(err, md2kb.ErrTemplateNotFound) ||
		errors.Is(err, md2kb.ErrInvalidAssetPath) ||
		errors.Is(err, md2kb.ErrPageRender) {
		return ExitUsage
	}

	return ExitGeneral
}
