package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
		{"html conversion", fmt.Errorf("x: %w", md2kb.ErrHTMLConversion), ExitGeneral},

		// Browser errors
		{"browser connect", md2kb.ErrBrowserConnect, ExitBrowser},
		{"page create", fmt.Errorf("converting to PDF: %w", md2kb.ErrPageCreate), ExitBrowser},
		{"page load", md2kb.ErrPageLoad, ExitBrowser},
		{"pdf generation", md2kb.ErrPDFGeneration, ExitBrowser},

		// I/O errors
		{"not exist", fmt.Errorf("discovering files: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"write pdf", ErrWritePDF, ExitIO},
		{"create output dir", ErrCreateOutputDir, ExitIO},

		// Usage errors
		{"no input", ErrNoInput, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"output is input", ErrOutputIsInput, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"no markdown files", ErrNoMarkdownFiles, ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid engine", md2kb.ErrInvalidEngine, ExitUsage},
		{"invalid page size", md2kb.ErrInvalidPageSize, ExitUsage},
		{"invalid TOC depth", md2kb.ErrInvalidTOCDepth, ExitUsage},
		{"style not found", fmt.Errorf("initializing converter: %w", md2kb.ErrStyleNotFound), ExitUsage},
		{"template not found", md2kb.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", md2kb.ErrInvalidAssetPath, ExitUsage},
		{"page render", md2kb.ErrPageRender, ExitUsage},

		// Priority: browser beats I/O
		{"browser and io", errors.Join(os.ErrNotExist, md2kb.ErrBrowserConnect), ExitBrowser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
