package md2kb

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2kb/internal/pipeline"
)

// Engine selects the Markdown to HTML translator.
type Engine string

// Engine constants.
const (
	// EngineKB is the line-oriented knowledge base translator.
	EngineKB Engine = "kb"

	// EngineCommonMark is goldmark with GFM and syntax highlighting.
	EngineCommonMark Engine = "commonmark"
)

// ParseEngine maps a case-insensitive engine name to an Engine.
// The empty string selects EngineKB.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(name)) {
	case "", EngineKB:
		return EngineKB, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, name, EngineKB, EngineCommonMark)
}

// FencePolicy decides what happens to a code fence still open at the end
// of the document.
type FencePolicy = pipeline.FencePolicy

// Fence policies.
const (
	// FenceFlush emits the buffered lines as a code block.
	FenceFlush = pipeline.FenceFlush

	// FenceDiscard drops the buffered lines.
	FenceDiscard = pipeline.FenceDiscard
)

// DefaultTitle is used when a document has no "# " heading.
const DefaultTitle = pipeline.DefaultTitle

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// PDFSettings requests PDF export alongside the HTML page.
type PDFSettings struct {
	PageSize string // "letter" (default), "a4", "legal"
}

// Validate checks that the page size is known.
// Returns nil if p is nil (nil means no PDF).
func (p *PDFSettings) Validate() error {
	if p == nil {
		return nil
	}
	if !isValidPageSize(p.PageSize) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
// The empty string means the default.
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// TOC depth bounds.
const (
	MinTOCDepth        = 1
	MaxTOCDepth        = 6
	DefaultTOCMinDepth = pipeline.DefaultTOCMinDepth
	DefaultTOCMaxDepth = pipeline.DefaultTOCMaxDepth
)

// TOC configures the table of contents. Zero depths take the defaults.
type TOC struct {
	Title    string
	MinDepth int
	MaxDepth int
}

// Validate checks the depth range.
// Returns nil if t is nil (nil means no table of contents).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	if minDepth < MinTOCDepth || minDepth > MaxTOCDepth {
		return fmt.Errorf("%w: minDepth %d (must be %d-%d)", ErrInvalidTOCDepth, minDepth, MinTOCDepth, MaxTOCDepth)
	}
	if maxDepth < MinTOCDepth || maxDepth > MaxTOCDepth {
		return fmt.Errorf("%w: maxDepth %d (must be %d-%d)", ErrInvalidTOCDepth, maxDepth, MinTOCDepth, MaxTOCDepth)
	}
	if minDepth > maxDepth {
		return fmt.Errorf("%w: minDepth %d exceeds maxDepth %d", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return nil
}

func (t *TOC) depths() (minDepth, maxDepth int) {
	minDepth, maxDepth = t.MinDepth, t.MaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = DefaultTOCMaxDepth
	}
	return minDepth, maxDepth
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string       // Markdown content, may be empty
	Title     string       // overrides the extracted title (optional)
	SourceDir string       // resolves relative paths for PDF export (optional)
	TOC       *TOC         // table of contents (optional)
	PDF       *PDFSettings // PDF export (optional, nil = HTML only)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  []byte // complete HTML page
	PDF   []byte // nil unless Input.PDF was set
	Title string // title used for the page
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	engine        Engine
	styleInput    string // name, file path, or CSS content
	resolvedStyle string
	assetPath     string
	defaultTitle  string
	fencePolicy   FencePolicy
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2kb: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown translator. NewConverter rejects
// unknown engines with ErrInvalidEngine.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithStyle sets the style sheet: an embedded style name, a path to a CSS
// file, or raw CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithDefaultTitle sets the title used when a document has no "# " heading.
// An empty title keeps DefaultTitle.
func WithDefaultTitle(title string) Option {
	return func(c *Converter) {
		if title != "" {
			c.cfg.defaultTitle = title
		}
	}
}

// WithFencePolicy sets the handling of an unterminated code fence.
// Only the kb engine honors it.
func WithFencePolicy(p FencePolicy) Option {
	return func(c *Converter) {
		c.cfg.fencePolicy = p
	}
}
