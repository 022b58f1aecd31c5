package md2kb

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2kb/internal/assets"
	"github.com/alnah/go-md2kb/internal/fileutil"
	"github.com/alnah/go-md2kb/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.LineConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
	_ pipeline.PageRenderer         = (*pipeline.PageTemplate)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// Converter orchestrates the Markdown to HTML page pipeline, with optional
// PDF export. Create with NewConverter, use Convert for conversion, and
// Close when done.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	tocInjector   pipeline.TOCInjector
	pageRenderer  pipeline.PageRenderer
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithStyle, WithAssetPath).
// Returns error if the engine is unknown or asset loading or template
// parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:      defaultTimeout,
			engine:       EngineKB,
			defaultTitle: DefaultTitle,
			fencePolicy:  FenceFlush,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.LinePreprocessor{},
		tocInjector:  pipeline.NewTOCInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.pageRenderer == nil {
		content, err := c.assetLoader.LoadTemplate(assets.PageTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading page template: %w", err)
		}
		c.pageRenderer, err = pipeline.NewPageTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("initializing page renderer: %w", err)
		}
	}

	if c.htmlConverter == nil {
		c.htmlConverter = newHTMLConverter(c.cfg.engine, c.cfg.fencePolicy)
	}

	// Browser launch is deferred until the first PDF request.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// newHTMLConverter returns the translator for a validated engine.
func newHTMLConverter(engine Engine, policy FencePolicy) pipeline.HTMLConverter {
	if engine == EngineCommonMark {
		return pipeline.NewGoldmarkConverter()
	}
	return pipeline.NewLineConverter(policy)
}

// Convert runs the pipeline and returns the HTML page, plus the PDF when
// input.PDF is set. The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := input.Title
	if title == "" {
		title = pipeline.ExtractTitle(mdContent, c.cfg.defaultTitle)
	}

	body, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	body, err = c.tocInjector.InjectTOC(ctx, body, toTOCData(input.TOC))
	if err != nil {
		return nil, fmt.Errorf("injecting TOC: %w", err)
	}

	page, err := c.pageRenderer.RenderPage(ctx, pipeline.PageData{
		Title: title,
		CSS:   c.cfg.resolvedStyle,
		Body:  body,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	res := &ConvertResult{
		HTML:  []byte(page),
		Title: title,
	}

	if input.PDF == nil {
		return res, nil
	}

	// The PDF is printed from a temp file, so relative links must be absolute.
	printable := page
	if input.SourceDir != "" {
		printable, err = pipeline.RewriteRelativePaths(page, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, printable, &pdfOptions{PageSize: input.PDF.PageSize})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser, if launched).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// Engine reports the translator in use.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. An empty input selects the default embedded style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks the optional settings of input.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func validateInput(input Input) error {
	if err := input.TOC.Validate(); err != nil {
		return err
	}
	if err := input.PDF.Validate(); err != nil {
		return err
	}
	return nil
}

// toTOCData converts the public TOC type to internal pipeline.TOCData,
// applying default depths.
func toTOCData(t *TOC) *pipeline.TOCData {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	return &pipeline.TOCData{
		Title:    t.Title,
		MinDepth: minDepth,
		MaxDepth: maxDepth,
	}
}
