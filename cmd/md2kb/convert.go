package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/config"
	"github.com/alnah/go-md2kb/internal/hints"
)

// Sentinel errors for argument handling.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrTooManyArgs = errors.New("too many arguments")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title   string
	toc     *md2kb.TOC
	pdf     *md2kb.PDFSettings
	quiet   bool
	verbose bool
}

// batchError reports the files that failed in a batch. Unwrap exposes
// every per-file error so exitCodeFor sees their sentinels.
type batchError struct {
	failed []error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", len(e.failed))
}

func (e *batchError) Unwrap() []error {
	return e.failed
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins), then revalidate merged values
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, outputPath, err := resolvePaths(positionalArgs, flags.output, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("discovering files: %w%s", err, hints.ForInputNotFound())
		}
		return fmt.Errorf("discovering files: %w", err)
	}

	opts, err := buildConverterOptions(cfg)
	if err != nil {
		return err
	}
	params := buildConversionParams(flags, cfg)

	poolSize := min(md2kb.ResolvePoolSize(flags.workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := env.NewPool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	// Surface configuration errors (style, templates, engine) once instead
	// of once per file.
	conv, err := pool.Acquire()
	if err != nil {
		return fmt.Errorf("initializing converter: %w%s", err, hintFor(err))
	}
	pool.Release(conv)

	results := convertBatch(ctx, pool, files, params)

	if failed := printResultsWithWriter(results, params.quiet, params.verbose, env); failed > 0 {
		be := &batchError{}
		for _, r := range results {
			if r.Err != nil {
				be.failed = append(be.failed, r.Err)
			}
		}
		return be
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.timeout != "" {
		cfg.PDF.Timeout = flags.timeout
	}
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.discardOpenFence {
		cfg.Fences.DiscardUnterminated = true
	}

	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.defaultTitle != "" {
		cfg.Document.DefaultTitle = flags.document.defaultTitle
	}

	// Asset flags
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	// TOC flags
	if flags.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
	}
	if flags.toc.minDepth != 0 {
		cfg.TOC.MinDepth = flags.toc.minDepth
	}
	if flags.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
	}

	// PDF flags
	if flags.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if flags.pdf.pageSize != "" {
		cfg.PDF.PageSize = flags.pdf.pageSize
	}
}

// resolvePaths determines the input and output paths from positional
// arguments, the --output flag and config defaults.
func resolvePaths(args []string, flagOutput string, cfg *config.Config) (input, output string, err error) {
	switch {
	case len(args) > 2:
		return "", "", fmt.Errorf("%w: got %d, want at most <input> [output]", ErrTooManyArgs, len(args))
	case len(args) == 2 && flagOutput != "":
		return "", "", fmt.Errorf("%w: output given both as argument and with --output", ErrTooManyArgs)
	}

	input, err = resolveInputPath(args, cfg)
	if err != nil {
		return "", "", err
	}

	switch {
	case flagOutput != "":
		output = flagOutput
	case len(args) == 2:
		output = args[1]
	case cfg.Output.DefaultDir != "":
		// The configured output is always a directory, even for one file.
		output = cfg.Output.DefaultDir + string(filepath.Separator)
	}
	return input, output, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// buildConverterOptions translates config into converter options.
// cfg must have passed Validate.
func buildConverterOptions(cfg *config.Config) ([]md2kb.Option, error) {
	engine, err := md2kb.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	opts := []md2kb.Option{
		md2kb.WithEngine(engine),
		md2kb.WithDefaultTitle(cfg.Document.DefaultTitle),
	}
	if cfg.Style != "" {
		opts = append(opts, md2kb.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2kb.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Fences.DiscardUnterminated {
		opts = append(opts, md2kb.WithFencePolicy(md2kb.FenceDiscard))
	}
	if d := cfg.PDFTimeout(); d > 0 {
		opts = append(opts, md2kb.WithTimeout(d))
	}
	return opts, nil
}

// buildConversionParams collects the per-input settings shared by every
// file in the batch.
func buildConversionParams(flags *convertFlags, cfg *config.Config) *conversionParams {
	params := &conversionParams{
		title:   cfg.Document.Title,
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
	}
	if cfg.TOC.Enabled {
		params.toc = &md2kb.TOC{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}
	}
	if cfg.PDF.Enabled {
		params.pdf = &md2kb.PDFSettings{PageSize: cfg.PDF.PageSize}
	}
	return params
}
