package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds page title flags.
type documentFlags struct {
	title        string
	defaultTitle string
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	minDepth int
	maxDepth int
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	enabled  bool
	pageSize string
}

// assetFlags holds style and asset flags.
type assetFlags struct {
	style     string // name, path or raw CSS
	assetPath string // override asset directory
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common           commonFlags
	output           string
	workers          int
	timeout          string
	engine           string
	discardOpenFence bool
	document         documentFlags
	toc              tocFlags
	pdf              pdfFlags
	assets           assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds page title flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "page title (\"\" = first \"# \" heading)")
	fs.StringVar(&f.defaultTitle, "default-title", "", "title for documents without a \"# \" heading")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "insert a table of contents")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also export a PDF next to the HTML page")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "PDF page size: letter, a4, legal")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors are returned, not printed; --help returns flag.ErrHelp.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Translation flags
	fs.StringVar(&f.engine, "engine", "", "markdown engine: kb, commonmark")
	fs.BoolVar(&f.discardOpenFence, "discard-open-fence", false, "drop a code block left open at end of file")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addTOCFlags(fs, &f.toc)
	addPDFFlags(fs, &f.pdf)
	addAssetFlags(fs, &f.assets)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
