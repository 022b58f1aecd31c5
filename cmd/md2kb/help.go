package main

import (
	"fmt"
	"io"
	"strings"

	md2kb "github.com/alnah/go-md2kb"
	"github.com/alnah/go-md2kb/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2kb [convert] <input> [output] [flags]")
	fmt.Fprintln(w, "       md2kb <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to knowledge base HTML pages (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2kb help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2kb convert <input> [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to styled, self-contained HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output    Output file or directory (default: input with .html extension)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintf(w, "  -w, --workers <n>         Parallel workers (0 = auto, max %d)\n", md2kb.MaxPoolSize)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Translation:")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: kb (default), commonmark")
	fmt.Fprintln(w, "      --discard-open-fence  Drop a code block left open at end of file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first \"# \" heading)")
	fmt.Fprintf(w, "      --default-title <s>   Title without a \"# \" heading (default: %q)\n", md2kb.DefaultTitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Insert a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintf(w, "      --toc-min-depth <n>   Min heading depth (1-6, default: %d)\n", md2kb.DefaultTOCMinDepth)
	fmt.Fprintf(w, "      --toc-max-depth <n>   Max heading depth (1-6, default: %d)\n", md2kb.DefaultTOCMaxDepth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintf(w, "      --style <s>           Style name (%s) or CSS file path\n", strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w, "      --asset-path <path>   Directory overriding styles/ and templates/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Export:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF (requires Chrome)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2kb version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2kb help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
