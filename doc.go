// Package md2kb converts Markdown documents into styled, self-contained HTML
// pages for a knowledge base, with optional PDF export through headless
// Chrome.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := md2kb.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2kb.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (byte order mark, line endings)
//  2. Title extraction from the first "# " heading
//  3. Markdown to HTML, by the line-oriented kb engine or goldmark
//  4. Table of contents injection (optional)
//  5. Page rendering with the embedded style sheet
//  6. PDF rendering via headless Chrome (optional)
//
// The kb engine understands a small subset: headings one to four, rules,
// flat lists, single-line blockquotes, fenced code, pipe tables, bold,
// italic, code spans and links. Every other line is a paragraph. Malformed
// input never fails.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2kb.NewConverter(
//	    md2kb.WithEngine(md2kb.EngineCommonMark),
//	    md2kb.WithStyle("./brand.css"),
//	    md2kb.WithDefaultTitle("Runbook"),
//	    md2kb.WithFencePolicy(md2kb.FenceDiscard),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2kb.Input{
//	    Markdown:  content,
//	    SourceDir: "/path/to/markdown", // for relative image paths in PDFs
//	    TOC:       &md2kb.TOC{Title: "Contents"},
//	    PDF:       &md2kb.PDFSettings{PageSize: md2kb.PageSizeA4},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple converters:
//
//	pool := md2kb.NewConverterPool(md2kb.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first use (~/.cache/rod/browser/). Use
// ROD_BROWSER_BIN to specify a custom Chrome binary. HTML conversion never
// starts a browser.
package md2kb
