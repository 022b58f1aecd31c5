package md2kb_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alnah/go-md2kb"
)

// Example demonstrates basic markdown to HTML conversion.
func Example() {
	conv, err := md2kb.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2kb.Input{
		Markdown: "# Hello World\n\nThis is a **test**.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println(strings.Contains(string(result.HTML), "<p>This is a <strong>test</strong>.</p>"))
	// Output:
	// Hello World
	// true
}

// Example_withTOC demonstrates adding a table of contents.
func Example_withTOC() {
	conv, err := md2kb.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2kb.Input{
		Markdown: "# Guide\n## Install\n## Configure",
		TOC:      &md2kb.TOC{Title: "Contents"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	fmt.Println(strings.Contains(html, `<a href="#install">Install</a>`))
	fmt.Println(strings.Contains(html, `<a href="#configure">Configure</a>`))
	// Output:
	// true
	// true
}

// Example_defaultTitle demonstrates the title fallback for documents
// without a "# " heading.
func Example_defaultTitle() {
	conv, err := md2kb.NewConverter(md2kb.WithDefaultTitle("Runbook"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2kb.Input{
		Markdown: "## Restart the service",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	// Output: Runbook
}

// ExampleNewConverter_withStyle demonstrates raw CSS as the style sheet.
func ExampleNewConverter_withStyle() {
	conv, err := md2kb.NewConverter(md2kb.WithStyle("body { max-width: 60em; }"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2kb.Input{Markdown: "# Styled"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(string(result.HTML), "max-width: 60em"))
	// Output: true
}

// ExampleNewConverter_commonMark demonstrates the goldmark engine.
func ExampleNewConverter_commonMark() {
	conv, err := md2kb.NewConverter(md2kb.WithEngine(md2kb.EngineCommonMark))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2kb.Input{
		Markdown: "- parent\n  - child\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Count(string(result.HTML), "<ul>"))
	// Output: 2
}

// ExampleConverterPool demonstrates converting documents in parallel.
func ExampleConverterPool() {
	pool := md2kb.NewConverterPool(2)

	docs := []string{
		"# Document 1\n\nFirst document.",
		"# Document 2\n\nSecond document.",
	}

	results := make(chan bool, len(docs))
	var wg sync.WaitGroup

	for _, doc := range docs {
		wg.Add(1)
		go func(markdown string) {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				results <- false
				return
			}
			defer pool.Release(conv)

			result, err := conv.Convert(context.Background(), md2kb.Input{Markdown: markdown})
			results <- err == nil && strings.HasPrefix(result.Title, "Document")
		}(doc)
	}

	// Wait for all goroutines to finish before closing pool
	wg.Wait()
	_ = pool.Close()

	success := 0
	for range docs {
		if <-results {
			success++
		}
	}
	fmt.Printf("Processed %d documents\n", success)
	// Output: Processed 2 documents
}
