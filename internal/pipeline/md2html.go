package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// highlightStyle suits the dark code block background of the default style.
const highlightStyle = "monokai"

// HTMLConverter converts Markdown into an HTML body fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*LineConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

// LineConverter is the knowledge base engine: a line-oriented translator for
// a small Markdown subset.
type LineConverter struct {
	policy FencePolicy
}

// NewLineConverter creates a LineConverter with the given fence policy.
func NewLineConverter(policy FencePolicy) *LineConverter {
	return &LineConverter{policy: policy}
}

// ToHTML splits content on "\n", translates each line and joins the
// fragments with "\n".
func (c *LineConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fragments := ConvertLines(strings.Split(content, "\n"), c.policy)
	return strings.Join(fragments, "\n"), nil
}

// GoldmarkConverter converts CommonMark with GFM tables, strikethrough,
// autolinks and task lists, and highlights fenced code with chroma.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // ids feed the table of contents
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts content to an HTML fragment.
// Goldmark has no context support, so the conversion runs in a goroutine
// and the call returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: strings.TrimSuffix(buf.String(), "\n")}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
