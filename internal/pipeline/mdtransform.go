package pipeline

import (
	"context"
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

const byteOrderMark = "\uFEFF"

// MarkdownPreprocessor prepares raw Markdown before conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

var _ MarkdownPreprocessor = (*LinePreprocessor)(nil)

// LinePreprocessor normalizes line structure. It leaves the content
// otherwise untouched: blank lines and trailing spaces are significant to
// the line translator.
type LinePreprocessor struct{}

// PreprocessMarkdown drops a leading byte order mark and converts \r\n and
// \r line endings to \n.
func (p *LinePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

func normalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
