package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the page template failed to parse or execute.
var ErrPageRender = errors.New("page rendering failed")

// PageData is the input of a page render.
type PageData struct {
	Title string // escaped by the template
	CSS   string // placed in <style>
	Body  string // inserted verbatim
}

// PageRenderer wraps a body fragment in a complete HTML document.
type PageRenderer interface {
	RenderPage(ctx context.Context, data PageData) (string, error)
}

var _ PageRenderer = (*PageTemplate)(nil)

// PageTemplate renders pages from an html/template document shell.
// The template sees .Title, .CSS and .Body.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate parses the document shell.
func NewPageTemplate(content string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

type pageView struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// RenderPage executes the template. A template is safe for concurrent use.
func (p *PageTemplate) RenderPage(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := pageView{
		Title: data.Title,
		CSS:   template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- style sheets come from trusted assets
		Body:  template.HTML(data.Body),            // #nosec G203 -- body is produced by the converter
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes "</" so a style sheet cannot close the <style>
// element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
