package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default heading range for the table of contents: the anchored levels.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// TOCData holds TOC configuration for injection.
type TOCData struct {
	Title    string // optional, shown above the list
	MinDepth int    // 1-6
	MaxDepth int    // 1-6, >= MinDepth
}

// TOCInjector inserts a table of contents into a body fragment.
type TOCInjector interface {
	InjectTOC(ctx context.Context, body string, data *TOCData) (string, error)
}

var _ TOCInjector = (*TOCInjection)(nil)

type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// TOCInjection implements TOCInjector.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// InjectTOC builds a <div class="toc"> from the headings of body that carry
// an id and lie within the configured depth, and inserts it after the first
// </h1> or at the start of the body. Nil data or a body without matching
// headings is returned unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, body string, data *TOCData) (string, error) {
	if data == nil {
		return body, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	headings := extractHeadings(body, data.MinDepth, data.MaxDepth)
	if len(headings) == 0 {
		return body, nil
	}
	toc := renderTOC(headings, data.Title)

	if pos := firstH1End(body); pos != -1 {
		return body[:pos] + "\n" + toc + body[pos:], nil
	}
	return toc + "\n" + body, nil
}

// firstH1End returns the byte offset just past the first </h1> end tag, or
// -1 when body has none. Offsets come from the raw token bytes, so they
// index the original string.
func firstH1End(body string) int {
	z := html.NewTokenizer(strings.NewReader(body))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return -1
		}
		offset += len(z.Raw())
		if tt != html.EndTagToken {
			continue
		}
		if name, _ := z.TagName(); atom.Lookup(name) == atom.H1 {
			return offset
		}
	}
}

// extractHeadings tokenizes body and collects headings with an id within
// [minDepth, maxDepth]. Text is the concatenated, unescaped text content of
// the heading with inner markup dropped.
func extractHeadings(body string, minDepth, maxDepth int) []headingInfo {
	var (
		headings []headingInfo
		current  *headingInfo
		text     strings.Builder
	)

	z := html.NewTokenizer(strings.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error ends the scan.
			return headings

		case html.StartTagToken:
			if current != nil {
				continue
			}
			tok := z.Token()
			level := headingLevel(tok.DataAtom)
			if level == 0 || level < minDepth || level > maxDepth {
				continue
			}
			id := attrValue(tok, "id")
			if id == "" {
				continue
			}
			current = &headingInfo{Level: level, ID: id}
			text.Reset()

		case html.TextToken:
			if current != nil {
				text.Write(z.Text())
			}

		case html.EndTagToken:
			if current == nil {
				continue
			}
			if headingLevel(z.Token().DataAtom) == current.Level {
				current.Text = strings.TrimSpace(text.String())
				headings = append(headings, *current)
				current = nil
			}
		}
	}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	default:
		return 0
	}
}

func attrValue(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// renderTOC writes one <li> per heading, indented 1.5em per level below the
// shallowest heading. A jump of more than one level is indented as a direct
// child.
func renderTOC(headings []headingInfo, title string) string {
	base := headings[0].Level
	for _, h := range headings[1:] {
		base = min(base, h.Level)
	}

	var b strings.Builder
	b.WriteString(`<div class="toc">`)
	if title != "" {
		b.WriteString(`<div class="toc-title"><strong>`)
		b.WriteString(EscapeHTML(title))
		b.WriteString(`</strong></div>`)
	}
	b.WriteString("<ul>")

	last := -1
	for _, h := range headings {
		depth := h.Level - base
		if last >= 0 && depth > last+1 {
			depth = last + 1
		}
		last = depth

		b.WriteString("<li")
		if depth > 0 {
			fmt.Fprintf(&b, ` style="padding-left:%.1fem"`, float64(depth)*1.5)
		}
		b.WriteString(`><a href="#`)
		b.WriteString(EscapeHTML(h.ID))
		b.WriteString(`">`)
		b.WriteString(EscapeHTML(h.Text))
		b.WriteString("</a></li>")
	}

	b.WriteString("</ul></div>")
	return b.String()
}
