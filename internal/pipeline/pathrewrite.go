package pipeline

import (
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths turns relative img[src] and a[href] values into
// absolute file:// URLs resolved against sourceDir. The PDF renderer loads
// the page from a temp file, where the original relative paths do not
// resolve.
//
// Only the rewritten tags are re-serialized; every other byte of the page is
// copied as it was read. URLs, anchors, absolute paths and paths leaving
// sourceDir are not touched. An empty sourceDir returns the page unchanged.
func RewriteRelativePaths(page, sourceDir string) (string, error) {
	if sourceDir == "" {
		return page, nil
	}
	base, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(page))

	z := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return out.String(), nil
		}

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(z.Raw())
			continue
		}

		// Raw must be copied before Token, which reuses the buffer.
		raw := string(z.Raw())
		tok := z.Token()
		if !rewriteLinkAttr(&tok, base) {
			out.WriteString(raw)
			continue
		}
		out.WriteString(tok.String())
	}
}

// rewriteLinkAttr rewrites the link attribute of img and a tags in place and
// reports whether anything changed.
func rewriteLinkAttr(tok *html.Token, base string) bool {
	var key string
	switch tok.DataAtom {
	case atom.Img:
		key = "src"
	case atom.A:
		key = "href"
	default:
		return false
	}

	changed := false
	for i, a := range tok.Attr {
		if a.Key != key || !isRelativePath(a.Val) {
			continue
		}
		abs := filepath.Join(base, filepath.FromSlash(a.Val))
		if !isPathUnderDir(abs, base) {
			continue
		}
		tok.Attr[i].Val = pathToFileURL(abs)
		changed = true
	}
	return changed
}

func isRelativePath(p string) bool {
	switch {
	case p == "",
		strings.HasPrefix(p, "#"),
		strings.HasPrefix(p, "//"),
		strings.HasPrefix(p, "/"),
		filepath.IsAbs(p):
		return false
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		return false // http, https, file, data, mailto, ...
	}
	return true
}

func isPathUnderDir(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func pathToFileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
