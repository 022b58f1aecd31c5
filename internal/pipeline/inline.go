package pipeline

import (
	"regexp"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// htmlEscaper covers the four characters the knowledge base format escapes.
// Replacement is single pass, so the '&' of an inserted entity is never
// escaped again.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Inline patterns, applied in this order by RenderInline.
var (
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	inlineCodePattern = regexp.MustCompile("`(.+?)`")
	linkPattern       = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// anchorReplacer maps lowercased heading text to an anchor id.
var anchorReplacer = strings.NewReplacer(
	" ", "-",
	"&", "",
	"/", "",
	"(", "",
	")", "",
)

// EscapeHTML escapes &, <, > and " in text.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return string(htmlEscaper.Replace([]byte(text)))
}

// RenderInline escapes text and then rewrites bold, italic, code spans and
// links into HTML. Unmatched markers are left as literal text.
//
// Code spans are matched after emphasis, so "*" inside backticks is still
// treated as emphasis.
func RenderInline(text string) string {
	out := EscapeHTML(text)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")
	out = inlineCodePattern.ReplaceAllString(out, "<code>$1</code>")
	out = linkPattern.ReplaceAllString(out, `<a href="$2">$1</a>`)
	return out
}

// HeadingAnchor derives the id attribute for a heading: lowercase, spaces
// become hyphens, and '&', '/', '(' and ')' are dropped. Other punctuation
// is kept.
func HeadingAnchor(text string) string {
	// A Caser holds state, so each call gets its own.
	return anchorReplacer.Replace(cases.Lower(language.Und).String(text))
}
