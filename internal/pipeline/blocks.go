package pipeline

import (
	"regexp"
	"strings"
)

// FencePolicy selects what happens to a code fence still open at the end of
// the input.
type FencePolicy int

const (
	// FenceFlush renders the buffered lines as a code block.
	FenceFlush FencePolicy = iota
	// FenceDiscard drops the buffered lines.
	FenceDiscard
)

// String returns the policy name.
func (p FencePolicy) String() string {
	switch p {
	case FenceFlush:
		return "flush"
	case FenceDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

const fenceMarker = "```"

// Only ASCII numerals start an ordered item.
var orderedItemPattern = regexp.MustCompile(`^\d+\. `)

// headingPrefixes maps raw line prefixes to heading levels. Levels 2 and 3
// carry an id.
var headingPrefixes = []struct {
	prefix   string
	level    string
	anchored bool
}{
	{"#### ", "4", false},
	{"### ", "3", true},
	{"## ", "2", true},
	{"# ", "1", false},
}

type scanState int

const (
	stateNormal scanState = iota
	stateInCodeFence
	stateInTable
)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

func (k listKind) openTag() string {
	if k == listOrdered {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) closeTag() string {
	if k == listOrdered {
		return "</ol>"
	}
	return "</ul>"
}

// blockScanner holds the state of one conversion. It is never reused.
type blockScanner struct {
	policy FencePolicy
	state  scanState
	list   listKind
	code   []string
	table  []string
	out    []string
}

// ConvertLines translates document lines into HTML fragments in a single
// forward pass. It never fails: every line contributes to some fragment, and
// a blank line contributes an empty one.
func ConvertLines(lines []string, policy FencePolicy) []string {
	s := &blockScanner{
		policy: policy,
		out:    make([]string, 0, len(lines)),
	}
	for _, line := range lines {
		s.scan(line)
	}
	s.finish()
	return s.out
}

func (s *blockScanner) scan(line string) {
	trimmed := strings.TrimSpace(line)

	switch s.state {
	case stateInCodeFence:
		if strings.HasPrefix(trimmed, fenceMarker) {
			s.flushCode()
			return
		}
		s.code = append(s.code, line)
		return

	case stateInTable:
		if isTableRow(line, trimmed) {
			s.closeList()
			s.table = append(s.table, line)
			return
		}
		// A piped line that is not a row leaves the table open.
		if strings.HasPrefix(trimmed, fenceMarker) || !strings.Contains(line, "|") {
			s.flushTable()
		}
	}

	s.classify(line, trimmed)
}

func (s *blockScanner) classify(line, trimmed string) {
	if strings.HasPrefix(trimmed, fenceMarker) {
		s.closeList()
		s.state = stateInCodeFence
		s.code = s.code[:0]
		return
	}

	if s.state == stateNormal && isTableRow(line, trimmed) {
		s.closeList()
		s.state = stateInTable
		s.table = append(s.table[:0], line)
		return
	}

	if heading, ok := renderHeading(line); ok {
		s.emit(heading)
		return
	}

	switch {
	case trimmed == "---":
		s.emit("<hr>")
	case strings.HasPrefix(trimmed, "- "):
		s.emitItem(listUnordered, trimmed[2:])
	case orderedItemPattern.MatchString(trimmed):
		loc := orderedItemPattern.FindStringIndex(trimmed)
		s.emitItem(listOrdered, trimmed[loc[1]:])
	case strings.HasPrefix(trimmed, "> "):
		s.emit("<blockquote>" + RenderInline(trimmed[2:]) + "</blockquote>")
	case trimmed != "":
		s.emit("<p>" + RenderInline(line) + "</p>")
	default:
		s.emit("")
	}
}

// finish closes whatever is open at the end of the input.
func (s *blockScanner) finish() {
	switch s.state {
	case stateInTable:
		s.flushTable()
	case stateInCodeFence:
		if s.policy == FenceDiscard {
			s.code = nil
			s.state = stateNormal
			break
		}
		s.flushCode()
	}
	s.closeList()
}

// emit appends a non-list fragment, closing any open list first.
func (s *blockScanner) emit(fragment string) {
	s.closeList()
	s.out = append(s.out, fragment)
}

// emitItem appends a list item, opening a list of kind if needed.
func (s *blockScanner) emitItem(kind listKind, text string) {
	if s.list != kind {
		s.closeList()
		s.out = append(s.out, kind.openTag())
		s.list = kind
	}
	s.out = append(s.out, "<li>"+RenderInline(text)+"</li>")
}

func (s *blockScanner) closeList() {
	if s.list == listNone {
		return
	}
	s.out = append(s.out, s.list.closeTag())
	s.list = listNone
}

func (s *blockScanner) flushCode() {
	s.state = stateNormal
	s.emit("<pre><code>" + EscapeHTML(strings.Join(s.code, "\n")) + "</code></pre>")
	s.code = nil
}

func (s *blockScanner) flushTable() {
	s.state = stateNormal
	s.emit(RenderTable(s.table))
	s.table = nil
}

func isTableRow(line, trimmed string) bool {
	return strings.Contains(line, "|") && strings.HasPrefix(trimmed, "|")
}

// renderHeading matches the ATX prefixes on the raw line, so indented
// headings are paragraphs. Heading text is escaped but not inline-processed.
func renderHeading(line string) (string, bool) {
	for _, h := range headingPrefixes {
		text, ok := strings.CutPrefix(line, h.prefix)
		if !ok {
			continue
		}
		open := "<h" + h.level
		if h.anchored {
			open += ` id="` + EscapeHTML(HeadingAnchor(text)) + `"`
		}
		return open + ">" + EscapeHTML(text) + "</h" + h.level + ">", true
	}
	return "", false
}
