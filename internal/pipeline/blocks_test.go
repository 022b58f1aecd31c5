package pipeline

// Notes:
// - Expected fragments are compared whole with cmp.Diff so list open/close
//   placement and blank fragments are checked exactly.
// - Table fragments are built with tableHTML to keep the cases readable;
//   the exact table layout is covered in table_test.go.

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tableHTML builds the expected RenderTable output for a header row and
// data rows.
func tableHTML(header []string, rows ...[]string) string {
	var b strings.Builder
	b.WriteString("<table>\n<tr>\n")
	for _, h := range header {
		b.WriteString("<th>" + h + "</th>\n")
	}
	b.WriteString("</tr>\n")
	for _, row := range rows {
		b.WriteString("<tr>\n")
		for _, c := range row {
			b.WriteString("<td>" + c + "</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>")
	return b.String()
}

// ---------------------------------------------------------------------------
// TestConvertLines - Block classification
// ---------------------------------------------------------------------------

func TestConvertLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty document",
			lines: []string{""},
			want:  []string{""},
		},
		{
			name:  "paragraphs keep the raw line",
			lines: []string{"hello", "", "  world  "},
			want:  []string{"<p>hello</p>", "", "<p>  world  </p>"},
		},
		{
			name:  "whitespace-only line is blank",
			lines: []string{"   \t"},
			want:  []string{""},
		},
		{
			name:  "headings one to four",
			lines: []string{"# Title", "## Getting Started", "### Q&A (FAQ)", "#### Deep"},
			want: []string{
				"<h1>Title</h1>",
				`<h2 id="getting-started">Getting Started</h2>`,
				`<h3 id="qa-faq">Q&amp;A (FAQ)</h3>`,
				"<h4>Deep</h4>",
			},
		},
		{
			name:  "heading text is not inline processed",
			lines: []string{"## **Setup** `x`"},
			want:  []string{`<h2 id="**setup**-` + "`x`" + `">**Setup** ` + "`x`" + `</h2>`},
		},
		{
			name:  "heading markers need the raw prefix",
			lines: []string{"#NoSpace", "  # indented", "##### five"},
			want:  []string{"<p>#NoSpace</p>", "<p>  # indented</p>", "<p>##### five</p>"},
		},
		{
			name:  "horizontal rule",
			lines: []string{"---", "  ---  "},
			want:  []string{"<hr>", "<hr>"},
		},
		{
			name:  "blockquote per line",
			lines: []string{"> note **this**", "> second"},
			want: []string{
				"<blockquote>note <strong>this</strong></blockquote>",
				"<blockquote>second</blockquote>",
			},
		},
		{
			name:  "code fence content is literal",
			lines: []string{"```python", "# not a heading", "x < y && **z**", "```"},
			want:  []string{"<pre><code># not a heading\nx &lt; y &amp;&amp; **z**</code></pre>"},
		},
		{
			name:  "indented fence markers",
			lines: []string{"  ```", "a", "   ``` "},
			want:  []string{"<pre><code>a</code></pre>"},
		},
		{
			name:  "empty code block",
			lines: []string{"```", "```"},
			want:  []string{"<pre><code></code></pre>"},
		},
		{
			name:  "table ends on a pipe-free line",
			lines: []string{"| A | B |", "|---|---|", "| 1 | 2 |", "after"},
			want:  []string{tableHTML([]string{"A", "B"}, []string{"1", "2"}), "<p>after</p>"},
		},
		{
			name:  "table flushed at end of input",
			lines: []string{"| A | B |", "|---|---|", "| 1 | 2 |"},
			want:  []string{tableHTML([]string{"A", "B"}, []string{"1", "2"})},
		},
		{
			name:  "single table row renders empty",
			lines: []string{"| A |"},
			want:  []string{""},
		},
		{
			name:  "piped non-row line leaves the table open",
			lines: []string{"| A |", "|---|", "a | b", "| 1 |", "end"},
			want:  []string{"<p>a | b</p>", tableHTML([]string{"A"}, []string{"1"}), "<p>end</p>"},
		},
		{
			name:  "fence marker ends the table",
			lines: []string{"| A |", "|---|", "```", "code", "```"},
			want:  []string{tableHTML([]string{"A"}), "<pre><code>code</code></pre>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertLines(tt.lines, FenceFlush)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ConvertLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvertLines_Lists - Explicit list state
// ---------------------------------------------------------------------------

func TestConvertLines_Lists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "one open and close tag per run",
			lines: []string{"- x", "- y", "- z"},
			want:  []string{"<ul>", "<li>x</li>", "<li>y</li>", "<li>z</li>", "</ul>"},
		},
		{
			name:  "ordered items drop the number",
			lines: []string{"1. one", "10. ten"},
			want:  []string{"<ol>", "<li>one</li>", "<li>ten</li>", "</ol>"},
		},
		{
			name:  "non-ASCII digits are a paragraph",
			lines: []string{"١. one"},
			want:  []string{"<p>١. one</p>"},
		},
		{
			name:  "indented items are trimmed",
			lines: []string{"  - a", "    - b"},
			want:  []string{"<ul>", "<li>a</li>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "inline markup in items",
			lines: []string{"- see [docs](https://x.io)"},
			want:  []string{"<ul>", `<li>see <a href="https://x.io">docs</a></li>`, "</ul>"},
		},
		{
			name:  "kind switch closes the open list",
			lines: []string{"- a", "1. b", "- c"},
			want: []string{
				"<ul>", "<li>a</li>", "</ul>",
				"<ol>", "<li>b</li>", "</ol>",
				"<ul>", "<li>c</li>", "</ul>",
			},
		},
		{
			name:  "blank line closes the list",
			lines: []string{"- a", "", "- b"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "", "<ul>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "paragraph closes the list",
			lines: []string{"1. a", "text"},
			want:  []string{"<ol>", "<li>a</li>", "</ol>", "<p>text</p>"},
		},
		{
			name:  "table closes the list",
			lines: []string{"- a", "| A |", "|---|", "| 1 |", ""},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", tableHTML([]string{"A"}, []string{"1"}), ""},
		},
		{
			name:  "code fence closes the list",
			lines: []string{"- a", "```", "- not an item", "```"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<pre><code>- not an item</code></pre>"},
		},
		{
			name:  "heading closes the list",
			lines: []string{"- a", "## Next"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", `<h2 id="next">Next</h2>`},
		},
		{
			name:  "dash without space is a paragraph",
			lines: []string{"-a"},
			want:  []string{"<p>-a</p>"},
		},
		{
			name:  "number without space is a paragraph",
			lines: []string{"1.a"},
			want:  []string{"<p>1.a</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertLines(tt.lines, FenceFlush)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ConvertLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvertLines_UnterminatedFence - Fence policy
// ---------------------------------------------------------------------------

func TestConvertLines_UnterminatedFence(t *testing.T) {
	t.Parallel()

	lines := []string{"intro", "```", "a <b>", "c"}

	tests := []struct {
		name   string
		policy FencePolicy
		want   []string
	}{
		{
			name:   "flush keeps the buffered lines",
			policy: FenceFlush,
			want:   []string{"<p>intro</p>", "<pre><code>a &lt;b&gt;\nc</code></pre>"},
		},
		{
			name:   "discard drops the buffered lines",
			policy: FenceDiscard,
			want:   []string{"<p>intro</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertLines(lines, tt.policy)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ConvertLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFencePolicy_String(t *testing.T) {
	t.Parallel()

	for policy, want := range map[FencePolicy]string{
		FenceFlush:     "flush",
		FenceDiscard:   "discard",
		FencePolicy(9): "unknown",
	} {
		if got := policy.String(); got != want {
			t.Errorf("FencePolicy(%d).String() = %q, want %q", int(policy), got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConvertLines_PlainText - One paragraph per non-blank line
// ---------------------------------------------------------------------------

func TestConvertLines_PlainText(t *testing.T) {
	t.Parallel()

	doc := []string{
		"The agent answers calls.",
		"",
		"It routes them by intent",
		"and logs every transfer,",
		"   ",
		"including 3 retries & a fallback.",
		"Costs: 5 < 7 > 2",
	}

	got := ConvertLines(doc, FenceFlush)
	if len(got) != len(doc) {
		t.Fatalf("got %d fragments for %d lines", len(got), len(doc))
	}

	for i, line := range doc {
		blank := strings.TrimSpace(line) == ""
		isPara := strings.HasPrefix(got[i], "<p>") && strings.HasSuffix(got[i], "</p>")
		if blank && got[i] != "" {
			t.Errorf("line %d: blank line produced %q", i, got[i])
		}
		if !blank && !isPara {
			t.Errorf("line %d: %q produced %q, want one <p>", i, line, got[i])
		}
		if strings.Count(got[i], "<p>") > 1 {
			t.Errorf("line %d: more than one paragraph in %q", i, got[i])
		}
	}
}
