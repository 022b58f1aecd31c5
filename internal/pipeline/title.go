package pipeline

import "strings"

// DefaultTitle is used when a document has no level-1 heading.
const DefaultTitle = "Voice Agent Documentation"

// ExtractTitle returns the text of the first line beginning with "# ",
// trimmed, or fallback when no such line exists.
func ExtractTitle(content, fallback string) string {
	for line := range strings.SplitSeq(content, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}
