package pipeline

import (
	"strings"
)

// RenderTable renders buffered pipe-table lines as an HTML table.
//
// The first line is the header row and the second is the separator row,
// which is skipped whatever it contains. Column alignment is not honored and
// rows with differing cell counts are rendered as they are. Fewer than two
// lines render to the empty string.
func RenderTable(lines []string) string {
	if len(lines) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table>\n")
	writeTableRow(&b, "th", lines[0])
	for _, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		writeTableRow(&b, "td", line)
	}
	b.WriteString("</table>")
	return b.String()
}

// writeTableRow writes one <tr> with a cell per field of line.
func writeTableRow(b *strings.Builder, tag, line string) {
	b.WriteString("<tr>\n")
	for _, cell := range splitCells(line) {
		b.WriteString("<" + tag + ">")
		b.WriteString(RenderInline(cell))
		b.WriteString("</" + tag + ">\n")
	}
	b.WriteString("</tr>\n")
}

// splitCells splits a row on '|' and drops the fields before the first and
// after the last pipe. A line without pipes has no cells.
func splitCells(line string) []string {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return nil
	}
	fields = fields[1 : len(fields)-1]

	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}
