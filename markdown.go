package tably

import (
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, t *Table, opt Options) error {
	blocks, indented := layout(t, opt, Markdown)
	_, err := io.WriteString(w, renderMarkdown(blocks, resolveDecoration(t, opt), indented))
	return err
}

// renderMarkdown assembles a pipe-table rendering. The caption becomes a
// "Table:" line with a blank line before the table; footer lines trail the
// table as standalone lines. Colors never apply in Markdown.
func renderMarkdown(blocks []block, dec Decoration, indented bool) string {
	var sb strings.Builder
	if caption := captionLine(dec, false); caption != "" {
		sb.WriteString("Table: ")
		sb.WriteString(caption)
		sb.WriteString("\n\n")
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = markdownBlock(b.m, b.aligns, indented)
	}
	sb.WriteString(strings.Join(parts, "\n\n"))
	sb.WriteString("\n")
	var footer []string
	for _, l := range dec.Footer {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		footer = append(footer, l.Text)
	}
	if len(footer) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(footer, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func markdownBlock(m *CellMatrix, aligns []Alignment, indented bool) string {
	n := m.Columns()
	// Minimum 3 so the alignment markers always fit. Indentation widens
	// column 0 so the separator stays aligned with the indented text.
	widths := make([]int, n)
	for c := range widths {
		w := m.columnWidth(c)
		if c == 0 && indented {
			w += 2
		}
		if w < 3 {
			w = 3
		}
		widths[c] = w
	}

	lines := []string{markdownRow(m.Row(0), widths, aligns)}

	sep := make([]string, n)
	for c, w := range widths {
		switch aligns[c] {
		case AlignRight:
			sep[c] = strings.Repeat("-", w-1) + ":"
		case AlignCenter:
			sep[c] = ":" + strings.Repeat("-", w-2) + ":"
		default:
			sep[c] = ":" + strings.Repeat("-", w-1)
		}
	}
	lines = append(lines, "|"+strings.Join(sep, "|")+"|")

	for r := 1; r < m.Rows(); r++ {
		lines = append(lines, markdownRow(m.Row(r), widths, aligns))
	}
	return strings.Join(lines, "\n")
}

func markdownRow(cells []string, widths []int, aligns []Alignment) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		padded[i] = alignCell(cells[i], w, aligns[i])
	}
	return "|" + strings.Join(padded, "|") + "|"
}
