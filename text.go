package tably

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeText(w io.Writer, t *Table, opt Options) error {
	blocks, _ := layout(t, opt, Text)
	_, err := io.WriteString(w, renderText(blocks, resolveDecoration(t, opt), opt))
	return err
}

// renderText assembles caption, body blocks, and footer into one
// newline-separated string. Split blocks are joined by a blank line; footer
// lines are appended verbatim with no trailing newline.
func renderText(blocks []block, dec Decoration, opt Options) string {
	var sb strings.Builder
	if caption := captionLine(dec, true); caption != "" {
		sb.WriteString(caption)
		sb.WriteString("\n\n")
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = textBlock(b.m, opt)
	}
	sb.WriteString(strings.Join(parts, "\n\n"))
	sb.WriteString("\n")
	sb.WriteString(footerText(dec))
	return sb.String()
}

func textBlock(m *CellMatrix, opt Options) string {
	var lines []string
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		joined := strings.Join(row, opt.Sep)
		if r > 0 && opt.EmptyLine != "" && allEmpty(row) {
			joined = strings.Repeat(opt.EmptyLine, runewidth.StringWidth(joined))
		}
		lines = append(lines, joined)
		if r == 0 && opt.Header != "" {
			lines = append(lines, strings.Repeat(opt.Header, runewidth.StringWidth(joined)))
		}
	}
	return strings.Join(lines, "\n")
}

func allEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// captionLine joins caption and subtitle with a single space, trimmed and
// collapsed of double spaces. Colors apply only for the text format.
func captionLine(dec Decoration, colored bool) string {
	capt := strings.TrimSpace(dec.Caption.Text)
	sub := strings.TrimSpace(dec.Subtitle.Text)
	if colored {
		capt = colorize(dec.Caption.Color, capt)
		sub = colorize(dec.Subtitle.Color, sub)
	}
	s := strings.TrimSpace(capt + " " + sub)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

func footerText(dec Decoration) string {
	var lines []string
	for _, l := range dec.Footer {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		lines = append(lines, colorize(l.Color, l.Text))
	}
	return strings.Join(lines, "\n")
}
