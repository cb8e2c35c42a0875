package tably

import (
	"strings"

	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// resolveAlignments decides the alignment of every column from the directive
// and re-justifies the matrix in place to match. Directives:
//
//   - "" infers per column: a first data cell starting with whitespace means
//     the column is already right-justified from numeric formatting and stays
//     right; anything else is left-aligned and re-padded.
//   - "left", "right", "center" apply uniformly.
//   - "firstleft" left-aligns column 0 and infers the rest.
//   - A string of one l/r/c letter per column sets each column; unknown
//     letters fall back to center for that column.
//
// Malformed directives (wrong length, not a keyword) fall back to center for
// every column. The fallback never errors.
func resolveAlignments(m *CellMatrix, directive string) []Alignment {
	n := m.Columns()
	aligns := make([]Alignment, n)
	switch directive {
	case "":
		for c := 0; c < n; c++ {
			aligns[c] = inferAlignment(m, c)
		}
	case "left":
		fill(aligns, AlignLeft)
	case "right":
		fill(aligns, AlignRight)
	case "center":
		fill(aligns, AlignCenter)
	case "firstleft":
		aligns[0] = AlignLeft
		for c := 1; c < n; c++ {
			aligns[c] = inferAlignment(m, c)
		}
	default:
		letters := []rune(directive)
		if len(letters) != n {
			log.Debugf("tably: alignment %q has %d letters for %d columns, centering all", directive, len(letters), n)
			fill(aligns, AlignCenter)
			break
		}
		for c, l := range letters {
			switch l {
			case 'l':
				aligns[c] = AlignLeft
			case 'r':
				aligns[c] = AlignRight
			case 'c':
				aligns[c] = AlignCenter
			default:
				log.Debugf("tably: unknown alignment letter %q, centering column %d", string(l), c)
				aligns[c] = AlignCenter
			}
		}
	}
	for c := 0; c < n; c++ {
		m.justifyColumn(c, aligns[c])
	}
	return aligns
}

func inferAlignment(m *CellMatrix, col int) Alignment {
	if m.Rows() > 1 && strings.HasPrefix(m.Cell(1, col), " ") {
		return AlignRight
	}
	return AlignLeft
}

func fill(aligns []Alignment, a Alignment) {
	for i := range aligns {
		aligns[i] = a
	}
}

// centerHeader trims and re-centers the header row regardless of column
// alignment, visually separating it from the justified body cells. Plain
// text only; Markdown headers are handled by the separator-row markers.
func centerHeader(m *CellMatrix) {
	for c := 0; c < m.Columns(); c++ {
		w := m.columnWidth(c)
		m.SetCell(0, c, alignCell(strings.TrimSpace(m.Cell(0, c)), w, AlignCenter))
	}
}

// alignCell pads s to width on the side implied by align. Strings already at
// or past the width are returned unchanged.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
