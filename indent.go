package tably

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// hashMarker is the literal token that flags a group-header row for the
// explicit-row indentation scheme.
const hashMarker = "# "

// applyIndent applies at most one of the two indentation schemes to column 0
// and reports whether indentation fired. The group-marker scheme wins when
// its token occurs anywhere in column 0; otherwise the explicit-row scheme
// fires when the literal "# " occurs there.
func applyIndent(m *CellMatrix, marker string, rows []int) bool {
	if m.Columns() == 0 || m.Rows() < 2 {
		return false
	}
	if marker != "" && columnContains(m, marker) {
		indentByMarker(m, marker)
		return true
	}
	if columnContains(m, hashMarker) {
		indentByRows(m, rows)
		return true
	}
	return false
}

func columnContains(m *CellMatrix, token string) bool {
	for r := 1; r < m.Rows(); r++ {
		if strings.Contains(m.Cell(r, 0), token) {
			return true
		}
	}
	return false
}

// indentByMarker indents every row from the first marker row onward that
// does not itself carry the marker, strips the marker everywhere, and
// left-justifies the column to its new width.
func indentByMarker(m *CellMatrix, marker string) {
	pad := strings.Repeat(" ", runewidth.StringWidth(marker))
	vals := make([]string, m.Rows())
	vals[0] = strings.TrimSpace(m.Cell(0, 0))
	start := -1
	for r := 1; r < m.Rows(); r++ {
		cell := m.Cell(r, 0)
		has := strings.Contains(cell, marker)
		if has && start < 0 {
			start = r
		}
		v := strings.TrimSpace(strings.Replace(cell, marker, "", 1))
		if start >= 0 && !has {
			v = pad + v
		}
		vals[r] = v
	}
	w := 0
	for _, v := range vals {
		if vw := runewidth.StringWidth(v); vw > w {
			w = vw
		}
	}
	for r, v := range vals {
		m.SetCell(r, 0, alignCell(v, w, AlignLeft))
	}
}

// indentByRows indents the listed 0-based data rows by two spaces and pads
// everything else, the header included, by two spaces on the right so the
// column width stays uniform. The literal "# " is then stripped from column
// 0 and the rows that carried it are re-left-justified.
func indentByRows(m *CellMatrix, rows []int) {
	set := make(map[int]bool, len(rows))
	for _, i := range rows {
		set[i] = true
	}
	m.SetCell(0, 0, m.Cell(0, 0)+"  ")
	for r := 1; r < m.Rows(); r++ {
		if set[r-1] {
			m.SetCell(r, 0, "  "+m.Cell(r, 0))
		} else {
			m.SetCell(r, 0, m.Cell(r, 0)+"  ")
		}
	}
	var markerRows []int
	for r := 0; r < m.Rows(); r++ {
		cell := m.Cell(r, 0)
		if strings.Contains(cell, hashMarker) {
			markerRows = append(markerRows, r)
			m.SetCell(r, 0, strings.Replace(cell, hashMarker, "", 1))
		}
	}
	w := m.columnWidth(0)
	for _, r := range markerRows {
		m.SetCell(r, 0, alignCell(strings.TrimSpace(m.Cell(r, 0)), w, AlignLeft))
	}
}
