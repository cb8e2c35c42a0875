package tably

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellMatrix is a rectangular grid of finalized display strings. Row 0 holds
// the column headers. The rendering pipeline owns the matrix for the
// duration of one table's render and mutates it in place.
type CellMatrix struct {
	cells [][]string
}

// newCellMatrix builds the matrix for a table: header row prepended, numeric
// columns formatted and right-justified, text columns left-justified, every
// column padded to its own maximum display width.
func newCellMatrix(t *Table, opt Options) *CellMatrix {
	rows := t.Rows() + 1
	m := &CellMatrix{cells: make([][]string, rows)}
	for r := range m.cells {
		m.cells[r] = make([]string, t.Columns())
	}
	for c, col := range t.cols {
		body, right := col.body(opt)
		m.cells[0][c] = col.Name()
		for r, s := range body {
			m.cells[r+1][c] = s
		}
		if right {
			m.justifyColumn(c, AlignRight)
		} else {
			// Pad without trimming: leading whitespace in text values is
			// how the alignment resolver recognizes pre-justified columns.
			w := m.columnWidth(c)
			for r := range m.cells {
				m.cells[r][c] = alignCell(m.cells[r][c], w, AlignLeft)
			}
		}
	}
	return m
}

// rawRows returns the header plus unjustified formatted cells, for the
// delimiter-separated export formats.
func rawRows(t *Table, opt Options) [][]string {
	rows := make([][]string, t.Rows()+1)
	for r := range rows {
		rows[r] = make([]string, t.Columns())
	}
	for c, col := range t.cols {
		rows[0][c] = col.Name()
		body, _ := col.body(opt)
		for r, s := range body {
			rows[r+1][c] = s
		}
	}
	return rows
}

// Rows returns the row count, including the header row.
func (m *CellMatrix) Rows() int { return len(m.cells) }

// Columns returns the column count.
func (m *CellMatrix) Columns() int {
	if len(m.cells) == 0 {
		return 0
	}
	return len(m.cells[0])
}

// Cell returns the cell at (row, col).
func (m *CellMatrix) Cell(row, col int) string { return m.cells[row][col] }

// SetCell replaces the cell at (row, col).
func (m *CellMatrix) SetCell(row, col int, s string) { m.cells[row][col] = s }

// Row returns a copy of one row.
func (m *CellMatrix) Row(row int) []string {
	out := make([]string, len(m.cells[row]))
	copy(out, m.cells[row])
	return out
}

// ColumnCells returns a copy of one column, header first.
func (m *CellMatrix) ColumnCells(col int) []string {
	out := make([]string, len(m.cells))
	for r := range m.cells {
		out[r] = m.cells[r][col]
	}
	return out
}

// SetColumn replaces one column, header first.
func (m *CellMatrix) SetColumn(col int, cells []string) {
	if len(cells) != len(m.cells) {
		panic(fmt.Sprintf("tably: SetColumn: %d cells for %d rows", len(cells), len(m.cells)))
	}
	for r := range m.cells {
		m.cells[r][col] = cells[r]
	}
}

// Select returns a new matrix holding copies of the given columns, in the
// given order.
func (m *CellMatrix) Select(cols []int) *CellMatrix {
	for _, c := range cols {
		if c < 0 || c >= m.Columns() {
			panic(fmt.Sprintf("tably: Select: column %d out of range [0,%d)", c, m.Columns()))
		}
	}
	out := &CellMatrix{cells: make([][]string, len(m.cells))}
	for r := range m.cells {
		out.cells[r] = make([]string, len(cols))
		for i, c := range cols {
			out.cells[r][i] = m.cells[r][c]
		}
	}
	return out
}

// columnWidth returns the maximum display width of a column.
func (m *CellMatrix) columnWidth(col int) int {
	w := 0
	for r := range m.cells {
		if cw := runewidth.StringWidth(m.cells[r][col]); cw > w {
			w = cw
		}
	}
	return w
}

// justifyColumn trims and re-pads every cell of a column, header included,
// to the column's maximum trimmed width.
func (m *CellMatrix) justifyColumn(col int, align Alignment) {
	w := 0
	for r := range m.cells {
		if cw := runewidth.StringWidth(strings.TrimSpace(m.cells[r][col])); cw > w {
			w = cw
		}
	}
	for r := range m.cells {
		m.cells[r][col] = alignCell(strings.TrimSpace(m.cells[r][col]), w, align)
	}
}
