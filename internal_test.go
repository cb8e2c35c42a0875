package tably

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grid(rows ...[]string) *CellMatrix {
	return &CellMatrix{cells: rows}
}

// --- Alignment resolver ---

func TestResolveAlignmentsInfer(t *testing.T) {
	t.Parallel()
	// Column 0 is left-justified text, column 1 right-justified numbers.
	m := grid(
		[]string{"h  ", " h"},
		[]string{"x  ", " 1"},
		[]string{"zzz", "10"},
	)
	aligns := resolveAlignments(m, "")
	assert.Equal(t, []Alignment{AlignLeft, AlignRight}, aligns)
	assert.Equal(t, "x  ", m.Cell(1, 0))
	assert.Equal(t, " 1", m.Cell(1, 1))
}

func TestResolveAlignmentsInferWidestFirstCell(t *testing.T) {
	t.Parallel()
	// The first data cell has no leading whitespace, so the column is
	// treated as left-aligned and re-padded.
	m := grid([]string{"h  "}, []string{"zzz"}, []string{"a  "})
	aligns := resolveAlignments(m, "")
	assert.Equal(t, []Alignment{AlignLeft}, aligns)
	assert.Equal(t, "a  ", m.Cell(2, 0))
}

func TestResolveAlignmentsGlobal(t *testing.T) {
	t.Parallel()
	m := grid([]string{"h  "}, []string{"a  "}, []string{"bbb"})
	aligns := resolveAlignments(m, "center")
	assert.Equal(t, []Alignment{AlignCenter}, aligns)
	assert.Equal(t, " h ", m.Cell(0, 0))
	assert.Equal(t, " a ", m.Cell(1, 0))
	assert.Equal(t, "bbb", m.Cell(2, 0))
}

func TestResolveAlignmentsFirstleft(t *testing.T) {
	t.Parallel()
	m := grid(
		[]string{" id", "vv"},
		[]string{"  1", " 2"},
		[]string{" 10", "10"},
	)
	aligns := resolveAlignments(m, "firstleft")
	assert.Equal(t, []Alignment{AlignLeft, AlignRight}, aligns)
	assert.Equal(t, "id", m.Cell(0, 0))
	assert.Equal(t, "1 ", m.Cell(1, 0))
	assert.Equal(t, " 2", m.Cell(1, 1))
}

func TestResolveAlignmentsLetters(t *testing.T) {
	t.Parallel()
	m := grid(
		[]string{"h1", "h2 "},
		[]string{"aa", "bbb"},
	)
	aligns := resolveAlignments(m, "lr")
	assert.Equal(t, []Alignment{AlignLeft, AlignRight}, aligns)
	assert.Equal(t, "aa", m.Cell(1, 0))
	assert.Equal(t, " h2", m.Cell(0, 1))
	assert.Equal(t, "bbb", m.Cell(1, 1))
}

func TestResolveAlignmentsUnknownLetter(t *testing.T) {
	t.Parallel()
	m := grid([]string{"h1", "hdr"}, []string{"aa", "b  "})
	aligns := resolveAlignments(m, "lx")
	assert.Equal(t, []Alignment{AlignLeft, AlignCenter}, aligns)
	assert.Equal(t, " b ", m.Cell(1, 1))
}

func TestResolveAlignmentsWrongLength(t *testing.T) {
	t.Parallel()
	m := grid([]string{"h1 ", "h2 "}, []string{"aa ", "b  "})
	aligns := resolveAlignments(m, "lrc")
	assert.Equal(t, []Alignment{AlignCenter, AlignCenter}, aligns)
}

func TestResolveAlignmentsIdempotent(t *testing.T) {
	t.Parallel()
	for _, directive := range []string{"", "left", "right", "center", "firstleft", "lr"} {
		m := grid(
			[]string{"h  ", " h"},
			[]string{"x  ", " 1"},
			[]string{"zzz", "10"},
		)
		resolveAlignments(m, directive)
		snapshot := make([][]string, len(m.cells))
		for r, row := range m.cells {
			snapshot[r] = append([]string(nil), row...)
		}
		resolveAlignments(m, directive)
		assert.Equal(t, snapshot, m.cells, "directive %q", directive)
	}
}

func TestCenterHeader(t *testing.T) {
	t.Parallel()
	m := grid([]string{"ab  "}, []string{"zzzz"})
	centerHeader(m)
	assert.Equal(t, " ab ", m.Cell(0, 0))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align Alignment
		want  string
	}{
		"left":     {s: "ab", width: 4, align: AlignLeft, want: "ab  "},
		"right":    {s: "ab", width: 4, align: AlignRight, want: "  ab"},
		"center":   {s: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"overflow": {s: "abcdef", width: 3, align: AlignLeft, want: "abcdef"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.s, tt.width, tt.align))
		})
	}
}

// --- Row indenter ---

func TestIndentGroupMarker(t *testing.T) {
	t.Parallel()
	m := grid(
		[]string{"grp"},
		[]string{"# A"},
		[]string{"x1 "},
		[]string{"x2 "},
		[]string{"# B"},
		[]string{"y1 "},
	)
	assert.True(t, applyIndent(m, "# ", nil))
	assert.Equal(t, "A   ", m.Cell(1, 0))
	assert.Equal(t, "  x1", m.Cell(2, 0))
	assert.Equal(t, "  x2", m.Cell(3, 0))
	assert.Equal(t, "B   ", m.Cell(4, 0))
	assert.Equal(t, "  y1", m.Cell(5, 0))
}

func TestIndentExplicitRows(t *testing.T) {
	t.Parallel()
	m := grid(
		[]string{"name"},
		[]string{"# G "},
		[]string{"a   "},
		[]string{"b   "},
	)
	assert.True(t, applyIndent(m, "", []int{1, 2}))
	assert.Equal(t, "name  ", m.Cell(0, 0))
	assert.Equal(t, "G     ", m.Cell(1, 0))
	assert.Equal(t, "  a   ", m.Cell(2, 0))
	assert.Equal(t, "  b   ", m.Cell(3, 0))
}

func TestIndentNoop(t *testing.T) {
	t.Parallel()
	m := grid([]string{"h"}, []string{"a"}, []string{"b"})
	assert.False(t, applyIndent(m, "** ", []int{0}))
	assert.Equal(t, "a", m.Cell(1, 0))
}

func TestIndentMarkerWinsOverRows(t *testing.T) {
	t.Parallel()
	m := grid([]string{"h  "}, []string{"* A"}, []string{"x  "})
	assert.True(t, applyIndent(m, "* ", []int{0}))
	// Group-marker scheme fired: row after the marker row is indented.
	assert.Equal(t, "  x", m.Cell(2, 0))
}

// --- Width splitter ---

func splitFixture(widths ...int) *CellMatrix {
	row := make([]string, len(widths))
	for i, w := range widths {
		row[i] = strings.Repeat("x", w)
	}
	return grid(row)
}

func TestSplitColumnsUnderBudget(t *testing.T) {
	t.Parallel()
	m := splitFixture(8, 10, 10, 10, 10)
	got := splitColumns(m, " | ", 100)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, got)
}

func TestSplitColumnsOnce(t *testing.T) {
	t.Parallel()
	m := splitFixture(8, 10, 10, 10, 10)
	got := splitColumns(m, " | ", 40)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 4}}, got)
}

func TestSplitColumnsTwice(t *testing.T) {
	t.Parallel()
	m := splitFixture(8, 10, 10, 10, 10, 10, 10)
	got := splitColumns(m, " | ", 40)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, got)
}

func TestSplitColumnsDegenerateLow(t *testing.T) {
	t.Parallel()
	// The second column already crosses the budget: splitting would strand
	// the label column, so the table stays full width.
	m := splitFixture(8, 10, 10, 10, 10)
	got := splitColumns(m, " | ", 15)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, got)
}

func TestSplitColumnsDegenerateHigh(t *testing.T) {
	t.Parallel()
	// Only the last column crosses: splitting a single column off is never
	// performed.
	m := splitFixture(8, 10, 10)
	got := splitColumns(m, " | ", 30)
	assert.Equal(t, [][]int{{0, 1, 2}}, got)
}

// --- CellMatrix ---

func TestSelectCopies(t *testing.T) {
	t.Parallel()
	m := grid([]string{"a", "b", "c"}, []string{"1", "2", "3"})
	sub := m.Select([]int{0, 2})
	assert.Equal(t, "c", sub.Cell(0, 1))
	sub.SetCell(0, 1, "Z")
	assert.Equal(t, "c", m.Cell(0, 2))
}

func TestSelectOutOfRange(t *testing.T) {
	t.Parallel()
	m := grid([]string{"a"})
	assert.Panics(t, func() { m.Select([]int{1}) })
}

// --- Color helper ---

func TestColorizeUnknown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "x", colorize("nope", "x"))
	assert.Equal(t, "x", colorize("", "x"))
}

func TestColorizeKnown(t *testing.T) {
	t.Parallel()
	assert.Contains(t, colorize("red", "alert"), "alert")
}
