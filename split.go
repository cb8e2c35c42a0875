package tably

import "github.com/mattn/go-runewidth"

// splitColumns partitions the matrix columns into at most three blocks whose
// header rows each fit the width budget when joined with sep. The first
// block always starts at column 0; when a split happens, column 0 (the row
// label column) is repeated at the head of every later block so each stacked
// block stays self-describing.
//
// The scan is greedy: the split point is the first column whose inclusion
// crosses the budget, found on a running prefix total. Split points at or
// past the matrix edges are skipped silently and leave the table full width.
func splitColumns(m *CellMatrix, sep string, budget int) [][]int {
	all := make([]int, m.Columns())
	for c := range all {
		all[c] = c
	}
	widths := make([]int, m.Columns())
	for c := range widths {
		widths[c] = m.columnWidth(c)
	}
	sepw := runewidth.StringWidth(sep)

	first, rest := splitOnce(all, widths, sepw, budget)
	if rest == nil {
		return [][]int{first}
	}
	second, third := splitOnce(rest, widths, sepw, budget)
	if third == nil {
		return [][]int{first, second}
	}
	return [][]int{first, second, third}
}

// splitOnce returns cols unchanged when they fit the budget or the split
// point is degenerate; otherwise it returns the leading block and the
// remainder with the label column prepended.
func splitOnce(cols []int, widths []int, sepw, budget int) (head, tail []int) {
	total := joinedWidth(cols, widths, sepw)
	if total <= budget {
		return cols, nil
	}
	cum := widths[cols[0]]
	cross := len(cols)
	for i := 1; i < len(cols); i++ {
		cum += sepw + widths[cols[i]]
		if cum > budget {
			cross = i
			break
		}
	}
	// Never split off fewer than two columns on either side of the label.
	if cross <= 1 || cross >= len(cols)-1 {
		return cols, nil
	}
	head = append([]int(nil), cols[:cross]...)
	tail = append([]int{cols[0]}, cols[cross:]...)
	return head, tail
}

func joinedWidth(cols []int, widths []int, sepw int) int {
	total := 0
	for i, c := range cols {
		if i > 0 {
			total += sepw
		}
		total += widths[c]
	}
	return total
}
