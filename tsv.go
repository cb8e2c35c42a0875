package tably

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table, opt Options) error {
	for _, row := range rawRows(t, opt) {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
