package tably

import (
	"encoding/csv"
	"io"
)

// writeCSV exports the unpadded cell values, header row first. Alignment,
// indentation, and decoration do not apply.
func writeCSV(w io.Writer, t *Table, opt Options) error {
	cw := csv.NewWriter(w)
	for _, row := range rawRows(t, opt) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
