package tably

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMismatchedColumns = errors.New("mismatched column lengths")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
)

var formats = []Format{Text, Markdown, HTML, CSV, TSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders tables to w in the given format. Tables are rendered
// independently, in order, separated by a blank line. Nil and empty tables
// are skipped. An unknown format fails with [ErrUnsupportedFormat] before
// anything is written.
func Write(w io.Writer, f Format, opt Options, tables ...*Table) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	opt = opt.withDefaults()
	first := true
	for _, t := range tables {
		if t == nil || t.Rows() == 0 || t.Columns() == 0 {
			log.Debug("tably: skipping empty table")
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := writeTable(w, f, t, opt); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, f Format, t *Table, opt Options) error {
	switch f {
	case Text:
		return writeText(w, t, opt)
	case Markdown:
		return writeMarkdown(w, t, opt)
	case HTML:
		return writeHTML(w, t, opt)
	case CSV:
		return writeCSV(w, t, opt)
	case TSV:
		return writeTSV(w, t, opt)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders tables and returns the bytes.
func Marshal(f Format, opt Options, tables ...*Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, opt, tables...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// block is one renderable sub-grid of a table together with the alignment of
// each of its columns.
type block struct {
	m      *CellMatrix
	aligns []Alignment
}

// layout runs the shared build → align → indent → split pipeline and returns
// the resulting blocks plus whether row indentation fired.
func layout(t *Table, opt Options, f Format) ([]block, bool) {
	m := newCellMatrix(t, opt)
	aligns := resolveAlignments(m, opt.Align)
	indented := applyIndent(m, opt.GroupMarker, opt.IndentRows)
	if f == Text {
		centerHeader(m)
	}
	budget := opt.Width
	if budget <= 0 {
		budget = opt.LineWidth
	}
	var blocks []block
	for _, cols := range splitColumns(m, opt.Sep, budget) {
		blocks = append(blocks, block{m: m.Select(cols), aligns: subset(aligns, cols)})
	}
	return blocks, indented
}

func subset(aligns []Alignment, cols []int) []Alignment {
	out := make([]Alignment, len(cols))
	for i, c := range cols {
		out[i] = aligns[c]
	}
	return out
}
