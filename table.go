package tably

import "fmt"

// Attribute keys recognized by the decoration resolver. Values set via
// [Table.SetAttr] under these keys act as defaults for the corresponding
// Options fields.
const (
	AttrTitle         = "table_title"
	AttrTitleColor    = "table_title_color"
	AttrSubtitle      = "table_subtitle"
	AttrSubtitleColor = "table_subtitle_color"
	AttrFooter        = "table_footer"
	AttrFooterColor   = "table_footer_color"
)

// Column is one named, typed column of a [Table]. The two implementations
// are [NumericColumn] and [TextColumn]; the set is closed so that formatting
// and justification dispatch is exhaustive.
type Column interface {
	Name() string
	Len() int

	// body returns the unjustified display strings for the column's data
	// cells, and whether the column should default to right alignment.
	body(opt Options) ([]string, bool)
}

// NumericColumn holds float64 values. NaN marks a missing value and renders
// as the Missing placeholder.
type NumericColumn struct {
	name   string
	Values []float64
}

// NewNumeric constructs a numeric column.
func NewNumeric(name string, values ...float64) *NumericColumn {
	return &NumericColumn{name: name, Values: values}
}

// Name returns the column name.
func (c *NumericColumn) Name() string { return c.name }

// Len returns the number of data cells.
func (c *NumericColumn) Len() int { return len(c.Values) }

func (c *NumericColumn) body(opt Options) ([]string, bool) {
	return FormatValues(c.Values, opt.Digits, opt.ProtectIntegers, opt.Missing, 0, opt.ZapSmall), true
}

// TextColumn holds string values, rendered verbatim.
type TextColumn struct {
	name   string
	Values []string
}

// NewText constructs a text column.
func NewText(name string, values ...string) *TextColumn {
	return &TextColumn{name: name, Values: values}
}

// NewCategorical constructs a column of category labels. Categories render
// exactly like text; the constructor exists so call sites can state intent.
func NewCategorical(name string, levels ...string) *TextColumn {
	return NewText(name, levels...)
}

// Name returns the column name.
func (c *TextColumn) Name() string { return c.name }

// Len returns the number of data cells.
func (c *TextColumn) Len() int { return len(c.Values) }

func (c *TextColumn) body(Options) ([]string, bool) {
	out := make([]string, len(c.Values))
	copy(out, c.Values)
	return out, false
}

// Table is an ordered set of named, equal-length columns plus optional
// string metadata. It is read-only to the rendering pipeline.
type Table struct {
	cols  []Column
	attrs map[string]string
}

// NewTable constructs a table, validating that all columns have the same
// length.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) > 0 {
		n := cols[0].Len()
		for _, c := range cols[1:] {
			if c.Len() != n {
				return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrMismatchedColumns, c.Name(), c.Len(), n)
			}
		}
	}
	return &Table{cols: cols}, nil
}

// Columns returns the number of columns.
func (t *Table) Columns() int { return len(t.cols) }

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// SetAttr attaches a metadata value to the table.
func (t *Table) SetAttr(key, value string) {
	if t.attrs == nil {
		t.attrs = make(map[string]string)
	}
	t.attrs[key] = value
}

// Attr returns the metadata value for key, or "".
func (t *Table) Attr(key string) string { return t.attrs[key] }
