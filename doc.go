// Package tably renders data tables as aligned plain text, Markdown,
// HTML, CSV, or TSV.
//
// A [Table] is an ordered set of named, equal-length columns built from
// [NewNumeric], [NewText], or [NewCategorical]. The central entry points are
// [Write] and [Marshal], which take a [Format], an [Options] value, and any
// number of tables; tables render independently and are separated by a
// blank line.
//
//	t, _ := tably.NewTable(
//		tably.NewText("Parameter", "alpha", "beta"),
//		tably.NewNumeric("Estimate", 0.52, -1.07),
//	)
//	tably.Write(os.Stdout, tably.Text, tably.DefaultOptions(), t)
//
// # Layout
//
// Rendering runs a fixed pipeline per table: the cell matrix is built
// (numeric columns formatted by [FormatValues] and right-justified, text
// columns left-justified), column alignment is resolved, rows are optionally
// indented, and tables wider than the width budget are split into up to
// three stacked blocks that repeat the row-label column.
//
// Alignment comes from Options.Align: empty infers per column from the
// formatted values, "left"/"right"/"center" apply uniformly, "firstleft"
// left-aligns the label column, and a string of l/r/c letters sets each
// column. Malformed directives degrade to centered columns instead of
// erroring.
//
// Row indentation nests rows under group headings. With Options.GroupMarker,
// rows carrying the marker open a group and the rows after them indent.
// Without it, rows listed in Options.IndentRows indent whenever a literal
// "# " marks a heading row in the first column.
//
// # Decoration
//
// Caption, subtitle, and footer come from Options or, as a fallback, from
// table attributes ([AttrTitle], [AttrSubtitle], [AttrFooter]). Each line
// may name a terminal color, applied in the text format only.
//
// # Formats
//
//   - [Text] — separator-joined grid with a header rule
//   - [Markdown] — pipe table with :--- alignment markers
//   - [HTML] — built through etree; [HTMLDocument] exposes the document
//   - [CSV], [TSV] — unpadded cell values
//
// Use [ParseFormat] to convert a flag string into a [Format]; unknown names
// fail with [ErrUnsupportedFormat].
//
// # Streaming
//
// [WriteIter] and [WriteChan] render tables from an iterator or channel as
// they arrive.
package tably
