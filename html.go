package tably

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

func writeHTML(w io.Writer, t *Table, opt Options) error {
	doc := HTMLDocument(t, opt)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// HTMLDocument builds the HTML rendering of one table and returns it as an
// etree document, the opaque renderable for callers that post-process the
// markup. Column alignment is adjusted through style attributes after the
// grid is built. An empty table yields an empty document.
func HTMLDocument(t *Table, opt Options) *etree.Document {
	doc := etree.NewDocument()
	if t == nil || t.Rows() == 0 || t.Columns() == 0 {
		return doc
	}
	opt = opt.withDefaults()
	m := newCellMatrix(t, opt)
	aligns := resolveAlignments(m, opt.Align)
	dec := resolveDecoration(t, opt)

	table := doc.CreateElement("table")
	if caption := captionLine(dec, false); caption != "" {
		table.CreateElement("caption").SetText(caption)
	}

	thead := table.CreateElement("thead")
	tr := thead.CreateElement("tr")
	for c := 0; c < m.Columns(); c++ {
		th := tr.CreateElement("th")
		setAlignStyle(th, aligns[c])
		th.SetText(strings.TrimSpace(m.Cell(0, c)))
	}

	tbody := table.CreateElement("tbody")
	for r := 1; r < m.Rows(); r++ {
		tr := tbody.CreateElement("tr")
		for c := 0; c < m.Columns(); c++ {
			td := tr.CreateElement("td")
			setAlignStyle(td, aligns[c])
			td.SetText(strings.TrimSpace(m.Cell(r, c)))
		}
	}

	var footer []Line
	for _, l := range dec.Footer {
		if strings.TrimSpace(l.Text) != "" {
			footer = append(footer, l)
		}
	}
	if len(footer) > 0 {
		tfoot := table.CreateElement("tfoot")
		for _, l := range footer {
			td := tfoot.CreateElement("tr").CreateElement("td")
			td.CreateAttr("colspan", strconv.Itoa(m.Columns()))
			td.SetText(l.Text)
		}
	}
	return doc
}

func setAlignStyle(e *etree.Element, a Alignment) {
	switch a {
	case AlignRight:
		e.CreateAttr("style", "text-align: right")
	case AlignCenter:
		e.CreateAttr("style", "text-align: center")
	}
}
