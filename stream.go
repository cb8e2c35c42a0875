package tably

import (
	"io"
	"iter"

	log "github.com/sirupsen/logrus"
)

// WriteIter renders tables from an iterator as they arrive. Tables are
// independent, so every format streams table by table; blank-line separation
// matches [Write].
func WriteIter(w io.Writer, f Format, opt Options, seq iter.Seq[*Table]) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	opt = opt.withDefaults()
	first := true
	var streamErr error
	seq(func(t *Table) bool {
		if t == nil || t.Rows() == 0 || t.Columns() == 0 {
			log.Debug("tably: skipping empty table")
			return true
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				streamErr = err
				return false
			}
		}
		first = false
		if err := writeTable(w, f, t, opt); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders tables from a channel.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, opt Options, ch <-chan *Table) error {
	return WriteIter(w, f, opt, chanToIter(ch))
}

func chanToIter(ch <-chan *Table) iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		for t := range ch {
			if !yield(t) {
				return
			}
		}
	}
}
