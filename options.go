package tably

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Line is one decoration line: text plus an optional color name understood
// by the terminal color helper. An unknown or empty color leaves the text
// unchanged.
type Line struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color,omitempty"`
}

// Options controls value formatting, layout, and decoration for a render.
// The zero value is usable; [DefaultOptions] fills in the conventional
// separator, header fill, and digits.
type Options struct {
	// Value formatting for numeric columns.
	Digits          int    `yaml:"digits"`
	ProtectIntegers bool   `yaml:"protect_integers"`
	ZapSmall        bool   `yaml:"zap_small"`
	Missing         string `yaml:"missing"`

	// Layout.
	Sep       string `yaml:"sep"`        // column separator, default " | "
	Header    string `yaml:"header"`     // header rule fill char, "" disables the rule
	EmptyLine string `yaml:"empty_line"` // fill char for all-empty rows, "" pads with blanks
	Align     string `yaml:"align"`      // "", "left", "right", "center", "firstleft", or one of l/r/c per column
	Width     int    `yaml:"width"`      // explicit width budget; 0 means use LineWidth
	LineWidth int    `yaml:"line_width"` // output medium line width for the auto budget, default 80

	// Row indentation. GroupMarker wins when its token occurs in column 0;
	// otherwise IndentRows fires when a literal "# " occurs there.
	GroupMarker string `yaml:"group_marker"`
	IndentRows  []int  `yaml:"indent_rows"`

	// Decoration. Table attributes supply defaults for empty fields.
	Caption  Line   `yaml:"caption"`
	Subtitle Line   `yaml:"subtitle"`
	Footer   []Line `yaml:"footer"`
}

// DefaultOptions returns the conventional render settings.
func DefaultOptions() Options {
	return Options{
		Digits:    2,
		Sep:       " | ",
		Header:    "-",
		LineWidth: 80,
	}
}

// withDefaults fills the fields the pipeline cannot work without. Header and
// EmptyLine stay as given: empty is a meaningful setting for both.
func (o Options) withDefaults() Options {
	if o.Sep == "" {
		o.Sep = " | "
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 80
	}
	return o
}

// OptionsFromYAML reads Options from YAML, overlaid on [DefaultOptions].
func OptionsFromYAML(r io.Reader) (Options, error) {
	opt := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opt); err != nil {
		return Options{}, fmt.Errorf("tably: parsing options: %w", err)
	}
	return opt, nil
}

// Decoration is the caption, subtitle, and footer resolved for one table.
// It is computed once at the entry point and immutable afterwards.
type Decoration struct {
	Caption  Line
	Subtitle Line
	Footer   []Line
}

// resolveDecoration merges explicit option fields with table attributes,
// options winning.
func resolveDecoration(t *Table, opt Options) Decoration {
	d := Decoration{Caption: opt.Caption, Subtitle: opt.Subtitle, Footer: opt.Footer}
	if d.Caption.Text == "" {
		d.Caption = Line{Text: t.Attr(AttrTitle), Color: t.Attr(AttrTitleColor)}
	}
	if d.Subtitle.Text == "" {
		d.Subtitle = Line{Text: t.Attr(AttrSubtitle), Color: t.Attr(AttrSubtitleColor)}
	}
	if len(d.Footer) == 0 {
		if f := t.Attr(AttrFooter); f != "" {
			d.Footer = []Line{{Text: f, Color: t.Attr(AttrFooterColor)}}
		}
	}
	return d
}
