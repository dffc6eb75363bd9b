// Package pdf renders an ordered sequence of layout elements into a PDF
// document. It knows nothing about assessments or compliance; callers own
// section ordering and content.
package pdf

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Document is the full element sequence to render, first page first.
type Document struct {
	Elements []Element
}

type Element interface {
	element()
}

// Heading is a large centered section title.
type Heading struct {
	Text  string
	Color RGB
}

// Subheading is a smaller left-aligned title.
type Subheading struct {
	Text  string
	Color RGB
}

// Paragraph is wrapped body text.
type Paragraph struct {
	Text     string
	Bold     bool
	Centered bool
	Color    *RGB // nil means default body color
}

// KeyValueTable is a two-column label/value grid with shaded labels.
type KeyValueTable struct {
	Rows      [][2]string
	LabelFill RGB
	LabelText RGB
}

// Table is a header + rows grid. ColWidths are fractions of the printable
// width and must match the column count; when nil, columns split evenly.
type Table struct {
	Header     []string
	Rows       [][]string
	ColWidths  []float64
	HeaderFill RGB
	AltRowFill *RGB // optional zebra striping
}

// ChartSlice is one slice of a proportion chart.
type ChartSlice struct {
	Label string
	Value float64
	Color RGB
}

// ProportionChart is a simple two-slice pie.
type ProportionChart struct {
	Slices [2]ChartSlice
}

// StatusBlock is a filled box of short lines, used for per-item callouts.
type StatusBlock struct {
	Lines []string
	Fill  RGB
}

// Spacer inserts vertical whitespace, in millimeters.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page.
type PageBreak struct{}

func (Heading) element()         {}
func (Subheading) element()      {}
func (Paragraph) element()       {}
func (KeyValueTable) element()   {}
func (Table) element()           {}
func (ProportionChart) element() {}
func (StatusBlock) element()     {}
func (Spacer) element()          {}
func (PageBreak) element()       {}
