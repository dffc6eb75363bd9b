package pdf

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// zeroTime pins the PDF metadata clock so identical documents produce
// identical bytes.
func zeroTime() time.Time { return time.Unix(0, 0).UTC() }

const (
	marginMM     = 19.0
	bodyFontSize = 10.0
	lineHeightMM = 5.0
)

// Render lays out the document and returns the PDF bytes. Output is
// deterministic for identical input: gofpdf's creation timestamp is pinned
// so the same document renders to the same bytes.
func Render(doc Document) ([]byte, error) {
	f := gofpdf.New("P", "mm", "Letter", "")
	f.SetCreationDate(zeroTime())
	f.SetMargins(marginMM, marginMM, marginMM)
	f.SetAutoPageBreak(true, marginMM)
	f.AddPage()

	r := &renderer{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
	for _, el := range doc.Elements {
		r.render(el)
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	f  *gofpdf.Fpdf
	tr func(string) string
}

func (r *renderer) printableWidth() float64 {
	w, _ := r.f.GetPageSize()
	return w - 2*marginMM
}

func (r *renderer) render(el Element) {
	switch e := el.(type) {
	case Heading:
		r.heading(e)
	case Subheading:
		r.subheading(e)
	case Paragraph:
		r.paragraph(e)
	case KeyValueTable:
		r.keyValueTable(e)
	case Table:
		r.table(e)
	case ProportionChart:
		r.proportionChart(e)
	case StatusBlock:
		r.statusBlock(e)
	case Spacer:
		r.f.Ln(e.Height)
	case PageBreak:
		r.f.AddPage()
	}
}

func (r *renderer) heading(e Heading) {
	r.f.SetFont("Helvetica", "B", 20)
	r.f.SetTextColor(e.Color.R, e.Color.G, e.Color.B)
	r.f.MultiCell(r.printableWidth(), 9, r.tr(e.Text), "", "C", false)
	r.f.Ln(4)
	r.resetText()
}

func (r *renderer) subheading(e Subheading) {
	r.f.SetFont("Helvetica", "B", 13)
	r.f.SetTextColor(e.Color.R, e.Color.G, e.Color.B)
	r.f.MultiCell(r.printableWidth(), 7, r.tr(e.Text), "", "L", false)
	r.f.Ln(2)
	r.resetText()
}

func (r *renderer) paragraph(e Paragraph) {
	style := ""
	if e.Bold {
		style = "B"
	}
	align := "J"
	if e.Centered {
		align = "C"
	}
	r.f.SetFont("Helvetica", style, bodyFontSize)
	if e.Color != nil {
		r.f.SetTextColor(e.Color.R, e.Color.G, e.Color.B)
	}
	r.f.MultiCell(r.printableWidth(), lineHeightMM, r.tr(e.Text), "", align, false)
	r.f.Ln(2)
	r.resetText()
}

func (r *renderer) keyValueTable(e KeyValueTable) {
	labelW := r.printableWidth() * 0.33
	valueW := r.printableWidth() - labelW
	r.f.SetFont("Helvetica", "", bodyFontSize)
	for _, row := range e.Rows {
		r.f.SetFont("Helvetica", "B", bodyFontSize)
		r.f.SetFillColor(e.LabelFill.R, e.LabelFill.G, e.LabelFill.B)
		r.f.SetTextColor(e.LabelText.R, e.LabelText.G, e.LabelText.B)
		r.f.CellFormat(labelW, 9, r.tr(row[0]), "1", 0, "L", true, 0, "")
		r.f.SetFont("Helvetica", "", bodyFontSize)
		r.f.SetTextColor(0, 0, 0)
		r.f.CellFormat(valueW, 9, r.tr(row[1]), "1", 1, "L", false, 0, "")
	}
	r.f.Ln(3)
	r.resetText()
}

func (r *renderer) table(e Table) {
	widths := e.ColWidths
	if widths == nil {
		widths = make([]float64, len(e.Header))
		for i := range widths {
			widths[i] = 1.0 / float64(len(e.Header))
		}
	}
	total := r.printableWidth()

	r.f.SetFont("Helvetica", "B", 9)
	r.f.SetFillColor(e.HeaderFill.R, e.HeaderFill.G, e.HeaderFill.B)
	r.f.SetTextColor(255, 255, 255)
	for i, h := range e.Header {
		r.f.CellFormat(total*widths[i], 8, r.tr(h), "1", 0, "L", true, 0, "")
	}
	r.f.Ln(-1)

	r.f.SetFont("Helvetica", "", 8)
	r.f.SetTextColor(0, 0, 0)
	for idx, row := range e.Rows {
		fill := false
		if e.AltRowFill != nil && idx%2 == 1 {
			r.f.SetFillColor(e.AltRowFill.R, e.AltRowFill.G, e.AltRowFill.B)
			fill = true
		}
		r.wrappedRow(row, widths, total, fill)
	}
	r.f.Ln(3)
	r.resetText()
}

// wrappedRow draws one table row whose height grows with the tallest cell.
func (r *renderer) wrappedRow(row []string, widths []float64, total float64, fill bool) {
	const cellLine = 4.0
	lines := make([][]string, len(row))
	height := cellLine
	for i, cell := range row {
		lines[i] = r.f.SplitText(r.tr(cell), total*widths[i]-2)
		if h := float64(len(lines[i])) * cellLine; h > height {
			height = h
		}
	}
	// keep the row on one page
	_, pageH := r.f.GetPageSize()
	if r.f.GetY()+height > pageH-marginMM {
		r.f.AddPage()
	}
	x0 := r.f.GetX()
	y0 := r.f.GetY()
	x := x0
	for i := range row {
		w := total * widths[i]
		style := "D"
		if fill {
			style = "FD"
		}
		r.f.Rect(x, y0, w, height+2, style)
		r.f.SetXY(x+1, y0+1)
		for _, ln := range lines[i] {
			r.f.CellFormat(w-2, cellLine, ln, "", 2, "L", false, 0, "")
		}
		x += w
	}
	r.f.SetXY(x0, y0+height+2)
}

func (r *renderer) proportionChart(e ProportionChart) {
	const radius = 30.0
	centerX := marginMM + r.printableWidth()/2
	centerY := r.f.GetY() + radius + 5

	totalValue := e.Slices[0].Value + e.Slices[1].Value
	if totalValue <= 0 {
		totalValue = 1
	}
	start := -90.0 // twelve o'clock
	for _, slice := range e.Slices {
		sweep := 360 * slice.Value / totalValue
		if sweep <= 0 {
			continue
		}
		r.f.SetFillColor(slice.Color.R, slice.Color.G, slice.Color.B)
		if sweep >= 360 {
			r.f.Circle(centerX, centerY, radius, "F")
			break
		}
		r.sector(centerX, centerY, radius, start, start+sweep)
		start += sweep
	}

	// legend under the chart
	r.f.SetY(centerY + radius + 4)
	r.f.SetFont("Helvetica", "", 9)
	legendW := r.printableWidth() / 2
	for i, slice := range e.Slices {
		x := marginMM + float64(i)*legendW
		r.f.SetXY(x, r.f.GetY())
		r.f.SetFillColor(slice.Color.R, slice.Color.G, slice.Color.B)
		r.f.Rect(x, r.f.GetY()+0.5, 4, 4, "F")
		r.f.SetXY(x+6, r.f.GetY())
		r.f.CellFormat(legendW-6, 5, r.tr(slice.Label), "", 0, "L", false, 0, "")
	}
	r.f.Ln(8)
	r.resetText()
}

// sector fills a pie slice as a polygon fan from the center.
func (r *renderer) sector(cx, cy, radius, fromDeg, toDeg float64) {
	steps := int(math.Ceil((toDeg-fromDeg)/3)) + 1
	points := make([]gofpdf.PointType, 0, steps+2)
	points = append(points, gofpdf.PointType{X: cx, Y: cy})
	for i := 0; i <= steps; i++ {
		deg := fromDeg + (toDeg-fromDeg)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		points = append(points, gofpdf.PointType{
			X: cx + radius*math.Cos(rad),
			Y: cy + radius*math.Sin(rad),
		})
	}
	r.f.Polygon(points, "F")
}

func (r *renderer) statusBlock(e StatusBlock) {
	const cellLine = 4.5
	width := r.printableWidth()
	var lines []string
	for _, raw := range e.Lines {
		lines = append(lines, r.f.SplitText(r.tr(raw), width-4)...)
	}
	height := float64(len(lines))*cellLine + 3

	_, pageH := r.f.GetPageSize()
	if r.f.GetY()+height > pageH-marginMM {
		r.f.AddPage()
	}
	x0 := r.f.GetX()
	y0 := r.f.GetY()
	r.f.SetFillColor(e.Fill.R, e.Fill.G, e.Fill.B)
	r.f.Rect(x0, y0, width, height, "FD")
	r.f.SetXY(x0+2, y0+1.5)
	r.f.SetFont("Helvetica", "", 9)
	for _, ln := range lines {
		r.f.CellFormat(width-4, cellLine, ln, "", 2, "L", false, 0, "")
	}
	r.f.SetXY(x0, y0+height+2)
	r.resetText()
}

func (r *renderer) resetText() {
	r.f.SetTextColor(0, 0, 0)
	r.f.SetFont("Helvetica", "", bodyFontSize)
}
