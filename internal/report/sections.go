package report

import (
	"fmt"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/pdf"
)

var (
	colorTitle     = pdf.RGB{R: 30, G: 58, B: 138}
	colorSubtitle  = pdf.RGB{R: 59, G: 130, B: 246}
	colorLabelFill = pdf.RGB{R: 224, G: 231, B: 255}
	colorGreen     = pdf.RGB{R: 16, G: 185, B: 129}
	colorRed       = pdf.RGB{R: 239, G: 68, B: 68}
	colorGapHeader = pdf.RGB{R: 220, G: 38, B: 38}
	colorZebra     = pdf.RGB{R: 241, G: 245, B: 249}
	colorGapZebra  = pdf.RGB{R: 254, G: 242, B: 242}

	fillYes     = pdf.RGB{R: 209, G: 250, B: 229}
	fillNo      = pdf.RGB{R: 254, G: 226, B: 226}
	fillPartial = pdf.RGB{R: 254, G: 243, B: 199}
	fillNA      = pdf.RGB{R: 241, G: 245, B: 249}
)

// Document assembles the ordered report sections: cover, executive summary,
// gap analysis, recommendations and the full detail annex.
func (r *Report) Document() pdf.Document {
	var elements []pdf.Element
	elements = append(elements, r.coverSection()...)
	elements = append(elements, r.summarySection()...)
	elements = append(elements, r.gapSection()...)
	elements = append(elements, r.recommendationSection()...)
	elements = append(elements, r.annexSection()...)
	return pdf.Document{Elements: elements}
}

func (r *Report) coverSection() []pdf.Element {
	return []pdf.Element{
		pdf.Spacer{Height: 20},
		pdf.Heading{Text: "REPORTE DE CUMPLIMIENTO\nLEY MARCO DE CIBERSEGURIDAD 21.663", Color: colorTitle},
		pdf.Paragraph{Text: "Diagnóstico de Sistema de Gestión de Seguridad de la Información", Bold: true, Centered: true, Color: &colorSubtitle},
		pdf.Spacer{Height: 20},
		pdf.KeyValueTable{
			Rows: [][2]string{
				{"Empresa:", r.Account.CompanyName},
				{"RUT:", r.Account.TaxID},
				{"Contacto:", r.Account.ContactEmail},
				{"Fecha de Evaluación:", r.Assessment.CreatedAt.Format("02/01/2006")},
				{"ID de Reporte:", "SGSI-" + r.Assessment.ID},
				{"Generado el:", r.GeneratedAt.Format("02/01/2006 15:04 UTC")},
			},
			LabelFill: colorLabelFill,
			LabelText: colorTitle,
		},
		pdf.Spacer{Height: 20},
		pdf.Paragraph{Text: "CONFIDENCIAL: este reporte contiene información sensible sobre el estado de seguridad de la información de su organización. Debe ser tratado con la máxima confidencialidad."},
		pdf.PageBreak{},
	}
}

func (r *Report) summarySection() []pdf.Element {
	compliance := r.Stats.Score
	shortfall := 100 - compliance
	return []pdf.Element{
		pdf.Heading{Text: "RESUMEN EJECUTIVO", Color: colorTitle},
		pdf.Paragraph{Text: fmt.Sprintf(
			"El presente reporte presenta los resultados del diagnóstico de cumplimiento realizado a %s en conformidad con los requisitos establecidos en la Ley Marco de Ciberseguridad N° 21.663 y las mejores prácticas de ISO/IEC 27001:2022.",
			r.Account.CompanyName)},
		pdf.Spacer{Height: 4},
		pdf.ProportionChart{Slices: [2]pdf.ChartSlice{
			{Label: fmt.Sprintf("Cumplimiento %.1f%%", compliance), Value: compliance, Color: colorGreen},
			{Label: fmt.Sprintf("Brechas %.1f%%", shortfall), Value: shortfall, Color: colorRed},
		}},
		pdf.Spacer{Height: 4},
		pdf.Table{
			Header:     []string{"MÉTRICA", "VALOR"},
			ColWidths:  []float64{0.7, 0.3},
			HeaderFill: colorTitle,
			AltRowFill: &colorZebra,
			Rows: [][]string{
				{"Puntaje de Cumplimiento General", fmt.Sprintf("%.1f%%", r.Stats.Score)},
				{"Total de Controles Evaluados", fmt.Sprintf("%d", r.Stats.Total)},
				{"Controles Implementados (Sí)", fmt.Sprintf("%d", r.Stats.Yes)},
				{"Controles Parcialmente Implementados", fmt.Sprintf("%d", r.Stats.Partial)},
				{"Controles No Implementados", fmt.Sprintf("%d", r.Stats.No)},
				{"No Aplica", fmt.Sprintf("%d", r.Stats.NotApplicable)},
			},
		},
		pdf.Spacer{Height: 4},
		pdf.Paragraph{Text: "NIVEL DE CUMPLIMIENTO: " + r.Tier.Name, Bold: true, Centered: true, Color: &r.Tier.Color},
		pdf.Paragraph{Text: r.Tier.Narrative},
		pdf.PageBreak{},
	}
}

func (r *Report) gapSection() []pdf.Element {
	elements := []pdf.Element{
		pdf.Heading{Text: "ANÁLISIS DE BRECHAS CRÍTICAS", Color: colorTitle},
		pdf.Paragraph{Text: "A continuación se presentan las principales brechas identificadas en su Sistema de Gestión de Seguridad de la Información, priorizadas por criticidad:"},
		pdf.Spacer{Height: 4},
	}
	if len(r.Gaps) == 0 {
		elements = append(elements, pdf.Paragraph{Text: "¡Felicitaciones! No se identificaron brechas críticas."})
	} else {
		rows := make([][]string, 0, len(r.Gaps))
		for i, gap := range r.Gaps {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				truncate(gap.Answer.Question.Text, 100),
				gap.Answer.Question.Domain,
				gap.Status(),
				string(gap.Priority()),
			})
		}
		elements = append(elements, pdf.Table{
			Header:     []string{"#", "CONTROL", "DOMINIO", "ESTADO", "PRIORIDAD"},
			ColWidths:  []float64{0.05, 0.45, 0.22, 0.15, 0.13},
			HeaderFill: colorGapHeader,
			AltRowFill: &colorGapZebra,
			Rows:       rows,
		})
	}
	elements = append(elements, pdf.PageBreak{})
	return elements
}

func (r *Report) recommendationSection() []pdf.Element {
	elements := []pdf.Element{
		pdf.Heading{Text: "RECOMENDACIONES Y PRÓXIMOS PASOS", Color: colorTitle},
	}
	for _, rec := range r.Recommendations {
		elements = append(elements, pdf.Paragraph{Text: rec}, pdf.Spacer{Height: 2})
	}
	elements = append(elements, pdf.PageBreak{})
	return elements
}

func (r *Report) annexSection() []pdf.Element {
	elements := []pdf.Element{
		pdf.Heading{Text: "ANEXO: DETALLE COMPLETO DE EVALUACIÓN", Color: colorTitle},
	}
	for _, domain := range r.Domains {
		elements = append(elements, pdf.Subheading{Text: domain.Domain, Color: colorSubtitle})
		for _, answer := range domain.Answers {
			lines := []string{
				answer.Question.Text,
				"Estado: " + statusLabel(answer.Value),
			}
			if answer.Evidence != "" {
				lines = append(lines, "Evidencia: "+answer.Evidence)
			}
			elements = append(elements,
				pdf.StatusBlock{Lines: lines, Fill: statusFill(answer.Value)},
				pdf.Spacer{Height: 2},
			)
		}
		elements = append(elements, pdf.Spacer{Height: 3})
	}
	return elements
}

func statusLabel(v database.AnswerValue) string {
	switch v {
	case database.AnswerYes:
		return "Sí"
	case database.AnswerNo:
		return "No"
	case database.AnswerPartial:
		return "Parcial"
	default:
		return "N/A"
	}
}

func statusFill(v database.AnswerValue) pdf.RGB {
	switch v {
	case database.AnswerYes:
		return fillYes
	case database.AnswerNo:
		return fillNo
	case database.AnswerPartial:
		return fillPartial
	default:
		return fillNA
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
