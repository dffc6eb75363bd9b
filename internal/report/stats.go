package report

import (
	"math"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/pdf"
)

// Statistics summarizes a completed assessment's answer set.
type Statistics struct {
	Total         int
	Yes           int
	No            int
	Partial       int
	NotApplicable int
	Score         float64
}

// Calculate derives the report statistics from the raw answers. The
// percentage is recomputed here rather than read from the score cached on
// the assessment, so the summary, the chart and the annex always agree with
// each other.
func Calculate(answers []database.Answer) Statistics {
	s := Statistics{Total: len(answers)}
	for _, a := range answers {
		switch a.Value {
		case database.AnswerYes:
			s.Yes++
		case database.AnswerNo:
			s.No++
		case database.AnswerPartial:
			s.Partial++
		case database.AnswerNotApplicable:
			s.NotApplicable++
		}
	}
	s.Score = weightedScore(answers)
	return s
}

// weightedScore applies the same rule as submission-time scoring: N/A
// answers are excluded entirely, Sí earns the full question weight, Parcial
// half, No nothing; zero evaluable weight scores 0. Rounded half away from
// zero to one decimal.
func weightedScore(answers []database.Answer) float64 {
	totalWeight := 0
	earned := 0
	for _, a := range answers {
		if a.Value == database.AnswerNotApplicable {
			continue
		}
		totalWeight += a.Question.Weight
		switch a.Value {
		case database.AnswerYes:
			earned += a.Question.Weight * 100
		case database.AnswerPartial:
			earned += a.Question.Weight * 50
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return math.Round(float64(earned)/float64(totalWeight)*10) / 10
}

// Tier is one of the three score bands driving the narrative and the
// recommendation template.
type Tier struct {
	Name      string
	Narrative string
	Color     pdf.RGB
}

var (
	tierHigh = Tier{
		Name:      "CUMPLIMIENTO ALTO",
		Narrative: "Su organización presenta un nivel alto de cumplimiento con la normativa vigente.",
		Color:     pdf.RGB{R: 16, G: 185, B: 129},
	}
	tierMedium = Tier{
		Name:      "CUMPLIMIENTO MEDIO - ACCIÓN REQUERIDA",
		Narrative: "Su organización presenta brechas significativas que requieren atención inmediata.",
		Color:     pdf.RGB{R: 245, G: 158, B: 11},
	}
	tierCritical = Tier{
		Name:      "EN RIESGO CRÍTICO",
		Narrative: "Su organización presenta brechas críticas que exponen a riesgos regulatorios y operacionales graves.",
		Color:     pdf.RGB{R: 239, G: 68, B: 68},
	}
)

// ClassifyTier maps a score to its band: >=80 high, [50,80) medium,
// everything below critical.
func ClassifyTier(score float64) Tier {
	switch {
	case score >= 80:
		return tierHigh
	case score >= 50:
		return tierMedium
	default:
		return tierCritical
	}
}
