package report

import (
	"sort"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

// maxGaps caps the gap-analysis table at the ten most critical shortfalls.
const maxGaps = 10

type Priority string

const (
	PriorityAlta  Priority = "ALTA"
	PriorityMedia Priority = "MEDIA"
	PriorityBaja  Priority = "BAJA"
)

// Gap is a compliance shortfall: an answer of No or Parcial.
type Gap struct {
	Answer database.Answer
}

// Priority buckets the gap by its question weight.
func (g Gap) Priority() Priority {
	switch {
	case g.Answer.Question.Weight >= 4:
		return PriorityAlta
	case g.Answer.Question.Weight >= 2:
		return PriorityMedia
	default:
		return PriorityBaja
	}
}

// Status is the human label for the shortfall.
func (g Gap) Status() string {
	if g.Answer.Value == database.AnswerNo {
		return "No Implementado"
	}
	return "Parcial"
}

// RankGaps selects the No/Parcial answers, orders them by question weight
// descending (ties keep their original order) and returns at most the top
// ten.
func RankGaps(answers []database.Answer) []Gap {
	gaps := make([]Gap, 0)
	for _, a := range answers {
		if a.Value == database.AnswerNo || a.Value == database.AnswerPartial {
			gaps = append(gaps, Gap{Answer: a})
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Answer.Question.Weight > gaps[j].Answer.Question.Weight
	})
	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}
