package services

import (
	"math"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

// WeightedAnswer pairs a question weight with the value answered for it.
type WeightedAnswer struct {
	Weight int
	Value  database.AnswerValue
}

// Score computes the weighted compliance percentage for a set of answers.
// N/A answers are excluded from numerator and denominator, Yes earns full
// credit for the question weight, Parcial earns half, No earns none. A set
// with no evaluable weight scores 0 rather than failing. The result is
// rounded half away from zero to one decimal and is independent of input
// order.
func Score(answers []WeightedAnswer) float64 {
	totalWeight := 0
	earned := 0
	for _, a := range answers {
		if a.Value == database.AnswerNotApplicable {
			continue
		}
		totalWeight += a.Weight
		switch a.Value {
		case database.AnswerYes:
			earned += a.Weight * 100
		case database.AnswerPartial:
			earned += a.Weight * 50
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return math.Round(float64(earned)/float64(totalWeight)*10) / 10
}
