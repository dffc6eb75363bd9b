package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

func answer(weight int, value database.AnswerValue) database.Answer {
	return database.Answer{
		Value:    value,
		Question: database.Question{Weight: weight},
	}
}

func TestCalculateCountsAndScore(t *testing.T) {
	answers := []database.Answer{
		answer(5, database.AnswerYes),
		answer(5, database.AnswerNo),
		answer(3, database.AnswerPartial),
		answer(2, database.AnswerNotApplicable),
	}

	stats := Calculate(answers)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Yes)
	assert.Equal(t, 1, stats.No)
	assert.Equal(t, 1, stats.Partial)
	assert.Equal(t, 1, stats.NotApplicable)
	// evaluable weight 13, earned 650
	assert.Equal(t, 50.0, stats.Score)
}

func TestCalculateAllNotApplicable(t *testing.T) {
	answers := []database.Answer{
		answer(5, database.AnswerNotApplicable),
		answer(4, database.AnswerNotApplicable),
		answer(3, database.AnswerNotApplicable),
		answer(2, database.AnswerNotApplicable),
	}

	stats := Calculate(answers)
	assert.Equal(t, 0.0, stats.Score)

	// a zero score lands in the critical band even though nothing was
	// actually answered negatively
	tier := ClassifyTier(stats.Score)
	assert.Equal(t, tierCritical.Name, tier.Name)
}

func TestClassifyTierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, tierHigh.Name},
		{80, tierHigh.Name},
		{79.9, tierMedium.Name},
		{50, tierMedium.Name},
		{49.9, tierCritical.Name},
		{0, tierCritical.Name},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyTier(c.score).Name, "score %v", c.score)
	}
}
