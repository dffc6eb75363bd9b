package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

func gapAnswer(id uint, weight int, value database.AnswerValue) database.Answer {
	return database.Answer{
		QuestionID: id,
		Value:      value,
		Question:   database.Question{ID: id, Weight: weight, Text: fmt.Sprintf("control %d", id)},
	}
}

func TestRankGapsFiltersAndSorts(t *testing.T) {
	answers := []database.Answer{
		gapAnswer(1, 2, database.AnswerNo),
		gapAnswer(2, 5, database.AnswerYes), // compliant, never a gap
		gapAnswer(3, 5, database.AnswerPartial),
		gapAnswer(4, 1, database.AnswerNo),
		gapAnswer(5, 4, database.AnswerNotApplicable), // excluded
		gapAnswer(6, 4, database.AnswerNo),
	}

	gaps := RankGaps(answers)
	require.Len(t, gaps, 4)
	assert.Equal(t, uint(3), gaps[0].Answer.QuestionID)
	assert.Equal(t, uint(6), gaps[1].Answer.QuestionID)
	assert.Equal(t, uint(1), gaps[2].Answer.QuestionID)
	assert.Equal(t, uint(4), gaps[3].Answer.QuestionID)
}

func TestRankGapsStableOnTies(t *testing.T) {
	answers := []database.Answer{
		gapAnswer(10, 3, database.AnswerNo),
		gapAnswer(11, 3, database.AnswerPartial),
		gapAnswer(12, 3, database.AnswerNo),
	}

	gaps := RankGaps(answers)
	require.Len(t, gaps, 3)
	assert.Equal(t, uint(10), gaps[0].Answer.QuestionID)
	assert.Equal(t, uint(11), gaps[1].Answer.QuestionID)
	assert.Equal(t, uint(12), gaps[2].Answer.QuestionID)
}

func TestRankGapsCapsAtTen(t *testing.T) {
	var answers []database.Answer
	for i := uint(1); i <= 15; i++ {
		answers = append(answers, gapAnswer(i, 3, database.AnswerNo))
	}

	gaps := RankGaps(answers)
	assert.Len(t, gaps, 10)
	// ties keep insertion order, so the first ten survive the cap
	assert.Equal(t, uint(1), gaps[0].Answer.QuestionID)
	assert.Equal(t, uint(10), gaps[9].Answer.QuestionID)
}

func TestGapPriorities(t *testing.T) {
	assert.Equal(t, PriorityAlta, Gap{Answer: gapAnswer(1, 5, database.AnswerNo)}.Priority())
	assert.Equal(t, PriorityAlta, Gap{Answer: gapAnswer(1, 4, database.AnswerNo)}.Priority())
	assert.Equal(t, PriorityMedia, Gap{Answer: gapAnswer(1, 3, database.AnswerNo)}.Priority())
	assert.Equal(t, PriorityMedia, Gap{Answer: gapAnswer(1, 2, database.AnswerNo)}.Priority())
	assert.Equal(t, PriorityBaja, Gap{Answer: gapAnswer(1, 1, database.AnswerNo)}.Priority())
}

func TestGapStatus(t *testing.T) {
	assert.Equal(t, "No Implementado", Gap{Answer: gapAnswer(1, 3, database.AnswerNo)}.Status())
	assert.Equal(t, "Parcial", Gap{Answer: gapAnswer(1, 3, database.AnswerPartial)}.Status())
}
