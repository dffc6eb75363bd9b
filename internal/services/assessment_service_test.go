package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

type assessmentStubStore struct {
	assessments map[string]*database.Assessment
	answers     map[string][]database.Answer
}

func newAssessmentStubStore() *assessmentStubStore {
	return &assessmentStubStore{
		assessments: map[string]*database.Assessment{},
		answers:     map[string][]database.Answer{},
	}
}

func (s *assessmentStubStore) AddAssessment(a *database.Assessment) error {
	cp := *a
	s.assessments[a.ID] = &cp
	return nil
}

func (s *assessmentStubStore) FindAssessment(id, accountID string) (*database.Assessment, error) {
	a, ok := s.assessments[id]
	if !ok || a.AccountID != accountID {
		return nil, nil
	}
	cp := *a
	cp.Answers = append([]database.Answer(nil), s.answers[id]...)
	return &cp, nil
}

func (s *assessmentStubStore) ListAssessments(accountID string) ([]database.Assessment, error) {
	var out []database.Assessment
	for _, a := range s.assessments {
		if a.AccountID == accountID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *assessmentStubStore) ReplaceAnswers(assessmentID string, answers []database.Answer, finalScore float64) error {
	s.answers[assessmentID] = append([]database.Answer(nil), answers...)
	a := s.assessments[assessmentID]
	a.FinalScore = finalScore
	a.State = database.StateCompleted
	return nil
}

type questionStubStore struct {
	questions []database.Question
}

func (s *questionStubStore) ListQuestions() ([]database.Question, error) {
	return append([]database.Question(nil), s.questions...), nil
}

func testCatalog() *questionStubStore {
	return &questionStubStore{questions: []database.Question{
		{ID: 1, Domain: "A.5 Políticas de Seguridad", Weight: 5, DisplayOrder: 1},
		{ID: 2, Domain: "A.5 Políticas de Seguridad", Weight: 5, DisplayOrder: 2},
		{ID: 3, Domain: "A.9 Control de Acceso", Weight: 3, DisplayOrder: 3},
		{ID: 4, Domain: "A.12 Seguridad en las Operaciones", Weight: 2, DisplayOrder: 4},
	}}
}

func newTestAssessmentService(store *assessmentStubStore) *AssessmentService {
	svc := NewAssessmentService(store, testCatalog())
	svc.now = func() time.Time { return time.Unix(1700000000, 0).UTC() }
	return svc
}

func TestCreateStartsInProgress(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)
	assert.Equal(t, database.StateInProgress, a.State)
	assert.Zero(t, a.FinalScore)
	assert.NotEmpty(t, a.ID)
}

func TestGetForOwnerHidesForeignAssessments(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-a")
	require.NoError(t, err)

	// owner B sees exactly what they would see for a nonexistent id
	_, errForeign := svc.GetForOwner(a.ID, "acc-b")
	_, errMissing := svc.GetForOwner("no-such-id", "acc-b")

	require.Error(t, errForeign)
	require.Error(t, errMissing)
	seForeign, ok := AsServiceError(errForeign)
	require.True(t, ok)
	seMissing, ok := AsServiceError(errMissing)
	require.True(t, ok)
	assert.Equal(t, ErrorNotFound, seForeign.Code)
	assert.Equal(t, seMissing.Message, seForeign.Message)
}

func TestSubmitAnswersScoresAndCompletes(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)

	result, err := svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1: {Value: database.AnswerYes},
		2: {Value: database.AnswerNo},
		3: {Value: database.AnswerPartial, Evidence: "política en borrador"},
		4: {Value: database.AnswerNotApplicable},
	})
	require.NoError(t, err)

	assert.Equal(t, database.StateCompleted, result.State)
	// weights 5+5+3 evaluable, earned 5*100 + 3*50 = 650 -> 50.0
	assert.Equal(t, 50.0, result.FinalScore)
	assert.Len(t, store.answers[a.ID], 4)
	assert.Equal(t, "política en borrador", store.answers[a.ID][2].Evidence)
}

func TestSubmitAnswersReplacesPriorSet(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1: {Value: database.AnswerYes},
	})
	require.NoError(t, err)
	require.Len(t, store.answers[a.ID], 1)

	_, err = svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1: {Value: database.AnswerNo},
		2: {Value: database.AnswerYes},
	})
	require.NoError(t, err)

	answers := store.answers[a.ID]
	require.Len(t, answers, 2)
	assert.Equal(t, database.AnswerNo, answers[0].Value)
	assert.Equal(t, database.AnswerYes, answers[1].Value)
}

func TestSubmitAnswersSkipsOmittedQuestions(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)

	result, err := svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1: {Value: database.AnswerYes},
		// questions 2-4 omitted: not stored, not scored, not recorded as N/A
	})
	require.NoError(t, err)

	require.Len(t, store.answers[a.ID], 1)
	assert.Equal(t, 100.0, result.FinalScore)
}

func TestSubmitAnswersIgnoresUnknownQuestionIDs(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1:   {Value: database.AnswerYes},
		999: {Value: database.AnswerYes},
	})
	require.NoError(t, err)
	assert.Len(t, store.answers[a.ID], 1)
}

func TestSubmitAnswersRejectsInvalidValue(t *testing.T) {
	store := newAssessmentStubStore()
	svc := newTestAssessmentService(store)

	a, err := svc.Create("acc-1")
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(a.ID, "acc-1", map[uint]SubmittedAnswer{
		1: {Value: "Quizás"},
	})
	require.Error(t, err)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalid, se.Code)
}
