package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

// AssessmentStore abstracts persistence operations required by
// AssessmentService. FindAssessment and ListAssessments filter by owning
// account, so a foreign assessment id behaves exactly like a missing one.
type AssessmentStore interface {
	AddAssessment(a *database.Assessment) error
	FindAssessment(id, accountID string) (*database.Assessment, error)
	ListAssessments(accountID string) ([]database.Assessment, error)
	// ReplaceAnswers atomically drops the prior answer set, stores the new
	// one and marks the assessment completed with the given score.
	ReplaceAnswers(assessmentID string, answers []database.Answer, finalScore float64) error
}

// SubmittedAnswer is one inbound questionnaire response, keyed by question
// id in the submission map.
type SubmittedAnswer struct {
	Value    database.AnswerValue
	Evidence string
}

type AssessmentService struct {
	store     AssessmentStore
	questions QuestionStore
	now       func() time.Time
	idGen     func() string
}

func NewAssessmentService(store AssessmentStore, questions QuestionStore) *AssessmentService {
	return &AssessmentService{
		store:     store,
		questions: questions,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     uuid.NewString,
	}
}

// Create starts a new in-progress assessment for the account. An account may
// keep any number of assessments in progress at once.
func (s *AssessmentService) Create(accountID string) (*database.Assessment, error) {
	a := &database.Assessment{
		ID:        s.idGen(),
		AccountID: accountID,
		CreatedAt: s.now(),
		State:     database.StateInProgress,
	}
	if err := s.store.AddAssessment(a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetForOwner loads an assessment owned by the account.
func (s *AssessmentService) GetForOwner(id, accountID string) (*database.Assessment, error) {
	a, err := s.store.FindAssessment(id, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("diagnóstico no encontrado")
	}
	return a, nil
}

// ListForOwner returns the account's assessments, newest first.
func (s *AssessmentService) ListForOwner(accountID string) ([]database.Assessment, error) {
	return s.store.ListAssessments(accountID)
}

// SubmitAnswers replaces the assessment's answer set with the submitted one,
// scores it and completes the assessment. Catalog questions absent from the
// submission are left unanswered and excluded from scoring; they are not
// recorded as N/A. Question ids outside the catalog are ignored.
func (s *AssessmentService) SubmitAnswers(id, accountID string, submitted map[uint]SubmittedAnswer) (*database.Assessment, error) {
	assessment, err := s.GetForOwner(id, accountID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.questions.ListQuestions()
	if err != nil {
		return nil, err
	}

	now := s.now()
	answers := make([]database.Answer, 0, len(submitted))
	weighted := make([]WeightedAnswer, 0, len(submitted))
	for _, q := range catalog {
		sa, ok := submitted[q.ID]
		if !ok || sa.Value == "" {
			continue
		}
		if !sa.Value.Valid() {
			return nil, NewInvalidError("valor de respuesta no válido: " + string(sa.Value))
		}
		answers = append(answers, database.Answer{
			AssessmentID: assessment.ID,
			QuestionID:   q.ID,
			Value:        sa.Value,
			Evidence:     sa.Evidence,
			CreatedAt:    now,
		})
		weighted = append(weighted, WeightedAnswer{Weight: q.Weight, Value: sa.Value})
	}

	score := Score(weighted)
	if err := s.store.ReplaceAnswers(assessment.ID, answers, score); err != nil {
		return nil, err
	}
	assessment.FinalScore = score
	assessment.State = database.StateCompleted
	assessment.Answers = answers
	return assessment, nil
}
