package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/pdf"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

type reportStubStore struct {
	assessment *database.Assessment
}

func (s *reportStubStore) FindAssessmentByID(id string) (*database.Assessment, error) {
	if s.assessment != nil && s.assessment.ID == id {
		return s.assessment, nil
	}
	return nil, nil
}

func completedAssessment() *database.Assessment {
	q := func(id uint, domain string, weight int) database.Question {
		return database.Question{ID: id, Domain: domain, Weight: weight, Text: "control"}
	}
	return &database.Assessment{
		ID:         "assess-1",
		AccountID:  "acc-1",
		CreatedAt:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		State:      database.StateCompleted,
		FinalScore: 50.0,
		Account: database.Account{
			ID:           "acc-1",
			CompanyName:  "Acme Ltda",
			TaxID:        "76.123.456-7",
			ContactEmail: "seguridad@acme.cl",
		},
		Answers: []database.Answer{
			{QuestionID: 1, Value: database.AnswerYes, Question: q(1, "A.5 Políticas de Seguridad", 5)},
			{QuestionID: 2, Value: database.AnswerNo, Question: q(2, "A.5 Políticas de Seguridad", 5)},
			{QuestionID: 3, Value: database.AnswerPartial, Evidence: "en piloto", Question: q(3, "A.9 Control de Acceso", 3)},
			{QuestionID: 4, Value: database.AnswerNotApplicable, Question: q(4, "A.12 Seguridad en las Operaciones", 2)},
		},
	}
}

func newTestComposer(store Store) *Composer {
	c := NewComposer(store)
	c.now = func() time.Time { return time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC) }
	return c
}

func TestComposeDerivesEverything(t *testing.T) {
	composer := newTestComposer(&reportStubStore{assessment: completedAssessment()})

	rep, err := composer.Compose("assess-1")
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltda", rep.Account.CompanyName)
	assert.Equal(t, 50.0, rep.Stats.Score)
	assert.Equal(t, tierMedium.Name, rep.Tier.Name)
	require.Len(t, rep.Gaps, 2)
	assert.Equal(t, uint(2), rep.Gaps[0].Answer.QuestionID)
	assert.Equal(t, uint(3), rep.Gaps[1].Answer.QuestionID)
	assert.Len(t, rep.Recommendations, 3)
	// domains keep first-occurrence order
	require.Len(t, rep.Domains, 3)
	assert.Equal(t, "A.5 Políticas de Seguridad", rep.Domains[0].Domain)
	assert.Equal(t, "A.9 Control de Acceso", rep.Domains[1].Domain)
	assert.Equal(t, "A.12 Seguridad en las Operaciones", rep.Domains[2].Domain)
}

func TestComposeRecomputesScore(t *testing.T) {
	// stale cached score must not leak into the report
	assessment := completedAssessment()
	assessment.FinalScore = 99.9
	composer := newTestComposer(&reportStubStore{assessment: assessment})

	rep, err := composer.Compose("assess-1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, rep.Stats.Score)
}

func TestComposeFailsFastOnMissingAssessment(t *testing.T) {
	composer := newTestComposer(&reportStubStore{})

	_, err := composer.Compose("ghost")
	require.Error(t, err)
	se, ok := services.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, services.ErrorNotFound, se.Code)
}

func TestDocumentSectionOrdering(t *testing.T) {
	composer := newTestComposer(&reportStubStore{assessment: completedAssessment()})
	rep, err := composer.Compose("assess-1")
	require.NoError(t, err)

	doc := rep.Document()
	require.NotEmpty(t, doc.Elements)

	var headings []string
	for _, el := range doc.Elements {
		if h, ok := el.(pdf.Heading); ok {
			headings = append(headings, h.Text)
		}
	}
	require.Len(t, headings, 5)
	assert.Contains(t, headings[0], "REPORTE DE CUMPLIMIENTO")
	assert.Equal(t, "RESUMEN EJECUTIVO", headings[1])
	assert.Equal(t, "ANÁLISIS DE BRECHAS CRÍTICAS", headings[2])
	assert.Equal(t, "RECOMENDACIONES Y PRÓXIMOS PASOS", headings[3])
	assert.Equal(t, "ANEXO: DETALLE COMPLETO DE EVALUACIÓN", headings[4])
}

func TestRecommendationsCarryGapCount(t *testing.T) {
	stats := Statistics{Total: 10, No: 4, Partial: 2, Yes: 4, Score: 30}
	recs := recommendations(stats)
	require.Len(t, recs, 4)
	assert.Contains(t, recs[0], "6 brechas")
}

func TestFilename(t *testing.T) {
	composer := newTestComposer(&reportStubStore{assessment: completedAssessment()})
	rep, err := composer.Compose("assess-1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte_SGSI_Acme Ltda_assess-1.pdf", rep.Filename())
}
