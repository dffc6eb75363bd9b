package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/middleware"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

type AssessmentController struct {
	assessments *services.AssessmentService
	catalog     *services.CatalogService
}

func NewAssessmentController(assessments *services.AssessmentService, catalog *services.CatalogService) *AssessmentController {
	return &AssessmentController{assessments: assessments, catalog: catalog}
}

type assessmentView struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	State      string    `json:"state"`
	FinalScore float64   `json:"final_score"`
	Completed  bool      `json:"completed"`
}

func newAssessmentView(a database.Assessment) assessmentView {
	completed := a.State == database.StateCompleted
	view := assessmentView{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		State:     string(a.State),
		Completed: completed,
	}
	// the stored score is only meaningful once the assessment completes
	if completed {
		view.FinalScore = a.FinalScore
	}
	return view
}

type questionView struct {
	ID             uint   `json:"id"`
	Subdomain      string `json:"subdomain,omitempty"`
	Text           string `json:"text"`
	Description    string `json:"description,omitempty"`
	Weight         int    `json:"weight"`
	LegalReference string `json:"legal_reference,omitempty"`
}

type domainView struct {
	Domain    string         `json:"domain"`
	Questions []questionView `json:"questions"`
}

type existingAnswerView struct {
	Value    string `json:"value"`
	Evidence string `json:"evidence,omitempty"`
}

type submittedAnswer struct {
	QuestionID uint   `json:"question_id"`
	Value      string `json:"value"`
	Evidence   string `json:"evidence"`
}

type submitRequest struct {
	Answers []submittedAnswer `json:"answers"`
}

// List shows the caller's own assessments, newest first.
func (ac *AssessmentController) List(c echo.Context) error {
	principal := middleware.Principal(c)
	assessments, err := ac.assessments.ListForOwner(principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	views := make([]assessmentView, 0, len(assessments))
	for _, a := range assessments {
		views = append(views, newAssessmentView(a))
	}
	return c.JSON(http.StatusOK, map[string]any{"assessments": views})
}

// Create starts a new assessment and sends the caller to its questionnaire.
func (ac *AssessmentController) Create(c echo.Context) error {
	principal := middleware.Principal(c)
	assessment, err := ac.assessments.Create(principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/assessments/%s/questionnaire", assessment.ID))
}

// Questionnaire renders the editable checklist grouped by domain together
// with any answers already stored. A completed assessment is never
// re-rendered as a form; the caller is sent to its report instead.
func (ac *AssessmentController) Questionnaire(c echo.Context) error {
	principal := middleware.Principal(c)
	assessment, err := ac.assessments.GetForOwner(c.Param("id"), principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	if assessment.State == database.StateCompleted {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/assessments/%s/report", assessment.ID))
	}

	grouped, err := ac.catalog.ListGrouped()
	if err != nil {
		return writeError(c, err)
	}
	domains := make([]domainView, 0, len(grouped))
	for _, g := range grouped {
		dv := domainView{Domain: g.Domain, Questions: make([]questionView, 0, len(g.Questions))}
		for _, q := range g.Questions {
			dv.Questions = append(dv.Questions, questionView{
				ID:             q.ID,
				Subdomain:      q.Subdomain,
				Text:           q.Text,
				Description:    q.Description,
				Weight:         q.Weight,
				LegalReference: q.LegalReference,
			})
		}
		domains = append(domains, dv)
	}

	existing := map[uint]existingAnswerView{}
	for _, a := range assessment.Answers {
		existing[a.QuestionID] = existingAnswerView{Value: string(a.Value), Evidence: a.Evidence}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"assessment":       newAssessmentView(*assessment),
		"domains":          domains,
		"existing_answers": existing,
	})
}

// Submit replaces the assessment's answers with the submitted set, scores
// it and completes it, then sends the caller to the report.
func (ac *AssessmentController) Submit(c echo.Context) error {
	principal := middleware.Principal(c)
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "cuerpo de la solicitud no válido"})
	}

	answers := make(map[uint]services.SubmittedAnswer, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = services.SubmittedAnswer{
			Value:    database.AnswerValue(a.Value),
			Evidence: a.Evidence,
		}
	}

	assessment, err := ac.assessments.SubmitAnswers(c.Param("id"), principal.ID, answers)
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/assessments/%s/report", assessment.ID))
}
