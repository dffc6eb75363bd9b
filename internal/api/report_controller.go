package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ciberseguria/sgsi-express/internal/middleware"
	"github.com/ciberseguria/sgsi-express/internal/pdf"
	"github.com/ciberseguria/sgsi-express/internal/report"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

type ReportController struct {
	assessments *services.AssessmentService
	composer    *report.Composer
}

func NewReportController(assessments *services.AssessmentService, composer *report.Composer) *ReportController {
	return &ReportController{assessments: assessments, composer: composer}
}

type gapView struct {
	Question string `json:"question"`
	Domain   string `json:"domain"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// compose authorizes the caller before letting the composer load the
// assessment without an owner filter.
func (rc *ReportController) compose(c echo.Context) (*report.Report, error) {
	principal := middleware.Principal(c)
	assessment, err := rc.assessments.GetForOwner(c.Param("id"), principal.ID)
	if err != nil {
		return nil, err
	}
	return rc.composer.Compose(assessment.ID)
}

// Summary is the report landing view: score, tier, gaps and advice.
func (rc *ReportController) Summary(c echo.Context) error {
	rep, err := rc.compose(c)
	if err != nil {
		return writeError(c, err)
	}

	gaps := make([]gapView, 0, len(rep.Gaps))
	for _, g := range rep.Gaps {
		gaps = append(gaps, gapView{
			Question: g.Answer.Question.Text,
			Domain:   g.Answer.Question.Domain,
			Status:   g.Status(),
			Priority: string(g.Priority()),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"assessment_id": rep.Assessment.ID,
		"company":       rep.Account.CompanyName,
		"state":         string(rep.Assessment.State),
		"score":         rep.Stats.Score,
		"tier": map[string]string{
			"name":      rep.Tier.Name,
			"narrative": rep.Tier.Narrative,
		},
		"stats": map[string]int{
			"total":          rep.Stats.Total,
			"yes":            rep.Stats.Yes,
			"no":             rep.Stats.No,
			"partial":        rep.Stats.Partial,
			"not_applicable": rep.Stats.NotApplicable,
		},
		"gaps":            gaps,
		"recommendations": rep.Recommendations,
		"download_url":    fmt.Sprintf("/api/assessments/%s/report/download", rep.Assessment.ID),
	})
}

// Download renders the full PDF and streams it as an attachment.
func (rc *ReportController) Download(c echo.Context) error {
	rep, err := rc.compose(c)
	if err != nil {
		return writeError(c, err)
	}
	data, err := pdf.Render(rep.Document())
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, rep.Filename()))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
