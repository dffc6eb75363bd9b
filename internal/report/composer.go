package report

import (
	"fmt"
	"time"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

// Store gives the composer read access to a full assessment: account and
// answer set with questions attached. Ownership is authorized upstream.
type Store interface {
	FindAssessmentByID(id string) (*database.Assessment, error)
}

type Composer struct {
	store Store
	now   func() time.Time
}

func NewComposer(store Store) *Composer {
	return &Composer{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Report is everything the rendered document needs, derived once from a
// consistent read of the assessment.
type Report struct {
	Assessment      *database.Assessment
	Account         database.Account
	Stats           Statistics
	Tier            Tier
	Gaps            []Gap
	Recommendations []string
	Domains         []DomainDetail
	GeneratedAt     time.Time
}

// DomainDetail is the annex grouping: every answer under one domain label,
// in the order domains first appear in the answer set.
type DomainDetail struct {
	Domain  string
	Answers []database.Answer
}

// Compose loads the assessment and derives all report content. It fails
// fast when the assessment does not exist; no partial report is produced.
func (c *Composer) Compose(assessmentID string) (*Report, error) {
	assessment, err := c.store.FindAssessmentByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, services.NewNotFoundError("diagnóstico no encontrado")
	}

	stats := Calculate(assessment.Answers)
	tier := ClassifyTier(stats.Score)
	return &Report{
		Assessment:      assessment,
		Account:         assessment.Account,
		Stats:           stats,
		Tier:            tier,
		Gaps:            RankGaps(assessment.Answers),
		Recommendations: recommendations(stats),
		Domains:         groupAnswersByDomain(assessment.Answers),
		GeneratedAt:     c.now(),
	}, nil
}

// Filename names the downloadable artifact after the company and the
// assessment.
func (r *Report) Filename() string {
	return fmt.Sprintf("Reporte_SGSI_%s_%s.pdf", r.Account.CompanyName, r.Assessment.ID)
}

func groupAnswersByDomain(answers []database.Answer) []DomainDetail {
	index := map[string]int{}
	groups := []DomainDetail{}
	for _, a := range answers {
		domain := a.Question.Domain
		i, ok := index[domain]
		if !ok {
			i = len(groups)
			index[domain] = i
			groups = append(groups, DomainDetail{Domain: domain})
		}
		groups[i].Answers = append(groups[i].Answers, a)
	}
	return groups
}

// recommendations picks the advice template for the score band and fills in
// the number of identified gaps.
func recommendations(stats Statistics) []string {
	gapCount := stats.No + stats.Partial
	switch {
	case stats.Score < 50:
		return []string{
			fmt.Sprintf("1. Implementación Urgente de Programa de Cumplimiento: su organización requiere un programa integral de cumplimiento normativo que aborde las %d brechas críticas identificadas. Un programa completo puede implementarse en 90 días.", gapCount),
			"2. Capacitación de Personal: es fundamental capacitar a su equipo en los requisitos de la Ley 21.663 y mejores prácticas de ISO 27001 mediante programas de formación certificados.",
			"3. Evaluación de Riesgos Formal: se recomienda realizar una evaluación de riesgos profesional para priorizar las inversiones en seguridad de la información.",
			"4. Desarrollo de Políticas y Procedimientos: necesita documentación formal de políticas, procedimientos y controles alineados con la normativa vigente.",
		}
	case stats.Score < 80:
		return []string{
			fmt.Sprintf("1. Remediación de Brechas Identificadas: se identificaron %d brechas que requieren atención. Su remediación es abordable en menos de 60 días.", gapCount),
			"2. Optimización de Controles Parciales: varios controles están parcialmente implementados; corresponde completar su implementación y documentación.",
			"3. Auditoría Interna: se recomienda realizar una auditoría interna formal para validar el cumplimiento antes de una inspección regulatoria.",
		}
	default:
		return []string{
			"1. Certificación ISO 27001: su nivel de madurez permite aspirar a una certificación internacional.",
			"2. Mejora Continua: implementar un programa de mejora continua para mantener y elevar su nivel de cumplimiento.",
			"3. Monitoreo y Revisión: establecer ciclos periódicos de revisión y actualización del SGSI.",
		}
	}
}
