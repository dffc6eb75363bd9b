package database

import (
	"time"
)

// AnswerValue is the closed set of responses a control question accepts.
type AnswerValue string

const (
	AnswerYes           AnswerValue = "Si"
	AnswerNo            AnswerValue = "No"
	AnswerPartial       AnswerValue = "Parcial"
	AnswerNotApplicable AnswerValue = "N/A"
)

// Valid reports whether v is one of the four accepted answer values.
func (v AnswerValue) Valid() bool {
	switch v {
	case AnswerYes, AnswerNo, AnswerPartial, AnswerNotApplicable:
		return true
	}
	return false
}

// AssessmentState is the lifecycle state of an assessment. The only
// transition is InProgress -> Completed, on full answer submission.
type AssessmentState string

const (
	StateInProgress AssessmentState = "En Progreso"
	StateCompleted  AssessmentState = "Completado"
)

// Account is a registered company. The tax ID and contact email are
// globally unique; the tax ID never changes after registration.
type Account struct {
	ID           string `gorm:"primarykey;type:varchar(36)"`
	CompanyName  string `gorm:"type:varchar(255);not null"`
	TaxID        string `gorm:"type:varchar(12);uniqueIndex;not null"`
	ContactEmail string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Assessments []Assessment `gorm:"foreignKey:AccountID"`
}

// Question is one catalog entry of the security-control checklist.
// The catalog is seeded by an operator and treated as immutable afterwards.
// Domain and subdomain are open-ended labels, not a closed enumeration,
// so externally curated seed data can grow without schema changes.
type Question struct {
	ID             uint   `gorm:"primarykey"`
	Domain         string `gorm:"type:varchar(100);not null;index"`
	Subdomain      string `gorm:"type:varchar(100)"`
	Text           string `gorm:"type:text;not null"`
	Description    string `gorm:"type:text"`
	Weight         int    `gorm:"not null;default:1"`
	DisplayOrder   int    `gorm:"not null;default:0"`
	LegalReference string `gorm:"type:varchar(255)"`
}

// Assessment is one evaluation run owned by an account. FinalScore is only
// meaningful once State is Completed; while in progress it stays zero.
type Assessment struct {
	ID         string          `gorm:"primarykey;type:varchar(36)"`
	AccountID  string          `gorm:"type:varchar(36);not null;index"`
	CreatedAt  time.Time
	FinalScore float64         `gorm:"not null;default:0"`
	State      AssessmentState `gorm:"type:varchar(50);not null;default:'En Progreso'"`

	Account Account  `gorm:"foreignKey:AccountID"`
	Answers []Answer `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
}

// Answer is one response to one question within one assessment. At most one
// answer exists per (assessment, question); resubmission replaces the whole
// set rather than upserting row by row.
type Answer struct {
	ID           uint        `gorm:"primarykey"`
	AssessmentID string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_assessment_question"`
	QuestionID   uint        `gorm:"not null;uniqueIndex:idx_assessment_question"`
	Value        AnswerValue `gorm:"type:varchar(10);not null"`
	Evidence     string      `gorm:"type:text"`
	CreatedAt    time.Time

	Question Question `gorm:"foreignKey:QuestionID"`
}
