package database

import (
	"errors"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) AddAssessment(a *Assessment) error {
	return r.db.Create(a).Error
}

// FindAssessment loads one assessment filtered by id and owning account.
// A miss on either filter returns nil, so foreign records are
// indistinguishable from absent ones.
func (r *AssessmentRepository) FindAssessment(id, accountID string) (*Assessment, error) {
	var a Assessment
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id") }).
		Preload("Answers.Question").
		Where("id = ? AND account_id = ?", id, accountID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) ListAssessments(accountID string) ([]Assessment, error) {
	var assessments []Assessment
	err := r.db.
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

// ReplaceAnswers swaps the assessment's answer set and completes it in one
// transaction, so a mid-way failure leaves either the old set or the new
// one, never a mix.
func (r *AssessmentRepository) ReplaceAnswers(assessmentID string, answers []Answer, finalScore float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).Delete(&Answer{}).Error; err != nil {
			return err
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Assessment{}).
			Where("id = ?", assessmentID).
			Updates(map[string]any{
				"final_score": finalScore,
				"state":       StateCompleted,
			}).Error
	})
}

// FindAssessmentByID loads an assessment with its account and full answer
// set regardless of owner. Callers must have authorized the owner already;
// the report composer uses this after the HTTP layer has.
func (r *AssessmentRepository) FindAssessmentByID(id string) (*Assessment, error) {
	var a Assessment
	err := r.db.
		Preload("Account").
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id") }).
		Preload("Answers.Question").
		Where("id = ?", id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
