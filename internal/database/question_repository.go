package database

import (
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListQuestions returns the catalog ordered the way the questionnaire and the
// report render it: by domain, then by display order.
func (r *QuestionRepository) ListQuestions() ([]Question, error) {
	var questions []Question
	err := r.db.Order("domain, display_order").Find(&questions).Error
	return questions, err
}
