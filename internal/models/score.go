package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is the immutable outcome of one assessment submission.
// History is append-only; records are never updated after creation.
type ScoreRecord struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          string           `gorm:"type:text;index;not null" json:"user_id"`
	AssessmentID    string           `gorm:"type:text;not null" json:"assessment_id"`
	AssessmentTitle string           `gorm:"type:text" json:"assessment_title"`
	Score           float64          `gorm:"type:decimal(5,2)" json:"score"`
	CorrectCount    int              `gorm:"not null" json:"correct_count"`
	TotalQuestions  int              `gorm:"not null" json:"total_questions"`
	Timestamp       time.Time        `gorm:"type:timestamp;default:now()" json:"timestamp"`
	Results         []QuestionResult `gorm:"serializer:json" json:"results"`
}

func (ScoreRecord) TableName() string {
	return "assessment_scores"
}

// QuestionResult is the per-question grading detail attached to a record.
// UserAnswer is nil when the question was not answered.
type QuestionResult struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    *int   `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption string `json:"correct_option"`
}
