package services

import (
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
)

// ErrAssessmentNotFound is returned for unknown assessment ids.
var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentService interface {
	List() []models.AssessmentSummary
	Get(id string) (*models.AssessmentView, error)
	Submit(id, userID string, answers map[string]int) (*models.SubmitResult, error)
}

type assessmentService struct {
	banks     []models.Assessment
	byID      map[string]*models.Assessment
	scoreRepo repositories.ScoreRepository
}

// NewAssessmentService builds the engine over immutable banks. Banks are
// never written after initialization, so no locking is needed.
func NewAssessmentService(banks []models.Assessment, scoreRepo repositories.ScoreRepository) AssessmentService {
	byID := make(map[string]*models.Assessment, len(banks))
	for i := range banks {
		byID[banks[i].ID] = &banks[i]
	}

	return &assessmentService{
		banks:     banks,
		byID:      byID,
		scoreRepo: scoreRepo,
	}
}

// List implements AssessmentService. Order follows the bank definitions.
func (s *assessmentService) List() []models.AssessmentSummary {
	summaries := make([]models.AssessmentSummary, 0, len(s.banks))
	for _, bank := range s.banks {
		summaries = append(summaries, models.AssessmentSummary{
			ID:    bank.ID,
			Title: bank.Title,
		})
	}
	return summaries
}

// Get implements AssessmentService. The correct-answer index is never part
// of the returned view.
func (s *assessmentService) Get(id string) (*models.AssessmentView, error) {
	bank, ok := s.byID[id]
	if !ok {
		return nil, ErrAssessmentNotFound
	}

	questions := make([]models.QuestionView, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		questions = append(questions, models.QuestionView{
			ID:       q.ID,
			Question: q.Text,
			Options:  q.Options,
		})
	}

	return &models.AssessmentView{
		Title:     bank.Title,
		Questions: questions,
	}, nil
}

// Submit implements AssessmentService. Answers are keyed by the string form
// of the question id. Grading always succeeds for a known assessment;
// persistence is best-effort and a failure only sets the result warning.
func (s *assessmentService) Submit(id, userID string, answers map[string]int) (*models.SubmitResult, error) {
	bank, ok := s.byID[id]
	if !ok {
		return nil, ErrAssessmentNotFound
	}

	correctCount := 0
	totalQuestions := len(bank.Questions)
	results := make([]models.QuestionResult, 0, totalQuestions)

	for _, question := range bank.Questions {
		var userAnswer *int
		if answer, answered := answers[strconv.Itoa(question.ID)]; answered {
			userAnswer = &answer
		}

		// An absent answer never matches
		isCorrect := userAnswer != nil && *userAnswer == question.Correct
		if isCorrect {
			correctCount++
		}

		results = append(results, models.QuestionResult{
			QuestionID:    question.ID,
			Question:      question.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.Correct,
			IsCorrect:     isCorrect,
			CorrectOption: question.Options[question.Correct],
		})
	}

	score := round2(100 * float64(correctCount) / float64(totalQuestions))

	result := &models.SubmitResult{
		Score:          score,
		CorrectCount:   correctCount,
		TotalQuestions: totalQuestions,
		Results:        results,
	}

	record := &models.ScoreRecord{
		ID:              uuid.New(),
		UserID:          userID,
		AssessmentID:    bank.ID,
		AssessmentTitle: bank.Title,
		Score:           score,
		CorrectCount:    correctCount,
		TotalQuestions:  totalQuestions,
		Timestamp:       time.Now().UTC(),
		Results:         results,
	}

	if err := s.scoreRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to save score record: %v\n", err)
		result.Warning = "score could not be saved"
	}

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
