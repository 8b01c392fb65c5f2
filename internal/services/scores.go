package services

import (
	"fmt"
	"time"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
)

type ScoreService interface {
	LatestScores(userID string) ([]models.ScoreSummary, error)
}

type scoreService struct {
	scoreRepo repositories.ScoreRepository
}

func NewScoreService(scoreRepo repositories.ScoreRepository) ScoreService {
	return &scoreService{scoreRepo: scoreRepo}
}

// LatestScores implements ScoreService. Records arrive newest first, so the
// first record seen per assessment id is the most recent one.
func (s *scoreService) LatestScores(userID string) ([]models.ScoreSummary, error) {
	records, err := s.scoreRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	seen := make(map[string]bool)
	summaries := make([]models.ScoreSummary, 0, len(records))

	for _, record := range records {
		if seen[record.AssessmentID] {
			continue
		}
		seen[record.AssessmentID] = true

		var timestamp *string
		if !record.Timestamp.IsZero() {
			formatted := record.Timestamp.Format(time.RFC3339)
			timestamp = &formatted
		}

		summaries = append(summaries, models.ScoreSummary{
			AssessmentID:    record.AssessmentID,
			AssessmentTitle: record.AssessmentTitle,
			Score:           record.Score,
			CorrectCount:    record.CorrectCount,
			TotalQuestions:  record.TotalQuestions,
			Timestamp:       timestamp,
		})
	}

	return summaries, nil
}
