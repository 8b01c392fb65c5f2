package services

import (
	"errors"
	"testing"
	"time"

	"resume-analyzer/internal/models"
)

type stubScoreRepo struct {
	records []models.ScoreRecord
	err     error
}

func (s *stubScoreRepo) Create(record *models.ScoreRecord) error { return nil }

func (s *stubScoreRepo) FindByUser(userID string) ([]models.ScoreRecord, error) {
	return s.records, s.err
}

func TestLatestScoresKeepsMostRecentPerAssessment(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Newest first, as the repository returns them
	repo := &stubScoreRepo{records: []models.ScoreRecord{
		{AssessmentID: "sql", AssessmentTitle: "SQL Assessment", Score: 90, Timestamp: base.Add(3 * time.Hour)},
		{AssessmentID: "sql", AssessmentTitle: "SQL Assessment", Score: 70, Timestamp: base.Add(2 * time.Hour)},
		{AssessmentID: "data_structures", AssessmentTitle: "Data Structures Assessment", Score: 50, Timestamp: base.Add(time.Hour)},
		{AssessmentID: "sql", AssessmentTitle: "SQL Assessment", Score: 40, Timestamp: base},
	}}

	summaries, err := NewScoreService(repo).LatestScores("u1")
	if err != nil {
		t.Fatalf("latest scores: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	byID := map[string]models.ScoreSummary{}
	for _, s := range summaries {
		byID[s.AssessmentID] = s
	}

	if byID["sql"].Score != 90 {
		t.Fatalf("expected latest sql score 90, got %.2f", byID["sql"].Score)
	}
	if byID["data_structures"].Score != 50 {
		t.Fatalf("expected data_structures score 50, got %.2f", byID["data_structures"].Score)
	}

	want := base.Add(3 * time.Hour).Format(time.RFC3339)
	if byID["sql"].Timestamp == nil || *byID["sql"].Timestamp != want {
		t.Fatalf("expected timestamp %s, got %v", want, byID["sql"].Timestamp)
	}
}

func TestLatestScoresZeroTimestampRendersNull(t *testing.T) {
	repo := &stubScoreRepo{records: []models.ScoreRecord{
		{AssessmentID: "sql", Score: 10},
	}}

	summaries, err := NewScoreService(repo).LatestScores("u1")
	if err != nil {
		t.Fatalf("latest scores: %v", err)
	}
	if summaries[0].Timestamp != nil {
		t.Fatalf("expected nil timestamp, got %v", *summaries[0].Timestamp)
	}
}

func TestLatestScoresPropagatesStoreError(t *testing.T) {
	repo := &stubScoreRepo{err: errors.New("store down")}

	if _, err := NewScoreService(repo).LatestScores("u1"); err == nil {
		t.Fatalf("expected error from failing store")
	}
}
