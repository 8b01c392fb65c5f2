package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"resume-analyzer/internal/models"
)

type ScoreRepository interface {
	Create(record *models.ScoreRecord) error
	FindByUser(userID string) ([]models.ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create implements ScoreRepository.
func (r *scoreRepository) Create(record *models.ScoreRecord) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create score record: %w", err)
	}

	return nil
}

// FindByUser implements ScoreRepository. Records come back newest first.
func (r *scoreRepository) FindByUser(userID string) ([]models.ScoreRecord, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}

	var records []models.ScoreRecord
	err := r.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find score records: %w", err)
	}

	return records, nil
}
