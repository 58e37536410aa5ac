package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-match/internal/models"
)

type RankingRepository interface {
	FindByJob(jobID uuid.UUID) ([]models.Ranking, error)
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// FindByJob implements RankingRepository. Rankings come back best first.
func (r *rankingRepository) FindByJob(jobID uuid.UUID) ([]models.Ranking, error) {
	var rankings []models.Ranking
	err := r.db.
		Preload("Candidate").
		Where("job_id = ?", jobID).
		Order("final_score DESC").
		Find(&rankings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}
	return rankings, nil
}
