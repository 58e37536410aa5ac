package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-match/internal/models"
)

type CandidateRepository interface {
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindCVByCandidate(candidateID uuid.UUID) (*models.CVDocument, error)
	FindAllCVs() ([]models.CVDocument, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Preload("Skills").Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// FindCVByCandidate implements CandidateRepository.
func (r *candidateRepository) FindCVByCandidate(candidateID uuid.UUID) (*models.CVDocument, error) {
	var doc models.CVDocument
	if err := r.db.Where("candidate_id = ?", candidateID).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cv document not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find cv document: %w", err)
	}
	return &doc, nil
}

// FindAllCVs implements CandidateRepository.
func (r *candidateRepository) FindAllCVs() ([]models.CVDocument, error) {
	var docs []models.CVDocument
	if err := r.db.Preload("Candidate").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list cv documents: %w", err)
	}
	return docs, nil
}
