package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talent-match/internal/models"
)

// IngestionRecord is everything one batch item wants persisted. The pipeline
// computes it up front; PersistItem writes it in a single transaction so a
// failing item leaves no partial rows behind.
type IngestionRecord struct {
	JobID           uuid.UUID
	Name            string
	Email           string
	FilePath        string
	RawText         string
	Embedding       models.Vector
	ExperienceYears float64
	SkillNames      []string
	SemanticScore   float64
	ExperienceScore float64
	FinalScore      float64
	RiskFlag        *string
	MatchedSkills   []string
	MissingSkills   []string
}

type IngestionRepository interface {
	// PersistItem upserts the candidate, CV document, skills and ranking for
	// one batch item and commits. Returns the persisted candidate.
	PersistItem(ctx context.Context, rec *IngestionRecord) (*models.Candidate, error)
}

type ingestionRepository struct {
	db *gorm.DB
}

func NewIngestionRepository(db *gorm.DB) IngestionRepository {
	return &ingestionRepository{db: db}
}

// PersistItem implements IngestionRepository.
func (r *ingestionRepository) PersistItem(ctx context.Context, rec *IngestionRecord) (*models.Candidate, error) {
	var candidate models.Candidate

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Candidate upsert keyed by unique email. A re-ingested candidate
		// only has its experience figure refreshed; name and email stay.
		candidate = models.Candidate{
			ID:                   uuid.New(),
			Name:                 rec.Name,
			Email:                rec.Email,
			TotalExperienceYears: rec.ExperienceYears,
		}
		err := tx.Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns([]string{"total_experience_years", "updated_at"}),
			},
			clause.Returning{},
		).Create(&candidate).Error
		if err != nil {
			return fmt.Errorf("failed to upsert candidate: %w", err)
		}

		// One CV document per candidate; re-ingestion overwrites in place.
		doc := models.CVDocument{
			ID:          uuid.New(),
			CandidateID: candidate.ID,
			FilePath:    rec.FilePath,
			RawText:     rec.RawText,
			Embedding:   rec.Embedding,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "candidate_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_path", "raw_text", "embedding", "updated_at"}),
		}).Create(&doc).Error
		if err != nil {
			return fmt.Errorf("failed to upsert cv document: %w", err)
		}

		skills, err := upsertSkills(tx, rec.SkillNames)
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			if err := tx.Model(&candidate).Association("Skills").Append(&skills); err != nil {
				return fmt.Errorf("failed to associate candidate skills: %w", err)
			}
		}

		// Ranking upsert keyed by the (job, candidate) pair.
		ranking := models.Ranking{
			ID:                uuid.New(),
			JobID:             rec.JobID,
			CandidateID:       candidate.ID,
			SemanticScore:     rec.SemanticScore,
			ExperienceScore:   rec.ExperienceScore,
			FinalScore:        rec.FinalScore,
			MatchedSkillsJSON: models.EncodeSkillList(rec.MatchedSkills),
			MissingSkillsJSON: models.EncodeSkillList(rec.MissingSkills),
			RiskFlag:          rec.RiskFlag,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "job_id"}, {Name: "candidate_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"semantic_score", "experience_score", "final_score",
				"matched_skills_json", "missing_skills_json", "risk_flag", "updated_at",
			}),
		}).Create(&ranking).Error
		if err != nil {
			return fmt.Errorf("failed to upsert ranking: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &candidate, nil
}
