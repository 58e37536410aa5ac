package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-match/internal/models"
)

type JobRepository interface {
	Create(job *models.Job, skillNames []string) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindAll() ([]models.Job, error)
	DefaultRecruiterID() (uuid.UUID, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository. The job row and its skill associations
// are written in one transaction; skills are upserted by unique name.
func (j *jobRepository) Create(job *models.Job, skillNames []string) error {
	err := j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		skills, err := upsertSkills(tx, skillNames)
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			if err := tx.Model(job).Association("Skills").Append(&skills); err != nil {
				return fmt.Errorf("failed to associate job skills: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindByID implements JobRepository.
func (j *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := j.db.Preload("Skills").Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindAll implements JobRepository.
func (j *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := j.db.Preload("Skills").Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// DefaultRecruiterID implements JobRepository.
func (j *jobRepository) DefaultRecruiterID() (uuid.UUID, error) {
	var recruiter models.Recruiter
	if err := j.db.Order("created_at ASC").First(&recruiter).Error; err != nil {
		return uuid.Nil, fmt.Errorf("no recruiter available: %w", err)
	}
	return recruiter.ID, nil
}
