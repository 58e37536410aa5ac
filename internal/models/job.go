package models

import (
	"time"

	"github.com/google/uuid"
)

type Recruiter struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Jobs []Job `gorm:"foreignKey:RecruiterID" json:"-"`
}

func (Recruiter) TableName() string {
	return "recruiters"
}

// Job is immutable after creation except for its skill associations; the
// description embedding is computed exactly once when the job is created.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	RecruiterID uuid.UUID `gorm:"type:uuid" json:"recruiter_id"`
	// SemanticWeight is the fraction of the final score taken from semantic
	// similarity, in [0,1]. The remainder comes from the experience score.
	SemanticWeight float64 `gorm:"not null;default:0.8" json:"semantic_weight"`
	// RequiredExperience in years; 0 means unspecified.
	RequiredExperience float64   `gorm:"not null;default:0" json:"required_experience"`
	Embedding          Vector    `gorm:"type:text" json:"-"`
	CreatedAt          time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Skills   []Skill   `gorm:"many2many:job_skills" json:"skills,omitempty"`
	Rankings []Ranking `gorm:"foreignKey:JobID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}
