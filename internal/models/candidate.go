package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is keyed by email: re-ingesting a CV under the same email
// updates the existing row instead of creating a second one.
type Candidate struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name  string    `gorm:"type:text;not null" json:"name"`
	Email string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	// TotalExperienceYears is non-negative, rounded to one decimal.
	TotalExperienceYears float64   `gorm:"not null;default:0" json:"total_experience_years"`
	CreatedAt            time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt            time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	CVDocument *CVDocument `gorm:"foreignKey:CandidateID" json:"-"`
	Skills     []Skill     `gorm:"many2many:candidate_skills" json:"skills,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CVDocument holds the extracted text and embedding of a candidate's CV.
// At most one exists per candidate; re-ingestion overwrites in place.
type CVDocument struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"candidate_id"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	RawText     string    `gorm:"type:text" json:"raw_text"`
	Embedding   Vector    `gorm:"type:text" json:"-"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (CVDocument) TableName() string {
	return "cv_documents"
}
