package models

import (
	"github.com/google/uuid"
)

// Skill names are stored lowercase; name uniqueness is a hard invariant.
type Skill struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text;uniqueIndex;not null" json:"name"`

	Candidates []Candidate `gorm:"many2many:candidate_skills" json:"-"`
	Jobs       []Job       `gorm:"many2many:job_skills" json:"-"`
}

func (Skill) TableName() string {
	return "skills"
}
