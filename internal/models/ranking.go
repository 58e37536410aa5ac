package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Ranking is uniquely keyed by (job, candidate); re-ingestion overwrites it.
// All three score fields lie in [0,1], rounded to 4 decimals.
type Ranking struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_candidate" json:"job_id"`
	CandidateID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_candidate" json:"candidate_id"`
	SemanticScore   float64   `gorm:"not null" json:"semantic_score"`
	ExperienceScore float64   `gorm:"not null" json:"experience_score"`
	FinalScore      float64   `gorm:"not null" json:"final_score"`
	// Matched/missing skill names stored as JSON arrays.
	MatchedSkillsJSON string    `gorm:"type:text" json:"-"`
	MissingSkillsJSON string    `gorm:"type:text" json:"-"`
	RiskFlag          *string   `gorm:"type:text" json:"risk_flag,omitempty"`
	UpdatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Job       Job       `gorm:"foreignKey:JobID" json:"-"`
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (Ranking) TableName() string {
	return "rankings"
}

// MatchedSkills decodes the serialized matched-skill list.
func (r *Ranking) MatchedSkills() []string {
	return decodeSkillList(r.MatchedSkillsJSON)
}

// MissingSkills decodes the serialized missing-skill list.
func (r *Ranking) MissingSkills() []string {
	return decodeSkillList(r.MissingSkillsJSON)
}

func decodeSkillList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

// EncodeSkillList serializes a skill-name list for storage.
func EncodeSkillList(names []string) string {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "[]"
	}
	return string(data)
}
