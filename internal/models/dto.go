package models

type JobCreateRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	RecruiterID        string  `json:"recruiter_id,omitempty"`
	SemanticWeight     float64 `json:"semantic_weight"`
	RequiredExperience float64 `json:"required_experience"`
}

type JobResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	SemanticWeight     float64  `json:"semantic_weight"`
	RequiredExperience float64  `json:"required_experience"`
	Skills             []string `json:"skills"`
}

type UploadResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id"`
	BatchID string `json:"batch_id"`
	Files   int    `json:"files"`
}

type RankingResponse struct {
	CandidateID     string   `json:"candidate_id"`
	CandidateName   string   `json:"candidate_name"`
	Email           string   `json:"email"`
	SemanticScore   float64  `json:"semantic_score"`
	ExperienceScore float64  `json:"experience_score"`
	FinalScore      float64  `json:"final_score"`
	TotalExperience float64  `json:"total_experience"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	RiskFlag        *string  `json:"risk_flag,omitempty"`
}

type BatchStatusResponse struct {
	ID             string  `json:"id"`
	JobID          string  `json:"job_id"`
	Status         string  `json:"status"`
	ItemsTotal     int     `json:"items_total"`
	ItemsProcessed int     `json:"items_processed"`
	ItemsSkipped   int     `json:"items_skipped"`
	ItemsFailed    int     `json:"items_failed"`
	Error          *string `json:"error,omitempty"`
}

type CandidateSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type CandidateSearchResult struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Score       float32 `json:"score"`
}
