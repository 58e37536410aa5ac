package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talent-match/internal/config"
	"talent-match/internal/models"
	"talent-match/internal/repositories"
	"talent-match/internal/services"
)

type JobHandler struct {
	jobRepo  repositories.JobRepository
	embedder services.EmbeddingService
	skills   services.SkillExtractor
	matching config.MatchingConfig
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	embedder services.EmbeddingService,
	skills services.SkillExtractor,
	matching config.MatchingConfig,
) *JobHandler {
	return &JobHandler{
		jobRepo:  jobRepo,
		embedder: embedder,
		skills:   skills,
		matching: matching,
	}
}

// HandleCreateJob handles POST /jobs. The description embedding is computed
// exactly once here; the job is immutable afterwards.
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and description are required",
		})
	}

	weight := req.SemanticWeight
	if weight <= 0 {
		weight = h.matching.DefaultSemanticWeight
	}
	if weight > 1 {
		weight = 1
	}

	recruiterID, err := h.resolveRecruiter(req.RecruiterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	embedding, err := h.embedder.GenerateEmbedding(c.Context(), req.Description)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to embed job description",
		})
	}

	skillNames, err := h.skills.ExtractSkills(c.Context(), req.Description)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to extract job skills",
		})
	}

	job := &models.Job{
		ID:                 uuid.New(),
		Title:              req.Title,
		Description:        req.Description,
		RecruiterID:        recruiterID,
		SemanticWeight:     weight,
		RequiredExperience: req.RequiredExperience,
		Embedding:          embedding,
	}

	if err := h.jobRepo.Create(job, skillNames); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(jobResponse(job, skillNames))
}

// HandleListJobs handles GET /jobs.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list jobs",
		})
	}

	responses := make([]models.JobResponse, 0, len(jobs))
	for i := range jobs {
		names := make([]string, 0, len(jobs[i].Skills))
		for _, s := range jobs[i].Skills {
			names = append(names, s.Name)
		}
		responses = append(responses, jobResponse(&jobs[i], names))
	}
	return c.JSON(responses)
}

func (h *JobHandler) resolveRecruiter(raw string) (uuid.UUID, error) {
	if raw == "" {
		return h.jobRepo.DefaultRecruiterID()
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid recruiter_id format")
	}
	return id, nil
}

func jobResponse(job *models.Job, skillNames []string) models.JobResponse {
	if skillNames == nil {
		skillNames = []string{}
	}
	return models.JobResponse{
		ID:                 job.ID.String(),
		Title:              job.Title,
		Description:        job.Description,
		SemanticWeight:     job.SemanticWeight,
		RequiredExperience: job.RequiredExperience,
		Skills:             skillNames,
	}
}
