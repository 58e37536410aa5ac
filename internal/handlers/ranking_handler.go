package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talent-match/internal/models"
	"talent-match/internal/repositories"
)

// MaskedEmailLiteral replaces candidate emails in blind-screening responses.
const MaskedEmailLiteral = "[Masked for Blind Screening]"

type RankingHandler struct {
	rankingRepo repositories.RankingRepository
}

func NewRankingHandler(rankingRepo repositories.RankingRepository) *RankingHandler {
	return &RankingHandler{
		rankingRepo: rankingRepo,
	}
}

// HandleGetRankings handles GET /jobs/:id/rankings?blind=true|false.
// Blind-screening masking happens here, at the presentation boundary; the
// stored rows are never mutated.
func (h *RankingHandler) HandleGetRankings(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	blind := c.QueryBool("blind")

	rankings, err := h.rankingRepo.FindByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load rankings",
		})
	}

	responses := make([]models.RankingResponse, 0, len(rankings))
	for i := range rankings {
		r := &rankings[i]

		name := r.Candidate.Name
		email := r.Candidate.Email
		if blind {
			name = fmt.Sprintf("Candidate %s", r.CandidateID)
			email = MaskedEmailLiteral
		}

		responses = append(responses, models.RankingResponse{
			CandidateID:     r.CandidateID.String(),
			CandidateName:   name,
			Email:           email,
			SemanticScore:   r.SemanticScore,
			ExperienceScore: r.ExperienceScore,
			FinalScore:      r.FinalScore,
			TotalExperience: r.Candidate.TotalExperienceYears,
			MatchedSkills:   r.MatchedSkills(),
			MissingSkills:   r.MissingSkills(),
			RiskFlag:        r.RiskFlag,
		})
	}

	return c.JSON(responses)
}
