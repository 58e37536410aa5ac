package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talent-match/internal/models"
	"talent-match/internal/repositories"
	"talent-match/internal/services"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	redactor      services.PrivacyRedactor
	embedder      services.EmbeddingService
	vectors       services.VectorIndex
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	redactor services.PrivacyRedactor,
	embedder services.EmbeddingService,
	vectors services.VectorIndex,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
		redactor:      redactor,
		embedder:      embedder,
		vectors:       vectors,
	}
}

// HandleGetCV handles GET /candidates/:id/cv?blind=true|false. With blind
// enabled the stored text goes through the privacy redactor before leaving
// the server; the stored document is untouched.
func (h *CandidateHandler) HandleGetCV(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	doc, err := h.candidateRepo.FindCVByCandidate(candidateID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "CV not found for candidate",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load CV",
		})
	}

	text := doc.RawText
	blind := c.QueryBool("blind")
	if blind {
		redacted, err := h.redactor.Redact(c.Context(), text)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to redact CV text",
			})
		}
		text = redacted
	}

	return c.JSON(fiber.Map{
		"candidate_id": candidateID.String(),
		"blind":        blind,
		"text":         text,
	})
}

// HandleSearchCandidates handles POST /candidates/search. The query text is
// embedded and matched against the candidate vector index.
func (h *CandidateHandler) HandleSearchCandidates(c *fiber.Ctx) error {
	var req models.CandidateSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	embedding, err := h.embedder.GenerateEmbedding(c.Context(), req.Query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to embed query",
		})
	}

	hits, err := h.vectors.SearchCandidates(c.Context(), embedding, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to search candidates",
		})
	}

	results := make([]models.CandidateSearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, models.CandidateSearchResult{
			CandidateID: hit.CandidateID,
			Name:        hit.Name,
			Email:       hit.Email,
			Score:       hit.Score,
		})
	}

	return c.JSON(results)
}
