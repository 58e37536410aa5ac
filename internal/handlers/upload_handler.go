package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talent-match/internal/models"
	"talent-match/internal/repositories"
	"talent-match/internal/services"
)

type UploadHandler struct {
	jobRepo        repositories.JobRepository
	storageService services.StorageService
	pipeline       services.IngestionPipeline
	maxFileSize    int64
}

func NewUploadHandler(
	jobRepo repositories.JobRepository,
	storageService services.StorageService,
	pipeline services.IngestionPipeline,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		jobRepo:        jobRepo,
		storageService: storageService,
		pipeline:       pipeline,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadCVs handles POST /jobs/:id/cvs. Files are stored up front; the
// scoring batch runs detached and the caller only gets the batch id back.
func (h *UploadHandler) HandleUploadCVs(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["cvs"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No CV files uploaded. Send one or more 'cvs' files (pdf, docx or txt).",
		})
	}

	// Optional parallel overrides for derived identities.
	names := form.Value["names"]
	emails := form.Value["emails"]

	items := make([]services.BatchItem, 0, len(files))
	for i, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File %s too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		_, filePath, err := h.storageService.SaveFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save file %s: %v", file.Filename, err),
			})
		}

		name := deriveCandidateName(file.Filename)
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			name = strings.TrimSpace(names[i])
		}

		email := deriveCandidateEmail(name)
		if i < len(emails) && strings.TrimSpace(emails[i]) != "" {
			email = strings.ToLower(strings.TrimSpace(emails[i]))
		}

		items = append(items, services.BatchItem{
			FilePath:       filePath,
			CandidateName:  name,
			CandidateEmail: email,
		})
	}

	task := h.pipeline.Run(jobID, items)

	return c.Status(fiber.StatusAccepted).JSON(models.UploadResponse{
		Message: fmt.Sprintf("Successfully uploaded %d CVs. Processing started in background.", len(items)),
		JobID:   jobID.String(),
		BatchID: task.ID.String(),
		Files:   len(items),
	})
}

// deriveCandidateName turns "jane_doe.pdf" into "Jane Doe".
func deriveCandidateName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")

	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	if len(words) == 0 {
		return "Unknown Candidate"
	}
	return strings.Join(words, " ")
}

func deriveCandidateEmail(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}
