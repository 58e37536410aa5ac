package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talent-match/internal/models"
	"talent-match/internal/services"
)

type BatchHandler struct {
	registry *services.TaskRegistry
}

func NewBatchHandler(registry *services.TaskRegistry) *BatchHandler {
	return &BatchHandler{registry: registry}
}

// HandleGetBatch handles GET /batches/:id.
func (h *BatchHandler) HandleGetBatch(c *fiber.Ctx) error {
	task, ok := h.lookup(c)
	if !ok {
		return nil
	}
	return c.JSON(snapshotResponse(task.Snapshot()))
}

// HandleCancelBatch handles DELETE /batches/:id. Cancellation is
// cooperative: items already committed stay committed, and the worker stops
// before starting the next item.
func (h *BatchHandler) HandleCancelBatch(c *fiber.Ctx) error {
	task, ok := h.lookup(c)
	if !ok {
		return nil
	}
	task.Cancel()
	return c.JSON(snapshotResponse(task.Snapshot()))
}

func (h *BatchHandler) lookup(c *fiber.Ctx) (*services.BatchTask, bool) {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid batch ID format",
		})
		return nil, false
	}

	task, found := h.registry.Get(batchID)
	if !found {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Batch not found",
		})
		return nil, false
	}
	return task, true
}

func snapshotResponse(snap services.BatchSnapshot) models.BatchStatusResponse {
	resp := models.BatchStatusResponse{
		ID:             snap.ID.String(),
		JobID:          snap.JobID.String(),
		Status:         string(snap.Status),
		ItemsTotal:     snap.ItemsTotal,
		ItemsProcessed: snap.ItemsProcessed,
		ItemsSkipped:   snap.ItemsSkipped,
		ItemsFailed:    snap.ItemsFailed,
	}
	if snap.Error != "" {
		resp.Error = &snap.Error
	}
	return resp
}
