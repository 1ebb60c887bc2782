package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/egatdev/receipt-ocr-be/internal/core/jobs"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/services"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// JobHandler exposes the background re-extraction queue over HTTP
type JobHandler struct {
	queue *jobs.Queue
}

// NewJobHandler creates a new job handler
func NewJobHandler(queue *jobs.Queue) *JobHandler {
	return &JobHandler{queue: queue}
}

// EnqueueReextractRequest optionally narrows a job to one receipt
type EnqueueReextractRequest struct {
	ReceiptID string `json:"receipt_id"`
}

// EnqueueReextract queues a re-extraction job over stored receipts
func (h *JobHandler) EnqueueReextract(c *fiber.Ctx) error {
	var req EnqueueReextractRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	if req.ReceiptID != "" {
		if _, err := uuid.Parse(req.ReceiptID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid receipt_id",
			})
		}
	}

	job, err := h.queue.Enqueue(c.Context(), services.JobTypeReextract,
		services.ReextractPayload{ReceiptID: req.ReceiptID},
		jobs.EnqueueOptions{Queue: "receipts"})
	if err != nil {
		utils.LogError("❌ Failed to enqueue job", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to enqueue job",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "success",
		"data":   job,
	})
}

// GetJob reports the status of one job
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	job, err := h.queue.GetJob(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   job,
	})
}

// ListJobs lists recent jobs on the receipts queue
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit > 100 {
		limit = 100
	}

	jobList, err := h.queue.ListJobs(c.Context(), "receipts", limit)
	if err != nil {
		utils.LogError("❌ Failed to list jobs", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list jobs",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"count":  len(jobList),
		"data":   jobList,
	})
}
