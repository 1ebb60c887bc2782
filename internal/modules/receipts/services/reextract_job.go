package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/egatdev/receipt-ocr-be/internal/core/jobs"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// JobTypeReextract reruns field extraction over stored OCR text. Enqueued
// after rule-set changes so old receipts pick up the new rules without
// re-uploading images.
const JobTypeReextract = "receipt.reextract"

// ReextractPayload selects which receipts a re-extraction job covers.
// An empty ReceiptID means every stored receipt.
type ReextractPayload struct {
	ReceiptID string `json:"receipt_id,omitempty"`
}

// ReextractHandler processes re-extraction jobs
type ReextractHandler struct {
	receiptService *ReceiptService
	receiptRepo    repositories.ReceiptRepo
}

// NewReextractHandler creates a new re-extraction job handler
func NewReextractHandler(receiptService *ReceiptService, receiptRepo repositories.ReceiptRepo) *ReextractHandler {
	return &ReextractHandler{
		receiptService: receiptService,
		receiptRepo:    receiptRepo,
	}
}

// GetType returns the job type this handler processes
func (h *ReextractHandler) GetType() string {
	return JobTypeReextract
}

// Handle reruns extraction for the receipts named by the job payload
func (h *ReextractHandler) Handle(ctx context.Context, job *jobs.Job) error {
	var payload ReextractPayload
	if len(job.Payload) > 0 {
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	if payload.ReceiptID != "" {
		receipt, err := h.receiptRepo.GetByID(payload.ReceiptID)
		if err != nil {
			return fmt.Errorf("load receipt %s: %w", payload.ReceiptID, err)
		}
		return h.receiptService.Reextract(ctx, receipt)
	}

	receipts, err := h.receiptRepo.ListAll()
	if err != nil {
		return fmt.Errorf("list receipts: %w", err)
	}

	failed := 0
	for i := range receipts {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if receipts[i].RawExtractedText == "" {
			continue
		}
		if err := h.receiptService.Reextract(ctx, &receipts[i]); err != nil {
			failed++
			utils.LogWarn("⚠️ Re-extraction failed for receipt", map[string]interface{}{
				"id":    receipts[i].ID.String(),
				"error": err.Error(),
			})
		}
	}

	if failed > 0 {
		return fmt.Errorf("re-extraction failed for %d of %d receipts", failed, len(receipts))
	}
	return nil
}
