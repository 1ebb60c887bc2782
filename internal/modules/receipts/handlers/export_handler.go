package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/egatdev/receipt-ocr-be/internal/core/export"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// ExportHandler streams receipt exports as xlsx downloads
type ExportHandler struct {
	receiptRepo repositories.ReceiptRepo
	exporter    *export.ExcelExporter
}

// NewExportHandler creates a new export handler
func NewExportHandler(receiptRepo repositories.ReceiptRepo, exporter *export.ExcelExporter) *ExportHandler {
	return &ExportHandler{
		receiptRepo: receiptRepo,
		exporter:    exporter,
	}
}

// ExportReceipts downloads every stored receipt as an xlsx workbook
func (h *ExportHandler) ExportReceipts(c *fiber.Ctx) error {
	receipts, err := h.receiptRepo.ListAll()
	if err != nil {
		utils.LogError("❌ Failed to load receipts for export", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load receipts",
		})
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(receipts, &buf); err != nil {
		utils.LogError("❌ Excel export failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate export",
		})
	}

	filename := fmt.Sprintf("receipts_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
