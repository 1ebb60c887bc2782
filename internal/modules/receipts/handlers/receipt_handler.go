package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/services"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// ReceiptHandler handles receipt processing and CRUD requests
type ReceiptHandler struct {
	receiptService *services.ReceiptService
	receiptRepo    repositories.ReceiptRepo
	maxUploadBytes int64
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *services.ReceiptService, receiptRepo repositories.ReceiptRepo, maxUploadMB int) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		receiptRepo:    receiptRepo,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ProcessReceipt accepts a multipart receipt image plus a receipt_type and
// runs the extraction pipeline over it.
func (h *ReceiptHandler) ProcessReceipt(c *fiber.Ctx) error {
	receiptType := c.FormValue("receipt_type", "generic")

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "receipt_image file is required",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only JPEG, PNG and WebP images are supported",
		})
	}

	if file.Size > h.maxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file too large",
		})
	}

	fileHandle, err := file.Open()
	if err != nil {
		utils.LogError("❌ Failed to open upload", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read image file",
		})
	}
	defer fileHandle.Close()

	imageData, err := io.ReadAll(fileHandle)
	if err != nil {
		utils.LogError("❌ Failed to read upload", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read image file",
		})
	}

	utils.LogInfo("📸 Processing receipt image", map[string]interface{}{
		"receipt_type": receiptType,
		"filename":     file.Filename,
		"size_kb":      float64(file.Size) / 1024,
	})

	receipt, err := h.receiptService.Process(c.Context(), imageData, receiptType, file.Filename)
	if err != nil {
		utils.LogError("❌ Receipt processing failed", err, map[string]interface{}{
			"receipt_type": receiptType,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to process receipt image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Receipt processed successfully",
		"data":    receipt,
	})
}

// GetReceipts lists receipts, optionally filtered by receipt_type
func (h *ReceiptHandler) GetReceipts(c *fiber.Ctx) error {
	receiptType := c.Query("receipt_type")
	limit := c.QueryInt("limit", 50)
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)

	receipts, total, err := h.receiptRepo.List(receiptType, limit, offset)
	if err != nil {
		utils.LogError("❌ Failed to list receipts", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve receipts",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"count":  len(receipts),
		"total":  total,
		"data":   receipts,
	})
}

// GetReceipt retrieves one receipt by ID
func (h *ReceiptHandler) GetReceipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid receipt id",
		})
	}

	receipt, err := h.receiptRepo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "receipt not found",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   receipt,
	})
}

// UpdateReceiptRequest carries the manually correctable fields
type UpdateReceiptRequest struct {
	MerchantName   *string `json:"merchant_name"`
	GasProvider    *string `json:"gas_provider"`
	GasAddress     *string `json:"gas_address"`
	EGATAddressTH  *string `json:"egat_address_th"`
	EGATAddressENG *string `json:"egat_address_eng"`
	TaxInvoiceNo   *string `json:"tax_invoice_no"`
	ReceiptNo      *string `json:"receipt_no"`
	EGATTaxID      *string `json:"egat_tax_id"`
	GasTaxID       *string `json:"gas_tax_id"`
	PlateNo        *string `json:"plate_no"`
	GasType        *string `json:"gas_type"`
}

// UpdateReceipt applies manual field corrections to a stored receipt
func (h *ReceiptHandler) UpdateReceipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid receipt id",
		})
	}

	var req UpdateReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	receipt, err := h.receiptRepo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "receipt not found",
		})
	}

	if req.MerchantName != nil {
		receipt.MerchantName = req.MerchantName
	}
	if req.GasProvider != nil {
		receipt.GasProvider = req.GasProvider
	}
	if req.GasAddress != nil {
		receipt.GasAddress = req.GasAddress
	}
	if req.EGATAddressTH != nil {
		receipt.EGATAddressTH = req.EGATAddressTH
	}
	if req.EGATAddressENG != nil {
		receipt.EGATAddressENG = req.EGATAddressENG
	}
	if req.TaxInvoiceNo != nil {
		receipt.TaxInvoiceNo = req.TaxInvoiceNo
	}
	if req.ReceiptNo != nil {
		receipt.ReceiptNo = req.ReceiptNo
	}
	if req.EGATTaxID != nil {
		receipt.EGATTaxID = req.EGATTaxID
	}
	if req.GasTaxID != nil {
		receipt.GasTaxID = req.GasTaxID
	}
	if req.PlateNo != nil {
		receipt.PlateNo = req.PlateNo
	}
	if req.GasType != nil {
		receipt.GasType = req.GasType
	}

	if err := h.receiptRepo.Update(receipt); err != nil {
		utils.LogError("❌ Failed to update receipt", err, map[string]interface{}{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update receipt",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   receipt,
	})
}

// DeleteReceipt removes a receipt by ID
func (h *ReceiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid receipt id",
		})
	}

	if err := h.receiptRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "receipt not found",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Receipt deleted",
	})
}
