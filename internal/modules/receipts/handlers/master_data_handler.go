package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// MasterDataHandler handles the EGAT reference-data endpoints
type MasterDataHandler struct {
	masterDataRepo repositories.MasterDataRepo
}

// NewMasterDataHandler creates a new master data handler
func NewMasterDataHandler(masterDataRepo repositories.MasterDataRepo) *MasterDataHandler {
	return &MasterDataHandler{masterDataRepo: masterDataRepo}
}

// MasterDataRequest carries the EGAT reference values
type MasterDataRequest struct {
	EGATAddressTH  string `json:"egat_address_th"`
	EGATAddressENG string `json:"egat_address_eng"`
	EGATTaxID      string `json:"egat_tax_id"`
}

// GetMasterData returns the single EGAT reference row
func (h *MasterDataHandler) GetMasterData(c *fiber.Ctx) error {
	data, err := h.masterDataRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "master data not found",
			})
		}
		utils.LogError("❌ Failed to get master data", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve master data",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// UpsertMasterData creates the EGAT reference row or updates the existing one
func (h *MasterDataHandler) UpsertMasterData(c *fiber.Ctx) error {
	var req MasterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	data := &models.MasterData{
		EGATAddressTH:  cleanField(req.EGATAddressTH),
		EGATAddressENG: cleanField(req.EGATAddressENG),
		EGATTaxID:      cleanField(req.EGATTaxID),
	}

	saved, created, err := h.masterDataRepo.Upsert(data)
	if err != nil {
		utils.LogError("❌ Failed to upsert master data", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save master data",
		})
	}

	status := fiber.StatusOK
	message := "Master data updated successfully"
	if created {
		status = fiber.StatusCreated
		message = "Master data created successfully"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    saved,
	})
}

// cleanField maps empty strings to nil so blank form values do not
// overwrite stored data with empty text.
func cleanField(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
