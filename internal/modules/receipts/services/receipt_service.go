package services

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/egatdev/receipt-ocr-be/internal/core/extract"
	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
	"github.com/egatdev/receipt-ocr-be/internal/core/preprocess"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// ReceiptService runs the full receipt pipeline: preprocess the image, OCR
// it, extract the structured fields for the requested layout, write the
// debug annotation image, and persist the record.
type ReceiptService struct {
	ocrService   *ocr.Service
	receiptRepo  repositories.ReceiptRepo
	annotator    extract.Annotator
	processedDir string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(ocrService *ocr.Service, receiptRepo repositories.ReceiptRepo, annotator extract.Annotator, processedDir string) *ReceiptService {
	return &ReceiptService{
		ocrService:   ocrService,
		receiptRepo:  receiptRepo,
		annotator:    annotator,
		processedDir: processedDir,
	}
}

// Process runs the pipeline over one uploaded image and saves the result
func (s *ReceiptService) Process(ctx context.Context, imageData []byte, receiptType, filename string) (*models.Receipt, error) {
	processed, decoded, err := preprocess.ForOCR(imageData)
	if err != nil {
		return nil, fmt.Errorf("preprocess image: %w", err)
	}

	utils.LogInfo("🔍 Running OCR", map[string]interface{}{
		"provider":     s.ocrService.GetProviderName(),
		"receipt_type": receiptType,
		"filename":     filename,
	})
	result, err := s.ocrService.ExtractText(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("ocr extraction: %w", err)
	}

	engine := extract.NewForType(receiptType)
	record, matches := engine.Extract(result)

	utils.LogInfo("✅ Fields extracted", map[string]interface{}{
		"rule_set":   engine.RuleSetName(),
		"matches":    len(matches),
		"confidence": result.Confidence,
	})

	debugPath := ""
	if s.annotator != nil {
		if path, err := s.writeDebugImage(decoded, matches, engine.RuleSetName()); err != nil {
			utils.LogWarn("⚠️ Debug image write failed", map[string]interface{}{"error": err.Error()})
		} else {
			debugPath = path
		}
	}

	receipt, err := buildReceipt(record, engine.RuleSetName(), filename)
	if err != nil {
		return nil, err
	}
	receipt.OCRProvider = s.ocrService.GetProviderName()
	receipt.OCRConfidence = &result.Confidence
	receipt.RawExtractedText = result.FullText
	receipt.DebugImagePath = debugPath

	if err := s.receiptRepo.Create(receipt); err != nil {
		return nil, fmt.Errorf("save receipt: %w", err)
	}

	utils.LogInfo("💾 Receipt saved", map[string]interface{}{"id": receipt.ID.String()})
	return receipt, nil
}

// Reextract reruns field extraction over a stored receipt's raw OCR text.
// Only the whole-text pattern pass applies since word geometry is not kept.
func (s *ReceiptService) Reextract(ctx context.Context, receipt *models.Receipt) error {
	if receipt.RawExtractedText == "" {
		return fmt.Errorf("receipt %s has no stored OCR text", receipt.ID)
	}

	engine := extract.NewForType(receipt.ReceiptType)
	record, _ := engine.Extract(&ocr.Result{FullText: receipt.RawExtractedText})

	updated, err := buildReceipt(record, receipt.ReceiptType, receipt.OriginalFilename)
	if err != nil {
		return err
	}
	applyExtraction(receipt, updated)

	if err := s.receiptRepo.Update(receipt); err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

func (s *ReceiptService) writeDebugImage(decoded image.Image, matches []extract.Match, ruleSet string) (string, error) {
	data, err := s.annotator.Annotate(decoded, matches)
	if err != nil {
		return "", fmt.Errorf("annotate: %w", err)
	}
	if err := os.MkdirAll(s.processedDir, 0o755); err != nil {
		return "", fmt.Errorf("create processed dir: %w", err)
	}
	name := fmt.Sprintf("debug_%s_%s.jpg", ruleSet, uuid.New().String())
	path := filepath.Join(s.processedDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write debug image: %w", err)
	}
	return name, nil
}

// buildReceipt maps an extraction record onto the persistence model
func buildReceipt(record *extract.Record, receiptType, filename string) (*models.Receipt, error) {
	parsed, err := json.Marshal(record.Map())
	if err != nil {
		return nil, fmt.Errorf("marshal parsed data: %w", err)
	}

	receipt := &models.Receipt{
		ReceiptType:      receiptType,
		OriginalFilename: filename,
		MerchantName:     record.MerchantName,
		GasProvider:      record.GasProvider,
		GasAddress:       record.GasAddress,
		EGATAddressTH:    record.EGATAddressTH,
		EGATAddressENG:   record.EGATAddressENG,
		TotalAmount:      record.TotalAmount,
		VATAmount:        record.VATAmount,
		Liters:           record.Liters,
		PricePerLiter:    record.PricePerLiter,
		Milestone:        record.Milestone,
		TaxInvoiceNo:     record.TaxInvoiceNo,
		ReceiptNo:        record.ReceiptNo,
		EGATTaxID:        record.EGATTaxID,
		GasTaxID:         record.GasTaxID,
		PlateNo:          record.PlateNo,
		Original:         record.Original,
		Signature:        record.Signature,
		ParsedData:       datatypes.JSON(parsed),
	}

	if record.GasType != nil {
		g := string(*record.GasType)
		receipt.GasType = &g
	}
	if record.TransactionDate != nil {
		if t, err := time.Parse("2006-01-02", *record.TransactionDate); err == nil {
			receipt.TransactionDate = &t
		}
	}
	return receipt, nil
}

// applyExtraction copies the re-extracted fields onto the stored receipt,
// leaving provenance columns (paths, OCR text, confidence) untouched.
func applyExtraction(dst, src *models.Receipt) {
	dst.MerchantName = src.MerchantName
	dst.GasProvider = src.GasProvider
	dst.GasAddress = src.GasAddress
	dst.EGATAddressTH = src.EGATAddressTH
	dst.EGATAddressENG = src.EGATAddressENG
	dst.TransactionDate = src.TransactionDate
	dst.TotalAmount = src.TotalAmount
	dst.VATAmount = src.VATAmount
	dst.Liters = src.Liters
	dst.PricePerLiter = src.PricePerLiter
	dst.Milestone = src.Milestone
	dst.TaxInvoiceNo = src.TaxInvoiceNo
	dst.ReceiptNo = src.ReceiptNo
	dst.EGATTaxID = src.EGATTaxID
	dst.GasTaxID = src.GasTaxID
	dst.PlateNo = src.PlateNo
	dst.GasType = src.GasType
	dst.Original = src.Original
	dst.Signature = src.Signature
	dst.ParsedData = src.ParsedData
}
