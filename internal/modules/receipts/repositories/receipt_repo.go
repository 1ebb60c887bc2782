package repositories

import (
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
	"gorm.io/gorm"
)

// ReceiptRepo interface defines receipt persistence operations
type ReceiptRepo interface {
	Create(receipt *models.Receipt) error
	GetByID(id string) (*models.Receipt, error)
	List(receiptType string, limit, offset int) ([]models.Receipt, int64, error)
	Update(receipt *models.Receipt) error
	Delete(id string) error
	ListAll() ([]models.Receipt, error)
}

type receiptRepo struct {
	db *gorm.DB
}

// NewReceiptRepo creates a new receipt repository
func NewReceiptRepo(db *gorm.DB) ReceiptRepo {
	return &receiptRepo{db: db}
}

// Create inserts a new receipt
func (r *receiptRepo) Create(receipt *models.Receipt) error {
	return r.db.Create(receipt).Error
}

// GetByID retrieves a receipt by ID
func (r *receiptRepo) GetByID(id string) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.Where("id = ?", id).First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// List retrieves receipts newest first, optionally filtered by receipt type
func (r *receiptRepo) List(receiptType string, limit, offset int) ([]models.Receipt, int64, error) {
	var receipts []models.Receipt
	query := r.db.Model(&models.Receipt{})
	if receiptType != "" {
		query = query.Where("receipt_type = ?", receiptType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&receipts).Error; err != nil {
		return nil, 0, err
	}
	return receipts, total, nil
}

// Update saves changes to an existing receipt
func (r *receiptRepo) Update(receipt *models.Receipt) error {
	return r.db.Save(receipt).Error
}

// Delete removes a receipt by ID
func (r *receiptRepo) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Receipt{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAll retrieves every receipt, oldest first. Used by batch re-extraction
// and the export service.
func (r *receiptRepo) ListAll() ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.Order("created_at ASC").Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}
