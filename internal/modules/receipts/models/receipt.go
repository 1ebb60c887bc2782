package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Receipt represents one processed fuel receipt. The typed columns mirror
// the extracted fields so they stay queryable; ParsedData keeps the full
// field map as JSONB for clients that consume the raw extraction result.
type Receipt struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReceiptType      string           `gorm:"type:varchar(30);not null;default:'generic';index:idx_receipts_type" json:"receipt_type"`
	OriginalFilename string           `gorm:"type:varchar(255)" json:"original_filename,omitempty"`
	MerchantName     *string          `gorm:"type:text" json:"merchant_name"`
	GasProvider      *string          `gorm:"type:varchar(50)" json:"gas_provider"`
	GasAddress       *string          `gorm:"type:text" json:"gas_address"`
	EGATAddressTH    *string          `gorm:"column:egat_address_th;type:text" json:"egat_address_th"`
	EGATAddressENG   *string          `gorm:"column:egat_address_eng;type:text" json:"egat_address_eng"`
	TransactionDate  *time.Time       `gorm:"index:idx_receipts_date" json:"transaction_date"`
	TotalAmount      *decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_amount"`
	VATAmount        *decimal.Decimal `gorm:"column:vat_amount;type:decimal(15,2)" json:"vat_amount"`
	Liters           *decimal.Decimal `gorm:"type:decimal(12,3)" json:"liters"`
	PricePerLiter    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"price_per_liter"`
	Milestone        *decimal.Decimal `gorm:"type:decimal(12,1)" json:"milestone"`
	TaxInvoiceNo     *string          `gorm:"type:varchar(50)" json:"tax_invoice_no"`
	ReceiptNo        *string          `gorm:"type:varchar(50)" json:"receipt_no"`
	EGATTaxID        *string          `gorm:"column:egat_tax_id;type:varchar(20)" json:"egat_tax_id"`
	GasTaxID         *string          `gorm:"column:gas_tax_id;type:varchar(20)" json:"gas_tax_id"`
	PlateNo          *string          `gorm:"type:varchar(20)" json:"plate_no"`
	GasType          *string          `gorm:"type:varchar(20)" json:"gas_type"`
	Original         bool             `gorm:"not null;default:false" json:"original"`
	Signature        bool             `gorm:"not null;default:false" json:"signature"`
	ParsedData       datatypes.JSON   `gorm:"type:jsonb" json:"parsed_data,omitempty"`
	OCRProvider      string           `gorm:"type:varchar(30)" json:"ocr_provider,omitempty"`
	OCRConfidence    *float64         `gorm:"type:float" json:"ocr_confidence,omitempty"`
	RawExtractedText string           `gorm:"type:text" json:"raw_extracted_text,omitempty"`
	DebugImagePath   string           `gorm:"type:varchar(255)" json:"debug_image_path,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Receipt) TableName() string {
	return "receipts"
}

// BeforeCreate sets UUID before creating
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
