package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterData holds the EGAT reference values printed on every receipt.
// The table is expected to contain a single row.
type MasterData struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EGATAddressTH  *string   `gorm:"column:egat_address_th;type:text" json:"egat_address_th"`
	EGATAddressENG *string   `gorm:"column:egat_address_eng;type:text" json:"egat_address_eng"`
	EGATTaxID      *string   `gorm:"column:egat_tax_id;type:varchar(20)" json:"egat_tax_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (MasterData) TableName() string {
	return "master_data"
}

// BeforeCreate sets UUID before creating
func (m *MasterData) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
