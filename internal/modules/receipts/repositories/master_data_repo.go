package repositories

import (
	"errors"

	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
	"gorm.io/gorm"
)

// MasterDataRepo interface defines master data operations. The table holds
// a single EGAT reference row, so writes go through Upsert.
type MasterDataRepo interface {
	Get() (*models.MasterData, error)
	Upsert(data *models.MasterData) (*models.MasterData, bool, error)
}

type masterDataRepo struct {
	db *gorm.DB
}

// NewMasterDataRepo creates a new master data repository
func NewMasterDataRepo(db *gorm.DB) MasterDataRepo {
	return &masterDataRepo{db: db}
}

// Get retrieves the single master data row
func (r *masterDataRepo) Get() (*models.MasterData, error) {
	var data models.MasterData
	err := r.db.First(&data).Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Upsert updates the existing master data row or creates the first one.
// The boolean reports whether a new row was created.
func (r *masterDataRepo) Upsert(data *models.MasterData) (*models.MasterData, bool, error) {
	existing, err := r.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		if err := r.db.Create(data).Error; err != nil {
			return nil, false, err
		}
		return data, true, nil
	}

	existing.EGATAddressTH = data.EGATAddressTH
	existing.EGATAddressENG = data.EGATAddressENG
	existing.EGATTaxID = data.EGATTaxID
	if err := r.db.Save(existing).Error; err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
