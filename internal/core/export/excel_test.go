package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return &d
}

func TestExcelExporter_Export(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	receipts := []models.Receipt{
		{
			ID:              uuid.New(),
			ReceiptType:     "ptt-kbank",
			MerchantName:    strPtr("บริษัท ทดสอบ จำกัด"),
			GasProvider:     strPtr("PTT"),
			TransactionDate: &date,
			TotalAmount:     decPtr("1250.00"),
			Liters:          decPtr("30.250"),
			EGATTaxID:       strPtr("0994000244843"),
			GasType:         strPtr("DIESEL"),
			Original:        true,
			CreatedAt:       time.Now(),
		},
		{
			ID:          uuid.New(),
			ReceiptType: "generic",
			CreatedAt:   time.Now(),
		},
	}

	var buf bytes.Buffer
	err := NewExcelExporter().Export(receipts, &buf)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two receipts

	assert.Equal(t, receiptHeaders, rows[0][:len(receiptHeaders)])
	assert.Equal(t, receipts[0].ID.String(), rows[1][0])
	assert.Equal(t, "ptt-kbank", rows[1][1])
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", rows[1][2])
	assert.Equal(t, "2024-03-15", rows[1][4])
	assert.Equal(t, "1250", rows[1][5])
	assert.Equal(t, "0994000244843", rows[1][12])
	assert.Equal(t, "DIESEL", rows[1][15])
	assert.Equal(t, "TRUE", rows[1][16])

	// the all-null receipt exports with empty cells, not an error
	assert.Equal(t, "generic", rows[2][1])
}

func TestExcelExporter_ExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := NewExcelExporter().Export(nil, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestColumnNumberToName(t *testing.T) {
	assert.Equal(t, "A", columnNumberToName(1))
	assert.Equal(t, "S", columnNumberToName(len(receiptHeaders)))
	assert.Equal(t, "Z", columnNumberToName(26))
	assert.Equal(t, "AA", columnNumberToName(27))
}
