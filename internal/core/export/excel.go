package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/models"
)

// ExcelExporter writes receipts out as an xlsx workbook using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{sheetName: "Receipts"}
}

var receiptHeaders = []string{
	"ID", "Receipt Type", "Merchant Name", "Gas Provider", "Transaction Date",
	"Total Amount", "VAT", "Liters", "Price/Liter", "Milestone",
	"Tax Invoice No", "Receipt No", "EGAT Tax ID", "Gas Tax ID",
	"Plate No", "Gas Type", "Original", "Signature", "Created At",
}

// Export writes the receipts as one sheet with a styled, frozen header row
func (e *ExcelExporter) Export(receipts []models.Receipt, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", e.sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for colIndex, header := range receiptHeaders {
		cell := columnNumberToName(colIndex+1) + "1"
		f.SetCellValue(e.sheetName, cell, header)
		f.SetCellStyle(e.sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(e.sheetName, "A", "A", 38)
	f.SetColWidth(e.sheetName, "C", "E", 24)

	for rowIdx, receipt := range receipts {
		row := rowIdx + 2
		values := []interface{}{
			receipt.ID.String(),
			receipt.ReceiptType,
			textCell(receipt.MerchantName),
			textCell(receipt.GasProvider),
			dateCell(receipt),
			decimalCell(receipt.TotalAmount),
			decimalCell(receipt.VATAmount),
			decimalCell(receipt.Liters),
			decimalCell(receipt.PricePerLiter),
			decimalCell(receipt.Milestone),
			textCell(receipt.TaxInvoiceNo),
			textCell(receipt.ReceiptNo),
			textCell(receipt.EGATTaxID),
			textCell(receipt.GasTaxID),
			textCell(receipt.PlateNo),
			textCell(receipt.GasType),
			receipt.Original,
			receipt.Signature,
			receipt.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIndex, value := range values {
			cell := columnNumberToName(colIndex+1) + strconv.Itoa(row)
			f.SetCellValue(e.sheetName, cell, value)
		}
	}

	f.SetPanes(e.sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if len(receipts) > 0 {
		lastCol := columnNumberToName(len(receiptHeaders))
		f.AutoFilter(e.sheetName, fmt.Sprintf("A1:%s%d", lastCol, len(receipts)+1), nil)
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func textCell(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func decimalCell(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	f, _ := d.Float64()
	return f
}

func dateCell(receipt models.Receipt) interface{} {
	if receipt.TransactionDate == nil {
		return ""
	}
	return receipt.TransactionDate.Format("2006-01-02")
}

// columnNumberToName converts a 1-based column number to an Excel name
func columnNumberToName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
