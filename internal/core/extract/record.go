package extract

import (
	"github.com/shopspring/decimal"
)

// Field names match the JSON keys of the parsed-data payload
type Field string

const (
	FieldMerchantName    Field = "merchant_name"
	FieldGasProvider     Field = "gas_provider"
	FieldGasAddress      Field = "gas_address"
	FieldEGATAddressTH   Field = "egat_address_th"
	FieldEGATAddressENG  Field = "egat_address_eng"
	FieldTransactionDate Field = "transaction_date"
	FieldTotalAmount     Field = "total_amount"
	FieldVATAmount       Field = "vat_amount"
	FieldLiters          Field = "liters"
	FieldPricePerLiter   Field = "price_per_liter"
	FieldMilestone       Field = "milestone"
	FieldTaxInvoiceNo    Field = "tax_invoice_no"
	FieldReceiptNo       Field = "receipt_no"
	FieldEGATTaxID       Field = "egat_tax_id"
	FieldGasTaxID        Field = "gas_tax_id"
	FieldPlateNo         Field = "plate_no"
	FieldGasType         Field = "gas_type"
	FieldOriginal        Field = "original"
	FieldSignature       Field = "signature"
)

// GasType is the closed fuel-type enumeration
type GasType string

const (
	GasDiesel    GasType = "DIESEL"
	GasE20       GasType = "E20"
	GasE85       GasType = "E85"
	GasGasohol   GasType = "GASOHOL"
	GasHiDiesel  GasType = "HI DIESEL"
	GasNGV       GasType = "NGV"
	GasBiodiesel GasType = "BIODIESEL"
)

// gasTypes in match order; containment is tested against the
// space/hyphen-stripped uppercase candidate, first member wins.
var gasTypes = []GasType{GasDiesel, GasE20, GasE85, GasGasohol, GasHiDiesel, GasNGV, GasBiodiesel}

// fieldOrder fixes the extraction pass order: date before amounts before
// identifiers before descriptive fields, markers last.
var fieldOrder = []Field{
	FieldTransactionDate,
	FieldTotalAmount,
	FieldVATAmount,
	FieldLiters,
	FieldPricePerLiter,
	FieldMilestone,
	FieldTaxInvoiceNo,
	FieldReceiptNo,
	FieldEGATTaxID,
	FieldGasTaxID,
	FieldPlateNo,
	FieldGasType,
	FieldMerchantName,
	FieldGasProvider,
	FieldGasAddress,
	FieldEGATAddressTH,
	FieldEGATAddressENG,
	FieldOriginal,
	FieldSignature,
}

// Record is the structured extraction result. Every field is independently
// optional: nil means the matchers found nothing usable, which is a valid
// first-class outcome, not an error.
type Record struct {
	MerchantName    *string          `json:"merchant_name"`
	GasProvider     *string          `json:"gas_provider"`
	GasAddress      *string          `json:"gas_address"`
	EGATAddressTH   *string          `json:"egat_address_th"`
	EGATAddressENG  *string          `json:"egat_address_eng"`
	TransactionDate *string          `json:"transaction_date"` // ISO YYYY-MM-DD
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	VATAmount       *decimal.Decimal `json:"vat_amount"`
	Liters          *decimal.Decimal `json:"liters"`
	PricePerLiter   *decimal.Decimal `json:"price_per_liter"`
	Milestone       *decimal.Decimal `json:"milestone"`
	TaxInvoiceNo    *string          `json:"tax_invoice_no"`
	ReceiptNo       *string          `json:"receipt_no"`
	EGATTaxID       *string          `json:"egat_tax_id"`
	GasTaxID        *string          `json:"gas_tax_id"`
	PlateNo         *string          `json:"plate_no"`
	GasType         *GasType         `json:"gas_type"`
	Original        bool             `json:"original"`
	Signature       bool             `json:"signature"`
}

// NewRecord returns a fresh all-null record
func NewRecord() *Record {
	return &Record{}
}

// resolved reports whether a field already holds a value. Values are typed at
// the moment they are stored, so a resolved numeric field is always valid and
// never needs a re-parse before the regex fallback.
func (r *Record) resolved(f Field) bool {
	switch f {
	case FieldMerchantName:
		return r.MerchantName != nil
	case FieldGasProvider:
		return r.GasProvider != nil
	case FieldGasAddress:
		return r.GasAddress != nil
	case FieldEGATAddressTH:
		return r.EGATAddressTH != nil
	case FieldEGATAddressENG:
		return r.EGATAddressENG != nil
	case FieldTransactionDate:
		return r.TransactionDate != nil
	case FieldTotalAmount:
		return r.TotalAmount != nil
	case FieldVATAmount:
		return r.VATAmount != nil
	case FieldLiters:
		return r.Liters != nil
	case FieldPricePerLiter:
		return r.PricePerLiter != nil
	case FieldMilestone:
		return r.Milestone != nil
	case FieldTaxInvoiceNo:
		return r.TaxInvoiceNo != nil
	case FieldReceiptNo:
		return r.ReceiptNo != nil
	case FieldEGATTaxID:
		return r.EGATTaxID != nil
	case FieldGasTaxID:
		return r.GasTaxID != nil
	case FieldPlateNo:
		return r.PlateNo != nil
	case FieldGasType:
		return r.GasType != nil
	case FieldOriginal:
		return r.Original
	case FieldSignature:
		return r.Signature
	}
	return false
}

// setText stores a text-valued field (names, addresses, identifiers, dates)
func (r *Record) setText(f Field, s string) {
	switch f {
	case FieldMerchantName:
		r.MerchantName = &s
	case FieldGasProvider:
		r.GasProvider = &s
	case FieldGasAddress:
		r.GasAddress = &s
	case FieldEGATAddressTH:
		r.EGATAddressTH = &s
	case FieldEGATAddressENG:
		r.EGATAddressENG = &s
	case FieldTransactionDate:
		r.TransactionDate = &s
	case FieldTaxInvoiceNo:
		r.TaxInvoiceNo = &s
	case FieldReceiptNo:
		r.ReceiptNo = &s
	case FieldEGATTaxID:
		r.EGATTaxID = &s
	case FieldGasTaxID:
		r.GasTaxID = &s
	case FieldPlateNo:
		r.PlateNo = &s
	}
}

// setDecimal stores a numeric field
func (r *Record) setDecimal(f Field, d decimal.Decimal) {
	switch f {
	case FieldTotalAmount:
		r.TotalAmount = &d
	case FieldVATAmount:
		r.VATAmount = &d
	case FieldLiters:
		r.Liters = &d
	case FieldPricePerLiter:
		r.PricePerLiter = &d
	case FieldMilestone:
		r.Milestone = &d
	}
}

// setGasType stores the fuel-type field
func (r *Record) setGasType(g GasType) {
	r.GasType = &g
}

// setFlag raises a marker field
func (r *Record) setFlag(f Field) {
	switch f {
	case FieldOriginal:
		r.Original = true
	case FieldSignature:
		r.Signature = true
	}
}

// Map flattens the record into field-name → value (string | float64 | bool |
// nil), the shape serialized to the API response and the JSONB column.
func (r *Record) Map() map[string]interface{} {
	m := map[string]interface{}{
		string(FieldMerchantName):    textOrNil(r.MerchantName),
		string(FieldGasProvider):     textOrNil(r.GasProvider),
		string(FieldGasAddress):      textOrNil(r.GasAddress),
		string(FieldEGATAddressTH):   textOrNil(r.EGATAddressTH),
		string(FieldEGATAddressENG):  textOrNil(r.EGATAddressENG),
		string(FieldTransactionDate): textOrNil(r.TransactionDate),
		string(FieldTotalAmount):     decimalOrNil(r.TotalAmount),
		string(FieldVATAmount):       decimalOrNil(r.VATAmount),
		string(FieldLiters):          decimalOrNil(r.Liters),
		string(FieldPricePerLiter):   decimalOrNil(r.PricePerLiter),
		string(FieldMilestone):       decimalOrNil(r.Milestone),
		string(FieldTaxInvoiceNo):    textOrNil(r.TaxInvoiceNo),
		string(FieldReceiptNo):       textOrNil(r.ReceiptNo),
		string(FieldEGATTaxID):       textOrNil(r.EGATTaxID),
		string(FieldGasTaxID):        textOrNil(r.GasTaxID),
		string(FieldPlateNo):         textOrNil(r.PlateNo),
		string(FieldOriginal):        r.Original,
		string(FieldSignature):       r.Signature,
	}
	if r.GasType != nil {
		m[string(FieldGasType)] = string(*r.GasType)
	} else {
		m[string(FieldGasType)] = nil
	}
	return m
}

func textOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func decimalOrNil(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return f
}
