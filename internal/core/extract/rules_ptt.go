package extract

import "regexp"

// pttKbankRules covers PTT Station receipts paid through the KBank EDC
// terminal. Receipt numbers come from the TID/TRACE lines and the station
// address is matched by its printed branch names.
var pttKbankRules = &RuleSet{
	Name: TypePTTKbank,
	Rules: map[Field]FieldRule{
		FieldMerchantName: {
			Keywords: []string{"PTTstation", "KBank", "PTTST.D"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(pttstation\s*\|\s*kbank|pttsd\s*sinphatthong\s*br)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasProvider: {
			Keywords: []string{"PTTstation", "PTT"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(pttstation|ptt)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasAddress: {
			Keywords:       []string{"SINPHATTHONG", "KANCHANA", "KANCHANABURI"},
			Pattern:        regexp.MustCompile(`(?i)(sinphatthong\s*ltd|part\s*branch\s*number\s*\d{4}|kanchanaburi\s*\d{5})`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressTH: {
			Keywords:       []string{"การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย", "กฟผ", "กฟผ.", "นนทบุรี", "บางกรวย"},
			Pattern:        regexp.MustCompile(`(?:การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย|กฟผ\.?)[:\s]*([\s\S]*?)(?:\d{5}|โทร|โทรสาร|เลขประจำตัวผู้เสียภาษี|tax id|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressENG: {
			Keywords:       []string{"ELECTRICITY GENERATING AUTHORITY OF THAILAND", "EGAT", "NONTHABURI", "BANGKRUAI"},
			Pattern:        regexp.MustCompile(`(?i)(?:electricity generating authority of thailand|egat)[:\s]*([\s\S]*?)(?:\d{5}|phone|fax|tax id|โทร|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldTransactionDate: {
			Keywords: []string{"DATE", "วันที่", "Date"},
			Window:   4,
			Pattern:  regexp.MustCompile(`(?i)(?:date|วันที่|วันขาย|issued)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
			Group:    1,
			Kind:     KindDate,
		},
		FieldTotalAmount: {
			Keywords: []string{"TOTAL THB", "AMOUNT THB", "รวมเงิน", "BAHT"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)(?:total thb|amount thb|รวมเป็นเงิน|รวมเงิน)[:\s]*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldVATAmount: {
			Keywords: []string{"VAT"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)vat[:\s]*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldLiters: {
			Keywords: []string{"LITER", "Ltrs"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ltrs|liter|l\.)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldMilestone: {
			Keywords: []string{"ระยะทาง", "KM", "(KM)"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:ระยะทาง|km)[:\s]*(\d+(?:[.,]\d+)?)\s*(?:กม|km)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldReceiptNo: {
			Keywords: []string{"TID", "TRACE"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:tid|trace)[:\s]*(\d{6,18})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    6, IDMax: 18,
		},
		FieldEGATTaxID: {
			Keywords: []string{"TAX ID", "เลขประจำตัวผู้เสียภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)tax id[:\s]*(\d{10,15})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldGasTaxID: {
			Keywords: []string{"TAX ID", "เลขประจำตัวผู้เสียภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:tax id|เลขประจำตัวผู้เสียภาษี)[:\s]*(\d{10,15})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldPlateNo: {
			Keywords: []string{"ทะเบียนรถ"},
			Window:   3,
			Pattern:  regexp.MustCompile(`ทะเบียนรถ[:\s]*([0-9]{1,2}\s*[ก-ฮa-zA-Z]{1,2}\s*[0-9]{3,4})`),
			Group:    1,
			Kind:     KindPlate,
		},
		FieldGasType: {
			Keywords: []string{"DIESEL", "E20", "E85", "GASOHOL"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(diesel|e20|e85|gasohol)`),
			Group:    1,
			Kind:     KindGasType,
		},
		FieldOriginal: {
			Keywords: []string{"ต้นฉบับ"},
			Pattern:  regexp.MustCompile(`ต้นฉบับ`),
			Kind:     KindMarker,
		},
		FieldSignature: {
			Keywords: []string{"ลายเซ็น"},
			Pattern:  regexp.MustCompile(`ลายเซ็น`),
			Kind:     KindMarker,
		},
	},
}
