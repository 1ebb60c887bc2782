package extract

import "regexp"

// bangchakKbankRules covers Bangchak receipts paid through the KBank EDC
// terminal. The layout mirrors the PTT slip but plates are never printed, so
// the plate rule only has an unanchored pattern.
var bangchakKbankRules = &RuleSet{
	Name: TypeBangchakKbank,
	Rules: map[Field]FieldRule{
		FieldMerchantName: {
			Keywords: []string{"BANGCHAK", "K-BANK"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(bangchak - kbang'pan 2012 kanchanaburi|bangchak k-bank)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasProvider: {
			Keywords: []string{"BANGCHAK"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(bangchak)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasAddress: {
			Keywords:       []string{"KANCHANA", "KANCHANABURI"},
			Pattern:        regexp.MustCompile(`(?i)(?:kanchanaburi|kanchana).{0,50}(?:head office|ที่ทำการใหญ่)`),
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
			Pattern:  regexp.MustCompile(`(?i)(?:date|วันที่|วันขาย|time)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
			Group:    1,
			Kind:     KindDate,
		},
		FieldTotalAmount: {
			Keywords: []string{"TOTAL THB", "AMOUNT THB", "รวมเงิน"},
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
			Keywords: []string{"LITER", "LTR"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:liter|ltr)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldMilestone: {
			Keywords: []string{"กิโลเมตร", "KM"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:ระยะทาง|km|กิโลเมตร)[:\s]*(\d+(?:[.,]\d+)?)\s*(?:กม|km)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldReceiptNo: {
			Keywords: []string{"TID", "TRACENO"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:tid|trace no)[:\s]*(\d{6,18})`),
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
			Pattern: regexp.MustCompile(`([0-9]{1,2}\s*[ก-ฮa-zA-Z]{1,2}\s*[0-9]{3,4})`),
			Group:   1,
			Kind:    KindPlate,
		},
		FieldGasType: {
			Keywords: []string{"HI DIESEL S", "DIESEL", "E20", "E85", "GASOHOL"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(hi diesel s|diesel|e20|e85|gasohol)`),
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

// bangchakKrungthaiRules covers Bangchak tax invoices settled with a
// Krungthai fleet card. Dates print as DD/MM/YY after a "date" label and the
// invoice number is the 18-digit run on the เลขที่ใบกํากับภาษี line.
var bangchakKrungthaiRules = &RuleSet{
	Name: TypeBangchakKrungthai,
	Rules: map[Field]FieldRule{
		FieldMerchantName: {
			Keywords: []string{"บริษัท", "บางจาก"},
			Window:   3,
			Pattern:  regexp.MustCompile(`บริษัท[\s\S]{0,80}?กัด`),
			Kind:     KindCompany,
		},
		FieldGasProvider: {
			Keywords: []string{"บางจาก", "BANGCHAK"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(bangchak|บางจาก)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasAddress: {
			Keywords:       []string{"ที่อยู่", "อยู่"},
			Pattern:        regexp.MustCompile(`(?i)(?:ที่อยู่|address|addr)[:\s]*([^\n]*?)(?:\d{5}|โทร|tel|tax|fax|เลขประจำตัวผู้เสียภาษี|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressTH: {
			Keywords:       []string{"การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย", "กฟผ", "กฟผ.", "นนทบุรี", "บางกรวย"},
			Pattern:        regexp.MustCompile(`(ที่อยู่(?:การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย|กฟผ\.?)[\s\S]*?\s[\s\S]*?1130)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressENG: {
			Keywords:       []string{"ELECTRICITY GENERATING AUTHORITY OF THAILAND", "EGAT", "NONTHABURI"},
			Pattern:        regexp.MustCompile(`(?i)((?:electricitygeneratingauthorityofthailand|egat)[\s\S]*?\s[\s\S]*?1130)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldTransactionDate: {
			Keywords: []string{"วันที่พิมพ์", "วันที่", "date", "date:."},
			Window:   4,
			Pattern:  regexp.MustCompile(`(?i)date[\s\S]*?(\d{2}/\d{2}/\d{2})`),
			Group:    1,
			Kind:     KindDate,
		},
		FieldTotalAmount: {
			Keywords: []string{"เป็นเงิน"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)thb[\s\S]*?(\d{1,3}(?:,\d{3})*\.\d{2})(?:[^0-9]|$)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldVATAmount: {
			Keywords: []string{"vat", "ภาษีมูลค่าเพิ่ม"},
			Window:   3,
			Kind:     KindAmount,
		},
		FieldLiters: {
			Keywords: []string{"ลิตร", "liters", "litre", "l"},
			Window:   3,
			Kind:     KindAmount,
		},
		FieldMilestone: {
			Keywords: []string{"ระยะ", "km", "กม", "เลขไมล์"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?:เลขไมล์|ไมล์)[:\s]*(\d[\d,\.]{0,5})`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldTaxInvoiceNo: {
			Keywords: []string{"เลขที่", "เลขใบกำกับภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`เลขที่ใบกํากับภาษี[\s:#(]*((?:TIO)?\d{18}|\d{18}|\d{6}|[A-Z0-9\-/]{5,20})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    5, IDMax: 20,
		},
		FieldReceiptNo: {
			Keywords: []string{"เลขที่", "เลขใบกำกับภาษี"},
			Window:   3,
			Kind:     KindID,
			IDMin:    5, IDMax: 20,
		},
		FieldEGATTaxID: {
			Keywords: []string{"เลขประจำตัวผู้เสียภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?:เสียภาษี|ภาษี)[:\s]*(\d{10,15})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldGasTaxID: {
			Keywords: []string{"เลขประจำตัวผู้เสียภาษี", "ภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?:เสียภาษี|ภาษี)[:\s]*(\d{10,15})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldPlateNo: {
			Keywords: []string{"ทะเบียนรถ", "เบียนรถ"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?:ทะเบียนรถ|เบียนรถ)[:\s]*(.{1,7})`),
			Group:    1,
			Kind:     KindPlate,
		},
		FieldGasType: {
			Keywords: []string{"ดีเซล", "เบนซิน", "e20", "e85", "gasohol", "hi-diesel"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(DIESEL|E20|E85|GASOHOL|HI DIESEL|ดีเซล|แก๊สโซฮอล์)`),
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
