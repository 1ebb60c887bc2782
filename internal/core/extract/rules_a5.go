package extract

import "regexp"

// a5Rules covers the A5 fleet-card tax invoice. Most fields on this layout
// only have keyword anchors; their whole-text fallback is intentionally
// disabled (nil Pattern) because the A5 body text is too noisy for unanchored
// regex matching.
var a5Rules = &RuleSet{
	Name: TypeA5,
	Rules: map[Field]FieldRule{
		FieldMerchantName: {
			Keywords: []string{"บริษัท", "กัด"},
			Window:   3,
			Pattern:  regexp.MustCompile(`บริษัท[\s\S]{0,80}?กัด`),
			Kind:     KindCompany,
		},
		FieldGasAddress: {
			Keywords:       []string{"ที่อยู่", "สาขา"},
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressTH: {
			Keywords:       []string{"53 หมู่ 2", "การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย", "กฟผ.", "กฟผ", "นนทบุรี", "บางกรวย"},
			Pattern:        regexp.MustCompile(`(ที่อยู่(?:การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย|กฟผ\.?)[\s\S]*?\s[\s\S]*?1130)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressENG: {
			Keywords:       []string{"ชื่อลูกค้า:", "electricitygeneratingauthorityofthailand", "electricity", "11130"},
			Pattern:        regexp.MustCompile(`(?i)((?:electricitygeneratingauthorityofthailand|egat)[\s\S]*?\s[\s\S]*?130)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldTransactionDate: {
			Keywords: []string{"วันที่ขาย", "วันที่พิมพ์", "เวลาวางมือจ่าย"},
			Window:   4,
			Kind:     KindDate,
		},
		FieldTotalAmount: {
			Keywords: []string{"รวมเป็นเงิน", "เป็นเงิน", "รวมเงิน"},
			Window:   5,
			Pattern:  regexp.MustCompile(`(?i)fleetcard[\s\S]*?(\d{1,3}(?:,\d{3})*\.\d{2})(?:[^0-9]|$)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldVATAmount: {
			Keywords: []string{"ภาษีมูลค่าเพิ่ม", "VAT 7%)"},
			Window:   3,
			Kind:     KindAmount,
		},
		FieldLiters: {
			Keywords: []string{"Liters", "quantity", "ลิตร"},
			Window:   3,
			Kind:     KindAmount,
		},
		FieldMilestone: {
			Keywords: []string{"เลขไมล์ :", "เลขไมล์"},
			Window:   3,
			Kind:     KindAmount,
		},
		FieldTaxInvoiceNo: {
			Keywords: []string{"เลขที่ใบกํากับภาษี", "RECEIPT/TAX INVOICE", "RD#"},
			Window:   3,
			Kind:     KindID,
			IDMin:    5, IDMax: 20,
		},
		FieldReceiptNo: {
			Keywords: []string{"เลขที่ใบกํากับภาษี", "RECEIPT/TAX INVOICE", "RD#"},
			Window:   3,
			Kind:     KindID,
			IDMin:    5, IDMax: 20,
		},
		FieldEGATTaxID: {
			Keywords: []string{"เลขประจำตัวผู้เสียภาษี", "099"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:เลขประจำตัวผู้เสียภาษี|taxid)[:\s]*(\d{10,15})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    13, IDMax: 13,
		},
		FieldGasTaxID: {
			Keywords: []string{"เลขประจำตัวผู้เสียภาษี"},
			Window:   3,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldPlateNo: {
			Keywords: []string{"ทะเบียนรถ", "รถ"},
			Window:   3,
			Kind:     KindPlate,
		},
		FieldGasType: {
			Keywords: []string{"DIESEL", "E20", "E85", "GASOHOL", "HI DIESEL"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(DIESEL|E20|E85|GASOHOL|HI DIESEL)`),
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
