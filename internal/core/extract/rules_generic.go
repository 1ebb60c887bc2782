package extract

import "regexp"

// genericRules is the layout-agnostic fallback rule set. It casts the widest
// keyword net and relies on the whole-text patterns for anything the token
// pass misses.
var genericRules = &RuleSet{
	Name: TypeGeneric,
	Rules: map[Field]FieldRule{
		FieldMerchantName: {
			Keywords: []string{"PTT", "BANGCHAK", "บางจาก", "ปตท.", "PTTST", "บริษัท", "ห้างหุ้นส่วน"},
			Window:   3,
			Pattern:  regexp.MustCompile(`บริษัท[\s\S]{0,80}?กัด`),
			Kind:     KindCompany,
		},
		FieldGasProvider: {
			Keywords: []string{"PTTstation", "bangchak", "บางจาก", "ปตท.", "PTT", "Caltex", "Shell", "Esso"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(Bangchak|Caltex|PTT|Shell|Esso|บางจาก|ปตท)`),
			Group:    1,
			Kind:     KindBrand,
		},
		FieldGasAddress: {
			Keywords:       []string{"ที่อยู่", "address", "ตําบล", "อําเภอ", "จังหวัด", "ถ.", "ถนน", "ซอย", "แขวง", "เขต", "ไปรษณีย์"},
			Pattern:        regexp.MustCompile(`(?i)(?:ที่อยู่|address)[:\s]*([^\n]*?)(?:\d{5}|\n|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressTH: {
			Keywords:       []string{"การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย", "กฟผ", "กฟผ.", "นนทบุรี", "บางกรวย"},
			Pattern:        regexp.MustCompile(`(?:การไฟฟ้าฝ่ายผลิตแห่งประเทศไทย|กฟผ\.?)[:\s]*([\s\S]*?)(?:\d{5}|โทร|โทรสาร|เลขประจำตัวผู้เสียภาษี|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldEGATAddressENG: {
			Keywords:       []string{"Electricity Generating Authority of Thailand", "EGAT", "Nonthaburi", "Bang Kruai"},
			Pattern:        regexp.MustCompile(`(?i)(?:electricity generating authority of thailand|egat)[:\s]*([\s\S]*?)(?:\d{5}|phone|fax|tax id|โทร|$)`),
			Group:          1,
			Kind:           KindAddress,
			AllowOverwrite: true,
		},
		FieldTransactionDate: {
			Keywords: []string{"date", "วันที่", "issued", "time", "วัน"},
			Window:   4,
			Pattern:  regexp.MustCompile(`(?i)(?:date|วันที่|issued|time|วัน)[\s:]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})`),
			Group:    1,
			Kind:     KindDate,
		},
		FieldTotalAmount: {
			Keywords: []string{"total", "amount", "รวมเงิน", "รวมเป็นเงิน", "ยอดชำระ", "THB"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:total|amount|ยอดรวม|รวมเงิน|รวมเป็นเงิน|ยอดชำระ|thb)[:\s]*(\d{1,3}(?:,\d{3})*\.\d{2})`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldVATAmount: {
			Keywords: []string{"vat", "ภาษีมูลค่าเพิ่ม"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:vat|ภาษีมูลค่าเพิ่ม)[:\s%)]*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldLiters: {
			Keywords: []string{"liters", "ลิตร", "จำนวนลิตร", "ปริมาณ"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ลิตร|litres?|liters?|ltrs?|l\.)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldPricePerLiter: {
			Keywords: []string{"ราคาต่อลิตร", "ราคา/ลิตร", "BHT/LTR"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:ราคาต่อลิตร|bht/ltr\.?|baht/ltr\.?)[:\s]*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldMilestone: {
			Keywords: []string{"milestone", "เลขไมล์", "เลขระยะทาง", "กม."},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:milestone|เลขไมล์|เลขระยะทาง)[:\s]*(\d+(?:[.,]\d+)?)`),
			Group:    1,
			Kind:     KindAmount,
		},
		FieldTaxInvoiceNo: {
			Keywords: []string{"TaxInv", "ใบกำกับภาษี", "เลขที่ใบกํากับภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:taxinvno|เลขที่ใบกํากับภาษี|ใบกำกับภาษี)\s*[:#]?\s*([0-9\-]{6,18})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    6, IDMax: 18,
		},
		FieldReceiptNo: {
			Keywords: []string{"receipt no", "เลขที่", "บิล"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:receipt no\.?|เลขที่)[:\s]*([a-zA-Z0-9\-/]{5,})`),
			Group:    1,
			Kind:     KindID,
			IDMin:    5, IDMax: 20,
		},
		FieldEGATTaxID: {
			Keywords: []string{"egat tax id", "เลขประจำตัวผู้เสียภาษีกฟผ", "tax id", "เลขประจำตัวผู้เสียภาษี"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:egat tax id|เลขประจำตัวผู้เสียภาษีกฟผ|เลขประจำตัวผู้เสียภาษี|tax id)\s*:?\s*(\d[\d\s\-]*\d)`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldGasTaxID: {
			Keywords: []string{"tax id", "เลขประจำตัวผู้เสียภาษี", "เลขประจำตัว"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:tax id|เลขประจำตัวผู้เสียภาษี)[:\s]*(\d[\d\s\-]*\d)`),
			Group:    1,
			Kind:     KindID,
			IDMin:    10, IDMax: 15,
		},
		FieldPlateNo: {
			Keywords: []string{"ทะเบียนรถ", "plate no", "รถ"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(?:เลขทะเบียน|ทะเบียนรถ|plate no)[:\s]*([ก-ฮa-zA-Z0-9\s\-]{3,12})`),
			Group:    1,
			Kind:     KindPlate,
		},
		FieldGasType: {
			Keywords: []string{"e20", "e85", "gasohol", "ดีเซล", "เบนซิน", "แก๊สโซฮอล์", "diesel", "ngv", "biodiesel"},
			Window:   3,
			Pattern:  regexp.MustCompile(`(?i)(hi ?diesel|gasohol|e85|e20|ngv|biodiesel|diesel|ดีเซล|แก๊สโซฮอล์)`),
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
