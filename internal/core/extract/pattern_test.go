package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern_NilPatternDisabled(t *testing.T) {
	rule := FieldRule{Kind: KindAmount}

	_, ok := matchPattern("TOTAL 1,250.00", rule)
	assert.False(t, ok)
}

func TestMatchPattern_GroupSelection(t *testing.T) {
	rule := genericRules.Rules[FieldTotalAmount]

	v, ok := matchPattern("ยอดรวม: 1,250.00 บาท", rule)
	require.True(t, ok)
	assert.Equal(t, KindAmount, v.kind)
	assert.Equal(t, "1250.00", v.dec.String())
}

func TestMatchPattern_TotalRequiresTwoDecimals(t *testing.T) {
	rule := genericRules.Rules[FieldTotalAmount]

	// A bare integer after the label is an item count, not money.
	_, ok := matchPattern("ยอดรวม 1250 รายการ", rule)
	assert.False(t, ok)

	v, ok := matchPattern("total: 1,250.00", rule)
	require.True(t, ok)
	assert.Equal(t, "1250.00", v.dec.String())
}

func TestMatchPattern_NoMatch(t *testing.T) {
	rule := genericRules.Rules[FieldTransactionDate]

	_, ok := matchPattern("no dates here", rule)
	assert.False(t, ok)
}

func TestCanonicalBrand(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"PTTstation | KBank", "PTT Station | KBank", true},
		{"Bangchak K-Bank", "Bangchak K-Bank", true},
		{"PTT", "PTT", true},
		{"ปตท. จำกัด", "PTT", true},
		{"bangchak", "Bangchak", true},
		{"บางจาก", "Bangchak", true},
		{"Shell", "Shell", true},
		{"CALTEX", "Caltex", true},
		{"Esso Express", "Esso", true},
		{"unknown station", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := canonicalBrand(tt.raw)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalCompany(t *testing.T) {
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", canonicalCompany("บริษัท   ทดสอบ   จำกัด"))
	// OCR often drops the leading จำ of the suffix
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", canonicalCompany("บริษัท ทดสอบ กัด"))
	// known OCR-mangled name maps to its canonical form
	assert.Equal(t, "บริษัท สยามยามาโมโต จำกัด", canonicalCompany("บริษัท สยามยามาโมโต จําภัด"))
	// spans without the legal prefix pass through with spacing normalized
	assert.Equal(t, "ห้างหุ้นส่วน ทดสอบ", canonicalCompany("ห้างหุ้นส่วน  ทดสอบ"))
}

func TestStripAddressTail(t *testing.T) {
	assert.Equal(t,
		"53 หมู่ 2 ถนนจรัญสนิทวงศ์ บางกรวย นนทบุรี",
		stripAddressTail("53 หมู่ 2 ถนนจรัญสนิทวงศ์ บางกรวย นนทบุรี 11130 โทร 02-436-0000"))
	assert.Equal(t,
		"ถนนสุขุมวิท",
		stripAddressTail("ถนนสุขุมวิท   10110"))
	// no postal code, nothing to strip
	assert.Equal(t, "ถนนสุขุมวิท", stripAddressTail("ถนนสุขุมวิท"))
}
