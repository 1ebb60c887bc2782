package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
)

func tok(text string, line int) ocr.Token {
	return ocr.Token{Text: text, LineNum: line}
}

func TestEngine_KeywordPass(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "TOTAL THB 1,250.00",
		Tokens: []ocr.Token{
			tok("TOTAL", 1), tok("THB", 1), tok("1,250.00", 1),
		},
	}

	rec, matches := eng.Extract(res)
	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, "1250.00", rec.TotalAmount.String())

	var m *Match
	for i := range matches {
		if matches[i].Field == FieldTotalAmount {
			m = &matches[i]
		}
	}
	require.NotNil(t, m)
	assert.Equal(t, "keyword", m.Source)
	require.NotNil(t, m.Keyword)
	assert.Equal(t, "TOTAL", m.Keyword.Text)
}

func TestEngine_PatternFallback(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{FullText: "เลขประจำตัวผู้เสียภาษี : 0994000244843"}

	rec, matches := eng.Extract(res)
	require.NotNil(t, rec.EGATTaxID)
	assert.Equal(t, "0994000244843", *rec.EGATTaxID)

	for _, m := range matches {
		if m.Field == FieldEGATTaxID {
			assert.Equal(t, "pattern", m.Source)
			assert.Nil(t, m.Keyword)
		}
	}
}

func TestEngine_TaxIDPicksThirteenDigitRun(t *testing.T) {
	// Two independent numbers after the label must not fuse into one
	// over-long run; the thirteen-digit tax id wins.
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{FullText: "เลขประจำตัวผู้เสียภาษี 1234567890 0994000244843"}

	rec, _ := eng.Extract(res)
	require.NotNil(t, rec.EGATTaxID)
	assert.Equal(t, "0994000244843", *rec.EGATTaxID)
}

func TestEngine_MerchantFromBrandToken(t *testing.T) {
	// Station receipts often show only the brand, no registered
	// company line ending in จำกัด.
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "PTT STATION สาขาบางกรวย TOTAL 450.00",
		Tokens: []ocr.Token{
			tok("PTT", 1), tok("STATION", 1), tok("สาขาบางกรวย", 2),
			tok("TOTAL", 3), tok("450.00", 3),
		},
	}

	rec, _ := eng.Extract(res)
	require.NotNil(t, rec.MerchantName)
	assert.Equal(t, "PTT", *rec.MerchantName)
}

func TestEngine_DateFromKeyword(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "วันที่ 15/03/2567",
		Tokens:   []ocr.Token{tok("วันที่", 1), tok("15/03/2567", 1)},
	}

	rec, _ := eng.Extract(res)
	require.NotNil(t, rec.TransactionDate)
	assert.Equal(t, "2024-03-15", *rec.TransactionDate)
}

func TestEngine_GasType(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "ดีเซล 30.25 ลิตร",
		Tokens:   []ocr.Token{tok("ดีเซล", 1), tok("30.25", 1), tok("ลิตร", 1)},
	}

	rec, _ := eng.Extract(res)
	require.NotNil(t, rec.GasType)
	assert.Equal(t, GasDiesel, *rec.GasType)
	require.NotNil(t, rec.Liters)
	assert.Equal(t, "30.25", rec.Liters.String())
}

func TestEngine_Markers(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "ต้นฉบับ ใบเสร็จรับเงิน ลายเซ็น",
		Tokens:   []ocr.Token{tok("ต้นฉบับ", 1), tok("ใบเสร็จรับเงิน", 1), tok("ลายเซ็น", 2)},
	}

	rec, _ := eng.Extract(res)
	assert.True(t, rec.Original)
	assert.True(t, rec.Signature)
}

func TestEngine_EmptyResult(t *testing.T) {
	eng := NewForType(TypeGeneric)

	rec, matches := eng.Extract(&ocr.Result{})
	require.NotNil(t, rec)
	assert.Empty(t, matches)
	assert.Nil(t, rec.TotalAmount)
	assert.Nil(t, rec.TransactionDate)
	assert.Nil(t, rec.MerchantName)
	assert.Nil(t, rec.GasType)
	assert.False(t, rec.Original)
	assert.False(t, rec.Signature)
}

func TestEngine_Idempotent(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "TOTAL 450.00 วันที่ 15/03/2567",
		Tokens: []ocr.Token{
			tok("TOTAL", 1), tok("450.00", 1),
			tok("วันที่", 2), tok("15/03/2567", 2),
		},
	}

	first, _ := eng.Extract(res)
	second, _ := eng.Extract(res)
	assert.Equal(t, first.Map(), second.Map())
}

func TestEngine_UnknownTypeFallsBackToGeneric(t *testing.T) {
	eng := NewForType("no-such-layout")
	assert.Equal(t, TypeGeneric, eng.RuleSetName())
}

func TestRecord_Map(t *testing.T) {
	eng := NewForType(TypeGeneric)
	res := &ocr.Result{
		FullText: "TOTAL 1,250.00",
		Tokens:   []ocr.Token{tok("TOTAL", 1), tok("1,250.00", 1)},
	}

	rec, _ := eng.Extract(res)
	m := rec.Map()

	assert.Equal(t, 1250.00, m["total_amount"])
	assert.Nil(t, m["transaction_date"])
	assert.Nil(t, m["gas_type"])
	assert.Equal(t, false, m["original"])
	// every field key is present even when unresolved
	assert.Len(t, m, len(fieldOrder))
}
