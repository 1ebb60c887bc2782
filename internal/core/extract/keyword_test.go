package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
)

func TestMatchKeywords_FirstHitWins(t *testing.T) {
	rule := FieldRule{Keywords: []string{"total"}, Window: 2, Kind: KindAmount}
	tokens := []ocr.Token{
		tok("TOTAL", 1), tok("100.00", 1),
		tok("TOTAL", 2), tok("200.00", 2),
	}

	v, idx, ok := matchKeywords(tokens, rule)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "100.00", v.dec.String())
}

func TestMatchKeywords_AllowOverwriteLastHitWins(t *testing.T) {
	rule := FieldRule{Keywords: []string{"total"}, Window: 2, Kind: KindAmount, AllowOverwrite: true}
	tokens := []ocr.Token{
		tok("TOTAL", 1), tok("100.00", 1),
		tok("TOTAL", 2), tok("200.00", 2),
	}

	v, idx, ok := matchKeywords(tokens, rule)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "200.00", v.dec.String())
}

func TestMatchKeywords_SkipsUnparseableHit(t *testing.T) {
	rule := FieldRule{Keywords: []string{"date"}, Window: 2, Kind: KindDate}
	tokens := []ocr.Token{
		tok("Date", 1), tok("n/a", 1),
		tok("Date", 2), tok("15/03/2024", 2),
	}

	v, idx, ok := matchKeywords(tokens, rule)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "2024-03-15", v.text)
}

func TestMatchKeywords_NoKeyword(t *testing.T) {
	rule := FieldRule{Keywords: []string{"total"}, Kind: KindAmount}
	tokens := []ocr.Token{tok("vat", 1), tok("7.00", 1)}

	_, idx, ok := matchKeywords(tokens, rule)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestWindowText_ClampsAtEnd(t *testing.T) {
	tokens := []ocr.Token{tok("a", 1), tok("b", 1)}
	assert.Equal(t, "a b", windowText(tokens, 0, 5))
	assert.Equal(t, "b", windowText(tokens, 1, 5))
}

func TestCollectCompany(t *testing.T) {
	tokens := []ocr.Token{
		tok("บริษัท", 1), tok("ทดสอบ", 1), tok("จำกัด", 1), tok("สาขา", 2),
	}

	name, ok := collectCompany(tokens, 0)
	require.True(t, ok)
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", name)
}

func TestCollectCompany_UnclosedSpanRejected(t *testing.T) {
	tokens := []ocr.Token{tok("บริษัท", 1), tok("ทดสอบ", 1), tok("สาขา", 2)}

	_, ok := collectCompany(tokens, 0)
	assert.False(t, ok)
}

func TestCollectAddress_FollowsAdjacentLines(t *testing.T) {
	tokens := []ocr.Token{
		tok("ที่อยู่", 1),
		tok("53", 1), tok("หมู่", 1), tok("2", 1),
		tok("บางกรวย", 2),
		tok("โทร", 4), // two lines down, out of span
	}

	addr, ok := collectAddress(tokens, 0)
	require.True(t, ok)
	assert.Equal(t, "53 หมู่ 2 บางกรวย", addr)
}

func TestCollectAddress_NothingAfterKeyword(t *testing.T) {
	tokens := []ocr.Token{tok("ที่อยู่", 1)}

	_, ok := collectAddress(tokens, 0)
	assert.False(t, ok)
}
