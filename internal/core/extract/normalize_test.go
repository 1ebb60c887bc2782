package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"thousands separator", "THB 1,250.00", "1250.00", true},
		{"plain integer", "450", "450", true},
		{"no separator with decimals", "1250.75", "1250.75", true},
		{"single fractional digit padded", "1234.5", "1234.50", true},
		{"large amount", "1,234,567.89", "1234567.89", true},
		{"embedded in text", "รวมเงิน 899.50 บาท", "899.50", true},
		{"no digits", "รวมเงิน", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NormalizeAmount(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, d.String())
			}
		})
	}
}

func TestNormalizeAmount_PadsSingleFractionalDigit(t *testing.T) {
	d, ok := NormalizeAmount("1234.5")
	require.True(t, ok)
	// one printed decimal means a dropped trailing zero, not a different scale
	assert.Equal(t, int32(-2), d.Exponent())
	assert.Equal(t, "1234.50", d.String())
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"buddhist era slash", "15/03/2567", "2024-03-15", true},
		{"gregorian day first", "15/03/2024", "2024-03-15", true},
		{"iso year first", "2024-03-15", "2024-03-15", true},
		{"buddhist era year first", "2567-03-15", "2024-03-15", true},
		{"dotted separators", "5.1.2567", "2024-01-05", true},
		{"two digit year", "15/03/24", "2024-03-15", true},
		{"thai month abbreviation", "15 มี.ค. 2567", "2024-03-15", true},
		{"thai month no trailing dot", "1 ม.ค 2568", "2025-01-01", true},
		{"english month", "15 Mar 2024", "2024-03-15", true},
		{"english month long form", "2 January 2024", "2024-01-02", true},
		{"embedded in text", "วันที่ 15/03/2567 เวลา 14:22", "2024-03-15", true},
		{"impossible day", "31/02/2024", "", false},
		{"impossible month", "15/13/2024", "", false},
		{"no date", "TOTAL 1,250.00", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso, ok := NormalizeDate(tt.raw)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, iso)
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		min, max int
		want     string
		ok       bool
	}{
		{"thirteen digit tax id", "0994000244843", 10, 15, "0994000244843", true},
		{"spaced digit run", "0 9940 0024 4843", 10, 15, "0994000244843", true},
		{"hyphenated run", "0994-0002-44843", 10, 15, "0994000244843", true},
		{"thirteen beats longer", "123456789012345 0994000244843", 10, 15, "0994000244843", true},
		{"independent numbers stay separate", "1234567890 0994000244843", 10, 15, "0994000244843", true},
		{"longest acceptable wins", "123456 12345678", 5, 10, "12345678", true},
		{"too short", "1234", 6, 18, "", false},
		{"too long", "12345678901234567890123", 6, 18, "", false},
		{"no digits", "TaxInv", 6, 18, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NormalizeID(tt.raw, tt.min, tt.max)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"digit prefix thai plate", "1กข 1234", "1กข1234", true},
		{"thai consonants first", "กข 1234", "กข1234", true},
		{"latin plate", "ab 123", "AB123", true},
		{"internal spaces stripped", "1 กข 1234", "1กข1234", true},
		{"no plate", "ทะเบียนรถ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plate, ok := NormalizePlate(tt.raw)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, plate)
		})
	}
}

func TestNormalizeGasType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want GasType
		ok   bool
	}{
		{"thai diesel", "ดีเซล", GasDiesel, true},
		{"thai gasohol", "แก๊สโซฮอล์ 95", GasGasohol, true},
		{"plain diesel", "Diesel", GasDiesel, true},
		{"e20", "E20", GasE20, true},
		{"e85 lowercase", "e85", GasE85, true},
		{"ngv", "NGV", GasNGV, true},
		{"biodiesel shadowed by diesel", "BioDiesel B7", GasDiesel, true},
		{"separator stripped", "GAS-OHOL", GasGasohol, true},
		{"unknown fuel", "premium 95", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := NormalizeGasType(tt.raw)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, g)
		})
	}
}

// HI DIESEL contains DIESEL, and DIESEL is scanned first, so the hi-diesel
// spelling resolves to plain diesel. The test pins the enum scan order.
func TestNormalizeGasType_HiDieselResolvesToDiesel(t *testing.T) {
	g, ok := NormalizeGasType("HI DIESEL S")
	require.True(t, ok)
	assert.Equal(t, GasDiesel, g)
}
