package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Normalizers turn raw matched text into canonical typed values. They never
// error: a candidate that cannot be normalized reports ok=false and the
// matcher moves on to the next candidate.

var (
	amountRe = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d{1,2})?`)

	dmyRe      = regexp.MustCompile(`(\d{1,2})\s*[/\-.]\s*(\d{1,2})\s*[/\-.]\s*(\d{2,4})`)
	ymdRe      = regexp.MustCompile(`(\d{4})\s*[/\-.]\s*(\d{1,2})\s*[/\-.]\s*(\d{1,2})`)
	thMonthRe  = regexp.MustCompile(`(\d{1,2})\s*(ม\.ค\.?|ก\.พ\.?|มี\.ค\.?|เม\.ย\.?|พ\.ค\.?|มิ\.ย\.?|ก\.ค\.?|ส\.ค\.?|ก\.ย\.?|ต\.ค\.?|พ\.ย\.?|ธ\.ค\.?)\s*(\d{2,4})`)
	engMonthRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*(\d{2,4})`)

	idRunRe    = regexp.MustCompile(`\d[\d\s\-]*\d|\d`)
	idCleanRe  = regexp.MustCompile(`[\s\-]`)
	nonPlateRe = regexp.MustCompile(`[^0-9A-Za-zก-ฮ]`)

	plateRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}\s*[ก-ฮ]{1,2}\s*\d{3,4}`),
		regexp.MustCompile(`[ก-ฮ]{1,2}\s*\d{1,4}`),
		regexp.MustCompile(`[A-Za-z]{1,3}\s*\d{1,4}`),
	}
)

var thMonths = map[string]int{
	"ม.ค": 1, "ก.พ": 2, "มี.ค": 3, "เม.ย": 4, "พ.ค": 5, "มิ.ย": 6,
	"ก.ค": 7, "ส.ค": 8, "ก.ย": 9, "ต.ค": 10, "พ.ย": 11, "ธ.ค": 12,
}

var engMonths = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeAmount extracts the first monetary number from raw text. Commas
// are thousands separators, a single fractional digit is padded to two.
func NormalizeAmount(raw string) (decimal.Decimal, bool) {
	m := amountRe.FindString(raw)
	if m == "" {
		return decimal.Decimal{}, false
	}
	cleaned := strings.ReplaceAll(m, ",", "")
	if i := strings.IndexByte(cleaned, '.'); i >= 0 && len(cleaned)-i-1 == 1 {
		cleaned += "0"
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// NormalizeDate parses the first recognizable date in raw and returns it in
// ISO YYYY-MM-DD form. Buddhist Era years are converted by subtracting 543
// when the four-digit year is implausibly far in the future. Day/month order
// is day-first, as printed on Thai receipts.
func NormalizeDate(raw string) (string, bool) {
	// Year-first before day-first: a day-first scan would otherwise latch
	// onto the tail of a four-digit year.
	if m := ymdRe.FindStringSubmatch(raw); m != nil {
		if iso, ok := buildDate(m[1], m[2], m[3]); ok {
			return iso, true
		}
	}
	if m := dmyRe.FindStringSubmatch(raw); m != nil {
		if iso, ok := buildDate(m[3], m[2], m[1]); ok {
			return iso, true
		}
	}
	if m := thMonthRe.FindStringSubmatch(raw); m != nil {
		key := strings.TrimSuffix(m[2], ".")
		if mon, found := thMonths[key]; found {
			if iso, ok := buildDate(m[3], strconv.Itoa(mon), m[1]); ok {
				return iso, true
			}
		}
	}
	if m := engMonthRe.FindStringSubmatch(raw); m != nil {
		if mon, found := engMonths[strings.ToLower(m[2])]; found {
			if iso, ok := buildDate(m[3], strconv.Itoa(mon), m[1]); ok {
				return iso, true
			}
		}
	}
	return "", false
}

func buildDate(yearStr, monthStr, dayStr string) (string, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	year = normalizeYear(year)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// normalizeYear expands two-digit years against a current-year pivot and
// converts Buddhist Era to Gregorian. BE years land ~543 ahead of the
// Gregorian calendar, far beyond any plausible receipt date.
func normalizeYear(year int) int {
	now := time.Now().Year()
	if year < 100 {
		year += 2000
		if year > now {
			year -= 100
		}
	}
	if year > now+50 {
		year -= 543
	}
	return year
}

// NormalizeID extracts a digit run of length [min,max] from raw. A run may
// span spaces and hyphens, since IDs are often printed in groups
// ("0 9940 0024 4843"), but each whitespace-delimited piece is scored as a
// candidate of its own so two independent numbers on one line never merge
// into a single over-long run. A candidate of exactly 13 digits wins
// outright (Thai tax IDs are 13 digits); otherwise the longest acceptable
// candidate wins.
func NormalizeID(raw string, min, max int) (string, bool) {
	runs := idRunRe.FindAllString(raw, -1)
	for _, field := range strings.Fields(raw) {
		runs = append(runs, idRunRe.FindAllString(field, -1)...)
	}

	var best string
	for _, run := range runs {
		digits := idCleanRe.ReplaceAllString(run, "")
		if len(digits) < min || len(digits) > max {
			continue
		}
		if len(digits) == 13 {
			return digits, true
		}
		if len(digits) > len(best) {
			best = digits
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// NormalizePlate extracts a Thai or latin license-plate fragment and strips
// separators. Thai plates are one or two Thai consonants with up to four
// digits, with the digit block sometimes printed first.
func NormalizePlate(raw string) (string, bool) {
	for _, re := range plateRes {
		if m := re.FindString(raw); m != "" {
			plate := nonPlateRe.ReplaceAllString(m, "")
			if plate == "" {
				continue
			}
			return strings.ToUpper(plate), true
		}
	}
	return "", false
}

// NormalizeGasType maps raw fuel-type text onto the closed GasType set.
// Matching is containment over the uppercased, separator-stripped candidate;
// Thai spellings are resolved before the enum scan.
func NormalizeGasType(raw string) (GasType, bool) {
	if strings.Contains(raw, "ดีเซล") {
		return GasDiesel, true
	}
	if strings.Contains(raw, "แก๊สโซฮอล") || strings.Contains(raw, "โซฮอล") {
		return GasGasohol, true
	}
	cand := strings.ToUpper(raw)
	cand = strings.ReplaceAll(cand, " ", "")
	cand = strings.ReplaceAll(cand, "-", "")
	for _, g := range gasTypes {
		key := strings.ReplaceAll(string(g), " ", "")
		if strings.Contains(cand, key) {
			return g, true
		}
	}
	return "", false
}
