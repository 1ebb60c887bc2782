package extract

import (
	"strings"

	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
)

// Keyword pass: scan the word tokens for a rule keyword, then search the
// value in a short forward window of tokens. Proximity in reading order is
// the whole heuristic; no layout geometry beyond tesseract's line numbers.

const (
	defaultWindow      = 3
	companySpanLimit   = 20 // tokens scanned for the closing จำกัด
	addressLineGapStop = 1  // lines an address may advance per token
)

// matchKeywords runs the keyword pass for one field. It returns the
// normalized value and the index of the keyword token that anchored it.
// For AllowOverwrite rules the last keyword hit wins; otherwise the first.
func matchKeywords(tokens []ocr.Token, rule FieldRule) (normValue, int, bool) {
	var (
		best    normValue
		bestIdx = -1
	)
	for i := range tokens {
		word := strings.TrimSpace(tokens[i].Text)
		if word == "" || !hasKeyword(word, rule.Keywords) {
			continue
		}
		v, ok := valueNear(tokens, i, rule)
		if !ok {
			continue
		}
		if !rule.AllowOverwrite {
			return v, i, true
		}
		best = v
		bestIdx = i
	}
	if bestIdx < 0 {
		return normValue{}, -1, false
	}
	return best, bestIdx, true
}

func hasKeyword(word string, keywords []string) bool {
	lower := strings.ToLower(word)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// valueNear extracts a normalized value anchored at keyword token i
func valueNear(tokens []ocr.Token, i int, rule FieldRule) (normValue, bool) {
	switch rule.Kind {
	case KindAmount:
		if d, ok := NormalizeAmount(windowText(tokens, i, rule.window())); ok {
			return normValue{kind: KindAmount, dec: d}, true
		}
	case KindDate:
		if iso, ok := NormalizeDate(windowText(tokens, i, rule.window())); ok {
			return normValue{kind: KindDate, text: iso}, true
		}
	case KindID:
		if id, ok := NormalizeID(windowText(tokens, i, rule.window()), rule.IDMin, rule.IDMax); ok {
			return normValue{kind: KindID, text: id}, true
		}
	case KindPlate:
		if plate, ok := NormalizePlate(windowText(tokens, i, rule.window())); ok {
			return normValue{kind: KindPlate, text: plate}, true
		}
	case KindGasType:
		if g, ok := NormalizeGasType(windowText(tokens, i, rule.window())); ok {
			return normValue{kind: KindGasType, gas: g}, true
		}
	case KindBrand:
		raw := strings.TrimSpace(tokens[i].Text)
		if next := i + 1; next < len(tokens) && strings.TrimSpace(tokens[next].Text) != "" {
			raw += " " + strings.TrimSpace(tokens[next].Text)
		}
		if brand, ok := canonicalBrand(raw); ok {
			return normValue{kind: KindBrand, text: brand}, true
		}
	case KindCompany:
		// Brand tokens short-circuit to the canonical label; station
		// receipts often carry no registered company line at all.
		raw := strings.TrimSpace(tokens[i].Text)
		if next := i + 1; next < len(tokens) && strings.TrimSpace(tokens[next].Text) != "" {
			raw += " " + strings.TrimSpace(tokens[next].Text)
		}
		if brand, ok := canonicalBrand(raw); ok {
			return normValue{kind: KindCompany, text: brand}, true
		}
		if name, ok := collectCompany(tokens, i); ok {
			return normValue{kind: KindCompany, text: name}, true
		}
	case KindAddress:
		if addr, ok := collectAddress(tokens, i); ok {
			return normValue{kind: KindAddress, text: addr}, true
		}
	case KindMarker:
		return normValue{kind: KindMarker, flag: true}, true
	}
	return normValue{}, false
}

func (r FieldRule) window() int {
	if r.Window <= 0 {
		return defaultWindow
	}
	return r.Window
}

// windowText joins the keyword token and the following tokens of its window
func windowText(tokens []ocr.Token, i, window int) string {
	end := i + window
	if end > len(tokens) {
		end = len(tokens)
	}
	parts := make([]string, 0, window)
	for _, t := range tokens[i:end] {
		if s := strings.TrimSpace(t.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// collectCompany gathers the บริษัท … จำกัด span starting at token i. The
// span is bounded so a receipt missing the closing จำกัด cannot swallow the
// rest of the token stream.
func collectCompany(tokens []ocr.Token, i int) (string, bool) {
	end := i + companySpanLimit
	if end > len(tokens) {
		end = len(tokens)
	}
	parts := []string{}
	closed := false
	for k := i; k < end; k++ {
		s := strings.TrimSpace(tokens[k].Text)
		if s == "" {
			continue
		}
		parts = append(parts, s)
		if strings.Contains(s, "กัด") && k > i {
			closed = true
			break
		}
	}
	if !closed {
		return "", false
	}
	return canonicalCompany(strings.Join(parts, " ")), true
}

// collectAddress gathers tokens after the keyword on the same printed line,
// following at most one line break at a time. A gap of more than one line
// ends the span.
func collectAddress(tokens []ocr.Token, i int) (string, bool) {
	line := tokens[i].LineNum
	parts := []string{}
	for k := i + 1; k < len(tokens); k++ {
		s := strings.TrimSpace(tokens[k].Text)
		if s == "" {
			continue
		}
		if tokens[k].LineNum == line {
			parts = append(parts, s)
			continue
		}
		if tokens[k].LineNum == line+addressLineGapStop {
			parts = append(parts, s)
			line = tokens[k].LineNum
			continue
		}
		break
	}
	if len(parts) == 0 {
		return "", false
	}
	addr := stripAddressTail(strings.Join(parts, " "))
	if addr == "" {
		return "", false
	}
	return addr, true
}
