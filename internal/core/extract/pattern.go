package extract

import (
	"regexp"
	"strings"
)

// Pattern pass: whole-text regex fallback for fields the keyword pass left
// unresolved. One match per field, first match wins.

var (
	addressTailRe = regexp.MustCompile(`(?i)\d{5}\s*(?:โทร|โทรสาร|tel|fax|เว็บไซต์|web|email|เลขประจำตัวผู้เสียภาษี|tax ?id)?[\s\S]*$`)
	respaceRe     = regexp.MustCompile(`\s+`)
)

// matchPattern runs the regex fallback for one field. A nil Pattern means
// the layout has no usable whole-text anchor for that field.
func matchPattern(fullText string, rule FieldRule) (normValue, bool) {
	if rule.Pattern == nil {
		return normValue{}, false
	}
	m := rule.Pattern.FindStringSubmatch(fullText)
	if m == nil {
		return normValue{}, false
	}
	raw := m[0]
	if rule.Group > 0 && rule.Group < len(m) {
		raw = m[rule.Group]
	}
	raw = strings.TrimSpace(raw)

	switch rule.Kind {
	case KindAmount:
		if d, ok := NormalizeAmount(raw); ok {
			return normValue{kind: KindAmount, dec: d}, true
		}
	case KindDate:
		if iso, ok := NormalizeDate(raw); ok {
			return normValue{kind: KindDate, text: iso}, true
		}
	case KindID:
		if id, ok := NormalizeID(raw, rule.IDMin, rule.IDMax); ok {
			return normValue{kind: KindID, text: id}, true
		}
	case KindPlate:
		if plate, ok := NormalizePlate(raw); ok {
			return normValue{kind: KindPlate, text: plate}, true
		}
	case KindGasType:
		if g, ok := NormalizeGasType(raw); ok {
			return normValue{kind: KindGasType, gas: g}, true
		}
	case KindBrand:
		if brand, ok := canonicalBrand(raw); ok {
			return normValue{kind: KindBrand, text: brand}, true
		}
	case KindCompany:
		if raw != "" {
			return normValue{kind: KindCompany, text: canonicalCompany(raw)}, true
		}
	case KindAddress:
		if addr := stripAddressTail(raw); addr != "" {
			return normValue{kind: KindAddress, text: addr}, true
		}
	case KindMarker:
		return normValue{kind: KindMarker, flag: true}, true
	case KindText:
		if raw != "" {
			return normValue{kind: KindText, text: raw}, true
		}
	}
	return normValue{}, false
}

// canonicalBrand maps raw brand text onto the display names used across
// receipts. The station co-brand strings are resolved before the plain
// provider names so "PTTstation | KBank" does not collapse to "PTT".
func canonicalBrand(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "pttstation") && strings.Contains(lower, "kbank"):
		return "PTT Station | KBank", true
	case strings.Contains(lower, "bangchak") && (strings.Contains(lower, "k-bank") || strings.Contains(lower, "kbank")):
		return "Bangchak K-Bank", true
	case strings.Contains(lower, "ptt") || strings.Contains(lower, "ปตท"):
		return "PTT", true
	case strings.Contains(lower, "bangchak") || strings.Contains(lower, "บางจาก"):
		return "Bangchak", true
	case strings.Contains(lower, "shell"):
		return "Shell", true
	case strings.Contains(lower, "caltex"):
		return "Caltex", true
	case strings.Contains(lower, "esso"):
		return "Esso", true
	}
	return "", false
}

// canonicalCompany normalizes a บริษัท … จำกัด span to single spacing with
// the legal prefix and suffix set off from the core name.
func canonicalCompany(raw string) string {
	name := respaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if strings.Contains(name, "สยามยามาโมโต") {
		return "บริษัท สยามยามาโมโต จำกัด"
	}
	core := name
	if strings.HasPrefix(core, "บริษัท") {
		core = strings.TrimPrefix(core, "บริษัท")
		for _, suffix := range []string{"จำกัด", "จํากัด", "กัด"} {
			if strings.HasSuffix(core, suffix) {
				core = strings.TrimSuffix(core, suffix)
				return "บริษัท " + strings.TrimSpace(core) + " จำกัด"
			}
		}
	}
	return name
}

// stripAddressTail removes the postal code and trailing contact boilerplate
// from a collected address span.
func stripAddressTail(addr string) string {
	addr = addressTailRe.ReplaceAllString(addr, "")
	return strings.TrimSpace(respaceRe.ReplaceAllString(addr, " "))
}
