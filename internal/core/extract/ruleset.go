package extract

import "regexp"

// Kind selects the normalizer and match strategy a rule uses
type Kind int

const (
	KindText Kind = iota
	KindAmount
	KindDate
	KindID
	KindPlate
	KindGasType
	KindCompany // greedy บริษัท…จำกัด span collection
	KindAddress // multi-line span collection
	KindBrand   // canonical fuel-brand name
	KindMarker  // boolean presence flag
)

// FieldRule configures extraction for one field under one receipt layout.
//
// Keywords drive the token-proximity pass: when a token contains a keyword,
// the value is searched in the next Window tokens. Pattern drives the
// whole-text fallback; a nil Pattern disables the fallback for that field,
// which is a deliberate per-layout state, not a missing rule.
type FieldRule struct {
	Keywords       []string
	Window         int
	Pattern        *regexp.Regexp
	Group          int // submatch index to take from Pattern, 0 = whole match
	Kind           Kind
	IDMin, IDMax   int
	AllowOverwrite bool // later keyword hits replace earlier values (address spans)
}

// RuleSet binds a receipt layout to its per-field rules. Fields absent from
// Rules are simply never extracted for that layout.
type RuleSet struct {
	Name  string
	Rules map[Field]FieldRule
}

// Receipt layout identifiers accepted by the API
const (
	TypePTTKbank          = "ptt-kbank"
	TypeA5                = "a5"
	TypeBangchakKbank     = "bangchak-kbank"
	TypeBangchakKrungthai = "bangchak-krungthai"
	TypeGeneric           = "generic"
)

var registry = map[string]*RuleSet{
	TypePTTKbank:          pttKbankRules,
	TypeA5:                a5Rules,
	TypeBangchakKbank:     bangchakKbankRules,
	TypeBangchakKrungthai: bangchakKrungthaiRules,
	TypeGeneric:           genericRules,
}

// Lookup resolves a receipt-type name to its rule set, falling back to the
// generic layout for unknown or empty names.
func Lookup(receiptType string) *RuleSet {
	if rs, ok := registry[receiptType]; ok {
		return rs
	}
	return genericRules
}

// Types lists the known receipt layout names
func Types() []string {
	return []string{TypePTTKbank, TypeA5, TypeBangchakKbank, TypeBangchakKrungthai, TypeGeneric}
}
