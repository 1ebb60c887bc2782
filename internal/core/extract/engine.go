package extract

import (
	"github.com/shopspring/decimal"

	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
)

// normValue carries one normalized candidate between a matcher and the
// record. Exactly one of text/dec/gas/flag is meaningful, selected by kind.
type normValue struct {
	kind Kind
	text string
	dec  decimal.Decimal
	gas  GasType
	flag bool
}

// Match records where a field's value was found, for debug annotation
type Match struct {
	Field   Field
	Source  string // "keyword" or "pattern"
	Keyword *ocr.Token
}

// Engine extracts a structured record from one OCR result using the rule
// set of a receipt layout. The engine itself is stateless and safe for
// concurrent use; all per-receipt state lives in the Record it returns.
type Engine struct {
	rules *RuleSet
}

// New builds an engine over an explicit rule set
func New(rules *RuleSet) *Engine {
	return &Engine{rules: rules}
}

// NewForType builds an engine for a named receipt layout, falling back to
// the generic rules for unknown names.
func NewForType(receiptType string) *Engine {
	return New(Lookup(receiptType))
}

// RuleSetName reports which layout the engine extracts with
func (e *Engine) RuleSetName() string {
	return e.rules.Name
}

// Extract runs the two matcher passes over the OCR result and returns the
// structured record plus the keyword anchors that produced each value.
//
// Fields are processed in a fixed order and each resolves independently: a
// keyword hit wins outright, the whole-text pattern only runs for fields the
// keyword pass left empty, and a field neither pass resolves stays null.
// Extraction never fails; an empty OCR result yields an all-null record.
func (e *Engine) Extract(res *ocr.Result) (*Record, []Match) {
	rec := NewRecord()
	matches := []Match{}

	for _, f := range fieldOrder {
		rule, ok := e.rules.Rules[f]
		if !ok {
			continue
		}

		if v, idx, ok := matchKeywords(res.Tokens, rule); ok {
			rec.apply(f, v)
			matches = append(matches, Match{Field: f, Source: "keyword", Keyword: &res.Tokens[idx]})
			continue
		}

		if rec.resolved(f) {
			continue
		}
		if v, ok := matchPattern(res.FullText, rule); ok {
			rec.apply(f, v)
			matches = append(matches, Match{Field: f, Source: "pattern"})
		}
	}
	return rec, matches
}

// apply stores a normalized value under its field
func (r *Record) apply(f Field, v normValue) {
	switch v.kind {
	case KindAmount:
		r.setDecimal(f, v.dec)
	case KindGasType:
		r.setGasType(v.gas)
	case KindMarker:
		if v.flag {
			r.setFlag(f)
		}
	default:
		r.setText(f, v.text)
	}
}
