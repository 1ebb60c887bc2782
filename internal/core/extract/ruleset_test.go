package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Types() {
		rs := Lookup(name)
		require.NotNil(t, rs, name)
		assert.Equal(t, name, rs.Name)
	}

	assert.Equal(t, TypeGeneric, Lookup("").Name)
	assert.Equal(t, TypeGeneric, Lookup("no-such-layout").Name)
}

func TestRuleSets_RulesAreConsistent(t *testing.T) {
	known := map[Field]bool{}
	for _, f := range fieldOrder {
		known[f] = true
	}

	for _, name := range Types() {
		rs := Lookup(name)
		for f, rule := range rs.Rules {
			assert.True(t, known[f], "%s: unknown field %s", name, f)
			if rule.Kind == KindID {
				assert.Positive(t, rule.IDMin, "%s/%s: ID rule needs bounds", name, f)
				assert.GreaterOrEqual(t, rule.IDMax, rule.IDMin, "%s/%s", name, f)
			}
			if len(rule.Keywords) == 0 {
				assert.NotNil(t, rule.Pattern, "%s/%s: rule with no keywords needs a pattern", name, f)
			}
		}
	}
}
