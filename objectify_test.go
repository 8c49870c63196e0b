package safenorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/safenorm"
)

func TestObjectify_Scalars(t *testing.T) {
	type label string
	cases := []struct {
		name  string
		in    any
		kind  safenorm.BoxKind
		inner any
	}{
		{"undefined", safenorm.Undefined, safenorm.BoxString, "undefined"},
		{"nil", nil, safenorm.BoxString, "null"},
		{"string", "s", safenorm.BoxString, "s"},
		{"named string", label("l"), safenorm.BoxString, label("l")},
		{"int", 3, safenorm.BoxNumber, 3},
		{"float", 1.5, safenorm.BoxNumber, 1.5},
		{"bool", true, safenorm.BoxBoolean, true},
		{"symbol", safenorm.Symbol{Description: "s"}, safenorm.BoxObject, safenorm.Symbol{Description: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			box, ok := safenorm.Objectify(tc.in).(*safenorm.Box)
			require.True(t, ok)
			assert.Equal(t, tc.kind, box.Kind)
			assert.Equal(t, tc.inner, box.Unbox())
		})
	}
}

func TestObjectify_BigIntString(t *testing.T) {
	box := safenorm.Objectify(bigInt("12345678901234567890")).(*safenorm.Box)
	assert.Equal(t, safenorm.BoxObject, box.Kind)
	assert.Equal(t, "12345678901234567890", box.String())
}

func TestObjectify_NonPrimitivesUnchanged(t *testing.T) {
	m := map[string]any{"a": 1}
	assert.Equal(t, m, safenorm.Objectify(m))
	p := &node{}
	assert.Same(t, p, safenorm.Objectify(p))
}

func TestBoxKind_String(t *testing.T) {
	assert.Equal(t, "Number", safenorm.BoxNumber.String())
	assert.Equal(t, "BoxKind(9)", safenorm.BoxKind(9).String())
}
