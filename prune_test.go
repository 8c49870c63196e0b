package safenorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/safenorm"
)

func TestDropUndefinedKeys(t *testing.T) {
	in := map[string]any{
		"a": 1,
		"b": safenorm.Undefined,
		"c": map[string]any{
			"d": safenorm.Undefined,
			"e": []any{map[string]any{"f": &safenorm.Undefined, "g": "h"}, safenorm.Undefined},
		},
	}
	got := safenorm.DropUndefinedKeys(in)
	assert.Equal(t, map[string]any{
		"a": 1,
		"c": map[string]any{
			"e": []any{map[string]any{"g": "h"}, safenorm.Undefined},
		},
	}, got)

	// The input is left intact.
	assert.Contains(t, in, "b")
	assert.Contains(t, in["c"].(map[string]any), "d")
}

func TestDropUndefinedKeys_TypedContainers(t *testing.T) {
	typed := map[string]int{"a": 1}
	assert.Equal(t, typed, safenorm.DropUndefinedKeys(typed))

	nested := []map[string]any{{"x": safenorm.Undefined, "y": 2}}
	assert.Equal(t, []map[string]any{{"y": 2}}, safenorm.DropUndefinedKeys(nested))
}

func TestDropUndefinedKeys_OtherValuesUnchanged(t *testing.T) {
	assert.Equal(t, 3, safenorm.DropUndefinedKeys(3))
	assert.Equal(t, safenorm.Undefined, safenorm.DropUndefinedKeys(safenorm.Undefined))
	assert.Equal(t, node{Name: "n"}, safenorm.DropUndefinedKeys(node{Name: "n"}))

	var nilMap map[string]any
	assert.Nil(t, safenorm.DropUndefinedKeys(nilMap))
	assert.Nil(t, safenorm.DropUndefinedKeys[any](nil))
}
