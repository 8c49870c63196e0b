package safenorm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/safenorm"
)

func TestExtractExceptionKeysForMessage(t *testing.T) {
	foo := map[string]any{"foo": 1, "bar": 2, "baz": 3}
	cases := []struct {
		name string
		in   any
		max  int
		want string
	}{
		{"all keys fit", foo, 40, "bar, baz, foo"},
		{"prefix fits", foo, 10, "bar, baz"},
		{"first key exactly fills budget", foo, 3, "bar"},
		{"first key is cut", foo, 2, "ba..."},
		{"long single key", map[string]any{"aaaaa": 1}, 3, "aaa..."},
		{"default budget", foo, 0, "bar, baz, foo"},
		{"no keys", map[string]any{}, 40, safenorm.NoKeys},
		{"nil", nil, 40, safenorm.NoKeys},
		{"scalar", "abc", 40, safenorm.NoKeys},
		{"error", errors.New("x"), 40, "message, name, stack"},
		{"sequence", []string{"x", "y"}, 40, "0, 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, safenorm.ExtractExceptionKeysForMessage(tc.in, tc.max))
		})
	}
}

func TestExtractExceptionKeysForMessage_CountsRunes(t *testing.T) {
	in := map[string]any{"éé": 1, "ü": 2}
	assert.Equal(t, "éé, ü", safenorm.ExtractExceptionKeysForMessage(in, 5))
	assert.Equal(t, "éé", safenorm.ExtractExceptionKeysForMessage(in, 4))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", safenorm.Truncate("abc", 3))
	assert.Equal(t, "ab...", safenorm.Truncate("abc", 2))
	assert.Equal(t, "abc", safenorm.Truncate("abc", 0))
	assert.Equal(t, "hé...", safenorm.Truncate("héllo", 2))
}
