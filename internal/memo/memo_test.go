package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_CheckAndRegister(t *testing.T) {
	s := New()
	m := map[string]any{}

	assert.False(t, s.CheckAndRegister(m))
	assert.True(t, s.CheckAndRegister(m))
	assert.Equal(t, 1, s.Len())

	s.Release(m)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.CheckAndRegister(m))
}

func TestStack_ValuesWithoutIdentityAreIgnored(t *testing.T) {
	s := New()
	for _, v := range []any{nil, 1, "s", struct{}{}, []int{}, (*int)(nil), map[string]int(nil)} {
		assert.False(t, s.CheckAndRegister(v))
		assert.False(t, s.CheckAndRegister(v))
	}
	assert.Equal(t, 0, s.Len())
}

func TestStack_SliceIdentityIncludesLength(t *testing.T) {
	s := New()
	backing := []int{1, 2, 3}

	assert.False(t, s.CheckAndRegister(backing))
	assert.False(t, s.CheckAndRegister(backing[:2]))
	assert.True(t, s.CheckAndRegister(backing[:3]))
}

func TestStack_PointerIdentityIncludesType(t *testing.T) {
	type wrapper struct{ First int }
	s := New()
	w := &wrapper{}

	assert.False(t, s.CheckAndRegister(w))
	assert.False(t, s.CheckAndRegister(&w.First))
	assert.True(t, s.CheckAndRegister(w))
}

func TestStack_ReleaseRemovesInnermost(t *testing.T) {
	s := New()
	a, b := &struct{ A int }{}, &struct{ B int }{}
	s.CheckAndRegister(a)
	s.CheckAndRegister(b)

	s.Release(a)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.CheckAndRegister(b))

	s.Release(&struct{ C int }{})
	assert.Equal(t, 1, s.Len())
}
