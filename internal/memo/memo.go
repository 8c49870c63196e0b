// Package memo tracks the composite values on the current walk path so the
// walker can detect reference cycles.
package memo

import "reflect"

// identity is what makes two references the same composite. Type is part of
// it so a struct pointer and a pointer to its first field stay distinct.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// Stack is the active path of one walk. It is not safe for concurrent use and
// must not be shared between walks.
type Stack struct {
	path []identity
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// CheckAndRegister reports whether v is already on the active path. If it is
// not, v is pushed. Values without identity are never recorded.
func (s *Stack) CheckAndRegister(v any) bool {
	id, ok := identityOf(v)
	if !ok {
		return false
	}
	for _, p := range s.path {
		if p == id {
			return true
		}
	}
	s.path = append(s.path, id)
	return false
}

// Release removes v from the active path.
func (s *Stack) Release(v any) {
	id, ok := identityOf(v)
	if !ok {
		return
	}
	for i := len(s.path) - 1; i >= 0; i-- {
		if s.path[i] == id {
			s.path = append(s.path[:i], s.path[i+1:]...)
			return
		}
	}
}

// Len returns the length of the active path.
func (s *Stack) Len() int { return len(s.path) }

func identityOf(v any) (identity, bool) {
	if v == nil {
		return identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	}
	return identity{}, false
}
