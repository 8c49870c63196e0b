package safenorm

import (
	"math/big"
	"reflect"
	"strings"
	"time"
)

// Event is the event-like shape recognised by WalkSource.
type Event interface {
	Type() string
	Target() any
	CurrentTarget() any
}

// CustomEvent is an Event that carries a detail payload.
type CustomEvent interface {
	Event
	Detail() any
}

// SyntheticEvent is a UI framework wrapper around a native event. Such values
// are never walked.
type SyntheticEvent interface {
	NativeEvent() any
	PreventDefault()
	StopPropagation()
}

// Element is a renderable element that can describe its position in a tree.
type Element interface {
	ElementPath() string
}

// StackTracer is implemented by errors that carry a textual stack.
type StackTracer interface {
	Stack() string
}

// EventLister is implemented by emitter-like values holding registered
// listeners. Under the key "domain" such values render as "[Domain]".
type EventLister interface {
	Events() any
}

// ToStringTagger overrides the tag reported by TypeTag.
type ToStringTagger interface {
	ToStringTag() string
}

var (
	errorIface       = reflect.TypeOf((*error)(nil)).Elem()
	customEventIface = reflect.TypeOf((*CustomEvent)(nil)).Elem()
	timeType         = reflect.TypeOf(time.Time{})
)

// IsError reports whether v is error-like.
func IsError(v any) bool {
	if isNilish(v) {
		return false
	}
	_, ok := v.(error)
	return ok
}

// IsEvent reports whether v is event-like.
func IsEvent(v any) bool {
	if isNilish(v) {
		return false
	}
	_, ok := v.(Event)
	return ok
}

// IsElement reports whether v is a renderable element.
func IsElement(v any) bool {
	if isNilish(v) {
		return false
	}
	_, ok := v.(Element)
	return ok
}

// IsSyntheticEvent reports whether v wraps a native UI event.
func IsSyntheticEvent(v any) bool {
	if isNilish(v) {
		return false
	}
	_, ok := v.(SyntheticEvent)
	return ok
}

// IsPlainObject reports whether v is a map keyed by strings.
func IsPlainObject(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

// IsPrimitive reports whether v has no children: nil, Undefined, strings,
// booleans, numbers and the Symbol and big.Int atoms.
func IsPrimitive(v any) bool {
	if v == nil || isAtom(v) {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsInstanceOf reports whether v's dynamic type is t, or implements t when t
// is an interface type.
func IsInstanceOf(v any, t reflect.Type) bool {
	if v == nil || t == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt == t
}

// TypeTag returns the structural type tag of v in "[object <Tag>]" form.
func TypeTag(v any) string {
	return "[object " + typeTagName(v) + "]"
}

func typeTagName(v any) string {
	if v == nil {
		return "Null"
	}
	if IsUndefined(v) {
		return "Undefined"
	}
	if tg, ok := v.(ToStringTagger); ok && !isNilPointer(v) {
		return tg.ToStringTag()
	}
	if _, ok := asSymbol(v); ok {
		return "Symbol"
	}
	if _, ok := v.(*big.Int); ok {
		if isNilPointer(v) {
			return "Null"
		}
		return "BigInt"
	}
	if _, ok := v.(big.Int); ok {
		return "BigInt"
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "Null"
		}
		if rv.Type().Implements(errorIface) {
			return "Error"
		}
		rv = rv.Elem()
	}
	if rv.Type().Implements(errorIface) {
		return "Error"
	}
	if rv.Type() == timeType {
		return "Date"
	}
	switch rv.Kind() {
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "Number"
	case reflect.Func:
		return "Function"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map, reflect.Struct:
		return "Object"
	}
	k := rv.Kind().String()
	return strings.ToUpper(k[:1]) + k[1:]
}

// isNilPointer reports a non-nil interface holding a nil pointer, map, slice,
// func or chan.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isNilish reports v == nil or a typed nil pointer.
func isNilish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
