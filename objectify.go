package safenorm

import (
	"fmt"
	"strconv"
)

// BoxKind is the wrapper type of a Box.
type BoxKind int

const (
	BoxString BoxKind = iota
	BoxNumber
	BoxBoolean
	BoxObject // generic wrapper around a Symbol or big.Int atom
)

func (k BoxKind) String() string {
	switch k {
	case BoxString:
		return "String"
	case BoxNumber:
		return "Number"
	case BoxBoolean:
		return "Boolean"
	case BoxObject:
		return "Object"
	}
	return "BoxKind(" + strconv.Itoa(int(k)) + ")"
}

// Box is an object-typed container holding a primitive scalar.
type Box struct {
	Kind  BoxKind
	value any
}

// Unbox returns the wrapped scalar.
func (b *Box) Unbox() any { return b.value }

// String returns the textual form of the wrapped scalar.
func (b *Box) String() string { return fmt.Sprint(b.value) }

// Objectify ensures v is an object. Undefined and nil become string boxes of
// "undefined" and "null", symbols and big integers a generic object box, other
// scalars a box of their matching kind. Non-primitives are returned unchanged.
func Objectify(v any) any {
	switch {
	case IsUndefined(v):
		return &Box{Kind: BoxString, value: "undefined"}
	case v == nil:
		return &Box{Kind: BoxString, value: "null"}
	case isAtom(v):
		return &Box{Kind: BoxObject, value: v}
	case IsPrimitive(v):
		return &Box{Kind: boxKindOf(v), value: v}
	}
	return v
}

// boxKindOf picks the wrapper of a scalar, named types included.
func boxKindOf(v any) BoxKind {
	switch TypeTag(v) {
	case "[object String]":
		return BoxString
	case "[object Boolean]":
		return BoxBoolean
	}
	return BoxNumber
}
