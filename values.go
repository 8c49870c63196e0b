package safenorm

import "math/big"

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined marks an absent value. It is rendered as "[undefined]" by the
// walker and dropped from mappings by DropUndefinedKeys.
var Undefined = UndefinedType{}

// IsUndefined reports whether v is Undefined.
func IsUndefined(v any) bool {
	switch v.(type) {
	case UndefinedType, *UndefinedType:
		return true
	}
	return false
}

// Symbol is a symbolic atom. safenorm only ever renders symbols, it never
// compares them.
type Symbol struct {
	Description string
}

func (s Symbol) String() string { return "Symbol(" + s.Description + ")" }

// NewSymbol returns a pointer symbol so callers can rely on identity.
func NewSymbol(desc string) *Symbol { return &Symbol{Description: desc} }

// Raw holds encoded JSON produced by a json.Marshaler. The walker returns it
// unchanged; Normalize decodes it during the round trip.
type Raw []byte

// MarshalJSON implements json.Marshaler.
func (r Raw) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// asBigInt extracts an arbitrary-precision integer atom.
func asBigInt(v any) (*big.Int, bool) {
	switch b := v.(type) {
	case *big.Int:
		return b, b != nil
	case big.Int:
		return &b, true
	}
	return nil, false
}

// asSymbol extracts a symbolic atom.
func asSymbol(v any) (Symbol, bool) {
	switch s := v.(type) {
	case Symbol:
		return s, true
	case *Symbol:
		if s != nil {
			return *s, true
		}
	}
	return Symbol{}, false
}

// isAtom reports values that look composite to reflection but are treated as
// scalars throughout.
func isAtom(v any) bool {
	if _, ok := asBigInt(v); ok {
		return true
	}
	if _, ok := asSymbol(v); ok {
		return true
	}
	return IsUndefined(v)
}
