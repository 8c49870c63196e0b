package safenorm_test

import (
	"errors"
	"math/big"
)

func namedFunc() {}

type greeter struct{}

func (greeter) Hello() {}

type node struct {
	Name string
	Next *node
}

type Base struct {
	ID int
}

type user struct {
	Base
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	secret string
	Skip   string `json:"-"`
	Alias  string `safenorm:"name=nick" json:"alias"`
	Tags   []string
}

// codedError has an own "message" property that overwrites the synthesized one.
type codedError struct {
	Code int
	Msg  string `json:"message"`
}

func (e *codedError) Error() string { return "coded: " + e.Msg }

type stackError struct{ msg string }

func (e stackError) Error() string { return e.msg }
func (e stackError) Stack() string { return "at main.go:10" }

type button struct{ id string }

func (b button) ElementPath() string { return "body > button#" + b.id }

type clickEvent struct {
	target  any
	current any
	Button  int
}

func (e clickEvent) Type() string       { return "click" }
func (e clickEvent) Target() any        { return e.target }
func (e clickEvent) CurrentTarget() any { return e.current }

type brokenEvent struct{}

func (brokenEvent) Type() string       { return "broken" }
func (brokenEvent) Target() any        { panic("target is detached") }
func (brokenEvent) CurrentTarget() any { return nil }

type detailEvent struct {
	clickEvent
	detail any
}

func (e detailEvent) Detail() any { return e.detail }

// typeOverrideEvent has an own "type" property that overwrites Type().
type typeOverrideEvent struct {
	clickEvent
	Kind string `json:"type"`
}

type synthetic struct{}

func (synthetic) NativeEvent() any { return nil }
func (synthetic) PreventDefault()  {}
func (synthetic) StopPropagation() {}

type mouseTag struct{}

func (mouseTag) ToStringTag() string { return "MouseEvent" }

type emitter struct{ listeners map[string]int }

func (e emitter) Events() any {
	if e.listeners == nil {
		return nil
	}
	return e.listeners
}

type failingMarshaler struct{}

func (failingMarshaler) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

type panickingMarshaler struct{}

func (panickingMarshaler) MarshalJSON() ([]byte, error) { panic("kaboom") }

type invalidMarshaler struct{}

func (invalidMarshaler) MarshalJSON() ([]byte, error) { return []byte("{not json"), nil }

type rawMarshaler struct{}

func (rawMarshaler) MarshalJSON() ([]byte, error) { return []byte(`{"custom":[1,2]}`), nil }

func bigInt(s string) *big.Int {
	b, _ := new(big.Int).SetString(s, 10)
	return b
}
