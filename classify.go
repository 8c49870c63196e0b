package safenorm

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strings"
)

// Sentinel strings standing in for values that cannot be serialized directly.
const (
	NonSerializable       = "**non-serializable**"
	SentinelUndefined     = "[undefined]"
	SentinelNaN           = "[NaN]"
	SentinelCircular      = "[Circular ~]"
	SentinelObject        = "[Object]"
	SentinelArray         = "[Array]"
	SentinelGlobal        = "[Global]"
	SentinelWindow        = "[Window]"
	SentinelDocument      = "[Document]"
	SentinelDomain        = "[Domain]"
	SentinelDomainEmitter = "[DomainEmitter]"
	SentinelSynthetic     = "[SyntheticEvent]"
)

// Classify maps a single value to a passthrough primitive or a sentinel
// string. key is the mapping key value was found under ("" at the root).
// Composite values that need walking are returned unchanged.
func (n *Normalizer) Classify(value any, key string) any {
	if key == "domain" && hasEventList(value) {
		return SentinelDomain
	}
	if key == "domainEmitter" {
		return SentinelDomainEmitter
	}
	if probeMatches(n.env.Global, value) {
		return SentinelGlobal
	}
	if probeMatches(n.env.Window, value) {
		return SentinelWindow
	}
	if probeMatches(n.env.Document, value) {
		return SentinelDocument
	}
	if IsSyntheticEvent(value) {
		return SentinelSynthetic
	}

	if f, ok := floatValue(value); ok {
		if math.IsNaN(f) {
			return SentinelNaN
		}
		if math.IsInf(f, 0) {
			return nil
		}
	}

	if IsUndefined(value) {
		return SentinelUndefined
	}
	if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
		return "[Function: " + functionName(value) + "]"
	}
	if s, ok := asSymbol(value); ok {
		return "[" + s.String() + "]"
	}
	if b, ok := asBigInt(value); ok {
		return "[BigInt: " + b.String() + "]"
	}
	if value != nil {
		switch reflect.TypeOf(value).Kind() {
		case reflect.Complex64, reflect.Complex128:
			return "[Complex: " + fmt.Sprint(value) + "]"
		}
	}
	return value
}

func floatValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// functionName returns the bare name of the function held by v: package path,
// receiver wrapper and method value suffix stripped.
func functionName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// hasEventList reports emitter-like values: a map with a non-nil "_events"
// entry, or an EventLister with listeners.
func hasEventList(v any) bool {
	if isNilish(v) {
		return false
	}
	if el, ok := v.(EventLister); ok {
		return !isNilish(el.Events())
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return false
	}
	ev := rv.MapIndex(reflect.ValueOf("_events").Convert(rv.Type().Key()))
	if !ev.IsValid() {
		return false
	}
	inner := ev.Interface()
	return !isNilish(inner) && !IsUndefined(inner)
}

// probeMatches consults p; a missing or panicking probe never matches.
func probeMatches(p Probe, v any) (matched bool) {
	if p == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	singleton, ok := p()
	if !ok {
		return false
	}
	return sameIdentity(singleton, v)
}

// sameIdentity compares reference kinds by pointer and comparable values by
// ==. It never panics.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Func:
		return false
	}
	if !ra.Type().Comparable() {
		return false
	}
	defer func() { _ = recover() }()
	return a == b
}
