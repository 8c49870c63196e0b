package safenorm

import (
	"reflect"

	"go.uber.org/zap"
)

// NumberMode dictates how numbers are decoded by the Normalize round trip.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // JSON numbers as float64 (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number.
)

// Probe reports a host environment singleton. ok is false when the host has
// no such singleton.
type Probe func() (v any, ok bool)

// Environment groups the singleton probes consulted by Classify. Nil probes
// never match.
type Environment struct {
	Global   Probe
	Window   Probe
	Document Probe
}

// StaticProbe returns a Probe that always reports v.
func StaticProbe(v any) Probe {
	return func() (any, bool) { return v, true }
}

// ElementFormatter renders the structural path of a renderable element.
type ElementFormatter func(el any) string

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithEnvironment injects the host singleton probes.
func WithEnvironment(env Environment) Option {
	return func(n *Normalizer) { n.env = env }
}

// WithElementFormatter replaces the element predicate and path formatter used
// for event targets. Nil arguments keep the defaults.
func WithElementFormatter(isElement func(any) bool, format ElementFormatter) Option {
	return func(n *Normalizer) {
		if isElement != nil {
			n.isElement = isElement
		}
		if format != nil {
			n.formatElement = format
		}
	}
}

// WithCustomEventType sets the type whose instances get their Detail copied
// by WalkSource. Interface types match implementers.
func WithCustomEventType(t reflect.Type) Option {
	return func(n *Normalizer) {
		if t != nil {
			n.customEvent = t
		}
	}
}

// WithJSONDriver pins a driver for this Normalizer instead of the global one.
func WithJSONDriver(d JSONDriver) Option {
	return func(n *Normalizer) { n.driver = d }
}

// WithNumberMode selects how numbers decode after the round trip.
func WithNumberMode(m NumberMode) Option {
	return func(n *Normalizer) { n.numberMode = m }
}

// WithLogger sets the logger receiving debug entries for degraded values.
func WithLogger(l *zap.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

func defaultElementPath(el any) string {
	if e, ok := el.(Element); ok {
		return e.ElementPath()
	}
	return TypeTag(el)
}
