// Package safenorm converts arbitrary Go values into finite, acyclic,
// JSON-encodable trees suitable for shipping to a remote collector.
//
// It provides:
//
// - Walk: a depth-bounded, cycle-safe traversal that renders values JSON
// cannot carry (Undefined, NaN, functions, symbols, big integers, host
// singletons) as sentinel strings such as "[undefined]" or "[Circular ~]"
// - Normalize / NormalizeToSize: a full walk plus a JSON round trip, retried at
// lower depths until the encoding fits a byte budget; they never panic and
// degrade to "**non-serializable**"
// - WalkSource: keyed views of error-like and event-like values
// - ExtractExceptionKeysForMessage, DropUndefinedKeys and Objectify helpers for
// error reporting pipelines
//
// Design policy:
// - Keep the public API in the root package; put detailed implementations under internal/.
// - Shapes (errors, events, elements, synthetic events) are Go interfaces with
// independent predicates; host singletons are injected Probes.
// - The JSON codec is pluggable through JSONDriver (go-json by default,
// encoding/json under driver/stdjson).
//
// Typical usage:
//
//	n := safenorm.New(safenorm.WithLogger(logger))
//	payload := n.NormalizeToSize(extra, safenorm.DefaultDepth, safenorm.DefaultMaxSize)
//	msg := "Non-error exception captured with keys: " +
//		safenorm.ExtractExceptionKeysForMessage(exc, safenorm.DefaultMaxKeysLength)
package safenorm
