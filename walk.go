package safenorm

import (
	"fmt"

	"github.com/reoring/safenorm/internal/memo"
)

// jsonMarshaler is the custom JSON conversion hook honoured by the walker.
type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

type walker struct {
	n    *Normalizer
	memo *memo.Stack
	path pathRef
}

// Walk converts value into a finite, acyclic tree. key is the mapping key
// value was found under; depth is the remaining budget (Unlimited for none).
// Values implementing json.Marshaler are returned as Raw without descent.
// The only error is an Issues value from a failing or panicking marshaler.
func (n *Normalizer) Walk(key string, value any, depth int) (any, error) {
	w := &walker{n: n, memo: memo.New()}
	return w.walk(key, value, depth)
}

func (w *walker) walk(key string, value any, depth int) (any, error) {
	value = resolve(value)

	// Out of budget: serialize whatever is left.
	if depth == 0 {
		return w.n.serializeValue(value), nil
	}

	if m, ok := value.(jsonMarshaler); ok && !isAtom(value) {
		return w.callMarshaler(m)
	}

	normalized := w.n.Classify(value, key)
	if IsPrimitive(normalized) {
		return normalized, nil
	}

	source := w.n.WalkSource(value)
	seq := isSequence(source)

	if w.memo.CheckAndRegister(value) {
		return SentinelCircular, nil
	}

	entries := ownEntries(source)
	var acc any
	if seq {
		out := make([]any, len(entries))
		for i, e := range entries {
			child, err := w.child(e, depth)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		acc = out
	} else {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			child, err := w.child(e, depth)
			if err != nil {
				return nil, err
			}
			out[e.key] = child
		}
		acc = out
	}

	w.memo.Release(value)
	return acc, nil
}

func (w *walker) child(e entry, depth int) (any, error) {
	w.path.push(e.key)
	defer w.path.pop()
	return w.walk(e.key, e.value, depth-1)
}

func (w *walker) callMarshaler(m jsonMarshaler) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, newIssue(w.path.Pointer(), CodePanic, fmt.Errorf("MarshalJSON panicked: %v", r))
		}
	}()
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, newIssue(w.path.Pointer(), CodeMarshalerFailed, err)
	}
	return append(Raw(nil), b...), nil
}

// serializeValue is the coarse classification used once the depth budget is
// spent: strings pass through, plain mappings and sequences collapse to
// "[Object]" and "[Array]", anything else is classified or tagged.
func (n *Normalizer) serializeValue(value any) any {
	if s, ok := value.(string); ok {
		return s
	}
	tag := TypeTag(value)
	switch tag {
	case "[object Object]":
		return SentinelObject
	case "[object Array]":
		return SentinelArray
	}
	normalized := n.Classify(value, "")
	if IsPrimitive(normalized) {
		return normalized
	}
	return tag
}
