package safenorm

import "reflect"

const unknownField = "<unknown>"

// WalkSource returns the keyed view the walker descends into. Errors become
// {message, name, stack} and events {type, target, currentTarget[, detail]},
// each overlaid with the value's own properties, which may overwrite the
// synthesized fields. Any other value is returned as is.
func (n *Normalizer) WalkSource(value any) any {
	if IsError(value) {
		return errorSource(value.(error))
	}
	if IsEvent(value) {
		return n.eventSource(value.(Event))
	}
	return value
}

func errorSource(err error) map[string]any {
	src := map[string]any{
		"message": safeCall(err.Error),
		"name":    errorName(err),
		"stack":   Undefined,
	}
	if st, ok := err.(StackTracer); ok {
		src["stack"] = safeCall(st.Stack)
	}
	for _, e := range ownEntries(err) {
		src[e.key] = e.value
	}
	return src
}

func (n *Normalizer) eventSource(ev Event) map[string]any {
	src := map[string]any{
		"type": ev.Type(),
	}
	src["target"] = n.describeTarget(ev.Target)
	src["currentTarget"] = n.describeTarget(ev.CurrentTarget)
	if IsInstanceOf(ev, n.customEvent) {
		if ce, ok := ev.(CustomEvent); ok {
			src["detail"] = ce.Detail()
		}
	}
	for _, e := range ownEntries(ev) {
		src[e.key] = e.value
	}
	return src
}

// describeTarget renders an event target as an element path or a type tag.
// A panicking accessor yields "<unknown>".
func (n *Normalizer) describeTarget(get func() any) (out any) {
	defer func() {
		if recover() != nil {
			out = unknownField
		}
	}()
	t := get()
	if n.isElement(t) {
		return n.formatElement(t)
	}
	return TypeTag(t)
}

// errorName mirrors the name of the error's concrete type, pointer stripped.
func errorName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return "Error"
}

func safeCall(f func() string) (out any) {
	defer func() {
		if recover() != nil {
			out = unknownField
		}
	}()
	return f()
}
