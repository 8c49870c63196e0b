package safenorm

import "reflect"

// DropUndefinedKeys returns a copy of val without mapping entries whose value
// is Undefined. It recurses through string-keyed maps and slices; sequence
// elements are never dropped. There is no cycle guard, so a map that contains
// itself recurses without bound.
func DropUndefinedKeys[T any](val T) T {
	out, ok := dropUndefined(any(val)).(T)
	if !ok {
		return val
	}
	return out
}

func dropUndefined(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case IsPlainObject(v):
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev := iter.Value()
			if IsUndefined(ev.Interface()) {
				continue
			}
			out.SetMapIndex(iter.Key(), prunedValue(ev))
		}
		return out.Interface()
	case rv.Kind() == reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(prunedValue(rv.Index(i)))
		}
		return out.Interface()
	}
	return v
}

// prunedValue prunes ev and returns a value assignable back into ev's slot.
func prunedValue(ev reflect.Value) reflect.Value {
	if ev.Kind() == reflect.Interface && ev.IsNil() {
		return ev
	}
	pv := reflect.ValueOf(dropUndefined(ev.Interface()))
	if !pv.IsValid() {
		return reflect.Zero(ev.Type())
	}
	if !pv.Type().AssignableTo(ev.Type()) {
		return ev
	}
	return pv
}
