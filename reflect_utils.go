package safenorm

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ResolveStructKey resolves the external key of a struct field.
// Priority: safenorm:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	name, _ := tagName(sf)
	if name == "" {
		return sf.Name
	}
	return name
}

// tagName returns the key named by the field's tags, "-" for a skipped field,
// or "" when no tag names it. tagged reports an explicit name.
func tagName(sf reflect.StructField) (name string, tagged bool) {
	if gt := sf.Tag.Get("safenorm"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if p == "-" {
				return "-", false
			}
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name="), true
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-", false
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		return jt, jt != ""
	}
	return "", false
}

// entry is one own-enumerable property of a composite.
type entry struct {
	key   string
	value any
}

// ownEntries lists the own-enumerable properties of v: sequence indexes,
// map entries sorted by key, and exported struct fields in declaration order.
// Everything else has none.
//
// Distinct map keys that render to the same string (1 and "1") collapse into
// one entry: a string key wins, otherwise the key whose type name sorts first.
func ownEntries(v any) []entry {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]entry, rv.Len())
		for i := range out {
			out[i] = entry{key: strconv.Itoa(i), value: rv.Index(i).Interface()}
		}
		return out
	case reflect.Map:
		return mapEntries(rv)
	case reflect.Struct:
		return structEntries(rv)
	}
	return nil
}

func mapEntries(rv reflect.Value) []entry {
	type keyed struct {
		entry
		rank int
		typ  string
	}
	all := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		rank := 1
		if k.Kind() == reflect.String {
			rank = 0
		}
		all = append(all, keyed{
			entry: entry{key: mapKeyString(k), value: iter.Value().Interface()},
			rank:  rank,
			typ:   k.Type().String(),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.key != b.key {
			return a.key < b.key
		}
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.typ < b.typ
	})
	out := make([]entry, 0, len(all))
	for i, e := range all {
		if i > 0 && e.key == all[i-1].key {
			continue
		}
		out = append(out, e.entry)
	}
	return out
}

// field is an exported key of a struct type and the index path reaching it.
type field struct {
	key    string
	index  []int
	tagged bool
}

var fieldCache sync.Map // map[reflect.Type][]field

func structEntries(rv reflect.Value) []entry {
	fields := structFields(rv.Type())
	out := make([]entry, 0, len(fields))
	for _, f := range fields {
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil || !fv.CanInterface() {
			// nil embedded pointer or unreadable field
			continue
		}
		out = append(out, entry{key: f.key, value: fv.Interface()})
	}
	return out
}

// structFields lists the keys of t with embedded structs flattened. A name
// claimed at several depths goes to the shallowest field; ties at that depth
// go to the only tagged field, or drop the name.
func structFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}

	type level struct {
		typ   reflect.Type
		index []int
	}
	var all []field
	visited := map[reflect.Type]bool{}
	next := []level{{typ: t}}
	for len(next) > 0 {
		current := next
		next = nil
		seen := map[reflect.Type]bool{}
		for _, lv := range current {
			if visited[lv.typ] {
				continue
			}
			seen[lv.typ] = true
			for i := 0; i < lv.typ.NumField(); i++ {
				sf := lv.typ.Field(i)
				index := append(append([]int(nil), lv.index...), i)
				name, tagged := tagName(sf)
				if name == "-" {
					continue
				}
				if sf.Anonymous {
					ft := sf.Type
					if ft.Kind() == reflect.Pointer {
						ft = ft.Elem()
					}
					if ft.Kind() == reflect.Struct && !tagged {
						if !sf.IsExported() && sf.Type.Kind() == reflect.Pointer {
							continue
						}
						next = append(next, level{typ: ft, index: index})
						continue
					}
				}
				if !sf.IsExported() {
					continue
				}
				if name == "" {
					name = sf.Name
				}
				all = append(all, field{key: name, index: index, tagged: tagged})
			}
		}
		for typ := range seen {
			visited[typ] = true
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].key != all[j].key {
			return all[i].key < all[j].key
		}
		return len(all[i].index) < len(all[j].index)
	})
	out := make([]field, 0, len(all))
	for i := 0; i < len(all); {
		j := i + 1
		for j < len(all) && all[j].key == all[i].key {
			j++
		}
		if f, ok := dominantField(all[i:j]); ok {
			out = append(out, f)
		}
		i = j
	}
	sort.Slice(out, func(i, j int) bool { return indexLess(out[i].index, out[j].index) })

	fieldCache.Store(t, out)
	return out
}

// dominantField picks the field owning a name from candidates sorted by depth.
func dominantField(fields []field) (field, bool) {
	depth := len(fields[0].index)
	var winner field
	n := 0
	for _, f := range fields {
		if len(f.index) > depth {
			break
		}
		if f.tagged {
			if winner.tagged {
				return field{}, false
			}
			winner, n = f, 1
			continue
		}
		if !winner.tagged {
			winner = f
			n++
		}
	}
	if n != 1 {
		return field{}, false
	}
	return winner, true
}

func indexLess(a, b []int) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

func mapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			if b, err := tm.MarshalText(); err == nil {
				return string(b)
			}
		}
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}

// isSequence reports slices, arrays and pointers to arrays.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// resolve strips indirection that carries no identity: pointers to scalars,
// maps and slices are dereferenced and nil references become nil. Pointers to
// structs and arrays are kept so the memo stack can see them, as are values
// implementing json.Marshaler.
func resolve(v any) any {
	for v != nil {
		if _, ok := v.(jsonMarshaler); ok && !isNilPointer(v) {
			return v
		}
		if isAtom(v) {
			return v
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Map, reflect.Slice, reflect.Chan:
			if rv.IsNil() {
				return nil
			}
			return v
		case reflect.Pointer:
			if rv.IsNil() {
				return nil
			}
			switch rv.Elem().Kind() {
			case reflect.Struct, reflect.Array:
				return v
			}
			v = rv.Elem().Interface()
			continue
		}
		return v
	}
	return nil
}
