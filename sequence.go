// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// A Sequence is an ordered collection of values in which each position
// may carry an associated string name. Names are independent of
// position: a Sequence may be fully named, partially named (empty
// strings mark unnamed positions), or unnamed.
//
// A Sequence is immutable once constructed. The zero value is an empty,
// unnamed Sequence and is ready to use.
type Sequence struct {
	values []any
	names  []string
}

// New returns an unnamed Sequence of the given values.
func New(values ...any) Sequence {
	return Sequence{values: values}
}

// NewNamed returns a Sequence that associates names with values by
// position. An empty string leaves that position unnamed. The two
// slices must have equal length.
func NewNamed(names []string, values []any) (Sequence, error) {
	if len(names) != len(values) {
		return Sequence{}, fmt.Errorf("purrr: %d names for %d values", len(names), len(values))
	}
	return Sequence{values: slices.Clone(values), names: slices.Clone(names)}, nil
}

// Len returns the number of values in the Sequence.
func (s Sequence) Len() int { return len(s.values) }

// Named reports whether the Sequence carries any per-position names.
func (s Sequence) Named() bool {
	return slices.ContainsFunc(s.names, func(n string) bool { return n != "" })
}

// Value returns the value at position i.
func (s Sequence) Value(i int) any { return s.values[i] }

// Name returns the name at position i, or the empty string when the
// position (or the whole Sequence) is unnamed.
func (s Sequence) Name(i int) string {
	if s.names == nil {
		return ""
	}
	return s.names[i]
}

// Values returns a copy of the values in order.
func (s Sequence) Values() []any { return slices.Clone(s.values) }

// Names returns a copy of the per-position names, or nil when the
// Sequence is unnamed.
func (s Sequence) Names() []string { return slices.Clone(s.names) }

// All returns an iterator over name/value pairs in position order.
// Unnamed positions yield an empty name.
func (s Sequence) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, v := range s.values {
			if !yield(s.Name(i), v) {
				return
			}
		}
	}
}

// AsSequence adapts an arbitrary value into a Sequence:
//
//   - a Sequence is returned unchanged;
//   - a []any becomes an unnamed Sequence of its elements;
//   - any other slice or array becomes an unnamed Sequence of its
//     elements;
//   - a map with string keys becomes a named Sequence, ordered by key
//     so that the result is deterministic;
//   - anything else becomes a length-1 Sequence holding the value.
func AsSequence(v any) Sequence {
	switch t := v.(type) {
	case Sequence:
		return t
	case []any:
		return Sequence{values: slices.Clone(t)}
	case nil:
		return Sequence{values: []any{nil}}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return Sequence{values: values}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			names := make([]string, 0, rv.Len())
			for _, k := range rv.MapKeys() {
				names = append(names, k.String())
			}
			slices.Sort(names)
			values := make([]any, len(names))
			for i, n := range names {
				values[i] = rv.MapIndex(reflect.ValueOf(n).Convert(rv.Type().Key())).Interface()
			}
			return Sequence{values: values, names: names}
		}
	}
	return Sequence{values: []any{v}}
}

// repeatValue returns an unnamed Sequence holding v at every one of n
// positions. Recycling a length-1 input does not replicate its name.
func repeatValue(v any, n int) Sequence {
	values := make([]any, n)
	for i := range values {
		values[i] = v
	}
	return Sequence{values: values}
}
