// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"math"
	"reflect"
	"strconv"
)

// A Mode selects the shape of the output container. [List] collects
// raw results of any type; the scalar modes require every call to
// return exactly one value coercible to the target type.
type Mode int

const (
	// List collects each call's raw result without type checking.
	List Mode = iota
	// Logical collects bool results.
	Logical
	// Integer collects int results; bools and integral floating-point
	// values coerce.
	Integer
	// Double collects float64 results; bools and any integer kind
	// coerce.
	Double
	// Character collects string results; any atomic scalar is
	// formatted.
	Character
	// Raw collects byte results; integer values in [0, 255] coerce.
	Raw
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Logical:
		return "logical"
	case Integer:
		return "integer"
	case Double:
		return "double"
	case Character:
		return "character"
	case Raw:
		return "raw"
	}
	return "unknown"
}

// A collector accumulates per-call results into the output container.
type collector interface {
	// collect adds the result of the call at the given 0-based index.
	collect(idx int, v any) error
	// sequence finalizes the container, attaching the tuple-level
	// names when present.
	sequence(names []string) Sequence
}

func newCollector(mode Mode, size int) collector {
	if mode == List {
		return &listCollector{values: make([]any, 0, size)}
	}
	return &scalarCollector{mode: mode, values: make([]any, 0, size)}
}

type listCollector struct {
	values []any
}

func (c *listCollector) collect(_ int, v any) error {
	c.values = append(c.values, v)
	return nil
}

func (c *listCollector) sequence(names []string) Sequence {
	return Sequence{values: c.values, names: names}
}

type scalarCollector struct {
	mode   Mode
	values []any
}

func (c *scalarCollector) collect(idx int, v any) error {
	s, err := scalarOf(idx, v)
	if err != nil {
		return err
	}
	out, err := coerce(c.mode, idx, s)
	if err != nil {
		return err
	}
	c.values = append(c.values, out)
	return nil
}

func (c *scalarCollector) sequence(names []string) Sequence {
	return Sequence{values: c.values, names: names}
}

// scalarOf unwraps a length-1 container to its single element. A nil
// result or a container of any other length violates the scalar-mode
// contract.
func scalarOf(idx int, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, &LengthError{Index: idx, Len: 0}
	case Sequence:
		if t.Len() != 1 {
			return nil, &LengthError{Index: idx, Len: t.Len()}
		}
		return t.Value(0), nil
	case []any:
		if len(t) != 1 {
			return nil, &LengthError{Index: idx, Len: len(t)}
		}
		return t[0], nil
	}
	return v, nil
}

// coerce converts a single scalar to the target mode's type. The
// coercion ladder is strict: logical accepts only bools, integer
// rejects fractional values, and raw rejects values outside one byte.
func coerce(mode Mode, idx int, v any) (any, error) {
	if v == nil {
		return nil, &LengthError{Index: idx, Len: 0}
	}
	fail := func() (any, error) {
		return nil, &CoercionError{Index: idx, Mode: mode, Value: v}
	}
	rv := reflect.ValueOf(v)
	switch mode {
	case Logical:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}
	case Integer:
		switch rv.Kind() {
		case reflect.Bool:
			if rv.Bool() {
				return 1, nil
			}
			return 0, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() <= math.MaxInt64 {
				return int(rv.Uint()), nil
			}
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if n := int64(f); float64(n) == f {
				return int(n), nil
			}
		}
	case Double:
		switch rv.Kind() {
		case reflect.Bool:
			if rv.Bool() {
				return 1.0, nil
			}
			return 0.0, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		}
	case Character:
		switch rv.Kind() {
		case reflect.Bool:
			return strconv.FormatBool(rv.Bool()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return strconv.FormatUint(rv.Uint(), 10), nil
		case reflect.Float32, reflect.Float64:
			return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
		case reflect.String:
			return rv.String(), nil
		}
	case Raw:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if n := rv.Int(); n >= 0 && n <= math.MaxUint8 {
				return byte(n), nil
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if n := rv.Uint(); n <= math.MaxUint8 {
				return byte(n), nil
			}
		}
	}
	return fail()
}
