// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"fmt"
	"reflect"
	"slices"
)

// A CallFunc is the uniform calling convention shared by all adapted
// callables: it receives the fully arranged positional arguments for
// one call and returns the call's result.
type CallFunc func(args []any) (any, error)

// Middleware wraps the execution of an [Invocable]'s underlying call.
// Middlewares compose: the first one passed to [Invocable.With] is the
// outermost.
type Middleware func(next CallFunc) CallFunc

// An Invocable is the normalized, uniformly callable form of a
// user-supplied function or shorthand produced by [Adapt].
type Invocable struct {
	params   []string // declared parameter names; "" marks a purely positional slot
	variadic bool     // declares an absorb-rest parameter
	extra    []any    // fixed arguments appended after the per-tuple arguments
	call     CallFunc
}

// NewInvocable builds an Invocable with explicitly declared parameter
// names. Declared names enable name-based argument binding when they
// match the keys of the input collection; an empty string declares a
// purely positional parameter. When variadic is true the Invocable
// absorbs arguments left over after all named parameters are bound.
//
// The fn callback receives the arranged arguments in declared
// parameter order, with any absorbed rest appended.
func NewInvocable(params []string, variadic bool, fn CallFunc) *Invocable {
	return &Invocable{params: slices.Clone(params), variadic: variadic, call: fn}
}

// With returns a copy of the Invocable whose call is wrapped by the
// given middlewares.
func (inv *Invocable) With(mw ...Middleware) *Invocable {
	call := inv.call
	for i := len(mw) - 1; i >= 0; i-- {
		call = mw[i](call)
	}
	return &Invocable{params: inv.params, variadic: inv.variadic, extra: inv.extra, call: call}
}

// A Formula is a two-placeholder shorthand: x and y are bound to the
// first two tuple positions and any further positions are absorbed and
// ignored.
type Formula func(x, y any) (any, error)

// A Formula1 is the single-placeholder variant of [Formula].
type Formula1 func(x any) (any, error)

// Adapt normalizes a callable specification into an [Invocable]. The
// accepted shapes are:
//
//   - an *[Invocable], used as-is;
//   - a [Formula] or [Formula1] placeholder shorthand;
//   - any Go function value, adapted via reflection — arguments are
//     bound positionally, a variadic function absorbs leftover
//     arguments, and the return shape may be empty, a single value, an
//     error, or (value, error);
//   - a string or int, compiled into an extractor that plucks the
//     named or 0-based indexed element out of its first argument.
//
// The extra arguments are bound into the Invocable and appended after
// the per-tuple arguments on every call.
//
// Any other specification fails with an *[InvalidCallableError] before
// any iteration begins.
func Adapt(spec any, extra ...any) (*Invocable, error) {
	inv, err := adapt(spec)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		inv.extra = append(slices.Clone(inv.extra), extra...)
	}
	return inv, nil
}

func adapt(spec any) (*Invocable, error) {
	switch t := spec.(type) {
	case *Invocable:
		return &Invocable{params: t.params, variadic: t.variadic, extra: t.extra, call: t.call}, nil
	case Formula:
		return &Invocable{
			params:   []string{"", ""},
			variadic: true,
			call: func(args []any) (any, error) {
				if len(args) < 2 {
					return nil, &ArgumentMismatchError{Reason: "formula needs two arguments"}
				}
				return t(args[0], args[1])
			},
		}, nil
	case Formula1:
		return &Invocable{
			params:   []string{""},
			variadic: true,
			call: func(args []any) (any, error) {
				if len(args) < 1 {
					return nil, &ArgumentMismatchError{Reason: "formula needs one argument"}
				}
				return t(args[0])
			},
		}, nil
	case string:
		return extractor(func(v any) any { return pluckName(v, t) }), nil
	case int:
		return extractor(func(v any) any { return pluckIndex(v, t) }), nil
	}
	rv := reflect.ValueOf(spec)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		return adaptFunc(rv)
	}
	return nil, &InvalidCallableError{Spec: spec}
}

// extractor builds an Invocable of one argument that applies sel to
// the first tuple element, absorbing and ignoring the rest.
func extractor(sel func(v any) any) *Invocable {
	return &Invocable{
		params:   []string{""},
		variadic: true,
		call: func(args []any) (any, error) {
			if len(args) < 1 {
				return nil, &ArgumentMismatchError{Reason: "extractor needs one argument"}
			}
			return sel(args[0]), nil
		},
	}
}

// pluckName extracts a named element from a Sequence, a string-keyed
// map, or a struct. A missing element yields nil.
func pluckName(v any, name string) any {
	switch t := v.(type) {
	case Sequence:
		for i := range t.Len() {
			if t.Name(i) == name {
				return t.Value(i)
			}
		}
		return nil
	case map[string]any:
		return t[name]
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		if f := rv.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			if e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key())); e.IsValid() {
				return e.Interface()
			}
		}
	}
	return nil
}

// pluckIndex extracts the element at a 0-based index from a Sequence,
// a []any, or any other slice or array. A missing element yields nil.
func pluckIndex(v any, i int) any {
	switch t := v.(type) {
	case Sequence:
		if i >= 0 && i < t.Len() {
			return t.Value(i)
		}
		return nil
	case []any:
		if i >= 0 && i < len(t) {
			return t[i]
		}
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if i >= 0 && i < rv.Len() {
			return rv.Index(i).Interface()
		}
	}
	return nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// adaptFunc adapts an arbitrary Go function value. Reflection does not
// expose parameter names, so the resulting Invocable binds its
// arguments positionally.
func adaptFunc(fn reflect.Value) (*Invocable, error) {
	ft := fn.Type()
	switch ft.NumOut() {
	case 0, 1:
	case 2:
		if !ft.Out(1).Implements(errType) {
			return nil, &InvalidCallableError{Spec: fn.Interface()}
		}
	default:
		return nil, &InvalidCallableError{Spec: fn.Interface()}
	}

	arity := ft.NumIn()
	variadic := ft.IsVariadic()
	if variadic {
		arity--
	}
	params := make([]string, arity)

	return &Invocable{
		params:   params,
		variadic: variadic,
		call: func(args []any) (any, error) {
			in := make([]reflect.Value, len(args))
			for i, arg := range args {
				var pt reflect.Type
				if variadic && i >= arity {
					pt = ft.In(ft.NumIn() - 1).Elem()
				} else {
					pt = ft.In(i)
				}
				av, err := argValue(pt, i, arg)
				if err != nil {
					return nil, err
				}
				in[i] = av
			}
			return unpack(ft, fn.Call(in))
		},
	}, nil
}

// argValue converts one argument to the parameter type, allowing exact
// assignment and numeric widening only.
func argValue(pt reflect.Type, i int, arg any) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, &ArgumentMismatchError{Reason: fmt.Sprintf("argument %d: cannot use nil as %s", i, pt)}
	}
	av := reflect.ValueOf(arg)
	if av.Type().AssignableTo(pt) {
		return av, nil
	}
	if numericKind(av.Kind()) && numericKind(pt.Kind()) && av.Type().ConvertibleTo(pt) {
		return av.Convert(pt), nil
	}
	return reflect.Value{}, &ArgumentMismatchError{Reason: fmt.Sprintf("argument %d: cannot use value of type %T as %s", i, arg, pt)}
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// unpack converts the reflected return values to the uniform
// (result, error) shape.
func unpack(ft reflect.Type, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if ft.Out(0).Implements(errType) {
			return nil, errOf(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), errOf(out[1])
	}
}

func errOf(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
