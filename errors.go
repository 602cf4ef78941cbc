// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import "fmt"

// A LengthMismatchError indicates that an input sequence's length could
// not be reconciled with the common length of the other inputs. All
// positions are 0-based.
type LengthMismatchError struct {
	Index int    // position of the offending input
	Name  string // its key in the input collection, when keyed
	Len   int    // its actual length
	Want  int    // the common length it should have matched
}

// Error implements error.
func (e *LengthMismatchError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("input %d (%s): length %d is incompatible with length %d", e.Index, e.Name, e.Len, e.Want)
	}
	return fmt.Sprintf("input %d: length %d is incompatible with length %d", e.Index, e.Len, e.Want)
}

// An InvalidCallableError indicates that a callable specification could
// not be adapted into an [Invocable]. It is reported by [Adapt], before
// any iteration begins.
type InvalidCallableError struct {
	Spec any
}

// Error implements error.
func (e *InvalidCallableError) Error() string {
	return fmt.Sprintf("cannot adapt value of type %T into an invocable", e.Spec)
}

// An ArgumentMismatchError indicates that the elements of an argument
// tuple could not be bound to the parameters of an [Invocable].
type ArgumentMismatchError struct {
	Reason string
}

// Error implements error.
func (e *ArgumentMismatchError) Error() string {
	return "argument mismatch: " + e.Reason
}

// A LengthError indicates that, in a scalar output mode, a call
// returned something other than exactly one value. Index is the
// 0-based position of the offending call.
type LengthError struct {
	Index int
	Len   int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("result at index %d has length %d, expected a single value", e.Index, e.Len)
}

// A CoercionError indicates that, in a scalar output mode, a call's
// result could not be coerced to the requested type. Index is the
// 0-based position of the offending call.
type CoercionError struct {
	Index int
	Mode  Mode
	Value any
}

// Error implements error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce result %v (%T) at index %d to %s", e.Value, e.Value, e.Index, e.Mode)
}

// A CallError wraps a failure raised by the user-supplied callable
// itself, tagging it with the 0-based position of the failing call.
type CallError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *CallError) Error() string {
	return fmt.Sprintf("call at index %d: %v", e.Index, e.Err)
}

// Unwrap returns the enclosed error.
func (e *CallError) Unwrap() error { return e.Err }
