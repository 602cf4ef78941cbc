// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

// Package safecall contains utilities for executing user-provided
// callables.
package safecall

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A RecoveredError associates a panic recovered from a user callable
// with the stack trace captured at the point of recovery.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)

		if !more {
			return sb.String()
		}
	}
}

// String is for debugging use only.
func (e *RecoveredError) String() string {
	return e.Error()
}

// Unwrap returns the enclosed error.
func (e *RecoveredError) Unwrap() error { return e.Err }

// Result executes the callable. If it panics, the recovered value is
// joined into the returned error as a [RecoveredError].
func Result(fn func() (any, error)) (ret any, err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
			return
		case error:
			err = errors.Join(err, r)
		default:
			err = errors.Join(err, fmt.Errorf("panic: %v", r))
		}
		stack := make([]uintptr, captureDepth)
		stack = stack[:runtime.Callers(2, stack)]
		err = &RecoveredError{
			Err:   err,
			Stack: stack,
		}
	}()
	ret, err = fn()
	return
}
