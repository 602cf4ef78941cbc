// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package safecall

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireStack asserts that the RecoveredError has a non-empty Stack
// whose frames include the named function.
func requireStack(r *require.Assertions, err error, funcName string) {
	var recovered *RecoveredError
	r.ErrorAs(err, &recovered)
	r.NotEmpty(recovered.Stack)

	frames := runtime.CallersFrames(recovered.Stack)
	var found bool
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, funcName) {
			found = true
			break
		}
		if !more {
			break
		}
	}
	r.True(found, "expected stack to contain %q, got:\n%s",
		funcName, recovered.String())
}

func TestResult(t *testing.T) {
	r := require.New(t)

	// Normal call returning value and nil error.
	val, err := Result(func() (any, error) { return 42, nil })
	r.NoError(err)
	r.Equal(42, val)

	// Normal call returning value and error.
	boom := errors.New("boom")
	val, err = Result(func() (any, error) { return 99, boom })
	r.ErrorIs(err, boom)
	r.Equal(99, val)

	// Panic with error.
	kaboom := errors.New("kaboom")
	val, err = Result(func() (any, error) { panic(kaboom) })
	r.ErrorIs(err, kaboom)
	r.Nil(val)
	requireStack(r, err, "TestResult")

	// Panic with non-error.
	val, err = Result(func() (any, error) { panic("oops") })
	r.ErrorContains(err, "oops")
	r.Nil(val)
	requireStack(r, err, "TestResult")

	// Panic with error after returning an error: the deferred panic
	// joins with the returned error via errors.Join.
	val, err = Result(func() (any, error) {
		defer func() { panic(kaboom) }()
		return 123, boom
	})
	r.ErrorIs(err, kaboom)
	r.NotErrorIs(err, boom) // Panic masks setting return values.
	r.Nil(val)
	requireStack(r, err, "TestResult")
}
