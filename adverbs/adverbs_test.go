// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package adverbs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikmart/purrr"
)

func TestSafely(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	inv, err := Safely(func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v * 10, nil
	})
	r.NoError(err)

	// The run never aborts; failures become values.
	out, err := purrr.Map(purrr.New(purrr.New(1, 2, 3)), inv, purrr.List)
	r.NoError(err)
	r.Equal(3, out.Len())

	r.Equal(Result{Value: 10}, out.Value(0))
	r.Equal(Result{Err: boom}, out.Value(1))
	r.Equal(Result{Value: 30}, out.Value(2))
}

func TestSafelyRecoversPanic(t *testing.T) {
	r := require.New(t)

	inv, err := Safely(func(int) int { panic("kaboom") })
	r.NoError(err)

	out, err := purrr.Map(purrr.New(purrr.New(1)), inv, purrr.List)
	r.NoError(err)

	res, ok := out.Value(0).(Result)
	r.True(ok)
	r.Error(res.Err)
}

func TestSafelyInvalidSpec(t *testing.T) {
	r := require.New(t)

	_, err := Safely(1.5)
	var invalid *purrr.InvalidCallableError
	r.ErrorAs(err, &invalid)
}

func TestPossibly(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	inv, err := Possibly(func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v * 10, nil
	}, -1)
	r.NoError(err)

	out, err := purrr.Map(purrr.New(purrr.New(1, 2, 3)), inv, purrr.Integer)
	r.NoError(err)
	r.Equal([]any{10, -1, 30}, out.Values())
}
