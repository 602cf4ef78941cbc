// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

// Package adverbs decorates invocables before they enter the mapping
// engine, altering how each call behaves without touching what it
// computes: capturing failures as values, substituting defaults,
// rate-limiting, and retrying with backoff.
package adverbs

import (
	"github.com/mikmart/purrr"
	"github.com/mikmart/purrr/internal/safecall"
)

// A Result carries the outcome of one call made through [Safely]:
// either a value or the error that would otherwise have aborted the
// run.
type Result struct {
	Value any
	Err   error
}

// Safely wraps a callable so that every call yields a [Result] instead
// of failing. A run over a safely-wrapped invocable therefore never
// aborts on a callable error; panics are captured the same way.
func Safely(spec any, extra ...any) (*purrr.Invocable, error) {
	inv, err := purrr.Adapt(spec, extra...)
	if err != nil {
		return nil, err
	}
	return inv.With(func(next purrr.CallFunc) purrr.CallFunc {
		return func(args []any) (any, error) {
			ret, err := safecall.Result(func() (any, error) {
				return next(args)
			})
			if err != nil {
				return Result{Err: err}, nil
			}
			return Result{Value: ret}, nil
		}
	}), nil
}

// Possibly wraps a callable so that any failing call yields the
// otherwise value instead of aborting the run.
func Possibly(spec any, otherwise any, extra ...any) (*purrr.Invocable, error) {
	inv, err := purrr.Adapt(spec, extra...)
	if err != nil {
		return nil, err
	}
	return inv.With(func(next purrr.CallFunc) purrr.CallFunc {
		return func(args []any) (any, error) {
			ret, err := safecall.Result(func() (any, error) {
				return next(args)
			})
			if err != nil {
				return otherwise, nil
			}
			return ret, nil
		}
	}), nil
}
