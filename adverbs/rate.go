// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package adverbs

import (
	"context"
	"errors"

	"golang.org/x/time/rate"

	"github.com/mikmart/purrr"
)

// Slowly wraps a callable so that calls are issued at most r times per
// second, with the given burst size. Calls that exceed the rate block
// until the enclosed [rate.Limiter] admits them or ctx is canceled.
func Slowly(ctx context.Context, spec any, r float64, burst int, extra ...any) (*purrr.Invocable, error) {
	if r <= 0 || burst <= 0 {
		return nil, errors.New("adverbs: rate and burst must be greater than zero")
	}
	inv, err := purrr.Adapt(spec, extra...)
	if err != nil {
		return nil, err
	}
	l := rate.NewLimiter(rate.Limit(r), burst)
	return inv.With(func(next purrr.CallFunc) purrr.CallFunc {
		return func(args []any) (any, error) {
			// Fast-path: there's capacity.
			if !l.Allow() {
				if err := l.Wait(ctx); err != nil {
					return nil, err
				}
			}
			return next(args)
		}
	}), nil
}
