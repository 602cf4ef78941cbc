// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package adverbs

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mikmart/purrr"
	"github.com/mikmart/purrr/internal/safecall"
)

// Backoff implements an exponential backoff with jitter.
type Backoff struct {
	Jitter      time.Duration    // Delays are adjusted ±50% of this value. Default is 0.
	MaxAttempts int              // Defaults to 4 if unset.
	MaxDelay    time.Duration    // Defaults to 1s if unset.
	MinDelay    time.Duration    // Defaults to 10ms if unset.
	Multiplier  float32          // Defaults to 10.0 if unset.
	Retryable   func(error) bool // Defaults to retrying all errors.
}

// MaxAttemptsError indicates that a call reached the maximum number of
// retries.
type MaxAttemptsError struct {
	Err error
}

// Error implements error.
func (e *MaxAttemptsError) Error() string {
	return fmt.Sprintf("max attempts reached: %v", e.Err)
}

// Unwrap returns the enclosed error.
func (e *MaxAttemptsError) Unwrap() error {
	return e.Err
}

// Insistently wraps a callable so that each failing call is retried
// under the Backoff policy. Retries apply per call: every tuple gets a
// fresh attempt budget. A call that exhausts its attempts fails with a
// *[MaxAttemptsError] wrapping the last error seen.
func Insistently(spec any, b *Backoff, extra ...any) (*purrr.Invocable, error) {
	inv, err := purrr.Adapt(spec, extra...)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = &Backoff{}
	}
	b = b.sanitize() // Shadowing argument.
	return inv.With(func(next purrr.CallFunc) purrr.CallFunc {
		return func(args []any) (any, error) {
			count := 0
			var delay time.Duration
			for {
				// Make the attempt.
				ret, err := safecall.Result(func() (any, error) {
					return next(args)
				})
				if err == nil {
					return ret, nil
				}
				if !b.Retryable(err) {
					return nil, err
				}

				count++
				if count >= b.MaxAttempts {
					return nil, &MaxAttemptsError{Err: err}
				}

				grown := time.Duration(float32(delay) * b.Multiplier)
				delay = min(max(b.MinDelay, grown), b.MaxDelay)
				jitter := time.Duration((rand.Float32() - 0.5) * float32(b.Jitter))
				time.Sleep(delay + jitter)
			}
		}
	}), nil
}

// sanitize returns a copy with all fields initialized to a reasonable default.
func (b *Backoff) sanitize() *Backoff {
	ret := *b
	// Jitter defaults to 0.
	if ret.MaxAttempts == 0 {
		ret.MaxAttempts = 4
	}
	if ret.MaxDelay == 0 {
		ret.MaxDelay = 1 * time.Second
	}
	if ret.MinDelay == 0 {
		ret.MinDelay = 10 * time.Millisecond
	}
	if ret.Multiplier == 0 {
		ret.Multiplier = 10
	}
	if ret.Retryable == nil {
		ret.Retryable = func(_ error) bool { return true }
	}
	return &ret
}
