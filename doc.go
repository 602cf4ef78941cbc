// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

// Package purrr is a parallel multi-sequence mapping engine: it
// invokes a callable once per aligned tuple of elements drawn from N
// input sequences and collects the results into a container whose
// shape is chosen by the caller.
//
// "Parallel" refers to the structural alignment of the inputs, in the
// way parallel minimum and maximum operate element-wise over several
// arrays. Execution is single-threaded and strictly ordered: the call
// for position 0 completes before the call for position 1 begins.
//
// # Sequences and recycling
//
// Inputs are [Sequence] values: ordered collections whose positions
// may carry names. Inputs of differing lengths are recycled to a
// common length before iteration. A length-1 input is replicated, a
// length-0 input makes the whole result empty without issuing a single
// call, and two inputs of differing lengths both greater than 1 fail
// with a [LengthMismatchError].
//
//	sum := purrr.Formula(func(x, y any) (any, error) {
//	    return x.(int) + y.(int), nil
//	})
//	out, _ := purrr.Map2(purrr.New(1, 2, 3), purrr.New(10), sum, purrr.List)
//	// out is [11 12 13]
//
// # Callables
//
// [Adapt] normalizes a callable specification into an [Invocable]
// before iteration begins: ordinary Go functions are adapted through
// reflection, [Formula] and [Formula1] bind positional placeholders,
// and a string or int compiles into an extractor that plucks a field
// out of each element. Fixed extra arguments are bound once and
// appended to every call. An unrecognized specification fails
// immediately with an [InvalidCallableError].
//
// # Argument binding
//
// Arguments are matched to parameters positionally by default. An
// invocable constructed with [NewInvocable] declares parameter names;
// when the input collection is name-keyed and a key matches a declared
// name, binding switches to name-based matching for the whole run.
// Leftover arguments — keyed fields matching no parameter, or
// positional overflow — are accepted only by invocables that declare
// an absorb-rest parameter, and otherwise fail with an
// [ArgumentMismatchError].
//
// # Output modes
//
// [List] mode collects raw results. The scalar modes ([Logical],
// [Integer], [Double], [Character], [Raw]) require every call to
// return exactly one value coercible to the target type, failing with
// a [LengthError] or [CoercionError] otherwise.
//
// # Failure policy
//
// All errors are fail-fast: the first failing call aborts the
// iteration and no partial container is returned. A panic inside the
// callable is recovered, wrapped with its stack, and treated exactly
// like a returned error. Errors raised during iteration carry the
// 0-based position of the failing call in a [CallError].
//
// # Tables
//
// [Table] adapts tabular input at the boundary, converting named
// columns of equal length into the keyed sequence-of-sequences that
// [Map] accepts. The engine never sees table-specific logic.
//
// # Adverbs
//
// The adverbs sub-package decorates invocables before they enter the
// engine: rate-limited calls, retries with exponential backoff, and
// error-capturing wrappers.
package purrr
