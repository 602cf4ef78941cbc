// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

// Map invokes the callable once per aligned position of the input
// sequences and collects the results into a container of the requested
// [Mode].
//
// The inputs Sequence holds one entry per input: each entry is adapted
// with [AsSequence], so plain slices and scalars are accepted. When
// the inputs collection is name-keyed, those keys name the elements of
// every argument tuple and enable name-based binding against
// invocables that declare matching parameter names.
//
// Inputs of differing lengths are recycled: a length-1 input is
// replicated to the common length, any length-0 input makes the result
// empty without a single call, and two differing lengths greater
// than 1 fail with a *[LengthMismatchError].
//
// Calls are issued strictly in order, one at a time. The first failure
// aborts the iteration and is returned with its 0-based position; no
// partial container is produced.
func Map(inputs Sequence, spec any, mode Mode, extra ...any) (Sequence, error) {
	inv, err := Adapt(spec, extra...)
	if err != nil {
		return Sequence{}, err
	}

	n := inputs.Len()
	fields := make([]string, n)
	for i := range fields {
		fields[i] = inputs.Name(i)
	}
	seqs := make([]Sequence, n)
	for i := range seqs {
		seqs[i] = AsSequence(inputs.Value(i))
	}

	recycled, size, err := recycle(seqs, fields)
	if err != nil {
		return Sequence{}, err
	}
	return run(transposeTuples(recycled, fields, size), inv, mode)
}

// Map2 is the two-input specialization of [Map].
func Map2(x, y Sequence, spec any, mode Mode, extra ...any) (Sequence, error) {
	return Map(New(x, y), spec, mode, extra...)
}

// Walk iterates exactly like [Map] in [List] mode but discards the
// results, returning the first input unchanged. It exists for
// callables invoked for their side effects.
func Walk(inputs Sequence, spec any, extra ...any) (Sequence, error) {
	if _, err := Map(inputs, spec, List, extra...); err != nil {
		return Sequence{}, err
	}
	if inputs.Len() == 0 {
		return Sequence{}, nil
	}
	return AsSequence(inputs.Value(0)), nil
}

// Walk2 is the two-input specialization of [Walk].
func Walk2(x, y Sequence, spec any, extra ...any) (Sequence, error) {
	if _, err := Map2(x, y, spec, List, extra...); err != nil {
		return Sequence{}, err
	}
	return x, nil
}
