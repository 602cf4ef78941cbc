// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

// A tuple is one aligned set of elements, one per input sequence,
// forming the arguments for a single call. The fields slice names each
// element after the input collection's keys; name identifies the tuple
// itself, inherited from the first named input.
type tuple struct {
	name   string
	fields []string
	values []any
}

// transposeTuples turns the recycled inputs into one tuple per aligned
// position. All inputs must already have length size.
//
// Tuple names are drawn from the first input that carries names; when
// two named inputs disagree, the first one wins.
func transposeTuples(inputs []Sequence, fields []string, size int) []tuple {
	named := -1
	for i, in := range inputs {
		if in.Named() {
			named = i
			break
		}
	}
	tuples := make([]tuple, size)
	for i := range tuples {
		values := make([]any, len(inputs))
		for j, in := range inputs {
			values[j] = in.Value(i)
		}
		var name string
		if named >= 0 {
			name = inputs[named].Name(i)
		}
		tuples[i] = tuple{name: name, fields: fields, values: values}
	}
	return tuples
}
