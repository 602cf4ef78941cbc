// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

// commonLength computes the target length that all inputs will be
// recycled to. Inputs of length 0 force the result to 0. Two inputs
// with differing lengths both greater than 1 cannot be reconciled.
func commonLength(inputs []Sequence, fields []string) (int, error) {
	long := -1
	zero := false
	for i, in := range inputs {
		switch n := in.Len(); {
		case n == 0:
			zero = true
		case n == 1:
		case long < 0:
			long = n
		case n != long:
			return 0, &LengthMismatchError{Index: i, Name: fieldName(fields, i), Len: n, Want: long}
		}
	}
	if zero {
		return 0, nil
	}
	if long < 0 {
		if len(inputs) == 0 {
			return 0, nil
		}
		return 1, nil
	}
	return long, nil
}

// recycle aligns the inputs to a single common length. Inputs already
// at the common length pass through unchanged, length-1 inputs are
// replicated, and everything collapses to empty when the common length
// is 0.
func recycle(inputs []Sequence, fields []string) ([]Sequence, int, error) {
	size, err := commonLength(inputs, fields)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Sequence, len(inputs))
	for i, in := range inputs {
		switch n := in.Len(); {
		case n == size:
			out[i] = in
		case n == 1:
			out[i] = repeatValue(in.Value(0), size)
		case size == 0:
			out[i] = Sequence{}
		default:
			return nil, 0, &LengthMismatchError{Index: i, Name: fieldName(fields, i), Len: n, Want: size}
		}
	}
	return out, size, nil
}

func fieldName(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
