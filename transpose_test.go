// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransposeOrder(t *testing.T) {
	r := require.New(t)

	tuples := transposeTuples([]Sequence{New(1, 2, 3), New("a", "b", "c")}, nil, 3)
	r.Len(tuples, 3)
	r.Equal([]any{1, "a"}, tuples[0].values)
	r.Equal([]any{2, "b"}, tuples[1].values)
	r.Equal([]any{3, "c"}, tuples[2].values)
}

func TestTransposeFields(t *testing.T) {
	r := require.New(t)

	fields := []string{"x", "y"}
	tuples := transposeTuples([]Sequence{New(1, 2), New(3, 4)}, fields, 2)
	for _, tp := range tuples {
		r.Equal(fields, tp.fields)
	}
}

func TestTransposeNamesFromFirstNamedInput(t *testing.T) {
	r := require.New(t)

	unnamed := New(1, 2)
	named, err := NewNamed([]string{"p", "q"}, []any{3, 4})
	r.NoError(err)

	tuples := transposeTuples([]Sequence{unnamed, named}, nil, 2)
	r.Equal("p", tuples[0].name)
	r.Equal("q", tuples[1].name)
}

func TestTransposeFirstNamedInputWins(t *testing.T) {
	r := require.New(t)

	first, err := NewNamed([]string{"p", "q"}, []any{1, 2})
	r.NoError(err)
	second, err := NewNamed([]string{"x", "y"}, []any{3, 4})
	r.NoError(err)

	tuples := transposeTuples([]Sequence{first, second}, nil, 2)
	r.Equal("p", tuples[0].name)
	r.Equal("q", tuples[1].name)
}

func TestTransposeUnnamed(t *testing.T) {
	r := require.New(t)

	tuples := transposeTuples([]Sequence{New(1), New(2)}, nil, 1)
	r.Equal("", tuples[0].name)
}
