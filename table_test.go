// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	r := require.New(t)

	tab, err := NewTable(
		[]string{"x", "y"},
		[]Sequence{New(1, 2, 3), New("a", "b", "c")},
	)
	r.NoError(err)
	r.Equal(3, tab.NumRows())
	r.Equal(2, tab.NumCols())

	col, ok := tab.Column("y")
	r.True(ok)
	r.Equal([]any{"a", "b", "c"}, col.Values())

	_, ok = tab.Column("z")
	r.False(ok)
}

func TestNewTableRaggedColumns(t *testing.T) {
	r := require.New(t)

	_, err := NewTable(
		[]string{"x", "y"},
		[]Sequence{New(1, 2), New(1)},
	)
	var mismatch *LengthMismatchError
	r.ErrorAs(err, &mismatch)
	r.Equal(1, mismatch.Index)
	r.Equal("y", mismatch.Name)
}

func TestNewTableNameCountMismatch(t *testing.T) {
	r := require.New(t)

	_, err := NewTable([]string{"x"}, []Sequence{New(1), New(2)})
	r.Error(err)
}

func TestTableRow(t *testing.T) {
	r := require.New(t)

	tab, err := NewTable(
		[]string{"x", "y"},
		[]Sequence{New(1, 2), New("a", "b")},
	)
	r.NoError(err)

	row := tab.Row(1)
	r.Equal([]string{"x", "y"}, row.Names())
	r.Equal([]any{2, "b"}, row.Values())
}

func TestMapOverTableColumns(t *testing.T) {
	r := require.New(t)

	tab, err := NewTable(
		[]string{"a", "b"},
		[]Sequence{New(1, 2, 3), New(10, 20, 30)},
	)
	r.NoError(err)

	out, err := Map(tab.Columns(), func(a, b int) int { return a + b }, Integer)
	r.NoError(err)
	r.Equal([]any{11, 22, 33}, out.Values())
}

func TestMapOverTableColumnsByName(t *testing.T) {
	r := require.New(t)

	tab, err := NewTable(
		[]string{"a", "b"},
		[]Sequence{New(1, 2), New(10, 20)},
	)
	r.NoError(err)

	f := NewInvocable([]string{"b", "a"}, false, func(args []any) (any, error) {
		return args[0].(int) - args[1].(int), nil
	})
	out, err := Map(tab.Columns(), f, Integer)
	r.NoError(err)
	r.Equal([]any{9, 18}, out.Values())
}
