// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"fmt"
	"slices"
)

// A Table is a boundary adapter for tabular input: a collection of
// named columns of equal length. [Table.Columns] converts it into the
// name-keyed sequence-of-sequences accepted by [Map], treating each
// column as one input; the engine itself has no table-specific logic.
type Table struct {
	names []string
	cols  []Sequence
	rows  int
}

// NewTable builds a Table from column names and columns. All columns
// must have the same length.
func NewTable(names []string, cols []Sequence) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("purrr: %d column names for %d columns", len(names), len(cols))
	}
	rows := 0
	if len(cols) > 0 {
		rows = cols[0].Len()
	}
	for i, col := range cols {
		if col.Len() != rows {
			return nil, &LengthMismatchError{Index: i, Name: names[i], Len: col.Len(), Want: rows}
		}
	}
	return &Table{names: slices.Clone(names), cols: slices.Clone(cols), rows: rows}, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Column returns the named column.
func (t *Table) Column(name string) (Sequence, bool) {
	for i, n := range t.names {
		if n == name {
			return t.cols[i], true
		}
	}
	return Sequence{}, false
}

// Columns returns the table as a name-keyed Sequence of its columns,
// ready to be passed to [Map] or [Walk].
func (t *Table) Columns() Sequence {
	values := make([]any, len(t.cols))
	for i, col := range t.cols {
		values[i] = col
	}
	return Sequence{values: values, names: slices.Clone(t.names)}
}

// Row returns row i as a Sequence named by the column names.
func (t *Table) Row(i int) Sequence {
	values := make([]any, len(t.cols))
	for j, col := range t.cols {
		values[j] = col.Value(i)
	}
	return Sequence{values: values, names: slices.Clone(t.names)}
}
