// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr_test

import (
	"fmt"

	"github.com/mikmart/purrr"
)

func ExampleMap() {
	// Three aligned inputs, keyed so the tuples carry field names.
	inputs, _ := purrr.NewNamed(
		[]string{"x", "y", "z"},
		[]any{[]int{1, 2}, []int{10, 20}, []int{100, 200}},
	)
	out, _ := purrr.Map(inputs, func(x, y, z int) int { return x + y + z }, purrr.Integer)
	fmt.Println(out.Values())

	// Output:
	// [111 222]
}

func ExampleMap2() {
	// The length-1 input is recycled to the common length.
	sum := func(a, b int) int { return a + b }
	out, _ := purrr.Map2(purrr.New(1, 2, 3), purrr.New(10), sum, purrr.List)
	fmt.Println(out.Values())

	// Output:
	// [11 12 13]
}

func ExampleMap_extractor() {
	// A string shorthand plucks a field out of each element.
	rows := purrr.New(
		map[string]any{"id": 1, "name": "ada"},
		map[string]any{"id": 2, "name": "grace"},
	)
	out, _ := purrr.Map(purrr.New(rows), "name", purrr.Character)
	fmt.Println(out.Values())

	// Output:
	// [ada grace]
}

func ExampleWalk() {
	// Walk discards results and returns the first input unchanged.
	x := purrr.New("a", "b", "c")
	out, _ := purrr.Walk(purrr.New(x), func(s string) { fmt.Println(s) })
	fmt.Println(out.Len())

	// Output:
	// a
	// b
	// c
	// 3
}

func ExampleNewInvocable() {
	// Declared parameter names bind keyed inputs by name, not
	// position.
	f := purrr.NewInvocable([]string{"denom", "num"}, false,
		func(args []any) (any, error) {
			return args[1].(int) / args[0].(int), nil
		})
	inputs, _ := purrr.NewNamed(
		[]string{"num", "denom"},
		[]any{[]int{10, 40}, []int{2, 4}},
	)
	out, _ := purrr.Map(inputs, f, purrr.Integer)
	fmt.Println(out.Values())

	// Output:
	// [5 10]
}
