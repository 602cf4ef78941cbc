// Copyright 2026 Mikko Marttila
// SPDX-License-Identifier: Apache-2.0

package purrr

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mikmart/purrr/internal/safecall"
)

// A bindingPlan maps tuple elements and bound extras onto the
// parameters of an Invocable. The strategy is decided once per run:
// name-based when any tuple field name matches a declared parameter
// name, positional otherwise. All tuples in a run share one shape, so
// the plan is computed before the first call and reused.
type bindingPlan struct {
	slots []int // supply index feeding each declared parameter
	rest  []int // supply indices absorbed by the rest parameter
	width int   // tuple width; extras occupy indices width and beyond
	extra []any
}

// newBindingPlan resolves the binding of a tuple shape against an
// Invocable. The supply consists of the tuple elements (carrying the
// input collection's field names) followed by the bound extras, which
// are always unnamed and positional.
func newBindingPlan(fields []string, width int, inv *Invocable) (*bindingPlan, error) {
	total := width + len(inv.extra)
	slots := make([]int, len(inv.params))
	for i := range slots {
		slots[i] = -1
	}
	used := make([]bool, total)

	named := false
	for i := 0; i < width; i++ {
		if f := fieldName(fields, i); f != "" && slices.Contains(inv.params, f) {
			named = true
			break
		}
	}

	if named {
		for si := 0; si < width; si++ {
			f := fieldName(fields, si)
			if f == "" {
				continue
			}
			pi := slices.Index(inv.params, f)
			switch {
			case pi < 0 || slots[pi] >= 0:
				if !inv.variadic {
					return nil, &ArgumentMismatchError{Reason: fmt.Sprintf("no parameter to bind field %q to", f)}
				}
			default:
				slots[pi] = si
				used[si] = true
			}
		}
	}

	// Fill the remaining parameters positionally. Under name-based
	// binding only unnamed supplies may fill a parameter slot; named
	// fields either matched above or belong to the rest parameter.
	free := func(si int) bool {
		if used[si] {
			return false
		}
		return !named || si >= width || fieldName(fields, si) == ""
	}
	si := 0
	for pi := range slots {
		if slots[pi] >= 0 {
			continue
		}
		for si < total && !free(si) {
			si++
		}
		if si == total {
			return nil, &ArgumentMismatchError{Reason: fmt.Sprintf("missing argument for parameter %d", pi)}
		}
		slots[pi] = si
		used[si] = true
		si++
	}

	var rest []int
	for si := range total {
		if used[si] {
			continue
		}
		if !inv.variadic {
			return nil, &ArgumentMismatchError{Reason: fmt.Sprintf("callable accepts %d arguments, got %d", len(inv.params), total)}
		}
		rest = append(rest, si)
	}

	return &bindingPlan{slots: slots, rest: rest, width: width, extra: inv.extra}, nil
}

// arrange assembles the argument list for one call from the tuple's
// values.
func (p *bindingPlan) arrange(values []any) []any {
	args := make([]any, 0, len(p.slots)+len(p.rest))
	at := func(si int) any {
		if si < p.width {
			return values[si]
		}
		return p.extra[si-p.width]
	}
	for _, si := range p.slots {
		args = append(args, at(si))
	}
	for _, si := range p.rest {
		args = append(args, at(si))
	}
	return args
}

// run iterates the tuples strictly in order, invoking the callable
// once per tuple and collecting results into a container of the
// requested mode. The first failure of any kind aborts the iteration;
// no partial container is returned.
func run(tuples []tuple, inv *Invocable, mode Mode) (Sequence, error) {
	col := newCollector(mode, len(tuples))
	if len(tuples) == 0 {
		return col.sequence(nil), nil
	}

	plan, err := newBindingPlan(tuples[0].fields, len(tuples[0].values), inv)
	if err != nil {
		return Sequence{}, err
	}

	named := slices.ContainsFunc(tuples, func(t tuple) bool { return t.name != "" })
	var names []string
	if named {
		names = make([]string, 0, len(tuples))
	}

	for i, t := range tuples {
		ret, err := safecall.Result(func() (any, error) {
			return inv.call(plan.arrange(t.values))
		})
		if err != nil {
			var mismatch *ArgumentMismatchError
			if errors.As(err, &mismatch) {
				return Sequence{}, mismatch
			}
			return Sequence{}, &CallError{Index: i, Err: err}
		}
		if err := col.collect(i, ret); err != nil {
			return Sequence{}, err
		}
		if named {
			names = append(names, t.name)
		}
	}
	return col.sequence(names), nil
}
