// Package problem is the front-end model of an exact-cover instance: a
// Problem is built from named items (each with a required [min,max]
// multiplicity) and named options (each an ordered list of items), then
// translated into an *xcover.Matrix for the solver to run against.
package problem

import (
	"fmt"

	"github.com/corwin-vance/xcover/internal/omap"
	"github.com/corwin-vance/xcover/internal/xcover"
)

type itemSpec struct {
	min, max int
}

// Problem holds two insertion-ordered mappings: items (E -> multiplicity)
// and options (N -> ordered item list). Both E and N must be comparable so
// they can key a map; re-adding an existing key replaces its value without
// disturbing insertion order.
type Problem[E, N comparable] struct {
	items   *omap.Map[E, itemSpec]
	options *omap.Map[N, []E]
}

// New returns an empty Problem.
func New[E, N comparable]() *Problem[E, N] {
	return &Problem[E, N]{
		items:   omap.New[E, itemSpec](),
		options: omap.New[N, []E](),
	}
}

// AddItem registers item e with multiplicity [min, max]. It fails if
// max < min. Re-adding an existing item overwrites its multiplicity without
// changing its column position.
func (p *Problem[E, N]) AddItem(e E, min, max int) error {
	if max < min {
		return &InvalidMultiplicityError{Min: min, Max: max}
	}
	p.items.Set(e, itemSpec{min: min, max: max})
	return nil
}

// AddExactItem is shorthand for AddItem(e, 1, 1): e must be covered by
// exactly one selected option.
func (p *Problem[E, N]) AddExactItem(e E) error {
	return p.AddItem(e, 1, 1)
}

// AddExactItems calls AddExactItem for every element of es.
func (p *Problem[E, N]) AddExactItems(es []E) error {
	for _, e := range es {
		if err := p.AddExactItem(e); err != nil {
			return err
		}
	}
	return nil
}

// AddOption registers an option named name covering the given items, in
// order. It fails if items contains the same element twice; registering an
// option that references an item never added to the Problem is only caught
// later, at Build time, per the Problem<->Matrix translation contract.
func (p *Problem[E, N]) AddOption(name N, items []E) error {
	seen := make(map[E]bool, len(items))
	for _, e := range items {
		if seen[e] {
			return &DuplicateItemError[N, E]{Option: name, Item: e}
		}
		seen[e] = true
	}
	cp := append([]E(nil), items...)
	p.options.Set(name, cp)
	return nil
}

// ItemCount returns the number of distinct items registered so far.
func (p *Problem[E, N]) ItemCount() int { return p.items.Len() }

// OptionCount returns the number of distinct options registered so far.
func (p *Problem[E, N]) OptionCount() int { return p.options.Len() }

// Build translates the Problem into a Matrix (C1), ready to be handed to
// the Engine or wrapped by a solver.Driver. It returns, alongside the
// Matrix, the option names in the same order as the Matrix's row IDs
// (names[rowID-1] is the option that produced row rowID), so that solution
// row indices can be mapped back to option names.
func (p *Problem[E, N]) Build() (*xcover.Matrix, []N, error) {
	m := xcover.NewMatrix(p.items.Len())
	for i, e := range p.items.Keys() {
		spec, _ := p.items.Get(e)
		m.SetMultiplicity(i+1, spec.min, spec.max)
		m.SetColumnName(i+1, fmt.Sprint(e))
	}

	names := make([]N, 0, p.options.Len())
	for _, name := range p.options.Keys() {
		items, _ := p.options.Get(name)
		cols := make([]int, len(items))
		for j, e := range items {
			idx := p.items.Index(e)
			if idx < 0 {
				return nil, nil, &InvalidItemRefError[N, E]{Option: name, Item: e}
			}
			cols[j] = idx + 1
		}
		if _, err := m.AddRow(cols); err != nil {
			return nil, nil, fmt.Errorf("problem: building option %v: %w", name, err)
		}
		names = append(names, name)
	}

	return m, names, nil
}
