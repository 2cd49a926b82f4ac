package problem

import "fmt"

// InvalidMultiplicityError is returned by AddItem when max < min.
type InvalidMultiplicityError struct {
	Min, Max int
}

func (e *InvalidMultiplicityError) Error() string {
	return fmt.Sprintf("problem: invalid multiplicity [%d,%d]: max must be >= min", e.Min, e.Max)
}

// DuplicateItemError is returned by AddOption when the same item appears
// more than once in a single option's item list.
type DuplicateItemError[N, E comparable] struct {
	Option N
	Item   E
}

func (e *DuplicateItemError[N, E]) Error() string {
	return fmt.Sprintf("problem: duplicate item %v within option %v", e.Item, e.Option)
}

// InvalidItemRefError is returned while translating a Problem to a Matrix
// when an option references an item that was never added with AddItem.
type InvalidItemRefError[N, E comparable] struct {
	Option N
	Item   E
}

func (e *InvalidItemRefError[N, E]) Error() string {
	return fmt.Sprintf("problem: option %v references unregistered item %v", e.Option, e.Item)
}
