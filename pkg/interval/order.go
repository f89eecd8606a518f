package interval

import "cmp"

// Comparable is implemented by types that carry their own total order.
// time.Time, netip.Addr and *semver.Version satisfy it as is.
type Comparable[T any] interface {
	Compare(other T) int
}

// Order is a stateless comparator used as a type parameter of Interval.
// Compare returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Order[T any] interface {
	~struct{}
	Compare(a, b T) int
}

// Natural orders the builtin ordered types.
type Natural[T cmp.Ordered] struct{}

func (Natural[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// Method orders a type by its own Compare method.
type Method[T Comparable[T]] struct{}

func (Method[T]) Compare(a, b T) int { return a.Compare(b) }

func compare[O Order[T], T any](a, b T) int {
	return (*new(O)).Compare(a, b)
}
