package interval

import (
	"cmp"
	"fmt"
)

// Interval is a closed interval [lesser, greater] ordered by O. The zero
// value is the empty interval at the zero value of T.
type Interval[T any, O Order[T]] struct {
	lesser  T
	greater T
}

// New returns the interval bounded by x and y. The arguments may be given
// in either order.
func New[O Order[T], T any](x, y T) Interval[T, O] {
	if compare[O](x, y) <= 0 {
		return Interval[T, O]{lesser: x, greater: y}
	}
	return Interval[T, O]{lesser: y, greater: x}
}

// Of returns an interval over a builtin ordered type.
func Of[T cmp.Ordered](x, y T) Interval[T, Natural[T]] {
	return New[Natural[T]](x, y)
}

// OfComparable returns an interval over a type ordered by its Compare method.
func OfComparable[T Comparable[T]](x, y T) Interval[T, Method[T]] {
	return New[Method[T]](x, y)
}

// Lesser returns the lower bound of r.
func (r Interval[T, O]) Lesser() T { return r.lesser }

// Greater returns the upper bound of r.
func (r Interval[T, O]) Greater() T { return r.greater }

// IsEmpty reports whether both bounds of r are equal. An empty interval
// still covers a single point.
func (r Interval[T, O]) IsEmpty() bool {
	return compare[O](r.lesser, r.greater) == 0
}

func (r Interval[T, O]) IsNonEmpty() bool {
	return !r.IsEmpty()
}

// Equal reports whether r and other have the same bounds under O.
func (r Interval[T, O]) Equal(other Interval[T, O]) bool {
	return compare[O](r.lesser, other.lesser) == 0 &&
		compare[O](r.greater, other.greater) == 0
}

// Relate returns how r relates to other.
func (r Interval[T, O]) Relate(other Interval[T, O]) Relation {
	return Relate(r, other)
}

func (r Interval[T, O]) String() string {
	return fmt.Sprintf("[%v, %v]", r.lesser, r.greater)
}
