// Package interval provides closed intervals over any totally ordered type
// and classifies the relation between two of them according to Allen's
// interval algebra.
//
// An interval is built from two bounds in any order:
//
//	x := interval.Of(2, 3)
//	y := interval.Of(7, 3)
//	x.Relate(y) // interval.Meets
//
// Builtin ordered types use the Natural order. Types with a
// Compare(T) int method, like time.Time or netip.Addr, use OfComparable.
// Intervals are immutable values and safe to share between goroutines.
package interval
