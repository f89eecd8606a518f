//go:generate go tool enumer -type=Relation -transform=kebab -text -json
package interval

// Relation describes how an interval x relates to an interval y. The 13
// values are mutually exclusive and together cover every pair of intervals.
type Relation int

const (
	// Before: x ends before y starts.
	//
	//	+---+
	//	| x |
	//	+---+
	//	      +---+
	//	      | y |
	//	      +---+
	Before Relation = iota

	// Meets: x ends where y starts.
	//
	//	+---+
	//	| x |
	//	+---+
	//	    +---+
	//	    | y |
	//	    +---+
	Meets

	// Overlaps: x starts first and ends inside y.
	//
	//	+---+
	//	| x |
	//	+---+
	//	  +---+
	//	  | y |
	//	  +---+
	Overlaps

	// FinishedBy: x starts first and both end together.
	//
	//	+-----+
	//	|  x  |
	//	+-----+
	//	  +---+
	//	  | y |
	//	  +---+
	FinishedBy

	// Contains: y lies strictly inside x.
	//
	//	+-------+
	//	|   x   |
	//	+-------+
	//	  +---+
	//	  | y |
	//	  +---+
	Contains

	// Starts: both start together and x ends first.
	//
	//	+---+
	//	| x |
	//	+---+
	//	+-----+
	//	|  y  |
	//	+-----+
	Starts

	// Equal: same bounds.
	//
	//	+---+
	//	| x |
	//	+---+
	//	+---+
	//	| y |
	//	+---+
	Equal

	// StartedBy: both start together and y ends first.
	//
	//	+-----+
	//	|  x  |
	//	+-----+
	//	+---+
	//	| y |
	//	+---+
	StartedBy

	// During: x lies strictly inside y.
	//
	//	  +---+
	//	  | x |
	//	  +---+
	//	+-------+
	//	|   y   |
	//	+-------+
	During

	// Finishes: y starts first and both end together.
	//
	//	  +---+
	//	  | x |
	//	  +---+
	//	+-----+
	//	|  y  |
	//	+-----+
	Finishes

	// OverlappedBy: y starts first and ends inside x.
	//
	//	  +---+
	//	  | x |
	//	  +---+
	//	+---+
	//	| y |
	//	+---+
	OverlappedBy

	// MetBy: x starts where y ends.
	//
	//	    +---+
	//	    | x |
	//	    +---+
	//	+---+
	//	| y |
	//	+---+
	MetBy

	// After: x starts after y ends.
	//
	//	      +---+
	//	      | x |
	//	      +---+
	//	+---+
	//	| y |
	//	+---+
	After
)

// Inverse returns the relation of y to x given the relation of x to y.
// The values are laid out symmetrically around Equal.
func (r Relation) Inverse() Relation {
	if !r.IsARelation() {
		return r
	}
	return After - r
}

// Relate returns how interval x relates to interval y.
//
// The rules are evaluated in order and the first match wins. The boundary
// rules come first so that an empty interval sitting on an endpoint of the
// other interval is reported as Overlaps or OverlappedBy instead of Meets,
// MetBy, Before or After.
func Relate[T any, O Order[T]](x, y Interval[T, O]) Relation {
	lxly := compare[O](x.lesser, y.lesser)
	lxgy := compare[O](x.lesser, y.greater)
	gxly := compare[O](x.greater, y.lesser)
	gxgy := compare[O](x.greater, y.greater)

	switch {
	case lxly == 0 && gxgy == 0:
		return Equal
	case gxly < 0:
		return Before
	case lxly < 0 && gxly == 0 && gxgy < 0:
		return Meets
	case gxly == 0:
		return Overlaps
	case lxly > 0 && lxgy == 0 && gxgy > 0:
		return MetBy
	case lxgy == 0:
		return OverlappedBy
	case lxgy > 0:
		return After
	// from here on no bound of x coincides with a bound of y across sides
	case lxly < 0 && gxgy < 0:
		return Overlaps
	case lxly < 0 && gxgy == 0:
		return FinishedBy
	case lxly < 0 && gxgy > 0:
		return Contains
	case lxly == 0 && gxgy < 0:
		return Starts
	case lxly == 0 && gxgy > 0:
		return StartedBy
	case lxly > 0 && gxgy < 0:
		return During
	case lxly > 0 && gxgy == 0:
		return Finishes
	default:
		// lxly > 0 && gxgy > 0
		return OverlappedBy
	}
}
