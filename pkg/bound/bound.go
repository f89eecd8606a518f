package bound

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/henderiw/rampart/pkg/interval"
	"github.com/henderiw/rampart/pkg/iprange"
	"github.com/pkg/errors"
)

// Summary is the textual form of a parsed interval.
type Summary struct {
	Lesser  string `json:"lesser"`
	Greater string `json:"greater"`
	Empty   bool   `json:"empty"`
}

// ParseRange splits s into its two bounds at the first sep. A leading "-"
// is a sign, so with a hyphen separator "-3--1" splits into "-3" and "-1".
// Any other separator at the start leaves an empty lower bound: "..b" is
// "" to "b". Without a separator both bounds are s.
func ParseRange(s, sep string) (string, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fmt.Errorf("empty range")
	}
	if sep == "" {
		return "", "", fmt.Errorf("empty separator in range %q", s)
	}
	start := 0
	if strings.HasPrefix(sep, "-") && strings.HasPrefix(s, "-") {
		start = 1
	}
	h := strings.Index(s[start:], sep)
	if h == -1 {
		return s, s, nil
	}
	h += start
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+len(sep):])
	if to == "" {
		return "", "", fmt.Errorf("no upper bound in range %q", s)
	}
	return from, to, nil
}

// Relate parses x and y as intervals of kind and returns how x relates to
// y. An empty sep selects the kind's default separator. IP intervals always
// use the ip range syntax.
func Relate(kind Kind, x, y, sep string) (interval.Relation, error) {
	if sep == "" {
		sep = kind.DefaultSeparator()
	}
	switch kind {
	case KindInt:
		return relate[interval.Natural[int64]](x, y, sep, parseInt)
	case KindUint:
		return relate[interval.Natural[uint64]](x, y, sep, parseUint)
	case KindFloat:
		return relate[interval.Natural[float64]](x, y, sep, parseFloat)
	case KindText:
		return relate[interval.Natural[string]](x, y, sep, parseString)
	case KindTime:
		return relate[interval.Method[time.Time]](x, y, sep, parseTime)
	case KindDuration:
		return relate[interval.Natural[time.Duration]](x, y, sep, time.ParseDuration)
	case KindSemver:
		return relate[interval.Method[*semver.Version]](x, y, sep, semver.NewVersion)
	case KindIP:
		r, err := iprange.Relate(x, y)
		return r, errors.Wrapf(err, "cannot relate ip intervals %q and %q", x, y)
	default:
		return 0, fmt.Errorf("unknown kind %s", kind)
	}
}

// Describe parses s as an interval of kind and returns its normalized
// bounds.
func Describe(kind Kind, s, sep string) (Summary, error) {
	if sep == "" {
		sep = kind.DefaultSeparator()
	}
	switch kind {
	case KindInt:
		return describe[interval.Natural[int64]](s, sep, parseInt, fmt.Sprint)
	case KindUint:
		return describe[interval.Natural[uint64]](s, sep, parseUint, fmt.Sprint)
	case KindFloat:
		return describe[interval.Natural[float64]](s, sep, parseFloat, fmt.Sprint)
	case KindText:
		return describe[interval.Natural[string]](s, sep, parseString, fmt.Sprint)
	case KindTime:
		return describe[interval.Method[time.Time]](s, sep, parseTime, formatTime)
	case KindDuration:
		return describe[interval.Natural[time.Duration]](s, sep, time.ParseDuration, fmt.Sprint)
	case KindSemver:
		return describe[interval.Method[*semver.Version]](s, sep, semver.NewVersion, fmt.Sprint)
	case KindIP:
		r, err := iprange.Parse(s)
		if err != nil {
			return Summary{}, errors.Wrapf(err, "invalid ip interval %q", s)
		}
		return Summary{
			Lesser:  r.Lesser().String(),
			Greater: r.Greater().String(),
			Empty:   r.IsEmpty(),
		}, nil
	default:
		return Summary{}, fmt.Errorf("unknown kind %s", kind)
	}
}

func parse[O interval.Order[T], T any](s, sep string, fn func(string) (T, error)) (interval.Interval[T, O], error) {
	from, to, err := ParseRange(s, sep)
	if err != nil {
		return interval.Interval[T, O]{}, err
	}
	x, err := fn(from)
	if err != nil {
		return interval.Interval[T, O]{}, errors.Wrapf(err, "invalid from bound %q in range %q", from, s)
	}
	y, err := fn(to)
	if err != nil {
		return interval.Interval[T, O]{}, errors.Wrapf(err, "invalid to bound %q in range %q", to, s)
	}
	return interval.New[O](x, y), nil
}

func relate[O interval.Order[T], T any](x, y, sep string, fn func(string) (T, error)) (interval.Relation, error) {
	ix, err := parse[O](x, sep, fn)
	if err != nil {
		return 0, err
	}
	iy, err := parse[O](y, sep, fn)
	if err != nil {
		return 0, err
	}
	return interval.Relate(ix, iy), nil
}

func describe[O interval.Order[T], T any](s, sep string, fn func(string) (T, error), format func(...any) string) (Summary, error) {
	r, err := parse[O](s, sep, fn)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Lesser:  format(r.Lesser()),
		Greater: format(r.Greater()),
		Empty:   r.IsEmpty(),
	}, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// NaN parses in Go but is refused as a bound: cmp.Compare sorts it below
// every number, which no caller writing "NaN" means.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("NaN is not accepted as a bound")
	}
	return f, nil
}

func parseString(s string) (string, error) { return s, nil }

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func formatTime(a ...any) string {
	return a[0].(time.Time).UTC().Format(time.RFC3339Nano)
}
