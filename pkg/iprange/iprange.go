package iprange

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rampart/pkg/interval"
	"go4.org/netipx"
)

// Interval is a closed interval of ip addresses of one address family.
type Interval = interval.Interval[netip.Addr, interval.Method[netip.Addr]]

// New returns the interval between from and to, in either order.
func New(from, to netip.Addr) (Interval, error) {
	if !from.IsValid() || !to.IsValid() {
		return Interval{}, fmt.Errorf("invalid ip address in range %s-%s", from, to)
	}
	if from.Is4() != to.Is4() {
		return Interval{}, fmt.Errorf("ip addresses %s and %s are of a different address family", from, to)
	}
	return interval.OfComparable(from, to), nil
}

func FromIPRange(r netipx.IPRange) (Interval, error) {
	if !r.IsValid() {
		return Interval{}, fmt.Errorf("invalid ip range %s", r.String())
	}
	return New(r.From(), r.To())
}

// FromPrefix returns the interval covering every address of the prefix.
func FromPrefix(p netip.Prefix) (Interval, error) {
	if !p.IsValid() {
		return Interval{}, fmt.Errorf("invalid prefix %s", p.String())
	}
	return FromIPRange(netipx.RangeOfPrefix(p))
}

// FromRoute returns the interval covered by the prefix of an ipam route.
func FromRoute(route table.Route) (Interval, error) {
	return FromPrefix(route.Prefix())
}

// Parse accepts a range "from-to", a prefix "a.b.c.d/n" or a single address.
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "-"):
		h := strings.IndexByte(s, '-')
		from, err := netip.ParseAddr(s[:h])
		if err != nil {
			return Interval{}, fmt.Errorf("invalid from address %q in range %q", s[:h], s)
		}
		to, err := netip.ParseAddr(s[h+1:])
		if err != nil {
			return Interval{}, fmt.Errorf("invalid to address %q in range %q", s[h+1:], s)
		}
		return New(from, to)
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return Interval{}, err
		}
		return FromPrefix(p)
	default:
		a, err := netip.ParseAddr(s)
		if err != nil {
			return Interval{}, fmt.Errorf("ip address %s is invalid", s)
		}
		return New(a, a)
	}
}

func ToIPRange(r Interval) netipx.IPRange {
	return netipx.IPRangeFrom(r.Lesser(), r.Greater())
}

// Size returns the number of addresses in r, bounds included.
func Size(r Interval) *big.Int {
	diff := new(big.Int).Sub(ipToInt(r.Greater()), ipToInt(r.Lesser()))
	return diff.Add(diff, big.NewInt(1))
}

// Relate parses x and y and returns how x relates to y. Ranges of different
// address families cannot be related.
func Relate(x, y string) (interval.Relation, error) {
	ix, err := Parse(x)
	if err != nil {
		return 0, err
	}
	iy, err := Parse(y)
	if err != nil {
		return 0, err
	}
	if ix.Lesser().Is4() != iy.Lesser().Is4() {
		return 0, fmt.Errorf("cannot relate %s and %s: different address family", x, y)
	}
	return ix.Relate(iy), nil
}

// RelateRoutes returns how the prefix of route x relates to the prefix of
// route y.
func RelateRoutes(x, y table.Route) (interval.Relation, error) {
	ix, err := FromRoute(x)
	if err != nil {
		return 0, err
	}
	iy, err := FromRoute(y)
	if err != nil {
		return 0, err
	}
	if ix.Lesser().Is4() != iy.Lesser().Is4() {
		return 0, fmt.Errorf("cannot relate routes %s and %s: different address family", x.Prefix(), y.Prefix())
	}
	return ix.Relate(iy), nil
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	ipInt := new(big.Int)
	ipInt.SetBytes(bytes[:])
	return ipInt
}
