//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=kebab -linecomment -text
package bound

// Kind selects how bound text is parsed and ordered.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindText // string
	// KindTime bounds are RFC 3339 timestamps.
	KindTime
	// KindDuration bounds use time.ParseDuration syntax, e.g. 1h30m.
	KindDuration
	// KindIP bounds are ip addresses; a whole interval may also be given
	// as a prefix.
	KindIP
	KindSemver
)

// DefaultSeparator returns the text placed between the two bounds of an
// interval of kind k. Kinds whose values may contain a hyphen past the sign,
// such as a float exponent, use "..".
func (k Kind) DefaultSeparator() string {
	switch k {
	case KindFloat, KindTime, KindText, KindSemver:
		return ".."
	default:
		return "-"
	}
}
