package value

// PadType names the fill policy used by AccessPad. The set is extensible;
// only ZeroPadding is defined today.
type PadType int

const (
	// ZeroPadding fills with the element type's additive identity.
	ZeroPadding PadType = iota
)

// String renders the PadType using the textual concrete syntax token from
// spec §6.3.
func (p PadType) String() string {
	switch p {
	case ZeroPadding:
		return "zero-padding"
	default:
		return "unknown-pad-type"
	}
}
