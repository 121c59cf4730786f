package layout

import (
	"fmt"
	"math"
)

// StretchPolicy ranks how eagerly a widget absorbs space beyond its ideal
// size. The order is significant: combining rules keeps the highest policy,
// and excess space goes to the highest class present before any lower class
// grows past its ideal.
type StretchPolicy uint8

const (
	// Fixed widgets never grow beyond their ideal size.
	Fixed StretchPolicy = iota
	// LowUtility widgets may grow, but gain little from doing so.
	LowUtility
	// HighUtility widgets benefit from extra space (e.g. text views).
	HighUtility
	// Filler widgets exist to fill space (e.g. spacers).
	Filler
)

// String returns a human-readable representation of the stretch policy.
func (p StretchPolicy) String() string {
	switch p {
	case Fixed:
		return "fixed"
	case LowUtility:
		return "low_utility"
	case HighUtility:
		return "high_utility"
	case Filler:
		return "filler"
	default:
		return fmt.Sprintf("StretchPolicy(%d)", int(p))
	}
}

// Margins are the space requested before (First) and after (Second) a widget
// along one axis. Adjacent margins overlap: the gap between two siblings is
// the larger of the two facing margins, not their sum.
type Margins struct {
	First, Second uint32
}

// UniformMargins returns margins of v on both sides.
func UniformMargins(v uint32) Margins {
	return Margins{First: v, Second: v}
}

// Sum returns First + Second.
func (m Margins) Sum() uint32 {
	return satAdd(m.First, m.Second)
}

// satAdd returns a + b, saturating at math.MaxUint32.
func satAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}

// SizeRules describe a widget's size preference along one axis.
//
// A SizeRules value is immutable: every combinator returns a new value.
// The zero value is a valid empty rule (min = ideal = 0, Fixed).
type SizeRules struct {
	min     uint32
	ideal   uint32
	margins Margins
	stretch StretchPolicy
}

// EmptyRules is the rule of a widget with no content.
var EmptyRules = SizeRules{}

// NewSizeRules constructs rules. If ideal is less than min it is raised to
// min, so the min <= ideal invariant always holds.
func NewSizeRules(min, ideal uint32, margins Margins, stretch StretchPolicy) SizeRules {
	return SizeRules{
		min:     min,
		ideal:   max(ideal, min),
		margins: margins,
		stretch: stretch,
	}
}

// FixedRules returns rules with min = ideal = size, no margins, Fixed.
func FixedRules(size uint32) SizeRules {
	return SizeRules{min: size, ideal: size}
}

// Min returns the minimum size, excluding margins.
func (r SizeRules) Min() uint32 { return r.min }

// Ideal returns the ideal size, excluding margins.
func (r SizeRules) Ideal() uint32 { return r.ideal }

// Margins returns the outer margins.
func (r SizeRules) Margins() Margins { return r.margins }

// Stretch returns the stretch policy.
func (r SizeRules) Stretch() StretchPolicy { return r.stretch }

// MinWithMargins returns min plus both outer margins.
func (r SizeRules) MinWithMargins() uint32 { return satAdd(r.min, r.margins.Sum()) }

// IdealWithMargins returns ideal plus both outer margins.
func (r SizeRules) IdealWithMargins() uint32 { return satAdd(r.ideal, r.margins.Sum()) }

// WithMargins returns r with its margins replaced.
func (r SizeRules) WithMargins(m Margins) SizeRules {
	r.margins = m
	return r
}

// WithStretch returns r with its stretch policy replaced.
func (r SizeRules) WithStretch(p StretchPolicy) SizeRules {
	r.stretch = p
	return r
}

// Append combines r and rhs in sequence: rhs is placed after r along the
// axis. Sizes add, plus the overlapping margin between them; the result keeps
// r's leading and rhs's trailing margin and the higher stretch policy. Sums
// saturate at math.MaxUint32.
func (r SizeRules) Append(rhs SizeRules) SizeRules {
	gap := max(r.margins.Second, rhs.margins.First)
	return SizeRules{
		min:     satAdd(satAdd(r.min, gap), rhs.min),
		ideal:   satAdd(satAdd(r.ideal, gap), rhs.ideal),
		margins: Margins{First: r.margins.First, Second: rhs.margins.Second},
		stretch: max(r.stretch, rhs.stretch),
	}
}

// MaxWith combines r and rhs in parallel: both occupy the same span of the
// axis. Every component is the maximum of the two.
func (r SizeRules) MaxWith(rhs SizeRules) SizeRules {
	return SizeRules{
		min:   max(r.min, rhs.min),
		ideal: max(r.ideal, rhs.ideal),
		margins: Margins{
			First:  max(r.margins.First, rhs.margins.First),
			Second: max(r.margins.Second, rhs.margins.Second),
		},
		stretch: max(r.stretch, rhs.stretch),
	}
}

// SurroundedBy wraps r in frame: the frame's min and ideal are added to r's,
// and the frame's margins replace r's (r's own margins sit inside the frame
// and are included in the sum). The stretch policy is kept unless
// inflateStretch is set, in which case the higher of the two is used.
func (r SizeRules) SurroundedBy(frame SizeRules, inflateStretch bool) SizeRules {
	stretch := r.stretch
	if inflateStretch {
		stretch = max(stretch, frame.stretch)
	}
	inner := r.margins.Sum()
	return SizeRules{
		min:     satAdd(satAdd(r.min, inner), frame.min),
		ideal:   satAdd(satAdd(r.ideal, inner), frame.ideal),
		margins: frame.margins,
		stretch: stretch,
	}
}

// SumRules folds rules with Append. An empty slice yields EmptyRules.
func SumRules(rules []SizeRules) SizeRules {
	if len(rules) == 0 {
		return EmptyRules
	}
	acc := rules[0]
	for _, r := range rules[1:] {
		acc = acc.Append(r)
	}
	return acc
}

// MaxRules folds rules with MaxWith. An empty slice yields EmptyRules.
func MaxRules(rules []SizeRules) SizeRules {
	if len(rules) == 0 {
		return EmptyRules
	}
	acc := rules[0]
	for _, r := range rules[1:] {
		acc = acc.MaxWith(r)
	}
	return acc
}

// String returns a human-readable representation of the rules.
func (r SizeRules) String() string {
	return fmt.Sprintf("SizeRules{min: %d, ideal: %d, margins: (%d, %d), stretch: %v}",
		r.min, r.ideal, r.margins.First, r.margins.Second, r.stretch)
}
