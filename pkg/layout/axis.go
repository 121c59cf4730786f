package layout

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/geom"
)

// Direction is the main axis of a sequential layout.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// IsVertical reports whether d is Vertical.
func (d Direction) IsVertical() bool { return d == Vertical }

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// AxisInfo identifies the axis being sized. When sizing the second axis the
// caller may supply the already-solved size of the first, so content such as
// wrapped text can report an accurate height for a known width.
type AxisInfo struct {
	vertical bool
	hasOther bool
	other    uint32
}

// HorizontalAxis returns a query for the horizontal axis with no known height.
func HorizontalAxis() AxisInfo { return AxisInfo{} }

// VerticalAxis returns a query for the vertical axis with no known width.
func VerticalAxis() AxisInfo { return AxisInfo{vertical: true} }

// NewAxisInfo returns a query along dir with no known other-axis size.
func NewAxisInfo(dir Direction) AxisInfo {
	return AxisInfo{vertical: dir.IsVertical()}
}

// Cross returns a query for the other axis with no known size.
func (a AxisInfo) Cross() AxisInfo {
	return AxisInfo{vertical: !a.vertical}
}

// WithOther returns a copy of a with the other axis fixed to size.
func (a AxisInfo) WithOther(size uint32) AxisInfo {
	a.hasOther = true
	a.other = size
	return a
}

// WithoutOther returns a copy of a with no other-axis size.
func (a AxisInfo) WithoutOther() AxisInfo {
	a.hasOther = false
	a.other = 0
	return a
}

// IsVertical reports whether the vertical axis is being sized.
func (a AxisInfo) IsVertical() bool { return a.vertical }

// IsHorizontal reports whether the horizontal axis is being sized.
func (a AxisInfo) IsHorizontal() bool { return !a.vertical }

// Direction returns the axis being sized as a Direction.
func (a AxisInfo) Direction() Direction {
	if a.vertical {
		return Vertical
	}
	return Horizontal
}

// Other returns the size of the other axis, if known.
func (a AxisInfo) Other() (uint32, bool) {
	return a.other, a.hasOther
}

// String returns a human-readable representation of the query.
func (a AxisInfo) String() string {
	if a.hasOther {
		return fmt.Sprintf("%v(other=%d)", a.Direction(), a.other)
	}
	return a.Direction().String()
}

// Align is an alignment hint along one axis.
type Align uint8

const (
	// AlignDefault lets the widget choose: stretchable widgets fill the
	// offered space, fixed ones keep their ideal size at the leading edge.
	AlignDefault Align = iota
	// AlignLeading places the widget at the start (left or top).
	AlignLeading
	// AlignCentre centres the widget.
	AlignCentre
	// AlignTrailing places the widget at the end (right or bottom).
	AlignTrailing
	// AlignStretch grows the widget to fill the offered space. Ignored for
	// Fixed widgets, which fall back to AlignDefault.
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignDefault:
		return "default"
	case AlignLeading:
		return "leading"
	case AlignCentre:
		return "centre"
	case AlignTrailing:
		return "trailing"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// AlignHints carries independent horizontal and vertical alignment.
type AlignHints struct {
	Horiz, Vert Align
}

// NewAlignHints constructs hints.
func NewAlignHints(horiz, vert Align) AlignHints {
	return AlignHints{Horiz: horiz, Vert: vert}
}

// Get returns the hint for one axis.
func (h AlignHints) Get(dir Direction) Align {
	if dir.IsVertical() {
		return h.Vert
	}
	return h.Horiz
}

// Apply positions a widget of the given ideal size within space.
// stretch holds the widget's horizontal and vertical policies. The result
// never exceeds space.
func (h AlignHints) Apply(ideal geom.Size, space geom.Rect, stretch [2]StretchPolicy) geom.Rect {
	x, w := alignAxis(h.Horiz, ideal.W, space.Pos.X, space.Size.W, stretch[0])
	y, hh := alignAxis(h.Vert, ideal.H, space.Pos.Y, space.Size.H, stretch[1])
	return geom.RectXYWH(x, y, w, hh)
}

func alignAxis(align Align, ideal uint32, pos int32, space uint32, stretch StretchPolicy) (int32, uint32) {
	if align == AlignStretch && stretch == Fixed {
		align = AlignDefault
	}
	switch align {
	case AlignStretch:
		return pos, space
	case AlignDefault:
		if stretch != Fixed {
			return pos, space
		}
		return pos, min(ideal, space)
	}
	size := min(ideal, space)
	excess := space - size
	switch align {
	case AlignCentre:
		return pos + int32(excess/2), size
	case AlignTrailing:
		return pos + int32(excess), size
	default:
		return pos, size
	}
}
