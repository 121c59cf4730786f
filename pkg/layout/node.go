// Package layout implements two-pass size negotiation between widgets.
//
// In the first pass every widget reports SizeRules for each axis; composites
// derive theirs by combining their children's rules. In the second pass the
// root is given its final rectangle and each composite subdivides its own
// rectangle among its children using the same policy it used to combine
// their rules. Widgets never learn about their siblings.
//
// The horizontal axis is sized first. The vertical query then carries the
// solved width so that width-for-height content, such as wrapped text, can
// report an accurate height.
package layout

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/geom"
)

// Node is the layout capability implemented by every widget.
type Node interface {
	// SizeRules reports the node's size preference along axis. It must be
	// free of observable side effects and may be called any number of times,
	// in either axis order, before SetRect.
	SizeRules(sh SizeHandle, axis AxisInfo) SizeRules

	// SetRect assigns the node's final rectangle. Composites must subdivide
	// rect using the rules from their most recent SizeRules calls.
	SetRect(sh SizeHandle, rect geom.Rect, align AlignHints)
}

// TextClass selects the metrics used for a piece of text.
type TextClass uint8

const (
	TextLabel TextClass = iota
	TextButton
	TextEdit
)

// String returns a human-readable representation of the text class.
func (c TextClass) String() string {
	switch c {
	case TextLabel:
		return "label"
	case TextButton:
		return "button"
	case TextEdit:
		return "edit"
	default:
		return fmt.Sprintf("TextClass(%d)", int(c))
	}
}

// SizeHandle supplies theme metrics to SizeRules implementations.
type SizeHandle interface {
	// OuterMargins returns the default margins around a leaf widget.
	OuterMargins() Margins
	// InnerMargin returns the padding between content and a widget's edge.
	InnerMargin() uint32
	// FrameSize returns the thickness of one side of a frame.
	FrameSize() uint32
	// LineHeight returns the height of one line of label text.
	LineHeight() uint32
	// TextBound returns the rules for text of the given class along axis.
	// When sizing the vertical axis with a known width, the text is wrapped
	// to that width.
	TextBound(text string, class TextClass, axis AxisInfo) SizeRules
}

// Solve computes the root's minimum and ideal sizes, margins included. The
// horizontal axis is solved first; the vertical query is given the ideal
// width.
func Solve(root Node, sh SizeHandle) (minSize, ideal geom.Size) {
	w := root.SizeRules(sh, HorizontalAxis())
	h := root.SizeRules(sh, VerticalAxis().WithOther(w.Ideal()))
	minSize = geom.Size{W: w.MinWithMargins(), H: h.MinWithMargins()}
	ideal = geom.Size{W: w.IdealWithMargins(), H: h.IdealWithMargins()}
	return minSize, ideal
}

// SolveAndSet runs both passes for a surface of the given size: rules are
// computed (vertical given the actual width) and the root is assigned the
// surface rectangle less its outer margins. It returns the root's minimum and
// ideal sizes as Solve does.
func SolveAndSet(root Node, sh SizeHandle, size geom.Size) (minSize, ideal geom.Size) {
	w := root.SizeRules(sh, HorizontalAxis())
	wm := w.Margins()
	width := satSub(size.W, wm.Sum())
	h := root.SizeRules(sh, VerticalAxis().WithOther(width))
	hm := h.Margins()
	height := satSub(size.H, hm.Sum())

	rect := geom.RectXYWH(int32(wm.First), int32(hm.First), width, height)
	root.SetRect(sh, rect, AlignHints{})

	minSize = geom.Size{W: w.MinWithMargins(), H: h.MinWithMargins()}
	ideal = geom.Size{W: w.IdealWithMargins(), H: h.IdealWithMargins()}
	return minSize, ideal
}

func satSub(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return 0
}
