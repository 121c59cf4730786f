package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Frame draws a border of the theme's frame size around one child.
type Frame struct {
	core.CoreData
	child Widget
	inner [2]layout.Margins
}

// NewFrame wraps child in a frame.
func NewFrame(child Widget) *Frame {
	return &Frame{child: child}
}

func (f *Frame) Len() int { return 1 }

func (f *Frame) Get(int) Widget { return f.child }

func (f *Frame) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	border := 2 * sh.FrameSize()
	if other, ok := axis.Other(); ok {
		inner := f.child.SizeRules(sh, axis.Cross()).Margins()
		f.inner[axisIndex(!axis.IsVertical())] = inner
		axis = axis.WithOther(satSub(other, border+inner.Sum()))
	}
	frame := layout.NewSizeRules(border, border, sh.OuterMargins(), layout.Fixed)
	rules := f.child.SizeRules(sh, axis)
	f.inner[axisIndex(axis.IsVertical())] = rules.Margins()
	return rules.SurroundedBy(frame, false)
}

func (f *Frame) SetRect(sh layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	f.StoreRect(rect)
	f.child.SetRect(sh, inset(rect.Shrink(sh.FrameSize()), f.inner), align)
}

// inset shrinks rect by the horizontal and vertical margins in m.
func inset(rect geom.Rect, m [2]layout.Margins) geom.Rect {
	h, v := m[0], m[1]
	rect.Pos.X += int32(h.First)
	rect.Pos.Y += int32(v.First)
	rect.Size.W = satSub(rect.Size.W, h.Sum())
	rect.Size.H = satSub(rect.Size.H, v.Sum())
	return rect
}

func axisIndex(vertical bool) int {
	if vertical {
		return 1
	}
	return 0
}

func satSub(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return 0
}
