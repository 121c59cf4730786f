package widgets

import (
	"math"

	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// SliderMsg is emitted whenever a slider's value changes.
type SliderMsg struct {
	Value float64
}

// Slider selects a value in [Min, Max] by dragging along its direction or by
// scrolling.
//
// A press anywhere on the slider grabs the source and jumps the value to the
// pressed position; later moves adjust the value by the move delta, so the
// drag keeps working once the pointer leaves the slider.
type Slider struct {
	Leaf
	dir   layout.Direction
	min   float64
	max   float64
	step  float64
	value float64
}

// NewSlider creates a slider over [lo, hi] with the given scroll step.
// The value starts at lo.
func NewSlider(dir layout.Direction, lo, hi, step float64) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	return &Slider{dir: dir, min: lo, max: hi, step: step, value: lo}
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value, clamped to the slider's range, and reports
// whether it changed.
func (s *Slider) SetValue(v float64) bool {
	v = math.Max(s.min, math.Min(s.max, v))
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

func (s *Slider) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	lh := sh.LineHeight()
	if axis.Direction() == s.dir {
		return layout.NewSizeRules(3*lh, 8*lh, sh.OuterMargins(), layout.HighUtility)
	}
	return layout.NewSizeRules(lh, lh, sh.OuterMargins(), layout.Fixed)
}

func (s *Slider) SetRect(_ layout.SizeHandle, rect geom.Rect, _ layout.AlignHints) {
	s.StoreRect(rect)
}

// length returns the track length in pixels.
func (s *Slider) length() float64 {
	return float64(s.Rect().Size.Get(s.dir.IsVertical()))
}

// valueAt maps a coordinate to a value.
func (s *Slider) valueAt(c geom.Coord) float64 {
	l := s.length()
	if l == 0 {
		return s.value
	}
	pos := float64(c.X - s.Rect().Pos.X)
	if s.dir.IsVertical() {
		pos = float64(c.Y - s.Rect().Pos.Y)
	}
	return s.min + (s.max-s.min)*pos/l
}

func (s *Slider) changed(mgr *event.Manager, ok bool) event.Response {
	if !ok {
		return event.None()
	}
	mgr.Redraw(s.ID())
	return event.Msg(SliderMsg{Value: s.value})
}

func (s *Slider) HandleEvent(mgr *event.Manager, ev event.Event) event.Response {
	switch ev.Kind {
	case event.EventPressStart:
		if !ev.Source.IsPrimary() || !mgr.RequestGrab(s.ID(), ev.Source, ev.Coord) {
			return event.Unhandled(ev)
		}
		return s.changed(mgr, s.SetValue(s.valueAt(ev.Coord)))
	case event.EventPressMove:
		l := s.length()
		if l == 0 {
			return event.None()
		}
		d := float64(ev.Delta.X)
		if s.dir.IsVertical() {
			d = float64(ev.Delta.Y)
		}
		return s.changed(mgr, s.SetValue(s.value+(s.max-s.min)*d/l))
	case event.EventPressEnd:
		return event.None()
	case event.EventAction:
		if ev.Action.Kind == event.ActionScroll && !ev.Action.Scroll.IsPixels() {
			d := ev.Action.Scroll.LineY
			if !s.dir.IsVertical() && ev.Action.Scroll.LineX != 0 {
				d = ev.Action.Scroll.LineX
			}
			if d == 0 {
				return event.Unhandled(ev)
			}
			return s.changed(mgr, s.SetValue(s.value+float64(d)*s.step))
		}
	}
	return event.Unhandled(ev)
}
