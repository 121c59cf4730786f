package widgets

import (
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// TextButton is a push button with a text label.
//
// A primary press grabs the source. Releasing over the button emits Msg;
// releasing elsewhere, or a cancelled press, does nothing. Activate emits Msg
// directly.
type TextButton struct {
	Leaf
	label   string
	msg     any
	pressed bool
	rules   [2]layout.SizeRules
}

// NewTextButton creates a button that emits msg when clicked.
func NewTextButton(label string, msg any) *TextButton {
	return &TextButton{label: label, msg: msg}
}

// Label returns the button's text.
func (b *TextButton) Label() string { return b.label }

// Pressed reports whether a press is in progress and currently over the
// button.
func (b *TextButton) Pressed() bool { return b.pressed }

func (b *TextButton) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	border := 2 * sh.FrameSize()
	frame := layout.NewSizeRules(border, border, sh.OuterMargins(), layout.Fixed)
	r := sh.TextBound(b.label, layout.TextButton, axis).SurroundedBy(frame, false)
	b.rules[axisIndex(axis.IsVertical())] = r
	return r
}

func (b *TextButton) SetRect(_ layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	ideal := geom.Size{W: b.rules[0].Ideal(), H: b.rules[1].Ideal()}
	b.storeAligned(ideal, rect, align, [2]layout.StretchPolicy{b.rules[0].Stretch(), b.rules[1].Stretch()})
}

func (b *TextButton) HandleEvent(mgr *event.Manager, ev event.Event) event.Response {
	id := b.ID()
	switch ev.Kind {
	case event.EventAction:
		if ev.Action.Kind == event.ActionActivate {
			return event.Msg(b.msg)
		}
	case event.EventPressStart:
		if ev.Source.IsPrimary() && mgr.RequestGrab(id, ev.Source, ev.Coord) {
			b.pressed = true
			mgr.Redraw(id)
			return event.None()
		}
	case event.EventPressMove:
		over := b.Rect().Contains(ev.Coord)
		if over != b.pressed {
			b.pressed = over
			mgr.Redraw(id)
		}
		return event.None()
	case event.EventPressEnd:
		b.pressed = false
		mgr.Redraw(id)
		if !ev.Cancelled() && b.IsAncestorOf(ev.EndID) {
			return event.Msg(b.msg)
		}
		return event.None()
	}
	return event.Unhandled(ev)
}
