package widgets

import (
	"unicode"
	"unicode/utf8"

	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// EditMsg is emitted when the user confirms an edit box with Enter.
type EditMsg struct {
	Text string
}

// EditBox is a single-line text entry.
//
// Clicking or activating the box requests char focus; characters then
// arrive as ReceivedCharacter actions. Backspace deletes the last character
// and Enter emits an EditMsg.
type EditBox struct {
	Leaf
	text    string
	focused bool
	rules   [2]layout.SizeRules
}

// NewEditBox creates an edit box holding text.
func NewEditBox(text string) *EditBox {
	return &EditBox{text: text}
}

// Text returns the current contents.
func (e *EditBox) Text() string { return e.text }

// SetText replaces the contents.
func (e *EditBox) SetText(text string) { e.text = text }

// HasFocus reports whether the box currently receives characters.
func (e *EditBox) HasFocus() bool { return e.focused }

func (e *EditBox) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	border := 2 * sh.FrameSize()
	frame := layout.NewSizeRules(border, border, sh.OuterMargins(), layout.Fixed)
	r := sh.TextBound(e.text, layout.TextEdit, axis).SurroundedBy(frame, false)
	e.rules[axisIndex(axis.IsVertical())] = r
	return r
}

func (e *EditBox) SetRect(_ layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	ideal := geom.Size{W: e.rules[0].Ideal(), H: e.rules[1].Ideal()}
	e.storeAligned(ideal, rect, align, [2]layout.StretchPolicy{e.rules[0].Stretch(), e.rules[1].Stretch()})
}

func (e *EditBox) focus(mgr *event.Manager) {
	mgr.RequestCharFocus(e.ID())
	if !e.focused {
		e.focused = true
		mgr.Redraw(e.ID())
	}
}

func (e *EditBox) HandleEvent(mgr *event.Manager, ev event.Event) event.Response {
	switch ev.Kind {
	case event.EventPressStart:
		if ev.Source.IsPrimary() {
			e.focus(mgr)
			return event.None()
		}
	case event.EventAction:
		switch ev.Action.Kind {
		case event.ActionActivate:
			e.focus(mgr)
			return event.None()
		case event.ActionLostCharFocus:
			e.focused = false
			mgr.Redraw(e.ID())
			return event.None()
		case event.ActionReceivedCharacter:
			return e.receive(mgr, ev.Action.Char)
		}
	}
	return event.Unhandled(ev)
}

func (e *EditBox) receive(mgr *event.Manager, r rune) event.Response {
	switch {
	case r == '\r' || r == '\n':
		return event.Msg(EditMsg{Text: e.text})
	case r == '\b' || r == 0x7f:
		if _, size := utf8.DecodeLastRuneInString(e.text); size > 0 {
			e.text = e.text[:len(e.text)-size]
			mgr.Redraw(e.ID())
		}
		return event.None()
	case unicode.IsControl(r):
		return event.None()
	}
	e.text += string(r)
	mgr.Redraw(e.ID())
	return event.None()
}
