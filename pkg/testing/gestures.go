package testing

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
)

// Mouse is the press source used by the single-pointer helpers.
var Mouse = event.Mouse(event.ButtonLeft)

// center returns the centre of the first widget matched by finder.
func (t *WidgetTester) center(op string, finder Finder) (geom.Coord, error) {
	if t.engine == nil {
		return geom.Coord{}, ErrNotPumped
	}
	rect, ok := t.Find(finder).Rect()
	if !ok {
		return geom.Coord{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return rect.Center(), nil
}

// Tap simulates a mouse click at the centre of the first widget matched by
// finder and pumps.
func (t *WidgetTester) Tap(finder Finder) error {
	pos, err := t.center("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(pos)
}

// TapAt simulates a mouse click at pos and pumps.
func (t *WidgetTester) TapAt(pos geom.Coord) error {
	if err := t.SendPress(Mouse, event.PhaseStart, pos); err != nil {
		return err
	}
	if err := t.SendPress(Mouse, event.PhaseEnd, pos); err != nil {
		return err
	}
	return t.Pump()
}

// Drag simulates a mouse drag by delta starting at the centre of the first
// widget matched by finder.
func (t *WidgetTester) Drag(finder Finder, delta geom.Coord) error {
	start, err := t.center("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom simulates a mouse drag from start by delta, moving in
// dragSteps equal steps before releasing, and pumps.
func (t *WidgetTester) DragFrom(start, delta geom.Coord) error {
	return t.dragWith(Mouse, start, delta)
}

// TouchDrag is DragFrom using a fresh touch source.
func (t *WidgetTester) TouchDrag(start, delta geom.Coord) error {
	t.nextTouch++
	return t.dragWith(event.Touch(t.nextTouch), start, delta)
}

const dragSteps = 4

func (t *WidgetTester) dragWith(source event.PressSource, start, delta geom.Coord) error {
	if err := t.SendPress(source, event.PhaseStart, start); err != nil {
		return err
	}
	pos := start
	for i := 1; i <= dragSteps; i++ {
		pos = geom.Coord{
			X: start.X + delta.X*int32(i)/dragSteps,
			Y: start.Y + delta.Y*int32(i)/dragSteps,
		}
		if err := t.SendPress(source, event.PhaseMove, pos); err != nil {
			return err
		}
	}
	if err := t.SendPress(source, event.PhaseEnd, pos); err != nil {
		return err
	}
	return t.Pump()
}

// SendPress queues one raw press event without pumping.
func (t *WidgetTester) SendPress(source event.PressSource, phase event.PressPhase, pos geom.Coord) error {
	if t.engine == nil {
		return ErrNotPumped
	}
	t.engine.PushPress(source, phase, pos)
	return nil
}

// SendCancel queues cancellation of source without pumping.
func (t *WidgetTester) SendCancel(source event.PressSource) error {
	if t.engine == nil {
		return ErrNotPumped
	}
	t.engine.PushCancel(source)
	return nil
}

// SendAction delivers action to the first widget matched by finder and
// pumps.
func (t *WidgetTester) SendAction(finder Finder, action event.Action) error {
	if t.engine == nil {
		return ErrNotPumped
	}
	id := t.Find(finder).ID()
	if !id.IsValid() {
		return fmt.Errorf("SendAction: finder matched no widgets: %s", finder.Description())
	}
	return t.SendActionTo(id, action)
}

// SendActionTo delivers action to id and pumps.
func (t *WidgetTester) SendActionTo(id core.WidgetID, action event.Action) error {
	if t.engine == nil {
		return ErrNotPumped
	}
	t.engine.PushAction(id, action)
	return t.Pump()
}

// Scroll sends a line scroll to the first widget matched by finder.
func (t *WidgetTester) Scroll(finder Finder, lines geom.Vec2) error {
	return t.SendAction(finder, event.Scroll(event.LineDelta(lines.X, lines.Y)))
}

// EnterText types text, one character at a time, into the char-focus
// owner and pumps.
func (t *WidgetTester) EnterText(text string) error {
	if t.engine == nil {
		return ErrNotPumped
	}
	for _, r := range text {
		t.engine.PushCharacter(r)
	}
	return t.Pump()
}
