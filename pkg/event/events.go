// Package event implements input dispatch for a widget tree.
//
// Raw input arrives in two shapes. Coordinate-addressed presses (mouse
// buttons and touches) are hit-tested against the tree, and a widget that
// opts in by calling Manager.RequestGrab during its PressStart receives every
// later move and the final end for that source, even once the pointer has
// left its bounds. Id-addressed actions (activate, scroll, pan, characters,
// focus loss, timers) are delivered straight to the widget owning the id.
//
// Every delivery returns a Response; an Unhandled response is offered to the
// recipient's ancestors, nearest first, by the tree's Send implementation.
package event

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/geom"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other"
	}
}

// PressSource identifies one independent input stream: a mouse button or a
// single touch. PressSource values are comparable and used as grab keys.
type PressSource struct {
	touch  bool
	button MouseButton
	id     uint64
}

// Mouse returns the press source for a mouse button.
func Mouse(b MouseButton) PressSource {
	return PressSource{button: b}
}

// Touch returns the press source for the touch with the given id.
func Touch(id uint64) PressSource {
	return PressSource{touch: true, id: id}
}

// IsMouse reports whether s is a mouse button.
func (s PressSource) IsMouse() bool { return !s.touch }

// IsTouch reports whether s is a touch.
func (s PressSource) IsTouch() bool { return s.touch }

// Button returns the mouse button. It is meaningless for touches.
func (s PressSource) Button() MouseButton { return s.button }

// TouchID returns the touch id. It is meaningless for mouse sources.
func (s PressSource) TouchID() uint64 { return s.id }

// IsPrimary reports whether s should trigger primary actions: the left mouse
// button or any touch.
func (s PressSource) IsPrimary() bool {
	return s.touch || s.button == ButtonLeft
}

func (s PressSource) String() string {
	if s.touch {
		return fmt.Sprintf("Touch(%d)", s.id)
	}
	return fmt.Sprintf("Mouse(%s)", s.button)
}

// ScrollDelta is a scroll amount, either in lines or in pixels.
type ScrollDelta struct {
	pixels bool
	LineX  float32
	LineY  float32
	Pixel  geom.Coord
}

// LineDelta returns a scroll by whole or fractional lines.
func LineDelta(x, y float32) ScrollDelta {
	return ScrollDelta{LineX: x, LineY: y}
}

// PixelDelta returns a scroll by a pixel offset.
func PixelDelta(d geom.Coord) ScrollDelta {
	return ScrollDelta{pixels: true, Pixel: d}
}

// IsPixels reports whether the delta is in pixels rather than lines.
func (d ScrollDelta) IsPixels() bool { return d.pixels }

// ToPixels converts the delta to pixels given a line height.
func (d ScrollDelta) ToPixels(lineHeight uint32) geom.Coord {
	if d.pixels {
		return d.Pixel
	}
	lh := float32(lineHeight)
	return geom.Coord{X: int32(d.LineX * lh), Y: int32(d.LineY * lh)}
}

func (d ScrollDelta) String() string {
	if d.pixels {
		return fmt.Sprintf("PixelDelta%v", d.Pixel)
	}
	return fmt.Sprintf("LineDelta(%g, %g)", d.LineX, d.LineY)
}

// ActionKind identifies the variant of an Action.
type ActionKind uint8

const (
	// ActionActivate asks the widget to perform its primary action, as if
	// clicked.
	ActionActivate ActionKind = iota
	// ActionReceivedCharacter carries one character of text input to the
	// char-focus owner.
	ActionReceivedCharacter
	// ActionScroll carries a scroll wheel or touchpad delta.
	ActionScroll
	// ActionPan carries a two-finger transform: Alpha is the rotation and
	// scale as a complex multiplier, Delta the translation.
	ActionPan
	// ActionLostCharFocus tells the previous char-focus owner it lost focus.
	ActionLostCharFocus
	// ActionTimerUpdate is delivered when a timer requested with
	// Manager.UpdateOnTimer expires.
	ActionTimerUpdate
)

func (k ActionKind) String() string {
	switch k {
	case ActionActivate:
		return "Activate"
	case ActionReceivedCharacter:
		return "ReceivedCharacter"
	case ActionScroll:
		return "Scroll"
	case ActionPan:
		return "Pan"
	case ActionLostCharFocus:
		return "LostCharFocus"
	case ActionTimerUpdate:
		return "TimerUpdate"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action is a high-level, id-addressed event. Only the fields relevant to
// Kind are set.
type Action struct {
	Kind   ActionKind
	Char   rune
	Scroll ScrollDelta
	Alpha  geom.Vec2
	Delta  geom.Vec2
}

// Activate returns an ActionActivate action.
func Activate() Action { return Action{Kind: ActionActivate} }

// ReceivedCharacter returns an action carrying r.
func ReceivedCharacter(r rune) Action {
	return Action{Kind: ActionReceivedCharacter, Char: r}
}

// Scroll returns a scroll action.
func Scroll(d ScrollDelta) Action {
	return Action{Kind: ActionScroll, Scroll: d}
}

// Pan returns a pan action.
func Pan(alpha, delta geom.Vec2) Action {
	return Action{Kind: ActionPan, Alpha: alpha, Delta: delta}
}

// LostCharFocus returns an ActionLostCharFocus action.
func LostCharFocus() Action { return Action{Kind: ActionLostCharFocus} }

// TimerUpdate returns an ActionTimerUpdate action.
func TimerUpdate() Action { return Action{Kind: ActionTimerUpdate} }

func (a Action) String() string {
	switch a.Kind {
	case ActionReceivedCharacter:
		return fmt.Sprintf("ReceivedCharacter(%q)", a.Char)
	case ActionScroll:
		return fmt.Sprintf("Scroll(%v)", a.Scroll)
	case ActionPan:
		return fmt.Sprintf("Pan{alpha=%v delta=%v}", a.Alpha, a.Delta)
	default:
		return a.Kind.String()
	}
}

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	EventAction EventKind = iota
	EventPressStart
	EventPressMove
	EventPressEnd
)

func (k EventKind) String() string {
	switch k {
	case EventAction:
		return "Action"
	case EventPressStart:
		return "PressStart"
	case EventPressMove:
		return "PressMove"
	case EventPressEnd:
		return "PressEnd"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is what a widget receives.
//
// For PressMove, Delta is the movement since the previous event from the same
// source. For PressEnd, EndID is the widget under the end coordinate, or
// NoWidget if the press ended outside the surface (see Cancelled).
type Event struct {
	Kind   EventKind
	Action Action
	Source PressSource
	Coord  geom.Coord
	Delta  geom.Coord
	EndID  core.WidgetID
}

// ActionEvent wraps an action as an event.
func ActionEvent(a Action) Event {
	return Event{Kind: EventAction, Action: a}
}

// PressStart returns a press start event.
func PressStart(source PressSource, coord geom.Coord) Event {
	return Event{Kind: EventPressStart, Source: source, Coord: coord}
}

// PressMove returns a press move event.
func PressMove(source PressSource, coord, delta geom.Coord) Event {
	return Event{Kind: EventPressMove, Source: source, Coord: coord, Delta: delta}
}

// PressEnd returns a press end event.
func PressEnd(source PressSource, coord geom.Coord, end core.WidgetID) Event {
	return Event{Kind: EventPressEnd, Source: source, Coord: coord, EndID: end}
}

// IsAction reports whether e carries an action of kind k.
func (e Event) IsAction(k ActionKind) bool {
	return e.Kind == EventAction && e.Action.Kind == k
}

// Cancelled reports whether e is a PressEnd that must be treated as an
// abort: the press left the surface or was cancelled by the platform.
func (e Event) Cancelled() bool {
	return e.Kind == EventPressEnd && !e.EndID.IsValid()
}

func (e Event) String() string {
	switch e.Kind {
	case EventAction:
		return e.Action.String()
	case EventPressStart:
		return fmt.Sprintf("PressStart{%v at %v}", e.Source, e.Coord)
	case EventPressMove:
		return fmt.Sprintf("PressMove{%v at %v delta %v}", e.Source, e.Coord, e.Delta)
	case EventPressEnd:
		if e.Cancelled() {
			return fmt.Sprintf("PressEnd{%v cancelled}", e.Source)
		}
		return fmt.Sprintf("PressEnd{%v at %v over %v}", e.Source, e.Coord, e.EndID)
	default:
		return e.Kind.String()
	}
}

// PressPhase selects which press event HandlePress synthesizes.
type PressPhase uint8

const (
	PhaseStart PressPhase = iota
	PhaseMove
	PhaseEnd
)

func (p PressPhase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("PressPhase(%d)", uint8(p))
	}
}
