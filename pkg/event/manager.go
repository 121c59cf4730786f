package event

import (
	"time"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/geom"
)

// Root is the tree a Manager dispatches into, normally a window.
type Root interface {
	// Rect returns the surface rectangle. Press ends outside it are
	// cancellations.
	Rect() geom.Rect
	// FindID returns the topmost widget containing coord.
	FindID(coord geom.Coord) (core.WidgetID, bool)
	// Send delivers ev to the widget owning id, offering an unhandled
	// response to its ancestors.
	Send(mgr *Manager, id core.WidgetID, ev Event) Response
}

// Grab is an exclusive claim by one widget over a press source.
type Grab struct {
	Source PressSource
	Owner  core.WidgetID
	Start  geom.Coord
	Last   geom.Coord
}

type queued struct {
	id core.WidgetID
	ev Event
}

// Manager holds all dispatch state: the grab table, pending timers, char
// focus and the redraw flag.
//
// A Manager is single-threaded and not reentrant. Widgets receive it while
// handling an event and may call its request methods (RequestGrab,
// UpdateOnTimer, RequestCharFocus, Redraw), but a nested top-level dispatch
// from inside a handler is rejected.
type Manager struct {
	clock  Clock
	grabs  map[PressSource]*Grab
	timers timerQueue
	focus  core.WidgetID
	redraw bool

	dispatching bool
	pending     []queued
}

// NewManager returns an empty manager using the system clock.
func NewManager() *Manager {
	return &Manager{
		clock:  SystemClock{},
		grabs:  make(map[PressSource]*Grab),
		redraw: true,
	}
}

// SetClock replaces the manager's clock and returns the previous one.
// Pass nil to restore the system clock.
func (m *Manager) SetClock(c Clock) Clock {
	prev := m.clock
	if c == nil {
		c = SystemClock{}
	}
	m.clock = c
	return prev
}

// Now returns the current time from the manager's clock.
func (m *Manager) Now() time.Time { return m.clock.Now() }

// Reset drops every grab, timer and focus. Call it whenever the tree is
// reconfigured, since all of those refer to ids that are now meaningless.
func (m *Manager) Reset() {
	clear(m.grabs)
	m.timers.clear()
	m.focus = core.NoWidget
	m.pending = nil
	m.redraw = true
}

// begin marks the start of a top-level dispatch. It returns false, after
// reporting the problem, if a dispatch is already running.
func (m *Manager) begin(op string) bool {
	if m.dispatching {
		errors.Reportf(op, errors.KindConfig, core.NoWidget, "reentrant dispatch rejected")
		return false
	}
	m.dispatching = true
	return true
}

func (m *Manager) end() {
	m.dispatching = false
}

// send delivers ev and then drains anything queued by the handlers.
func (m *Manager) send(root Root, id core.WidgetID, ev Event) Response {
	resp := root.Send(m, id, ev)
	m.drain(root)
	return resp
}

func (m *Manager) drain(root Root) {
	for len(m.pending) > 0 {
		q := m.pending[0]
		m.pending = m.pending[1:]
		root.Send(m, q.id, q.ev)
	}
	m.pending = nil
}

// HandlePress processes a coordinate-addressed press event.
//
// A start is hit-tested and delivered to the topmost widget; that widget may
// claim the source with RequestGrab. Moves and ends for a grabbed source go
// to the grab owner without hit-testing. Moves and ends for an ungrabbed
// source have no recipient and are dropped.
func (m *Manager) HandlePress(root Root, source PressSource, phase PressPhase, coord geom.Coord) Response {
	const op = "event.HandlePress"
	if !m.begin(op) {
		return None()
	}
	defer m.end()

	switch phase {
	case PhaseStart:
		if g, ok := m.grabs[source]; ok {
			errors.Reportf(op, errors.KindConfig, g.Owner, "press start on %v rejected: source already grabbed", source)
			return None()
		}
		id, ok := root.FindID(coord)
		if !ok {
			errors.Reportf(op, errors.KindRouting, core.NoWidget, "no widget at %v", coord)
			return None()
		}
		return m.send(root, id, PressStart(source, coord))

	case PhaseMove:
		g, ok := m.grabs[source]
		if !ok {
			return None()
		}
		delta := coord.Sub(g.Last)
		g.Last = coord
		return m.send(root, g.Owner, PressMove(source, coord, delta))

	case PhaseEnd:
		g, ok := m.grabs[source]
		if !ok {
			return None()
		}
		delete(m.grabs, source)
		end := core.NoWidget
		if root.Rect().Contains(coord) {
			if id, ok := root.FindID(coord); ok {
				end = id
			}
		}
		ev := PressEnd(source, coord, end)
		ev.Delta = coord.Sub(g.Last)
		return m.send(root, g.Owner, ev)

	default:
		errors.Reportf(op, errors.KindConfig, core.NoWidget, "unknown press phase %v", phase)
		return None()
	}
}

// CancelPress ends the grab on source, if any, delivering a cancelled
// PressEnd to its owner. The platform calls this when a touch is cancelled or
// the pointer leaves the surface without a release.
func (m *Manager) CancelPress(root Root, source PressSource) Response {
	const op = "event.CancelPress"
	if !m.begin(op) {
		return None()
	}
	defer m.end()

	g, ok := m.grabs[source]
	if !ok {
		return None()
	}
	delete(m.grabs, source)
	return m.send(root, g.Owner, PressEnd(source, g.Last, core.NoWidget))
}

// HandleAction delivers an action to the widget owning id.
func (m *Manager) HandleAction(root Root, id core.WidgetID, action Action) Response {
	if !m.begin("event.HandleAction") {
		return None()
	}
	defer m.end()
	return m.send(root, id, ActionEvent(action))
}

// ReceivedCharacter delivers r to the char-focus owner. Without a focus
// owner the character is dropped.
func (m *Manager) ReceivedCharacter(root Root, r rune) Response {
	const op = "event.ReceivedCharacter"
	if !m.begin(op) {
		return None()
	}
	defer m.end()
	if !m.focus.IsValid() {
		errors.Reportf(op, errors.KindRouting, core.NoWidget, "no char focus for %q", r)
		return None()
	}
	return m.send(root, m.focus, ActionEvent(ReceivedCharacter(r)))
}

// RequestGrab gives id exclusive use of source, normally from inside id's
// PressStart handler. It returns false and logs a warning if source is
// already grabbed. There is no release call: the grab ends with the next
// PressEnd or cancellation for source.
func (m *Manager) RequestGrab(id core.WidgetID, source PressSource, coord geom.Coord) bool {
	const op = "event.RequestGrab"
	if !id.IsValid() {
		errors.Reportf(op, errors.KindConfig, id, "grab of %v by invalid widget", source)
		return false
	}
	if g, ok := m.grabs[source]; ok {
		errors.Reportf(op, errors.KindConfig, id, "%v already grabbed by %v", source, g.Owner)
		return false
	}
	m.grabs[source] = &Grab{Source: source, Owner: id, Start: coord, Last: coord}
	return true
}

// Grab returns the current grab on source.
func (m *Manager) Grab(source PressSource) (Grab, bool) {
	g, ok := m.grabs[source]
	if !ok {
		return Grab{}, false
	}
	return *g, true
}

// IsGrabbedBy reports whether any source is grabbed by id.
func (m *Manager) IsGrabbedBy(id core.WidgetID) bool {
	for _, g := range m.grabs {
		if g.Owner == id {
			return true
		}
	}
	return false
}

// GrabCount returns the number of active grabs.
func (m *Manager) GrabCount() int {
	return len(m.grabs)
}

// RequestCharFocus makes id the recipient of character input. If another
// widget held focus it is sent LostCharFocus once the current dispatch
// completes.
func (m *Manager) RequestCharFocus(id core.WidgetID) {
	if id == m.focus {
		return
	}
	if m.focus.IsValid() {
		m.pending = append(m.pending, queued{m.focus, ActionEvent(LostCharFocus())})
	}
	m.focus = id
}

// SetCharFocus moves char focus from outside an event handler. The previous
// owner has received LostCharFocus by the time it returns. Called during a
// dispatch it behaves like RequestCharFocus.
func (m *Manager) SetCharFocus(root Root, id core.WidgetID) {
	m.RequestCharFocus(id)
	if m.dispatching {
		return
	}
	m.dispatching = true
	defer m.end()
	m.drain(root)
}

// ClearCharFocus removes char focus, notifying the previous owner.
func (m *Manager) ClearCharFocus(root Root) {
	m.SetCharFocus(root, core.NoWidget)
}

// CharFocus returns the current char-focus owner.
func (m *Manager) CharFocus() (core.WidgetID, bool) {
	return m.focus, m.focus.IsValid()
}

// UpdateOnTimer asks for a TimerUpdate to be delivered to id after d. A
// widget has at most one pending timer: a new request replaces the previous
// one, even if the previous deadline was earlier. Timers do not repeat;
// re-request from the TimerUpdate handler for periodic updates.
func (m *Manager) UpdateOnTimer(d time.Duration, id core.WidgetID) {
	if !id.IsValid() {
		errors.Reportf("event.UpdateOnTimer", errors.KindConfig, id, "timer for invalid widget")
		return
	}
	m.timers.set(id, m.clock.Now().Add(d))
}

// NextTimer returns the earliest pending deadline.
func (m *Manager) NextTimer() (time.Time, bool) {
	return m.timers.peek()
}

// PendingTimers returns the number of pending timers.
func (m *Manager) PendingTimers() int {
	return m.timers.Len()
}

// FireTimers delivers TimerUpdate to every owner whose deadline has passed,
// in deadline order, and returns how many fired. Timers re-armed by the
// handlers are not considered until the next call.
func (m *Manager) FireTimers(root Root) int {
	if !m.begin("event.FireTimers") {
		return 0
	}
	defer m.end()

	owners := m.timers.popExpired(m.clock.Now())
	for _, id := range owners {
		m.send(root, id, ActionEvent(TimerUpdate()))
	}
	return len(owners)
}

// Redraw marks the surface as needing a repaint. Any number of calls between
// two frames result in one repaint.
func (m *Manager) Redraw(id core.WidgetID) {
	m.redraw = true
}

// TakeRedraw reports whether a repaint was requested since the last call and
// clears the request.
func (m *Manager) TakeRedraw() bool {
	r := m.redraw
	m.redraw = false
	return r
}
