package widgets

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Callback selects when a window callback runs.
type Callback uint8

const (
	// CallbackStart runs once the window is first configured and sized.
	CallbackStart Callback = iota
	// CallbackClose runs when the window is closed.
	CallbackClose
)

func (c Callback) String() string {
	switch c {
	case CallbackStart:
		return "start"
	case CallbackClose:
		return "close"
	default:
		return fmt.Sprintf("Callback(%d)", uint8(c))
	}
}

// SizeLimits are the surface size bounds a window asks the platform to
// enforce. A zero size means no bound.
type SizeLimits struct {
	Min geom.Size
	Max geom.Size
}

type windowCallback struct {
	cond Callback
	fn   func(child Widget, mgr *event.Manager)
}

// Window is the root of a widget tree and the event.Root its manager
// dispatches into.
type Window struct {
	core.CoreData
	title      string
	child      Widget
	enforceMin bool
	enforceMax bool
	surface    geom.Rect
	fns        []windowCallback
}

// NewWindow creates a window around child. By default the minimum size is
// enforced and the maximum is not.
func NewWindow(title string, child Widget) *Window {
	return &Window{title: title, child: child, enforceMin: true}
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) { w.title = title }

// Child returns the window's content.
func (w *Window) Child() Widget { return w.child }

// SetEnforceSize configures whether the minimum and the ideal (as maximum)
// sizes are reported as limits.
func (w *Window) SetEnforceSize(minSize, maxSize bool) {
	w.enforceMin = minSize
	w.enforceMax = maxSize
}

// AddCallback registers fn to run on cond.
func (w *Window) AddCallback(cond Callback, fn func(child Widget, mgr *event.Manager)) {
	w.fns = append(w.fns, windowCallback{cond: cond, fn: fn})
}

// Callbacks returns the condition of each registered callback, by index.
func (w *Window) Callbacks() []Callback {
	conds := make([]Callback, len(w.fns))
	for i, f := range w.fns {
		conds[i] = f.cond
	}
	return conds
}

// TriggerCallback runs callback i.
func (w *Window) TriggerCallback(i int, mgr *event.Manager) {
	w.fns[i].fn(w.child, mgr)
}

func (w *Window) Len() int { return 1 }

func (w *Window) Get(int) Widget { return w.child }

func (w *Window) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return w.child.SizeRules(sh, axis)
}

func (w *Window) SetRect(sh layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	w.StoreRect(rect)
	w.child.SetRect(sh, rect, align)
}

// FindSize returns the window's minimum and ideal surface sizes. The minimum
// is zero unless enforced.
func (w *Window) FindSize(sh layout.SizeHandle) (minSize, ideal geom.Size) {
	minSize, ideal = layout.Solve(w, sh)
	if !w.enforceMin {
		minSize = geom.Size{}
	}
	return minSize, ideal
}

// Resize lays the tree out for a surface of the given size and returns the
// limits the platform should apply. A surface smaller than the minimum is
// still laid out, with children overflowing, and reported as KindPolicy.
func (w *Window) Resize(sh layout.SizeHandle, size geom.Size) SizeLimits {
	w.surface = geom.NewRect(geom.Coord{}, size)
	minSize, ideal := layout.SolveAndSet(w, sh, size)
	if size.W < minSize.W || size.H < minSize.H {
		errors.Reportf("widgets.Resize", errors.KindPolicy, w.ID(), "surface %v is below the minimum %v", size, minSize)
	}
	var lim SizeLimits
	if w.enforceMin {
		lim.Min = minSize
	}
	if w.enforceMax {
		lim.Max = ideal
	}
	return lim
}

// Rect returns the surface rectangle set by the last Resize. The window's
// own layout rectangle, inside its margins, is w.Core().Rect().
func (w *Window) Rect() geom.Rect {
	return w.surface
}

// FindID returns the topmost widget under coord. Anywhere on the surface
// resolves to at least the window itself.
func (w *Window) FindID(coord geom.Coord) (core.WidgetID, bool) {
	if !w.surface.Contains(coord) {
		return core.NoWidget, false
	}
	if id, ok := FindID(w.child, coord); ok {
		return id, true
	}
	return w.ID(), true
}

// Send delivers ev to the widget owning id.
func (w *Window) Send(mgr *event.Manager, id core.WidgetID, ev event.Event) event.Response {
	return Send(w, mgr, id, ev)
}

var _ event.Root = (*Window)(nil)
