package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
)

// Configure numbers root and its descendants in depth-first pre-order,
// starting at base (or 1 if base is invalid), and returns the next unused
// id. Each widget's Configure hook runs once its own subtree is numbered.
//
// Any ids issued by an earlier configuration are invalid afterwards; callers
// should reset their event.Manager.
func Configure(root Widget, mgr *event.Manager, base core.WidgetID) core.WidgetID {
	if !base.IsValid() {
		base = 1
	}
	return configure(root, mgr, base)
}

func configure(w Widget, mgr *event.Manager, next core.WidgetID) core.WidgetID {
	c := w.Core()
	c.SetID(next)
	next = next.Next()
	for i := range w.Len() {
		next = configure(w.Get(i), mgr, next)
	}
	c.SetLastID(next - 1)
	if cf, ok := w.(Configurable); ok && mgr != nil {
		cf.Configure(mgr)
	}
	return next
}

// Walk calls fn for root and each descendant in pre-order. If fn returns
// false the widget's children are skipped.
func Walk(root Widget, fn func(w Widget) bool) {
	if !fn(root) {
		return
	}
	for i := range root.Len() {
		Walk(root.Get(i), fn)
	}
}

// pathTo returns the widgets from root down to the owner of id, or nil. The
// range test on each level means only one child per level is visited.
func pathTo(root Widget, id core.WidgetID) []Widget {
	if !root.Core().IsAncestorOf(id) {
		return nil
	}
	path := []Widget{root}
	w := root
	for w.Core().ID() != id {
		var next Widget
		for i := range w.Len() {
			if c := w.Get(i); c.Core().IsAncestorOf(id) {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		path = append(path, next)
		w = next
	}
	return path
}

// FindByID returns the widget owning id.
func FindByID(root Widget, id core.WidgetID) (Widget, bool) {
	path := pathTo(root, id)
	if path == nil {
		return nil, false
	}
	return path[len(path)-1], true
}

// FindID returns the topmost widget under coord. Children are tested in
// reverse order, so where siblings overlap the one configured last wins. A
// widget implementing Finder is asked directly.
func FindID(w Widget, coord geom.Coord) (core.WidgetID, bool) {
	if f, ok := w.(Finder); ok {
		return f.FindID(coord)
	}
	return findChildren(w, coord)
}

// findChildren is the default hit test: the last child containing coord, or
// w itself.
func findChildren(w Widget, coord geom.Coord) (core.WidgetID, bool) {
	if !w.Core().Rect().Contains(coord) {
		return core.NoWidget, false
	}
	for i := w.Len() - 1; i >= 0; i-- {
		if id, ok := FindID(w.Get(i), coord); ok {
			return id, true
		}
	}
	return w.Core().ID(), true
}

// Send delivers ev to the widget owning id and walks its response back up to
// root. An unhandled event is offered to each ancestor implementing Handler,
// nearest first, until one handles it. A message passes through each
// ancestor implementing MessageHandler, which may translate or consume it.
//
// A stale or unknown id is a routing miss: it is reported and ev is returned
// unhandled.
func Send(root Widget, mgr *event.Manager, id core.WidgetID, ev event.Event) event.Response {
	path := pathTo(root, id)
	if path == nil {
		errors.Reportf("widgets.Send", errors.KindRouting, id, "no widget for %v", ev)
		return event.Unhandled(ev)
	}

	resp := deliver(path[len(path)-1], mgr, ev)
	for i := len(path) - 2; i >= 0; i-- {
		switch {
		case resp.IsUnhandled():
			if h, ok := path[i].(Handler); ok {
				uev, _ := resp.Event()
				resp = h.HandleEvent(mgr, uev)
			}
		case resp.IsMsg():
			if h, ok := path[i].(MessageHandler); ok {
				resp = h.HandleMessage(mgr, path[i+1].Core().ID(), resp.Message())
			}
		default:
			return resp
		}
	}
	return resp
}

func deliver(w Widget, mgr *event.Manager, ev event.Event) event.Response {
	if h, ok := w.(Handler); ok {
		return h.HandleEvent(mgr, ev)
	}
	return event.Unhandled(ev)
}
