package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Widget is the capability set every node of the tree provides.
type Widget interface {
	layout.Node
	// Core returns the widget's identity and rectangle.
	Core() *core.CoreData
	// Len returns the number of children.
	Len() int
	// Get returns child i, for 0 <= i < Len().
	Get(i int) Widget
}

// Handler is implemented by widgets that react to events. A widget that does
// not handle an event returns event.Unhandled so its ancestors may.
type Handler interface {
	HandleEvent(mgr *event.Manager, ev event.Event) event.Response
}

// MessageHandler is implemented by containers that translate or consume
// messages emitted by their descendants. child is the id of the direct child
// the message came through.
type MessageHandler interface {
	HandleMessage(mgr *event.Manager, child core.WidgetID, msg any) event.Response
}

// Configurable is implemented by widgets that need a hook once numbered, for
// example to arm an initial timer.
type Configurable interface {
	Configure(mgr *event.Manager)
}

// Finder is implemented by widgets that customise hit testing.
type Finder interface {
	FindID(coord geom.Coord) (core.WidgetID, bool)
}

// Leaf provides the child accessors for widgets without children. Embed it
// alongside layout and event methods.
type Leaf struct {
	core.CoreData
}

// Len returns 0.
func (*Leaf) Len() int { return 0 }

// Get returns nil.
func (*Leaf) Get(int) Widget { return nil }

// storeAligned records the part of rect a leaf with the given ideal size
// occupies under align.
func (l *Leaf) storeAligned(ideal geom.Size, rect geom.Rect, align layout.AlignHints, stretch [2]layout.StretchPolicy) {
	l.StoreRect(align.Apply(ideal, rect, stretch))
}

// childNode adapts a widget slice to the child accessor the layout solvers
// take.
func childNode(children []Widget) func(int) layout.Node {
	return func(i int) layout.Node { return children[i] }
}
