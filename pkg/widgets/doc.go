// Package widgets provides the widget capability set and the concrete widgets
// built on it.
//
// A widget is a layout.Node that also carries identity (core.CoreData) and
// exposes its children by index:
//
//	type Widget interface {
//	    layout.Node
//	    Core() *core.CoreData
//	    Len() int
//	    Get(i int) Widget
//	}
//
// Everything else is optional and discovered by type assertion: Handler to
// receive events, MessageHandler to translate messages from children,
// Configurable for a hook run during numbering, and Finder to customise hit
// testing. Containers hold their children as Widget values and never know
// their concrete types.
//
// # Tree Lifecycle
//
//  1. Build the tree from constructors (NewRow, NewLabel, ...).
//  2. Configure numbers every widget in pre-order and runs Configure hooks.
//     Rerun it whenever children are added or removed.
//  3. Size the tree with Window.FindSize and Window.Resize.
//  4. Dispatch input through an event.Manager, using the Window as the
//     event.Root.
//
// Widgets are not safe for concurrent use; the whole tree belongs to the
// goroutine running the dispatch loop.
package widgets
