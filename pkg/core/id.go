// Package core defines widget identity and the data every widget carries.
//
// Widget ids are assigned by a depth-first pre-order walk of the tree (see
// widgets.Configure). Because a widget's descendants are numbered
// contiguously after it, each widget owns a closed id range [first, last]
// and ancestor tests are a constant-time range check.
//
// Ids are only meaningful within one configuration of the tree: a
// reconfiguration renumbers every widget, so ids must never be kept across
// it.
package core

import (
	"fmt"

	"github.com/kas-gui/kas-go/pkg/geom"
)

// WidgetID identifies a widget within one configuration of a tree.
// The zero value is not a valid id.
type WidgetID uint32

// NoWidget is the invalid id.
const NoWidget WidgetID = 0

// IsValid reports whether id was issued by a configuration pass.
func (id WidgetID) IsValid() bool {
	return id != NoWidget
}

// Next returns the id following id in pre-order.
func (id WidgetID) Next() WidgetID {
	return id + 1
}

// String returns a human-readable representation of the id.
func (id WidgetID) String() string {
	if !id.IsValid() {
		return "#none"
	}
	return fmt.Sprintf("#%d", uint32(id))
}

// CoreData holds the identity and assigned rectangle of a widget. Widgets
// embed it and expose it through their Core method.
type CoreData struct {
	id   WidgetID
	last WidgetID
	rect geom.Rect
}

// ID returns the widget's id, or NoWidget before configuration.
func (c *CoreData) ID() WidgetID {
	return c.id
}

// IDRange returns the first and last ids owned by this widget: its own id
// and the highest id among its descendants.
func (c *CoreData) IDRange() (first, last WidgetID) {
	return c.id, c.last
}

// IsAncestorOf reports whether id belongs to this widget or any of its
// descendants.
func (c *CoreData) IsAncestorOf(id WidgetID) bool {
	return id.IsValid() && c.id.IsValid() && id >= c.id && id <= c.last
}

// SetID records the widget's own id. The range is closed by SetLastID once
// the descendants have been numbered.
func (c *CoreData) SetID(id WidgetID) {
	c.id = id
	c.last = id
}

// SetLastID records the highest descendant id.
func (c *CoreData) SetLastID(last WidgetID) {
	c.last = last
}

// Rect returns the rectangle assigned by the most recent layout pass.
func (c *CoreData) Rect() geom.Rect {
	return c.rect
}

// StoreRect records the assigned rectangle.
func (c *CoreData) StoreRect(r geom.Rect) {
	c.rect = r
}

// Core returns c. Embedding CoreData therefore satisfies the Core method
// of the widget interface.
func (c *CoreData) Core() *CoreData {
	return c
}
