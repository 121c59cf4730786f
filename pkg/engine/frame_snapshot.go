package engine

import (
	"reflect"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

// FrameSnapshot captures the geometry of every widget for one frame. It is
// what a render backend consumes, and what the CLI prints.
type FrameSnapshot struct {
	FrameID uint64           `json:"frameId" yaml:"frame"`
	Title   string           `json:"title" yaml:"title"`
	Width   uint32           `json:"width" yaml:"width"`
	Height  uint32           `json:"height" yaml:"height"`
	Widgets []WidgetSnapshot `json:"widgets" yaml:"widgets"`
}

// WidgetSnapshot holds the id and rectangle of one widget.
type WidgetSnapshot struct {
	ID     uint32 `json:"id" yaml:"id"`
	Kind   string `json:"kind" yaml:"kind"`
	Depth  int    `json:"depth" yaml:"depth"`
	X      int32  `json:"x" yaml:"x"`
	Y      int32  `json:"y" yaml:"y"`
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// Snapshot captures the current geometry without consuming the redraw flag.
func (e *Engine) Snapshot() FrameSnapshot {
	snap := FrameSnapshot{
		FrameID: e.frameID,
		Title:   e.window.Title(),
		Width:   e.size.W,
		Height:  e.size.H,
	}
	var visit func(w widgets.Widget, depth int)
	visit = func(w widgets.Widget, depth int) {
		r := w.Core().Rect()
		snap.Widgets = append(snap.Widgets, WidgetSnapshot{
			ID:     uint32(w.Core().ID()),
			Kind:   KindOf(w),
			Depth:  depth,
			X:      r.Pos.X,
			Y:      r.Pos.Y,
			Width:  r.Size.W,
			Height: r.Size.H,
		})
		for i := range w.Len() {
			visit(w.Get(i), depth+1)
		}
	}
	visit(e.window, 0)
	return snap
}

// Rects returns the rectangle of every widget keyed by id.
func (e *Engine) Rects() map[core.WidgetID]geom.Rect {
	rects := make(map[core.WidgetID]geom.Rect, e.WidgetCount())
	widgets.Walk(e.window, func(w widgets.Widget) bool {
		rects[w.Core().ID()] = w.Core().Rect()
		return true
	})
	return rects
}

// KindOf returns the concrete type name of w without package or pointer.
func KindOf(w widgets.Widget) string {
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
