package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// ScrollRegion shows a window onto a child that may be larger than the
// space available.
//
// The region handles Scroll and Pan actions and drags that its child leaves
// unhandled, so a scroll over any non-scrolling descendant moves the
// content. When the content cannot move further the event is passed on,
// letting an outer region take over.
type ScrollRegion struct {
	core.CoreData
	child      Widget
	offset     geom.Coord
	maxOffset  geom.Coord
	childRules [2]layout.SizeRules
	sh         layout.SizeHandle
	align      layout.AlignHints
}

// NewScrollRegion wraps child in a scroll region.
func NewScrollRegion(child Widget) *ScrollRegion {
	return &ScrollRegion{child: child}
}

// Offset returns how far the content is scrolled from its origin.
func (s *ScrollRegion) Offset() geom.Coord { return s.offset }

// MaxOffset returns the largest offset allowed at the current size.
func (s *ScrollRegion) MaxOffset() geom.Coord { return s.maxOffset }

func (s *ScrollRegion) Len() int { return 1 }

func (s *ScrollRegion) Get(int) Widget { return s.child }

func (s *ScrollRegion) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	if other, ok := axis.Other(); ok {
		cross := s.child.SizeRules(sh, axis.Cross())
		s.childRules[axisIndex(!axis.IsVertical())] = cross
		axis = axis.WithOther(max(other, cross.Min()))
	}
	r := s.child.SizeRules(sh, axis)
	s.childRules[axisIndex(axis.IsVertical())] = r
	minSize := min(r.Min(), sh.LineHeight())
	return layout.NewSizeRules(minSize, r.Ideal(), r.Margins(), max(r.Stretch(), layout.HighUtility))
}

func (s *ScrollRegion) SetRect(sh layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	s.StoreRect(rect)
	s.sh = sh
	s.align = align
	content := rect.Size.Max(geom.Size{W: s.childRules[0].Min(), H: s.childRules[1].Min()})
	over := content.SaturatingSub(rect.Size)
	s.maxOffset = geom.Coord{X: int32(over.W), Y: int32(over.H)}
	s.offset = clampCoord(s.offset, s.maxOffset)
	s.placeChild(content)
}

func (s *ScrollRegion) placeChild(content geom.Size) {
	pos := s.Rect().Pos.Sub(s.offset)
	s.child.SetRect(s.sh, geom.NewRect(pos, content), s.align)
}

// FindID restricts hit testing of the content to the visible region.
func (s *ScrollRegion) FindID(coord geom.Coord) (core.WidgetID, bool) {
	if !s.Rect().Contains(coord) {
		return core.NoWidget, false
	}
	if id, ok := FindID(s.child, coord); ok {
		return id, true
	}
	return s.ID(), true
}

// ScrollBy moves the content by d, positive values revealing content before
// the current position, and reports whether the offset changed.
func (s *ScrollRegion) ScrollBy(mgr *event.Manager, d geom.Coord) bool {
	next := clampCoord(s.offset.Sub(d), s.maxOffset)
	if next == s.offset {
		return false
	}
	s.offset = next
	if s.sh != nil {
		s.placeChild(s.child.Core().Rect().Size)
	}
	if mgr != nil {
		mgr.Redraw(s.ID())
	}
	return true
}

func (s *ScrollRegion) HandleEvent(mgr *event.Manager, ev event.Event) event.Response {
	switch ev.Kind {
	case event.EventAction:
		var d geom.Coord
		switch ev.Action.Kind {
		case event.ActionScroll:
			lh := uint32(1)
			if s.sh != nil {
				lh = s.sh.LineHeight()
			}
			d = ev.Action.Scroll.ToPixels(lh)
		case event.ActionPan:
			d = geom.Coord{X: int32(ev.Action.Delta.X), Y: int32(ev.Action.Delta.Y)}
		default:
			return event.Unhandled(ev)
		}
		if s.ScrollBy(mgr, d) {
			return event.None()
		}
	case event.EventPressStart:
		if ev.Source.IsPrimary() && mgr.RequestGrab(s.ID(), ev.Source, ev.Coord) {
			return event.None()
		}
	case event.EventPressMove:
		if mgr.IsGrabbedBy(s.ID()) {
			s.ScrollBy(mgr, ev.Delta)
			return event.None()
		}
	case event.EventPressEnd:
		return event.None()
	}
	return event.Unhandled(ev)
}

func clampCoord(c, limit geom.Coord) geom.Coord {
	return geom.Coord{
		X: max(0, min(c.X, limit.X)),
		Y: max(0, min(c.Y, limit.Y)),
	}
}
