package widgets

import (
	"time"

	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Clock shows the current date and time, updated once per second.
//
// The clock keeps itself square. It arms a timer when configured and
// re-arms it on every update for the start of the next second.
type Clock struct {
	Leaf
	now      time.Time
	date     string
	time     string
	dateRect geom.Rect
	timeRect geom.Rect
}

// NewClock creates a clock.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the time last shown.
func (c *Clock) Now() time.Time { return c.now }

// Date returns the date text, formatted as 2006-01-02.
func (c *Clock) Date() string { return c.date }

// Time returns the time text, formatted as 15:04:05.
func (c *Clock) Time() string { return c.time }

// DateRect returns the lower half of the face, where the date is drawn.
func (c *Clock) DateRect() geom.Rect { return c.dateRect }

// TimeRect returns the upper half of the face, where the time is drawn.
func (c *Clock) TimeRect() geom.Rect { return c.timeRect }

func (c *Clock) SizeRules(sh layout.SizeHandle, _ layout.AxisInfo) layout.SizeRules {
	text := sh.TextBound("0000-00-00", layout.TextLabel, layout.HorizontalAxis())
	extra := layout.NewSizeRules(0, 100, layout.Margins{}, layout.HighUtility)
	return text.SurroundedBy(extra, false)
}

func (c *Clock) SetRect(_ layout.SizeHandle, rect geom.Rect, _ layout.AlignHints) {
	side := min(rect.Size.W, rect.Size.H)
	size := geom.Uniform(side)
	excess := rect.Size.SaturatingSub(size)
	pos := rect.Pos.Add(geom.Coord{X: int32(excess.W / 2), Y: int32(excess.H / 2)})
	c.StoreRect(geom.NewRect(pos, size))

	half := geom.Size{W: side, H: side / 2}
	c.timeRect = geom.NewRect(pos, half)
	c.dateRect = geom.NewRect(pos.Add(geom.Coord{Y: int32(side - half.H)}), half)
}

// Configure arms the first update immediately.
func (c *Clock) Configure(mgr *event.Manager) {
	mgr.UpdateOnTimer(0, c.ID())
}

func (c *Clock) HandleEvent(mgr *event.Manager, ev event.Event) event.Response {
	if !ev.IsAction(event.ActionTimerUpdate) {
		return event.Unhandled(ev)
	}
	c.now = mgr.Now()
	c.date = c.now.Format("2006-01-02")
	c.time = c.now.Format("15:04:05")
	mgr.Redraw(c.ID())
	wait := time.Second - time.Duration(c.now.Nanosecond())
	mgr.UpdateOnTimer(wait, c.ID())
	return event.None()
}
