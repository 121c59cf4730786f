package widgets_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
	kastest "github.com/kas-gui/kas-go/pkg/testing"
	"github.com/kas-gui/kas-go/pkg/theme"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

func TestTextButton_ClickAndRelease(t *testing.T) {
	tests := []struct {
		name  string
		delta geom.Coord
		want  int
	}{
		{"release on button", geom.Coord{X: 1}, 1},
		{"release on sibling", geom.Coord{X: 10}, 0},
		{"release outside surface", geom.Coord{X: -100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := kastest.NewWidgetTesterWithT(t)
			btn := widgets.NewTextButton("a", "clicked")
			tester.PumpWidget(widgets.NewRow(btn, widgets.NewLabel("filler text")))

			if btn.Rect() != geom.RectXYWH(0, 0, 3, 3) {
				t.Fatalf("button rect = %v", btn.Rect())
			}
			if err := tester.DragFrom(geom.Coord{X: 1, Y: 1}, tt.delta); err != nil {
				t.Fatal(err)
			}
			if got := len(tester.Messages()); got != tt.want {
				t.Errorf("messages = %v, want %d", tester.Messages(), tt.want)
			}
			if btn.Pressed() {
				t.Error("button still pressed after release")
			}
		})
	}
}

func TestTextButton_PressedFollowsPointer(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	btn := widgets.NewTextButton("a", 1)
	tester.PumpWidget(widgets.NewRow(btn, widgets.NewLabel("b")))

	tester.SendPress(kastest.Mouse, event.PhaseStart, geom.Coord{X: 1, Y: 1})
	tester.Pump()
	if !btn.Pressed() {
		t.Fatal("press should mark the button")
	}
	tester.SendPress(kastest.Mouse, event.PhaseMove, geom.Coord{X: 5, Y: 1})
	tester.Pump()
	if btn.Pressed() {
		t.Error("moving off should clear pressed")
	}
	tester.SendPress(kastest.Mouse, event.PhaseMove, geom.Coord{X: 2, Y: 2})
	tester.Pump()
	if !btn.Pressed() {
		t.Error("moving back should set pressed")
	}
	tester.SendCancel(kastest.Mouse)
	tester.Pump()
	if btn.Pressed() || len(tester.Messages()) != 0 {
		t.Error("cancel should release without a message")
	}
}

func TestTextButton_Activate(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.NewTextButton("go", "go"))

	if err := tester.SendAction(kastest.ByText("go"), event.Activate()); err != nil {
		t.Fatal(err)
	}
	if msgs := tester.Messages(); len(msgs) != 1 || msgs[0] != "go" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestTextButton_SourcesGrabIndependently(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.NewTextButton("a", 1))

	touch := event.Touch(1)
	tester.SendPress(kastest.Mouse, event.PhaseStart, geom.Coord{X: 1, Y: 1})
	tester.SendPress(touch, event.PhaseStart, geom.Coord{X: 1, Y: 1})
	tester.Pump()
	if n := tester.Manager().GrabCount(); n != 2 {
		t.Fatalf("GrabCount = %d; both sources may be grabbed", n)
	}
	tester.SendPress(touch, event.PhaseEnd, geom.Coord{X: 1, Y: 1})
	tester.SendPress(kastest.Mouse, event.PhaseEnd, geom.Coord{X: 1, Y: 1})
	tester.Pump()
	if n := len(tester.Messages()); n != 2 {
		t.Errorf("messages = %d, want one per source", n)
	}
}

func scrollContent(n int) *widgets.List {
	col := widgets.NewColumn()
	for i := range n {
		col.Push(widgets.NewLabel(fmt.Sprintf("line %d", i)))
	}
	return col
}

func TestScrollRegion(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 10, H: 3})
	region := widgets.NewScrollRegion(scrollContent(10))
	tester.PumpWidget(region)

	if region.MaxOffset() != (geom.Coord{Y: 7}) {
		t.Fatalf("MaxOffset = %v", region.MaxOffset())
	}

	finder := kastest.ByType[*widgets.ScrollRegion]()
	tester.Scroll(finder, geom.Vec2{Y: -2})
	if region.Offset() != (geom.Coord{Y: 2}) {
		t.Errorf("Offset after scroll = %v", region.Offset())
	}
	id, _ := tester.Window().FindID(geom.Coord{X: 1, Y: 0})
	if got := tester.Find(kastest.ByText("line 2")).ID(); id != got {
		t.Errorf("top row hit %v, want line 2 (%v)", id, got)
	}

	tester.Scroll(finder, geom.Vec2{Y: -20})
	if region.Offset() != region.MaxOffset() {
		t.Errorf("Offset should clamp to max, got %v", region.Offset())
	}

	// Dragging content moves it with the pointer.
	tester.DragFrom(geom.Coord{X: 1, Y: 2}, geom.Coord{Y: 3})
	if region.Offset() != (geom.Coord{Y: 4}) {
		t.Errorf("Offset after drag = %v", region.Offset())
	}
	if tester.Manager().GrabCount() != 0 {
		t.Error("drag should end its grab")
	}
}

func TestScrollRegion_HitTestClipped(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 10, H: 4})
	region := widgets.NewScrollRegion(scrollContent(10))
	tester.PumpWidget(widgets.NewColumn(widgets.NewLabel("above"), region))

	if region.Rect() != geom.RectXYWH(0, 1, 10, 3) {
		t.Fatalf("region = %v", region.Rect())
	}
	tester.Scroll(kastest.ByType[*widgets.ScrollRegion](), geom.Vec2{Y: -5})

	// Scrolled content now lies under the label, but only the visible part
	// of the region takes part in hit testing.
	hidden, _ := tester.Find(kastest.ByText("line 4")).Rect()
	if hidden.Pos.Y != 0 {
		t.Fatalf("line 4 at %v", hidden)
	}
	id, _ := tester.Window().FindID(geom.Coord{X: 1, Y: 0})
	if want := tester.Find(kastest.ByText("above")).ID(); id != want {
		t.Errorf("hit %v, want the label above the region (%v)", id, want)
	}
}

func TestEditBox_FocusMoves(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	first, second := widgets.NewEditBox(""), widgets.NewEditBox("")
	tester.PumpWidget(widgets.NewColumn(first, second))

	if first.Rect() != geom.RectXYWH(0, 0, 80, 3) || second.Rect() != geom.RectXYWH(0, 3, 80, 3) {
		t.Fatalf("rects = %v, %v", first.Rect(), second.Rect())
	}

	tester.TapAt(first.Rect().Center())
	tester.EnterText("ab")
	tester.TapAt(second.Rect().Center())
	tester.EnterText("c\n")

	if first.Text() != "ab" || second.Text() != "c" {
		t.Errorf("texts = %q, %q", first.Text(), second.Text())
	}
	if first.HasFocus() || !second.HasFocus() {
		t.Error("focus should have moved to the second box")
	}
	if msgs := tester.Messages(); len(msgs) != 1 || msgs[0] != (widgets.EditMsg{Text: "c"}) {
		t.Errorf("messages = %v", msgs)
	}
}

func TestEditBox_IgnoresControlCharacters(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	box := widgets.NewEditBox("héllo")
	tester.PumpWidget(box)

	tester.SendAction(kastest.ByType[*widgets.EditBox](), event.Activate())
	tester.EnterText("\x01\b\b\b\x7f")
	if box.Text() != "h" {
		t.Errorf("text = %q", box.Text())
	}
}

func TestSlider(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 20, H: 1})
	s := widgets.NewSlider(layout.Horizontal, 0, 100, 5)
	tester.PumpWidget(s)

	tester.TapAt(geom.Coord{X: 10})
	if s.Value() != 50 {
		t.Errorf("value after tap = %v", s.Value())
	}
	tester.Scroll(kastest.ByType[*widgets.Slider](), geom.Vec2{Y: 1})
	if s.Value() != 55 {
		t.Errorf("value after scroll = %v", s.Value())
	}
	tester.DragFrom(geom.Coord{X: 19}, geom.Coord{X: 40})
	if s.Value() != 100 {
		t.Errorf("value should clamp to max, got %v", s.Value())
	}

	msgs := tester.Messages()
	if len(msgs) == 0 || msgs[len(msgs)-1] != (widgets.SliderMsg{Value: 100}) {
		t.Errorf("last message = %v", msgs)
	}
}

func TestClock_SquareFace(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 30, H: 10})
	c := widgets.NewClock()
	tester.PumpWidget(c)

	if c.Rect() != geom.RectXYWH(10, 0, 10, 10) {
		t.Errorf("face = %v", c.Rect())
	}
	if c.TimeRect() != geom.RectXYWH(10, 0, 10, 5) || c.DateRect() != geom.RectXYWH(10, 5, 10, 5) {
		t.Errorf("time %v, date %v", c.TimeRect(), c.DateRect())
	}

	tester.Frame()
	tester.PumpFor(time.Second)
	if _, ok := tester.Frame(); !ok {
		t.Error("a tick should request a redraw")
	}
	if !c.Now().Equal(tester.Clock().Now()) {
		t.Errorf("clock shows %v, want %v", c.Now(), tester.Clock().Now())
	}
}

func TestSizeRules_CrossAxisQueryOrder(t *testing.T) {
	sh := theme.NewCellSizer(theme.DefaultCellDimensions())
	row := func() widgets.Widget {
		return widgets.NewRow(widgets.NewLabel("alpha beta gamma delta"), widgets.NewLabel("x"))
	}
	tests := []struct {
		name    string
		build   func() widgets.Widget
		width   uint32
		wantMin uint32
	}{
		// 8 columns: the long label gets 7 and wraps to four lines.
		{"row", row, 8, 4},
		{"frame", func() widgets.Widget { return widgets.NewFrame(row()) }, 10, 6},
		{"scroll", func() widgets.Widget { return widgets.NewScrollRegion(row()) }, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height := layout.VerticalAxis().WithOther(tt.width)
			crossFirst := tt.build().SizeRules(sh, height)

			w := tt.build()
			w.SizeRules(sh, layout.HorizontalAxis())
			mainFirst := w.SizeRules(sh, height)

			if crossFirst != mainFirst {
				t.Errorf("cross-first %v differs from main-first %v", crossFirst, mainFirst)
			}
			if crossFirst.Min() != tt.wantMin {
				t.Errorf("min height = %d, want %d", crossFirst.Min(), tt.wantMin)
			}
		})
	}
}

func TestFrame_InsetsChild(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 10, H: 5})
	label := widgets.NewLabel("ab")
	frame := widgets.NewFrame(label)
	tester.PumpWidget(frame)

	if frame.Rect() != geom.RectXYWH(0, 0, 10, 5) {
		t.Errorf("frame = %v", frame.Rect())
	}
	if label.Rect() != geom.RectXYWH(1, 1, 8, 3) {
		t.Errorf("label = %v", label.Rect())
	}
	minSize, ideal := tester.Engine().FindSize()
	if minSize != (geom.Size{W: 4, H: 3}) || ideal != (geom.Size{W: 4, H: 3}) {
		t.Errorf("FindSize = %v, %v", minSize, ideal)
	}
}

func TestGrid_Spans(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSize(geom.Size{W: 3, H: 2})
	a, bb, ccc := widgets.NewLabel("a"), widgets.NewLabel("bb"), widgets.NewLabel("ccc")
	g := widgets.NewGrid().
		Add(0, 0, a).
		Add(1, 0, bb).
		AddSpan(layout.GridChildInfo{Col: 0, ColEnd: 2, Row: 1, RowEnd: 2}, ccc)
	tester.PumpWidget(g)

	if cols, rows := g.Dimensions(); cols != 2 || rows != 2 {
		t.Errorf("Dimensions = %d, %d", cols, rows)
	}
	tests := []struct {
		name string
		w    *widgets.Label
		want geom.Rect
	}{
		{"a", a, geom.RectXYWH(0, 0, 1, 1)},
		{"bb", bb, geom.RectXYWH(1, 0, 2, 1)},
		{"ccc", ccc, geom.RectXYWH(0, 1, 3, 1)},
	}
	for _, tt := range tests {
		if tt.w.Rect() != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.w.Rect(), tt.want)
		}
	}
}

func TestWindow_MarginsResolveToWindow(t *testing.T) {
	tester := kastest.NewWidgetTesterWithT(t)
	tester.SetSizeHandle(theme.NewPixelSizer(theme.DefaultPixelDimensions()))
	tester.SetSize(geom.Size{W: 200, H: 50})
	tester.PumpWidget(widgets.NewLabel("hello"))
	win := tester.Window()

	if id, ok := win.FindID(geom.Coord{X: 1, Y: 1}); !ok || id != win.ID() {
		t.Errorf("margin hit = %v, %v; want the window", id, ok)
	}
	if id, ok := win.FindID(geom.Coord{X: 10, Y: 10}); !ok || id != 2 {
		t.Errorf("content hit = %v, %v; want the label", id, ok)
	}
	if _, ok := win.FindID(geom.Coord{X: 500, Y: 10}); ok {
		t.Error("outside the surface should miss")
	}
	if win.Rect() != geom.RectXYWH(0, 0, 200, 50) {
		t.Errorf("surface = %v", win.Rect())
	}
	if win.Core().Rect() != geom.RectXYWH(4, 4, 192, 42) {
		t.Errorf("content rect = %v", win.Core().Rect())
	}
}
