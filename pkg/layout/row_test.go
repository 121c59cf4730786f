package layout

import (
	"testing"

	"github.com/kas-gui/kas-go/pkg/geom"
)

// testSizer is a SizeHandle with fixed metrics: each rune is 10 wide and a
// line is 10 high.
type testSizer struct{}

func (testSizer) OuterMargins() Margins { return Margins{} }
func (testSizer) InnerMargin() uint32   { return 0 }
func (testSizer) FrameSize() uint32     { return 2 }
func (testSizer) LineHeight() uint32    { return 10 }
func (testSizer) TextBound(text string, _ TextClass, axis AxisInfo) SizeRules {
	w := uint32(len(text)) * 10
	if axis.IsHorizontal() {
		return NewSizeRules(10, w, Margins{}, Fixed)
	}
	lines := uint32(1)
	if other, ok := axis.Other(); ok && other > 0 {
		lines = (w + other - 1) / other
	}
	return FixedRules(lines * 10)
}

type testNode struct {
	rules [2]SizeRules
	rect  geom.Rect
	calls int
	// wrap makes the vertical rules depend on the width: area/width lines.
	wrap uint32
	seen []AxisInfo
}

func (n *testNode) SizeRules(_ SizeHandle, axis AxisInfo) SizeRules {
	n.seen = append(n.seen, axis)
	if axis.IsVertical() && n.wrap > 0 {
		if w, ok := axis.Other(); ok && w > 0 {
			return FixedRules((n.wrap + w - 1) / w)
		}
	}
	return n.rules[axisIndex(axis.IsVertical())]
}

func (n *testNode) SetRect(_ SizeHandle, rect geom.Rect, _ AlignHints) {
	n.rect = rect
	n.calls++
}

func nodes(ns []*testNode) func(int) Node {
	return func(i int) Node { return ns[i] }
}

func scenarioNodes() []*testNode {
	return []*testNode{
		{rules: [2]SizeRules{NewSizeRules(10, 20, Margins{}, Fixed), FixedRules(5)}},
		{rules: [2]SizeRules{NewSizeRules(15, 25, Margins{}, Fixed), FixedRules(8)}},
	}
}

func TestRowScenarios(t *testing.T) {
	tests := []struct {
		name  string
		width uint32
		want  [2]uint32
	}{
		{"B: ideal width", 45, [2]uint32{20, 25}},
		{"C: min width", 25, [2]uint32{10, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := scenarioNodes()
			var s RowStorage
			sh := testSizer{}
			w := RowSizeRules(&s, Horizontal, 2, nodes(ns), sh, HorizontalAxis())
			if w.Min() != 25 || w.Ideal() != 45 {
				t.Fatalf("row rules = %v, want 25/45", w)
			}
			h := RowSizeRules(&s, Horizontal, 2, nodes(ns), sh, VerticalAxis().WithOther(tt.width))
			if h.Min() != 8 {
				t.Errorf("cross rules = %v, want min 8", h)
			}

			RowSetRect(&s, Horizontal, 2, nodes(ns), sh, geom.RectXYWH(0, 0, tt.width, 8), AlignHints{})
			for i, n := range ns {
				if n.rect.Size.W != tt.want[i] {
					t.Errorf("child %d width = %d, want %d", i, n.rect.Size.W, tt.want[i])
				}
				if n.rect.Size.H != 8 {
					t.Errorf("child %d height = %d, want full cross extent 8", i, n.rect.Size.H)
				}
			}
			if ns[1].rect.Pos.X != int32(tt.want[0]) {
				t.Errorf("second child x = %d, want %d", ns[1].rect.Pos.X, tt.want[0])
			}
		})
	}
}

func TestRowIdempotentRules(t *testing.T) {
	ns := scenarioNodes()
	var s RowStorage
	a := RowSizeRules(&s, Horizontal, 2, nodes(ns), testSizer{}, HorizontalAxis())
	b := RowSizeRules(&s, Horizontal, 2, nodes(ns), testSizer{}, HorizontalAxis())
	if a != b {
		t.Errorf("repeated SizeRules differ: %v vs %v", a, b)
	}
}

func TestRowWidthForHeight(t *testing.T) {
	ns := []*testNode{
		{rules: [2]SizeRules{NewSizeRules(10, 100, Margins{}, Fixed), {}}, wrap: 1000},
		{rules: [2]SizeRules{NewSizeRules(10, 100, Margins{}, Fixed), {}}, wrap: 1000},
	}
	var s RowStorage
	RowSizeRules(&s, Horizontal, 2, nodes(ns), testSizer{}, HorizontalAxis())
	h := RowSizeRules(&s, Horizontal, 2, nodes(ns), testSizer{}, VerticalAxis().WithOther(100))

	// 100 split between ideals of 100 each: min 10 + 40 each = 50 per child,
	// so each wraps to 1000/50 = 20.
	if h.Min() != 20 {
		t.Errorf("row height = %v, want 20", h)
	}
	last := ns[0].seen[len(ns[0].seen)-1]
	if w, ok := last.Other(); !ok || w != 50 {
		t.Errorf("child queried with other=%d,%v; want 50", w, ok)
	}
}

func wrappingNodes() []*testNode {
	return []*testNode{
		{rules: [2]SizeRules{NewSizeRules(10, 100, Margins{}, Fixed), {}}, wrap: 1000},
		{rules: [2]SizeRules{NewSizeRules(10, 100, Margins{}, Fixed), {}}, wrap: 1000},
	}
}

func TestRowCrossAxisQueryOrder(t *testing.T) {
	sh := testSizer{}
	height := VerticalAxis().WithOther(100)

	var fresh RowStorage
	crossFirst := RowSizeRules(&fresh, Horizontal, 2, nodes(wrappingNodes()), sh, height)

	var warm RowStorage
	ns := wrappingNodes()
	RowSizeRules(&warm, Horizontal, 2, nodes(ns), sh, HorizontalAxis())
	mainFirst := RowSizeRules(&warm, Horizontal, 2, nodes(ns), sh, height)

	if crossFirst != mainFirst {
		t.Errorf("cross-first %v differs from main-first %v", crossFirst, mainFirst)
	}
	if crossFirst.Min() != 20 {
		t.Errorf("row height = %v, want 20", crossFirst)
	}

	// Main-axis rules cached from an earlier query are not reused.
	ns[0].rules[0] = NewSizeRules(10, 300, Margins{}, Fixed)
	ns[1].rules[0] = NewSizeRules(10, 300, Margins{}, Fixed)
	if again := RowSizeRules(&warm, Horizontal, 2, nodes(ns), sh, height); again != crossFirst {
		t.Errorf("after child change = %v, want %v", again, crossFirst)
	}
	if got := warm.Rules(Horizontal); len(got) != 2 || got[0].Ideal() != 300 {
		t.Errorf("cached main-axis rules = %v", got)
	}
}

func TestRowMainAxisAlignment(t *testing.T) {
	ns := scenarioNodes()
	var s RowStorage
	RowSizeRules(&s, Horizontal, 2, nodes(ns), testSizer{}, HorizontalAxis())
	RowSetRect(&s, Horizontal, 2, nodes(ns), testSizer{}, geom.RectXYWH(0, 0, 55, 8), NewAlignHints(AlignCentre, AlignDefault))
	if ns[0].rect.Pos.X != 5 {
		t.Errorf("centred block starts at %d, want 5", ns[0].rect.Pos.X)
	}
}

func TestRowSetRectWithoutRules(t *testing.T) {
	ns := scenarioNodes()
	var s RowStorage
	RowSetRect(&s, Vertical, 2, nodes(ns), testSizer{}, geom.RectXYWH(0, 0, 30, 13), AlignHints{})
	if ns[0].rect.Size.H != 5 || ns[1].rect.Pos.Y != 5 {
		t.Errorf("rects = %v, %v; want heights from recomputed rules", ns[0].rect, ns[1].rect)
	}
}

func TestZeroChildren(t *testing.T) {
	var s RowStorage
	r := RowSizeRules(&s, Horizontal, 0, nil, testSizer{}, HorizontalAxis())
	if r != EmptyRules {
		t.Errorf("empty row rules = %v, want empty", r)
	}
	RowSetRect(&s, Horizontal, 0, nil, testSizer{}, geom.RectXYWH(0, 0, 10, 10), AlignHints{})
}

func TestSolveAndSetIncludesMargins(t *testing.T) {
	n := &testNode{rules: [2]SizeRules{
		NewSizeRules(10, 20, UniformMargins(3), Fixed),
		NewSizeRules(5, 5, UniformMargins(2), Fixed),
	}}
	minSize, ideal := Solve(n, testSizer{})
	if minSize != (geom.Size{W: 16, H: 9}) || ideal != (geom.Size{W: 26, H: 9}) {
		t.Errorf("Solve = %v / %v, want 16x9 / 26x9", minSize, ideal)
	}
	SolveAndSet(n, testSizer{}, geom.Size{W: 40, H: 30})
	if n.rect != geom.RectXYWH(3, 2, 34, 26) {
		t.Errorf("root rect = %v, want (3,2)+34x26", n.rect)
	}
}
