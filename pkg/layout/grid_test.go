package layout

import (
	"testing"

	"github.com/kas-gui/kas-go/pkg/geom"
)

func TestGridDimensions(t *testing.T) {
	cols, rows := GridDimensions([]GridChildInfo{
		Cell(0, 0),
		{Col: 1, ColEnd: 3, Row: 0, RowEnd: 0},
		Cell(0, 4),
	})
	if cols != 3 || rows != 5 {
		t.Errorf("dimensions = %dx%d, want 3x5", cols, rows)
	}
}

func TestGridLayout(t *testing.T) {
	// +----+--------+
	// | a  |   b    |
	// +----+--------+
	// |     c       |
	// +-------------+
	ns := []*testNode{
		{rules: [2]SizeRules{NewSizeRules(10, 20, Margins{}, Fixed), FixedRules(10)}},
		{rules: [2]SizeRules{NewSizeRules(30, 30, Margins{}, Fixed), FixedRules(15)}},
		{rules: [2]SizeRules{NewSizeRules(60, 80, Margins{}, Fixed), FixedRules(5)}},
	}
	cells := []GridChildInfo{
		Cell(0, 0),
		Cell(1, 0),
		{Col: 0, ColEnd: 2, Row: 1, RowEnd: 2},
	}
	var s GridStorage
	sh := testSizer{}
	w := GridSizeRules(&s, cells, nodes(ns), sh, HorizontalAxis())
	if w.Min() != 60 || w.Ideal() != 80 {
		t.Fatalf("grid width rules = %v, want 60/80", w)
	}
	h := GridSizeRules(&s, cells, nodes(ns), sh, VerticalAxis().WithOther(80))
	if h.Min() != 20 || h.Ideal() != 20 {
		t.Fatalf("grid height rules = %v, want 20/20", h)
	}

	GridSetRect(&s, cells, nodes(ns), sh, geom.RectXYWH(100, 50, 80, 20), AlignHints{})

	// Column 1 absorbs the spanning cell's deficit: widths 20 and 60.
	want := []geom.Rect{
		geom.RectXYWH(100, 50, 20, 15),
		geom.RectXYWH(120, 50, 60, 15),
		geom.RectXYWH(100, 65, 80, 5),
	}
	for i, n := range ns {
		if n.rect != want[i] {
			t.Errorf("cell %d rect = %v, want %v", i, n.rect, want[i])
		}
	}
}

func TestGridCellsShareTrackExtents(t *testing.T) {
	ns := []*testNode{
		{rules: [2]SizeRules{FixedRules(10), FixedRules(10)}},
		{rules: [2]SizeRules{FixedRules(30), FixedRules(20)}},
		{rules: [2]SizeRules{FixedRules(20), FixedRules(10)}},
		{rules: [2]SizeRules{FixedRules(10), FixedRules(5)}},
	}
	cells := []GridChildInfo{Cell(0, 0), Cell(1, 0), Cell(0, 1), Cell(1, 1)}
	var s GridStorage
	GridSizeRules(&s, cells, nodes(ns), testSizer{}, HorizontalAxis())
	GridSizeRules(&s, cells, nodes(ns), testSizer{}, VerticalAxis())
	GridSetRect(&s, cells, nodes(ns), testSizer{}, geom.RectXYWH(0, 0, 50, 30), AlignHints{})

	// Same column => same x and width; same row => same y and height.
	if ns[0].rect.Size.W != ns[2].rect.Size.W || ns[0].rect.Pos.X != ns[2].rect.Pos.X {
		t.Errorf("column 0 cells differ: %v %v", ns[0].rect, ns[2].rect)
	}
	if ns[0].rect.Size.H != ns[1].rect.Size.H || ns[0].rect.Pos.Y != ns[1].rect.Pos.Y {
		t.Errorf("row 0 cells differ: %v %v", ns[0].rect, ns[1].rect)
	}
	if ns[0].rect.Size != (geom.Size{W: 20, H: 20}) {
		t.Errorf("cell 0 size = %v, want 20x20", ns[0].rect.Size)
	}
}

func TestGridCrossAxisQueryOrder(t *testing.T) {
	cells := []GridChildInfo{Cell(0, 0), Cell(1, 0)}
	sh := testSizer{}
	height := VerticalAxis().WithOther(100)

	var fresh GridStorage
	crossFirst := GridSizeRules(&fresh, cells, nodes(wrappingNodes()), sh, height)

	var warm GridStorage
	ns := wrappingNodes()
	GridSizeRules(&warm, cells, nodes(ns), sh, HorizontalAxis())
	mainFirst := GridSizeRules(&warm, cells, nodes(ns), sh, height)

	if crossFirst != mainFirst {
		t.Errorf("cross-first %v differs from main-first %v", crossFirst, mainFirst)
	}
	// Columns of 50 each: 1000/50 = 20 rows of text.
	if crossFirst.Min() != 20 {
		t.Errorf("grid height = %v, want 20", crossFirst)
	}
	if cols := fresh.Tracks(Horizontal); len(cols) != 2 || cols[0].Ideal() != 100 {
		t.Errorf("column tracks = %v", cols)
	}
}
