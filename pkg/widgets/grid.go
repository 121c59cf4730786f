package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Grid places children in cells of a table. Cells may span several columns
// or rows. Column widths and row heights are solved independently and each
// child receives the intersection of its columns and rows.
type Grid struct {
	core.CoreData
	cells    []layout.GridChildInfo
	children []Widget
	storage  layout.GridStorage
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Add places w in a single cell and returns the grid for chaining.
func (g *Grid) Add(col, row int, w Widget) *Grid {
	return g.AddSpan(layout.Cell(col, row), w)
}

// AddSpan places w over the cells described by info.
func (g *Grid) AddSpan(info layout.GridChildInfo, w Widget) *Grid {
	g.cells = append(g.cells, info)
	g.children = append(g.children, w)
	return g
}

// Dimensions returns the number of columns and rows.
func (g *Grid) Dimensions() (cols, rows int) {
	return layout.GridDimensions(g.cells)
}

// CellOf returns the placement of child i.
func (g *Grid) CellOf(i int) layout.GridChildInfo { return g.cells[i] }

func (g *Grid) Len() int { return len(g.children) }

func (g *Grid) Get(i int) Widget { return g.children[i] }

func (g *Grid) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return layout.GridSizeRules(&g.storage, g.cells, childNode(g.children), sh, axis)
}

func (g *Grid) SetRect(sh layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	g.StoreRect(rect)
	layout.GridSetRect(&g.storage, g.cells, childNode(g.children), sh, rect, align)
}
