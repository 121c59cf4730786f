package widgets

import (
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// List lays out its children in sequence along one direction.
//
// The main axis is sized by appending the children's rules, the cross axis
// by combining them in parallel. Adding or removing children changes the
// tree shape and requires a new Configure pass.
type List struct {
	core.CoreData
	dir      layout.Direction
	children []Widget
	storage  layout.RowStorage
}

// NewList creates a list along dir.
func NewList(dir layout.Direction, children ...Widget) *List {
	return &List{dir: dir, children: children}
}

// NewRow creates a horizontal list.
func NewRow(children ...Widget) *List {
	return NewList(layout.Horizontal, children...)
}

// NewColumn creates a vertical list.
func NewColumn(children ...Widget) *List {
	return NewList(layout.Vertical, children...)
}

// Direction returns the list's main axis.
func (l *List) Direction() layout.Direction { return l.dir }

// Push appends a child.
func (l *List) Push(w Widget) {
	l.children = append(l.children, w)
}

// Pop removes and returns the last child, or nil if the list is empty.
func (l *List) Pop() Widget {
	n := len(l.children)
	if n == 0 {
		return nil
	}
	w := l.children[n-1]
	l.children[n-1] = nil
	l.children = l.children[:n-1]
	return w
}

func (l *List) Len() int { return len(l.children) }

func (l *List) Get(i int) Widget { return l.children[i] }

func (l *List) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return layout.RowSizeRules(&l.storage, l.dir, len(l.children), childNode(l.children), sh, axis)
}

func (l *List) SetRect(sh layout.SizeHandle, rect geom.Rect, align layout.AlignHints) {
	l.StoreRect(rect)
	layout.RowSetRect(&l.storage, l.dir, len(l.children), childNode(l.children), sh, rect, align)
}
