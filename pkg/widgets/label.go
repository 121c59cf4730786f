package widgets

import (
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
)

// Label displays static text. Long text wraps: given a width on the vertical
// query, a label reports the height of its text wrapped to that width.
type Label struct {
	Leaf
	text string
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text. The caller must run a new layout pass for the
// change to affect sizes.
func (l *Label) SetText(text string) { l.text = text }

func (l *Label) SizeRules(sh layout.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return sh.TextBound(l.text, layout.TextLabel, axis)
}

func (l *Label) SetRect(_ layout.SizeHandle, rect geom.Rect, _ layout.AlignHints) {
	l.StoreRect(rect)
}

// Filler is an empty widget that absorbs spare space ahead of everything
// else.
type Filler struct {
	Leaf
}

// NewFiller creates a filler.
func NewFiller() *Filler {
	return &Filler{}
}

func (*Filler) SizeRules(layout.SizeHandle, layout.AxisInfo) layout.SizeRules {
	return layout.NewSizeRules(0, 0, layout.Margins{}, layout.Filler)
}

func (f *Filler) SetRect(_ layout.SizeHandle, rect geom.Rect, _ layout.AlignHints) {
	f.StoreRect(rect)
}
