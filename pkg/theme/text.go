package theme

import (
	"strings"

	"github.com/kas-gui/kas-go/pkg/layout"
)

const (
	editMinChars   = 8
	editIdealChars = 16
)

// textMetrics is the part of a sizer that differs between surfaces.
type textMetrics struct {
	dims       Dimensions
	measure    func(s string) uint32
	lineHeight uint32
}

func (t *textMetrics) OuterMargins() layout.Margins {
	return layout.UniformMargins(t.dims.Margin)
}

func (t *textMetrics) InnerMargin() uint32 { return t.dims.InnerMargin }

func (t *textMetrics) FrameSize() uint32 { return t.dims.Frame }

func (t *textMetrics) LineHeight() uint32 { return t.lineHeight }

// TextBound sizes text. Labels sit within the outer margins and may wrap;
// button and edit text carry the inner margin, which becomes padding once
// the widget surrounds it with its frame.
func (t *textMetrics) TextBound(text string, class layout.TextClass, axis layout.AxisInfo) layout.SizeRules {
	margins := layout.UniformMargins(t.dims.InnerMargin)
	if class == layout.TextLabel {
		margins = t.OuterMargins()
	}
	lines := strings.Split(text, "\n")

	if axis.IsHorizontal() {
		widest := uint32(0)
		for _, l := range lines {
			widest = max(widest, t.measure(l))
		}
		switch class {
		case layout.TextLabel:
			longestWord := uint32(0)
			for _, w := range strings.Fields(text) {
				longestWord = max(longestWord, t.measure(w))
			}
			return layout.NewSizeRules(longestWord, widest, margins, layout.LowUtility)
		case layout.TextEdit:
			digit := t.measure("0")
			minW := editMinChars * digit
			ideal := max(editIdealChars*digit, widest)
			return layout.NewSizeRules(minW, ideal, margins, layout.HighUtility)
		default:
			return layout.NewSizeRules(widest, widest, margins, layout.Fixed)
		}
	}

	n := uint32(len(lines))
	switch class {
	case layout.TextLabel:
		if width, ok := axis.Other(); ok {
			width = satSub(width, t.OuterMargins().Sum())
			n = 0
			for _, l := range lines {
				n += t.wrappedLines(l, width)
			}
		}
	case layout.TextEdit:
		n = 1
	}
	h := max(n, 1) * t.lineHeight
	return layout.NewSizeRules(h, h, margins, layout.Fixed)
}

// wrappedLines returns how many lines line occupies when wrapped greedily at
// word boundaries to width. A word wider than width takes a line of its own.
func (t *textMetrics) wrappedLines(line string, width uint32) uint32 {
	words := strings.Fields(line)
	if len(words) == 0 {
		return 1
	}
	space := t.measure(" ")
	n := uint32(1)
	cur := t.measure(words[0])
	for _, w := range words[1:] {
		ww := t.measure(w)
		if cur+space+ww <= width {
			cur += space + ww
			continue
		}
		n++
		cur = ww
	}
	return n
}

func satSub(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return 0
}
