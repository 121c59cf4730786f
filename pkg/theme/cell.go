package theme

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// CellSizer measures text in terminal cells. East Asian wide runes count as
// two columns and every line is one row.
type CellSizer struct {
	textMetrics
}

// NewCellSizer returns a terminal-cell sizer. FontScale is ignored.
func NewCellSizer(d Dimensions) *CellSizer {
	s := &CellSizer{}
	s.dims = d
	s.measure = func(text string) uint32 {
		return uint32(runewidth.StringWidth(text))
	}
	s.lineHeight = 1
	return s
}

// Truncate shortens text to fit width columns, marking the cut with tail.
func (s *CellSizer) Truncate(text string, width uint32, tail string) string {
	w := int(min(width, math.MaxInt32))
	return runewidth.Truncate(text, w, tail)
}
