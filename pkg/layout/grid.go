package layout

import (
	"slices"

	"github.com/kas-gui/kas-go/pkg/geom"
)

// GridChildInfo places a child in a grid. Col and Row are the first track
// occupied, ColEnd and RowEnd one past the last. An end not greater than its
// start is treated as a span of one.
type GridChildInfo struct {
	Col, ColEnd int
	Row, RowEnd int
}

// Cell returns the placement of a single-track cell.
func Cell(col, row int) GridChildInfo {
	return GridChildInfo{Col: col, ColEnd: col + 1, Row: row, RowEnd: row + 1}
}

func (c GridChildInfo) span(vertical bool) (int, int) {
	from, to := c.Col, c.ColEnd
	if vertical {
		from, to = c.Row, c.RowEnd
	}
	if from < 0 {
		from = 0
	}
	if to <= from {
		to = from + 1
	}
	return from, to
}

// GridDimensions returns the number of columns and rows needed by cells.
func GridDimensions(cells []GridChildInfo) (cols, rows int) {
	for _, c := range cells {
		_, ce := c.span(false)
		_, re := c.span(true)
		cols = max(cols, ce)
		rows = max(rows, re)
	}
	return cols, rows
}

// GridStorage caches the per-column and per-row rules of a grid between the
// size and set passes.
type GridStorage struct {
	tracks [2][]SizeRules
}

// Tracks returns the cached rules for the columns (Horizontal) or rows
// (Vertical).
func (s *GridStorage) Tracks(dir Direction) []SizeRules {
	return s.tracks[axisIndex(dir.IsVertical())]
}

func (s *GridStorage) reset(vertical bool, n int) []SizeRules {
	i := axisIndex(vertical)
	if cap(s.tracks[i]) < n {
		s.tracks[i] = make([]SizeRules, n)
	}
	s.tracks[i] = s.tracks[i][:n]
	clear(s.tracks[i])
	return s.tracks[i]
}

type spanned struct {
	from, to int
	rules    SizeRules
}

// GridSizeRules computes a grid's rules along axis. Columns and rows are two
// independent sequential problems: single-track cells are combined in
// parallel per track, then multi-track cells (shortest spans first) widen
// their last track if the spanned tracks are too small. The grid's rules are
// the tracks appended in order.
//
// When axis carries a known other-axis size, the other axis's tracks are
// computed afresh and solved for that size, and each cell is queried with the
// extent of the tracks it spans.
func GridSizeRules(s *GridStorage, cells []GridChildInfo, child func(int) Node, sh SizeHandle, axis AxisInfo) SizeRules {
	var otherOffsets, otherSizes []uint32
	if other, ok := axis.Other(); ok {
		prev := gridTracks(s, cells, child, sh, axis.Cross(), nil, nil)
		otherOffsets, otherSizes = SolveSeqPositions(prev, other)
	}
	return SumRules(gridTracks(s, cells, child, sh, axis.WithoutOther(), otherOffsets, otherSizes))
}

// gridTracks fills and returns the cached tracks along axis. If otherSizes is
// set, cells are queried with the extent they span on the other axis.
func gridTracks(s *GridStorage, cells []GridChildInfo, child func(int) Node, sh SizeHandle, axis AxisInfo, otherOffsets, otherSizes []uint32) []SizeRules {
	vertical := axis.IsVertical()
	cols, rows := GridDimensions(cells)
	n := cols
	if vertical {
		n = rows
	}
	tracks := s.reset(vertical, n)

	var multi []spanned
	for i, c := range cells {
		from, to := c.span(vertical)
		a := axis
		if otherSizes != nil {
			ofrom, oto := c.span(!vertical)
			a = axis.WithOther(spanLength(otherOffsets, otherSizes, ofrom, oto))
		}
		r := child(i).SizeRules(sh, a)
		if to-from == 1 {
			tracks[from] = tracks[from].MaxWith(r)
		} else {
			multi = append(multi, spanned{from: from, to: to, rules: r})
		}
	}
	slices.SortStableFunc(multi, func(a, b spanned) int {
		return (a.to - a.from) - (b.to - b.from)
	})
	for _, m := range multi {
		SpanRules(tracks, m.from, m.to, m.rules)
	}
	return tracks
}

// GridSetRect solves column widths and row heights for rect and gives every
// cell the intersection of its columns' horizontal extent and its rows'
// vertical extent.
func GridSetRect(s *GridStorage, cells []GridChildInfo, child func(int) Node, sh SizeHandle, rect geom.Rect, align AlignHints) {
	cols, rows := GridDimensions(cells)
	if len(s.tracks[0]) != cols {
		GridSizeRules(s, cells, child, sh, HorizontalAxis())
	}
	if len(s.tracks[1]) != rows {
		GridSizeRules(s, cells, child, sh, VerticalAxis().WithOther(rect.Size.W))
	}
	colOff, colSize := SolveSeqPositions(s.tracks[0], rect.Size.W)
	rowOff, rowSize := SolveSeqPositions(s.tracks[1], rect.Size.H)

	for i, c := range cells {
		cf, ct := c.span(false)
		rf, rt := c.span(true)
		cell := geom.RectXYWH(
			rect.Pos.X+int32(colOff[cf]),
			rect.Pos.Y+int32(rowOff[rf]),
			spanLength(colOff, colSize, cf, ct),
			spanLength(rowOff, rowSize, rf, rt),
		)
		child(i).SetRect(sh, cell, align)
	}
}

func spanLength(offsets, sizes []uint32, from, to int) uint32 {
	if from >= len(offsets) || to > len(offsets) || from >= to {
		return 0
	}
	return offsets[to-1] + sizes[to-1] - offsets[from]
}
