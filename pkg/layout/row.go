package layout

import "github.com/kas-gui/kas-go/pkg/geom"

// RowStorage caches the child rules computed by the most recent RowSizeRules
// call for each axis, so RowSetRect subdivides space with exactly the rules
// the parent reported upwards.
type RowStorage struct {
	rules [2][]SizeRules
}

// Rules returns the cached child rules for one axis, or nil.
func (s *RowStorage) Rules(dir Direction) []SizeRules {
	return s.rules[axisIndex(dir.IsVertical())]
}

func (s *RowStorage) reset(vertical bool, n int) []SizeRules {
	i := axisIndex(vertical)
	if cap(s.rules[i]) < n {
		s.rules[i] = make([]SizeRules, n)
	}
	s.rules[i] = s.rules[i][:n]
	return s.rules[i]
}

func axisIndex(vertical bool) int {
	if vertical {
		return 1
	}
	return 0
}

// RowSizeRules computes the rules of n children laid out in sequence along
// dir. On the main axis the children's rules are appended; on the cross axis
// they are combined in parallel. When the cross axis is queried with a known
// main-axis length, the children's main-axis rules are queried afresh and
// each child is given its own solved main-axis share as the other-axis size,
// so the result does not depend on which axis was queried first.
func RowSizeRules(s *RowStorage, dir Direction, n int, child func(int) Node, sh SizeHandle, axis AxisInfo) SizeRules {
	vertical := axis.IsVertical()
	if vertical == dir.IsVertical() {
		rules := s.reset(vertical, n)
		for i := range n {
			rules[i] = child(i).SizeRules(sh, axis)
		}
		return SumRules(rules)
	}

	var shares []uint32
	if other, ok := axis.Other(); ok {
		main := s.reset(!vertical, n)
		for i := range n {
			main[i] = child(i).SizeRules(sh, axis.Cross())
		}
		shares = SolveSeq(main, other)
	}
	rules := s.reset(vertical, n)
	for i := range n {
		a := axis.WithoutOther()
		if shares != nil {
			a = axis.WithOther(shares[i])
		}
		rules[i] = child(i).SizeRules(sh, a)
	}
	return MaxRules(rules)
}

// RowSetRect subdivides rect among n children in sequence along dir. If the
// children cannot use all of the main axis (every child is Fixed), the block
// is positioned by the main-axis alignment hint. Every child receives the full
// cross-axis extent.
func RowSetRect(s *RowStorage, dir Direction, n int, child func(int) Node, sh SizeHandle, rect geom.Rect, align AlignHints) {
	if n == 0 {
		return
	}
	vertical := dir.IsVertical()
	main := s.rules[axisIndex(vertical)]
	if len(main) != n {
		RowSizeRules(s, dir, n, child, sh, NewAxisInfo(dir))
		main = s.rules[axisIndex(vertical)]
	}

	space := rect.Size.Get(vertical)
	offsets, sizes := SolveSeqPositions(main, space)
	used := offsets[n-1] + sizes[n-1]
	var shift uint32
	if used < space {
		switch align.Get(dir) {
		case AlignCentre:
			shift = (space - used) / 2
		case AlignTrailing:
			shift = space - used
		}
	}

	for i := range n {
		r := rect
		pos := int32(offsets[i] + shift)
		if vertical {
			r.Pos.Y += pos
			r.Size.H = sizes[i]
		} else {
			r.Pos.X += pos
			r.Size.W = sizes[i]
		}
		child(i).SetRect(sh, r, align)
	}
}
