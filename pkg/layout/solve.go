package layout

import "math/bits"

// innerMargins returns the gaps between consecutive rules and their total.
func innerMargins(rules []SizeRules) ([]uint32, uint32) {
	if len(rules) < 2 {
		return nil, 0
	}
	gaps := make([]uint32, len(rules)-1)
	var total uint32
	for i := 1; i < len(rules); i++ {
		g := max(rules[i-1].margins.Second, rules[i].margins.First)
		gaps[i-1] = g
		total = satAdd(total, g)
	}
	return gaps, total
}

// SolveSeq divides target among rules laid out in sequence and returns one
// size per rule. Gaps between consecutive rules are taken from target first.
//
// Below the sum of minimums every rule gets exactly its minimum and the
// overflow is accepted. Between the sums of minimums and ideals, each rule
// grows from its minimum in proportion to its (ideal - min) range. Beyond the
// sum of ideals, the surplus goes only to rules of the highest stretch policy
// present; if that policy is Fixed the surplus stays unused.
func SolveSeq(rules []SizeRules, target uint32) []uint32 {
	sizes := make([]uint32, len(rules))
	if len(rules) == 0 {
		return sizes
	}
	_, gap := innerMargins(rules)
	if target > gap {
		target -= gap
	} else {
		target = 0
	}

	var sumMin, sumIdeal uint64
	for i, r := range rules {
		sizes[i] = r.min
		sumMin += uint64(r.min)
		sumIdeal += uint64(r.ideal)
	}
	t := uint64(target)
	if t <= sumMin {
		return sizes
	}

	if t < sumIdeal {
		weights := make([]uint64, len(rules))
		for i, r := range rules {
			weights[i] = uint64(r.ideal - r.min)
		}
		distribute(sizes, weights, t-sumMin)
		return sizes
	}

	top := Fixed
	for i, r := range rules {
		sizes[i] = r.ideal
		top = max(top, r.stretch)
	}
	if top == Fixed || t == sumIdeal {
		return sizes
	}
	weights := make([]uint64, len(rules))
	for i, r := range rules {
		if r.stretch == top {
			weights[i] = 1
		}
	}
	distribute(sizes, weights, t-sumIdeal)
	return sizes
}

// SolveSeqPositions is SolveSeq plus the offset of each rule from the start
// of the space, accounting for the gaps between rules.
func SolveSeqPositions(rules []SizeRules, target uint32) (offsets, sizes []uint32) {
	sizes = SolveSeq(rules, target)
	offsets = make([]uint32, len(rules))
	gaps, _ := innerMargins(rules)
	var pos uint32
	for i := range rules {
		if i > 0 {
			pos = satAdd(pos, gaps[i-1])
		}
		offsets[i] = pos
		pos = satAdd(pos, sizes[i])
	}
	return offsets, sizes
}

// distribute adds amount to sizes in proportion to weights. Cumulative
// rounding makes the additions sum to exactly amount.
func distribute(sizes []uint32, weights []uint64, amount uint64) {
	var total uint64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return
	}
	var cum, given uint64
	for i, w := range weights {
		cum += w
		// cum <= total, so the 128-bit quotient fits in 64 bits.
		hi, lo := bits.Mul64(amount, cum)
		q, _ := bits.Div64(hi, lo, total)
		share := q - given
		sizes[i] += uint32(share)
		given += share
	}
}

// SpanRules merges the rules of a cell spanning tracks[from:to] into those
// tracks. If the spanned tracks combined are smaller than the cell, the
// deficit is added to the last spanned track. tracks is modified in place.
func SpanRules(tracks []SizeRules, from, to int, cell SizeRules) {
	if from < 0 || to > len(tracks) || from >= to {
		return
	}
	if to-from == 1 {
		tracks[from] = tracks[from].MaxWith(cell)
		return
	}
	sum := SumRules(tracks[from:to])
	last := &tracks[to-1]
	if cell.min > sum.min {
		last.min += cell.min - sum.min
	}
	if cell.ideal > sum.ideal {
		last.ideal += cell.ideal - sum.ideal
	}
	last.ideal = max(last.ideal, last.min)
	last.stretch = max(last.stretch, cell.stretch)
	tracks[from].margins.First = max(tracks[from].margins.First, cell.margins.First)
	last.margins.Second = max(last.margins.Second, cell.margins.Second)
}
