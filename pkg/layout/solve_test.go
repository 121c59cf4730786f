package layout

import (
	"slices"
	"testing"

	"github.com/kas-gui/kas-go/pkg/geom"
)

func scenarioRules() []SizeRules {
	return []SizeRules{
		NewSizeRules(10, 20, Margins{}, Fixed),
		NewSizeRules(15, 25, Margins{}, Fixed),
	}
}

func TestSolveSeq(t *testing.T) {
	tests := []struct {
		name   string
		rules  []SizeRules
		target uint32
		want   []uint32
	}{
		{"scenario B ideal", scenarioRules(), 45, []uint32{20, 25}},
		{"scenario C min", scenarioRules(), 25, []uint32{10, 15}},
		{"below min overflows", scenarioRules(), 5, []uint32{10, 15}},
		{"between min and ideal", scenarioRules(), 35, []uint32{15, 20}},
		{"fixed leaves surplus", scenarioRules(), 100, []uint32{20, 25}},
		{
			"highest class takes surplus",
			[]SizeRules{
				NewSizeRules(10, 10, Margins{}, LowUtility),
				NewSizeRules(10, 10, Margins{}, HighUtility),
				NewSizeRules(10, 10, Margins{}, HighUtility),
			},
			50,
			[]uint32{10, 20, 20},
		},
		{
			"margins come off first",
			[]SizeRules{
				NewSizeRules(10, 10, Margins{Second: 5}, Filler),
				NewSizeRules(10, 10, Margins{First: 2}, Filler),
			},
			35,
			[]uint32{15, 15},
		},
		{"empty", nil, 10, []uint32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveSeq(tt.rules, tt.target)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SolveSeq(%d) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSolveSeqSumsExactly(t *testing.T) {
	rules := []SizeRules{
		NewSizeRules(0, 7, Margins{}, Filler),
		NewSizeRules(0, 7, Margins{}, Filler),
		NewSizeRules(0, 7, Margins{}, Filler),
	}
	for target := uint32(0); target < 60; target++ {
		var sum uint32
		for _, s := range SolveSeq(rules, target) {
			sum += s
		}
		if sum != target {
			t.Fatalf("target %d: sizes sum to %d", target, sum)
		}
	}
}

// Round trip: a target at least the ideal gives every child at least its
// ideal, whatever the uniform stretch policy.
func TestSolveSeqRoundTrip(t *testing.T) {
	for _, p := range []StretchPolicy{Fixed, LowUtility, HighUtility, Filler} {
		rules := []SizeRules{
			NewSizeRules(3, 8, Margins{}, p),
			NewSizeRules(1, 30, Margins{Second: 2}, p),
			NewSizeRules(9, 9, Margins{First: 4}, p),
		}
		ideal := SumRules(rules).Ideal()
		for _, extra := range []uint32{0, 1, 17} {
			sizes := SolveSeq(rules, ideal+extra)
			for i, r := range rules {
				if sizes[i] < r.Ideal() {
					t.Errorf("%v +%d: child %d got %d, want >= %d", p, extra, i, sizes[i], r.Ideal())
				}
			}
		}
	}
}

func TestSolveSeqPositions(t *testing.T) {
	rules := []SizeRules{
		NewSizeRules(10, 10, Margins{Second: 3}, Fixed),
		NewSizeRules(10, 10, Margins{First: 5}, Fixed),
	}
	offsets, sizes := SolveSeqPositions(rules, 25)
	if !slices.Equal(offsets, []uint32{0, 15}) || !slices.Equal(sizes, []uint32{10, 10}) {
		t.Errorf("offsets=%v sizes=%v, want [0 15] [10 10]", offsets, sizes)
	}
}

func TestSpanRules(t *testing.T) {
	tracks := []SizeRules{
		NewSizeRules(10, 10, Margins{}, Fixed),
		NewSizeRules(10, 10, Margins{}, Fixed),
	}
	SpanRules(tracks, 0, 2, NewSizeRules(30, 50, Margins{}, LowUtility))
	sum := SumRules(tracks)
	if sum.Min() != 30 || sum.Ideal() != 50 {
		t.Errorf("spanned sum = %v, want 30/50", sum)
	}
	if tracks[1].Stretch() != LowUtility || tracks[0].Stretch() != Fixed {
		t.Errorf("stretch should widen only the last track, got %v %v", tracks[0].Stretch(), tracks[1].Stretch())
	}

	// A cell that already fits changes nothing.
	before := slices.Clone(tracks)
	SpanRules(tracks, 0, 2, NewSizeRules(1, 1, Margins{}, Fixed))
	if !slices.Equal(before, tracks) {
		t.Errorf("small span modified tracks: %v -> %v", before, tracks)
	}
}

func TestAlignHintsApply(t *testing.T) {
	space := geom.RectXYWH(0, 0, 100, 50)
	ideal := geom.Size{W: 20, H: 10}
	tests := []struct {
		name    string
		hints   AlignHints
		stretch [2]StretchPolicy
		want    geom.Rect
	}{
		{"default fixed", AlignHints{}, [2]StretchPolicy{}, geom.RectXYWH(0, 0, 20, 10)},
		{"default stretchy", AlignHints{}, [2]StretchPolicy{LowUtility, Fixed}, geom.RectXYWH(0, 0, 100, 10)},
		{"centre", NewAlignHints(AlignCentre, AlignCentre), [2]StretchPolicy{}, geom.RectXYWH(40, 20, 20, 10)},
		{"trailing", NewAlignHints(AlignTrailing, AlignLeading), [2]StretchPolicy{}, geom.RectXYWH(80, 0, 20, 10)},
		{"stretch", NewAlignHints(AlignStretch, AlignStretch), [2]StretchPolicy{Filler, Filler}, space},
		{"stretch ignored when fixed", NewAlignHints(AlignStretch, AlignStretch), [2]StretchPolicy{}, geom.RectXYWH(0, 0, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hints.Apply(ideal, space, tt.stretch); got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisInfo(t *testing.T) {
	a := VerticalAxis()
	if _, ok := a.Other(); ok {
		t.Error("fresh axis should have no other size")
	}
	a = a.WithOther(120)
	if v, ok := a.Other(); !ok || v != 120 {
		t.Errorf("Other() = %d, %v; want 120, true", v, ok)
	}
	if !a.IsVertical() || a.Direction() != Vertical {
		t.Error("axis should be vertical")
	}
	if _, ok := a.WithoutOther().Other(); ok {
		t.Error("WithoutOther should clear the other size")
	}
}

func TestSolveSeqLargeSizes(t *testing.T) {
	tests := []struct {
		name   string
		rules  []SizeRules
		target uint32
		want   []uint32
	}{
		{
			"proportional",
			[]SizeRules{NewSizeRules(0, 4e9, Margins{}, Fixed), NewSizeRules(0, 4e9, Margins{}, Fixed)},
			4e9,
			[]uint32{2e9, 2e9},
		},
		{
			"stretch",
			[]SizeRules{FixedRules(1e9), NewSizeRules(0, 0, Margins{}, Filler)},
			4e9,
			[]uint32{1e9, 3e9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SolveSeq(tt.rules, tt.target); !slices.Equal(got, tt.want) {
				t.Errorf("SolveSeq = %v, want %v", got, tt.want)
			}
		})
	}

	rules := []SizeRules{
		NewSizeRules(0, 4e9, Margins{}, Fixed),
		NewSizeRules(0, 4e9, Margins{}, Fixed),
		NewSizeRules(0, 4e9, Margins{}, Fixed),
	}
	var total uint64
	for _, s := range SolveSeq(rules, 4e9-1) {
		total += uint64(s)
	}
	if total != 4e9-1 {
		t.Errorf("shares sum to %d, want %d", total, uint64(4e9-1))
	}
}
