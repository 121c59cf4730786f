package theme

import (
	"testing"

	"github.com/kas-gui/kas-go/pkg/layout"
)

func TestCellLabelBound(t *testing.T) {
	s := NewCellSizer(DefaultCellDimensions())

	h := s.TextBound("hello world", layout.TextLabel, layout.HorizontalAxis())
	if h.Min() != 5 || h.Ideal() != 11 {
		t.Errorf("horizontal = %v, want min 5 ideal 11", h)
	}
	if h.Stretch() != layout.LowUtility {
		t.Errorf("stretch = %v, want LowUtility", h.Stretch())
	}

	tests := []struct {
		width uint32
		lines uint32
	}{
		{11, 1},
		{10, 2},
		{5, 2},
		{3, 2},
	}
	for _, tt := range tests {
		v := s.TextBound("hello world", layout.TextLabel, layout.VerticalAxis().WithOther(tt.width))
		if v.Min() != tt.lines || v.Ideal() != tt.lines {
			t.Errorf("width %d: vertical = %v, want %d lines", tt.width, v, tt.lines)
		}
	}
}

func TestCellWideRunes(t *testing.T) {
	s := NewCellSizer(DefaultCellDimensions())
	r := s.TextBound("日本", layout.TextButton, layout.HorizontalAxis())
	if r.Min() != 4 || r.Ideal() != 4 || r.Stretch() != layout.Fixed {
		t.Errorf("wide text = %v, want fixed 4", r)
	}
	if got := s.Truncate("日本語テキスト", 6, "..."); got != "日..." {
		t.Errorf("Truncate = %q", got)
	}
}

func TestPixelBound(t *testing.T) {
	d := DefaultPixelDimensions()
	s := NewPixelSizer(d)
	if s.LineHeight() != 13 {
		t.Errorf("LineHeight = %d, want 13", s.LineHeight())
	}

	r := s.TextBound("abc", layout.TextButton, layout.HorizontalAxis())
	if r.Ideal() != 21 {
		t.Errorf("button width = %d, want 21", r.Ideal())
	}
	if m := r.Margins(); m.First != d.InnerMargin || m.Second != d.InnerMargin {
		t.Errorf("button margins = %+v, want inner margin", m)
	}

	e := s.TextBound("", layout.TextEdit, layout.HorizontalAxis())
	if e.Min() != 56 || e.Ideal() != 112 || e.Stretch() != layout.HighUtility {
		t.Errorf("edit = %v", e)
	}

	v := s.TextBound("two\nlines", layout.TextLabel, layout.VerticalAxis())
	if v.Ideal() != 26 {
		t.Errorf("two-line height = %d, want 26", v.Ideal())
	}
}

func TestPixelFontScale(t *testing.T) {
	d := DefaultPixelDimensions()
	d.FontScale = 2
	s := NewPixelSizer(d)
	if s.LineHeight() != 26 {
		t.Errorf("LineHeight = %d, want 26", s.LineHeight())
	}
	if r := s.TextBound("a", layout.TextButton, layout.HorizontalAxis()); r.Ideal() != 14 {
		t.Errorf("scaled width = %d, want 14", r.Ideal())
	}
}

func TestEmptyLabelHasOneLine(t *testing.T) {
	s := NewCellSizer(DefaultCellDimensions())
	v := s.TextBound("", layout.TextLabel, layout.VerticalAxis().WithOther(10))
	if v.Ideal() != 1 {
		t.Errorf("empty label height = %d, want 1", v.Ideal())
	}
}

func TestParseMetrics(t *testing.T) {
	tests := []struct {
		in      string
		want    Metrics
		wantErr bool
	}{
		{"pixel", MetricsPixel, false},
		{"Cell", MetricsCell, false},
		{"", MetricsPixel, false},
		{"points", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMetrics(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMetrics(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestNew(t *testing.T) {
	sh, err := New(MetricsCell, DefaultCellDimensions())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sh.(*CellSizer); !ok {
		t.Errorf("New(cell) = %T", sh)
	}
	if _, err := New("bogus", Dimensions{}); err == nil {
		t.Error("New(bogus) should fail")
	}
}
