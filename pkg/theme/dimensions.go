// Package theme supplies the metrics widgets use to compute their size
// rules.
//
// Two implementations of layout.SizeHandle are provided: PixelSizer measures
// text with a bitmap font face for pixel surfaces, and CellSizer measures
// text in terminal cells, counting wide runes as two columns.
package theme

import (
	"fmt"
	"strings"

	"github.com/kas-gui/kas-go/pkg/layout"
)

// Metrics selects a SizeHandle implementation.
type Metrics string

const (
	MetricsPixel Metrics = "pixel"
	MetricsCell  Metrics = "cell"
)

// ParseMetrics parses a metrics name, case-insensitively.
func ParseMetrics(s string) (Metrics, error) {
	switch m := Metrics(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricsPixel, MetricsCell:
		return m, nil
	case "":
		return MetricsPixel, nil
	default:
		return "", fmt.Errorf("unknown metrics %q (want %q or %q)", s, MetricsPixel, MetricsCell)
	}
}

// Dimensions are the theme's spacing parameters.
type Dimensions struct {
	// Margin is the space kept around each leaf widget. Adjacent margins
	// overlap rather than add.
	Margin uint32
	// InnerMargin is the padding between a framed widget's border and its
	// text.
	InnerMargin uint32
	// Frame is the thickness of one side of a frame or button border.
	Frame uint32
	// FontScale multiplies text measurements. Zero means 1.
	FontScale float64
}

// DefaultPixelDimensions returns the dimensions used for pixel surfaces.
func DefaultPixelDimensions() Dimensions {
	return Dimensions{Margin: 4, InnerMargin: 2, Frame: 2, FontScale: 1}
}

// DefaultCellDimensions returns the dimensions used for terminal surfaces.
func DefaultCellDimensions() Dimensions {
	return Dimensions{Margin: 0, InnerMargin: 0, Frame: 1, FontScale: 1}
}

// DefaultDimensions returns the defaults for m.
func DefaultDimensions(m Metrics) Dimensions {
	if m == MetricsCell {
		return DefaultCellDimensions()
	}
	return DefaultPixelDimensions()
}

func (d Dimensions) scale() float64 {
	if d.FontScale <= 0 {
		return 1
	}
	return d.FontScale
}

// New returns the SizeHandle for m.
func New(m Metrics, d Dimensions) (layout.SizeHandle, error) {
	switch m {
	case MetricsPixel, "":
		return NewPixelSizer(d), nil
	case MetricsCell:
		return NewCellSizer(d), nil
	default:
		return nil, fmt.Errorf("unknown metrics %q", m)
	}
}
