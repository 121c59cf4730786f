package theme

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PixelSizer measures text in pixels using a font face.
type PixelSizer struct {
	textMetrics
	face font.Face
}

// NewPixelSizer returns a sizer using the built-in 7x13 bitmap face.
func NewPixelSizer(d Dimensions) *PixelSizer {
	return NewPixelSizerWithFace(d, basicfont.Face7x13)
}

// NewPixelSizerWithFace returns a sizer measuring with face.
func NewPixelSizerWithFace(d Dimensions, face font.Face) *PixelSizer {
	s := &PixelSizer{face: face}
	scale := d.scale()
	s.dims = d
	s.measure = func(text string) uint32 {
		adv := font.MeasureString(face, text)
		return uint32(math.Ceil(float64(adv) / 64 * scale))
	}
	s.lineHeight = uint32(math.Ceil(float64(face.Metrics().Height) / 64 * scale))
	return s
}

// Face returns the face used for measurement.
func (s *PixelSizer) Face() font.Face { return s.face }
