// Package geom provides the integer geometry shared by layout and event
// handling: coordinates, sizes and rectangles in physical pixels.
package geom

import "fmt"

// Coord is a position in pixels. It may be negative (e.g. a pointer outside
// the window, or a child scrolled above its parent's origin).
type Coord struct {
	X, Y int32
}

// Add returns c translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// AddSize returns c translated by s.
func (c Coord) AddSize(s Size) Coord {
	return Coord{X: c.X + int32(s.W), Y: c.Y + int32(s.H)}
}

// String returns a human-readable representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is a width and height in pixels.
type Size struct {
	W, H uint32
}

// Uniform returns a square size.
func Uniform(v uint32) Size {
	return Size{W: v, H: v}
}

// Get returns the component along the given axis: the width if vertical is
// false, otherwise the height.
func (s Size) Get(vertical bool) uint32 {
	if vertical {
		return s.H
	}
	return s.W
}

// With returns s with the component along the given axis replaced.
func (s Size) With(vertical bool, v uint32) Size {
	if vertical {
		s.H = v
	} else {
		s.W = v
	}
	return s
}

// Add returns the component-wise sum.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// SaturatingSub returns the component-wise difference, clamped at zero.
func (s Size) SaturatingSub(o Size) Size {
	return Size{W: satSub(s.W, o.W), H: satSub(s.H, o.H)}
}

// Min returns the component-wise minimum.
func (s Size) Min(o Size) Size {
	return Size{W: min(s.W, o.W), H: min(s.H, o.H)}
}

// Max returns the component-wise maximum.
func (s Size) Max(o Size) Size {
	return Size{W: max(s.W, o.W), H: max(s.H, o.H)}
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is a positioned size. Pos is the top-left corner.
type Rect struct {
	Pos  Coord
	Size Size
}

// NewRect constructs a Rect from position and size.
func NewRect(pos Coord, size Size) Rect {
	return Rect{Pos: pos, Size: size}
}

// RectXYWH constructs a Rect from explicit components.
func RectXYWH(x, y int32, w, h uint32) Rect {
	return Rect{Pos: Coord{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// End returns the coordinate one past the bottom-right corner.
func (r Rect) End() Coord {
	return r.Pos.AddSize(r.Size)
}

// Contains reports whether c lies within the rectangle. The start edges are
// inclusive and the end edges exclusive, so adjacent rectangles never both
// contain a coordinate.
func (r Rect) Contains(c Coord) bool {
	end := r.End()
	return c.X >= r.Pos.X && c.X < end.X && c.Y >= r.Pos.Y && c.Y < end.Y
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Coord) Rect {
	r.Pos = r.Pos.Add(offset)
	return r
}

// Shrink returns r inset by n pixels on every side. The size saturates at
// zero; the position still moves so that an over-shrunk rect stays centred.
func (r Rect) Shrink(n uint32) Rect {
	return Rect{
		Pos:  Coord{X: r.Pos.X + int32(n), Y: r.Pos.Y + int32(n)},
		Size: r.Size.SaturatingSub(Uniform(2 * n)),
	}
}

// Intersect returns the overlap of r and o, or an empty rect at r.Pos if they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.Pos.X, o.Pos.X), max(r.Pos.Y, o.Pos.Y)
	e1, e2 := r.End(), o.End()
	x1, y1 := min(e1.X, e2.X), min(e1.Y, e2.Y)
	if x1 <= x0 || y1 <= y0 {
		return Rect{Pos: r.Pos}
	}
	return RectXYWH(x0, y0, uint32(x1-x0), uint32(y1-y0))
}

// Center returns the centre point, rounded towards the top-left.
func (r Rect) Center() Coord {
	return Coord{X: r.Pos.X + int32(r.Size.W/2), Y: r.Pos.Y + int32(r.Size.H/2)}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Pos, r.Size)
}

// Vec2 is a floating-point 2D vector, used by pan gestures where the scale
// and rotation components are fractional.
type Vec2 struct {
	X, Y float32
}

// ComplexProd returns the complex product of v and o, treating each as
// X + iY. Composing two pan transforms multiplies their alpha components.
func (v Vec2) ComplexProd(o Vec2) Vec2 {
	return Vec2{X: v.X*o.X - v.Y*o.Y, Y: v.X*o.Y + v.Y*o.X}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// VecFromCoord converts a coordinate to a vector.
func VecFromCoord(c Coord) Vec2 {
	return Vec2{X: float32(c.X), Y: float32(c.Y)}
}

func satSub(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return 0
}
