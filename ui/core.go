package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Vec2 is a normalized (0-1) pair relative to a parent rectangle.
type Vec2 [2]float64

// Rect represents the absolute bounds of a node in screen pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Child resolves a normalized origin/size pair against r.
func (r Rect) Child(origin, size Vec2) Rect {
	return Rect{
		X: origin[0]*r.W + r.X,
		Y: origin[1]*r.H + r.Y,
		W: size[0] * r.W,
		H: size[1] * r.H,
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Color is a non-premultiplied RGBA color with channels in 0..1.
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

var _ color.Color = Color{}

// NRGBA converts c to an 8-bit color, clamping out of range channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Align is the horizontal alignment of a node's text inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) textAlign() text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}
