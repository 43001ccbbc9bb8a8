package plotline

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// rgba converts to a premultiplied 8-bit color for ebiten's vector and text
// draw calls.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Default palette. Kept small on purpose: the narrative reads through
// emphasis (size and opacity), not through hue.
var (
	ColorBackground = Color{R: 0.094, G: 0.106, B: 0.141, A: 1} // near-black slate
	ColorAxis       = Color{R: 0.55, G: 0.57, B: 0.62, A: 1}
	ColorGrid       = Color{R: 0.22, G: 0.24, B: 0.29, A: 1}
	ColorMark       = Color{R: 0.36, G: 0.62, B: 0.88, A: 1} // steel blue
	ColorEmphasis   = Color{R: 0.96, G: 0.55, B: 0.22, A: 1} // amber
	ColorRegression = Color{R: 0.85, G: 0.36, B: 0.38, A: 1} // muted red
	ColorAnnotation = Color{R: 0.92, G: 0.93, B: 0.95, A: 1}
	ColorText       = Color{R: 0.88, G: 0.89, B: 0.92, A: 1}
	ColorTextDim    = Color{R: 0.55, G: 0.57, B: 0.62, A: 1}
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
