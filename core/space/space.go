// Package space holds the aspect-normalized square coordinate mapping shared
// by every visualizer and the compositor letterbox. Device pixels are
// normalized into a square-aspect space centered at the surface center, with
// the shorter dimension mapping to the full extent, so shape proportions are
// independent of the window aspect ratio.
package space

import "math"

// Point is a 2-D coordinate, either in surface UV space or in the canonical
// square space, depending on context.
type Point struct {
	X, Y float64
}

// Aspect returns the per-axis scale factors that map a w×h surface onto its
// centered inscribed square.
func Aspect(w, h float64) (ax, ay float64) {
	m := math.Min(w, h)
	return m / w, m / h
}

// FromSquare maps a canonical square-space point (0..1 across the inscribed
// square) to surface UV coordinates on a w×h surface.
func FromSquare(p Point, w, h float64) Point {
	ax, ay := Aspect(w, h)
	return Point{
		X: (p.X-0.5)/ax + 0.5,
		Y: (p.Y-0.5)/ay + 0.5,
	}
}

// ToSquare maps surface UV coordinates back into canonical square space.
// Inverse of FromSquare.
func ToSquare(uv Point, w, h float64) Point {
	ax, ay := Aspect(w, h)
	return Point{
		X: (uv.X-0.5)*ax + 0.5,
		Y: (uv.Y-0.5)*ay + 0.5,
	}
}

// Project maps a surface UV point into pattern space: recenter to [-1,1],
// apply the aspect square scale and the caller's scale, then rotate by rot
// radians. Two surfaces with different aspect ratios project the same
// canonical point to the same pattern-space coordinate.
func Project(uv Point, w, h, scale, rot float64) Point {
	ax, ay := Aspect(w, h)
	x := (uv.X*2 - 1) * ax * scale
	y := (uv.Y*2 - 1) * ay * scale
	c, s := math.Cos(rot), math.Sin(rot)
	return Point{
		X: c*x - s*y,
		Y: s*x + c*y,
	}
}
