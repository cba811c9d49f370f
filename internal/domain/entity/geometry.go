// Package entity defines the split-tree layout domain: geometry, the
// declarative layout configuration and the tree of sashes built from it.
// These types are pure Go with no infrastructure dependencies.
package entity

import "math"

// geometryEpsilon is the tolerance used when comparing pixel extents that
// went through floating point arithmetic.
const geometryEpsilon = 1e-6

// Rect is an absolute pixel rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive so adjacent panes never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Extent returns the size of r along the axis.
func (r Rect) Extent(a Axis) float64 {
	if a == AxisVertical {
		return r.Height
	}
	return r.Width
}

// Offset returns the leading coordinate of r along the axis.
func (r Rect) Offset(a Axis) float64 {
	if a == AxisVertical {
		return r.Top
	}
	return r.Left
}

// slice returns the part of r that starts offset pixels into the axis and
// spans extent pixels. The cross axis is left untouched.
func (r Rect) slice(a Axis, offset, extent float64) Rect {
	out := r
	if a == AxisVertical {
		out.Top = r.Top + offset
		out.Height = extent
		return out
	}
	out.Left = r.Left + offset
	out.Width = extent
	return out
}

// childRect derives the rectangle of a child tagged pos that is size pixels
// long on the split axis.
func childRect(parent Rect, pos Position, size float64) Rect {
	axis := pos.Axis()
	if pos.IsLeading() {
		return parent.slice(axis, 0, size)
	}
	return parent.slice(axis, parent.Extent(axis)-size, size)
}

// ApproxEqual compares two rectangles with an absolute tolerance.
func (r Rect) ApproxEqual(o Rect, eps float64) bool {
	return approxEqual(r.Left, o.Left, eps) &&
		approxEqual(r.Top, o.Top, eps) &&
		approxEqual(r.Width, o.Width, eps) &&
		approxEqual(r.Height, o.Height, eps)
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// sizeTolerance scales the comparison tolerance with the magnitude of the
// extent so large containers do not fail on rounding noise.
func sizeTolerance(extent float64) float64 {
	return geometryEpsilon * math.Max(1, math.Abs(extent))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
