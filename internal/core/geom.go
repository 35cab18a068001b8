// Package core provides fundamental types and utilities for the shooter.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in logical viewport units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectOverlap returns true if the two boxes intersect.
// All four half-plane tests are strict, so boxes that only share an edge
// do not collide.
func RectOverlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// PointInRect returns true if (px, py) is strictly inside r.
// Points on the border are outside.
func PointInRect(px, py float64, r Rect) bool {
	return r.X < px && px < r.X+r.W &&
		r.Y < py && py < r.Y+r.H
}

// Point is a position in logical viewport units.
type Point struct {
	X, Y float64
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
