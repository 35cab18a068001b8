package core

import "errors"

// ErrInvalidSurface is returned when a drawing surface has a zero or negative size.
var ErrInvalidSurface = errors.New("core: invalid surface")

// Surface is the drawing capability handed to game render code.
// Coordinates are logical viewport units; implementations map them onto
// whatever output they drive.
type Surface interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h float64)

	// Clear wipes the whole frame.
	Clear()

	// FillPolygon fills the closed path through points.
	FillPolygon(points []Point, c Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// SetGlow applies a halo of the given blur radius around subsequent fills.
	// A blur of 0 disables it.
	SetGlow(blur float64, c Color)
}
