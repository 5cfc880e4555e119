// Package core provides fundamental types shared by the simulation core and
// the host. It has no external dependencies.
package core

import "fmt"

// Point is a placement coordinate on the presentation surface.
type Point struct {
	X, Y int
}

// P is shorthand for Point{x, y}.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned region, used to address a tile of a sprite sheet.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Quarters splits r into four equal tiles in reading order:
// top-left, top-right, bottom-left, bottom-right.
func (r Rect) Quarters() [4]Rect {
	w, h := r.W/2, r.H/2
	return [4]Rect{
		NewRect(r.X, r.Y, w, h),
		NewRect(r.X+w, r.Y, w, h),
		NewRect(r.X, r.Y+h, w, h),
		NewRect(r.X+w, r.Y+h, w, h),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%dx%d", r.X, r.Y, r.W, r.H)
}
