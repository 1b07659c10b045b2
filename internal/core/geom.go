// Package core provides fundamental types and utilities for the grid simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// GridRect is an axis-aligned rectangle of cells. It is the single occupancy
// primitive: snake segments and food are 1x1, enemies are larger.
type GridRect struct {
	Pos  Point
	W, H int
}

// NewGridRect creates a rectangle with its top-left cell at (x, y).
// Non-positive dimensions are raised to 1.
func NewGridRect(x, y, w, h int) GridRect {
	return GridRect{Pos: Point{X: x, Y: y}, W: Max(w, 1), H: Max(h, 1)}
}

// Cell returns the 1x1 rectangle at (x, y).
func Cell(x, y int) GridRect {
	return GridRect{Pos: Point{X: x, Y: y}, W: 1, H: 1}
}

// Right returns the x-coordinate of the rightmost occupied column.
func (r GridRect) Right() int {
	return r.Pos.X + r.W - 1
}

// Bottom returns the y-coordinate of the lowest occupied row.
func (r GridRect) Bottom() int {
	return r.Pos.Y + r.H - 1
}

// Overlapping reports whether the two rectangles share at least one cell.
// Edges are inclusive: rects that merely touch side by side do not overlap.
func (r GridRect) Overlapping(other GridRect) bool {
	if r.Right() < other.Pos.X || other.Right() < r.Pos.X {
		return false
	}
	if r.Bottom() < other.Pos.Y || other.Bottom() < r.Pos.Y {
		return false
	}
	return true
}

// Contains returns true if the cell p lies inside the rectangle.
func (r GridRect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X <= r.Right() && p.Y >= r.Pos.Y && p.Y <= r.Bottom()
}

// Within returns true if every cell of r lies inside bounds.
func (r GridRect) Within(bounds GridRect) bool {
	return r.Pos.X >= bounds.Pos.X && r.Pos.Y >= bounds.Pos.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r GridRect) Translate(dx, dy int) GridRect {
	r.Pos = r.Pos.Add(dx, dy)
	return r
}

// At returns the rectangle moved so its top-left cell is p.
func (r GridRect) At(p Point) GridRect {
	r.Pos = p
	return r
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
