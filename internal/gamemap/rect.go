package gamemap

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle with its top-left corner at (x, y).
// Panics on a negative width or height.
func NewRect(x, y, w, h int) Rect {
	if w < 0 || h < 0 {
		panic("gamemap: negative rect size")
	}
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle, rounded toward its origin.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Inflate returns r grown by n tiles on every side.
func (r Rect) Inflate(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// Contains reports whether (x, y) lies in the carved interior of r,
// which spans X1+1..X2 and Y1+1..Y2.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
