// Package world is the simulation: the player's physics, the platform field
// and the collision index that connects them. Coordinates are world space,
// y grows downward and the climb heads toward negative y.
package world

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports a strict overlap; boxes that only share an edge do not
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
