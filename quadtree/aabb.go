package quadtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the coordinate type of a quadtree.
//
// Integer instantiations halve with truncating division, so splitting a region
// with an odd side leaves a one unit strip along the far edge of each axis
// that none of the four quadrants cover.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is anything with a position in the plane. Points are stored by value
// and copied when a leaf is broken up.
type Point[N Number] interface {
	X() N
	Y() N
}

// AABB is the axis-aligned square [X, X+Side] x [Y, Y+Side], with (X, Y) its
// lower-left corner.
type AABB[N Number] struct {
	X    N
	Y    N
	Side N
}

// NewAABB creates the square with lower-left corner (x, y) and the given side.
func NewAABB[N Number](x, y, side N) AABB[N] {
	return AABB[N]{
		X:    x,
		Y:    y,
		Side: side,
	}
}

// Contains reports whether the point lies within the square. All four edges
// are inclusive, so a point on an edge shared by two neighbouring quadrants is
// contained by both of them.
func (a AABB[N]) Contains(p Point[N]) bool {
	px, py := p.X(), p.Y()

	if px < a.X || py < a.Y {
		return false
	}

	if px > a.X+a.Side || py > a.Y+a.Side {
		return false
	}

	return true
}

// Split divides the square into its four quadrants, each of side Side/2.
func (a AABB[N]) Split() Quadrants[AABB[N]] {
	half := a.Side / 2

	sw := NewAABB(a.X, a.Y, half)
	nw := NewAABB(a.X, a.Y+half, half)
	se := NewAABB(a.X+half, a.Y, half)
	ne := NewAABB(a.X+half, a.Y+half, half)

	return NewQuadrants(nw, ne, sw, se)
}

// Divisible reports whether splitting the square yields quadrants with a
// positive side.
func (a AABB[N]) Divisible() bool {
	var zero N

	return a.Side/2 > zero
}

func (a AABB[N]) String() string {
	return fmt.Sprintf("[%v,%v +%v]", a.X, a.Y, a.Side)
}
