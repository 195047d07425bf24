package quadtree

// Quadrants holds one value per quadrant of a square region.
type Quadrants[T any] struct {
	NW T
	NE T
	SW T
	SE T
}

// NewQuadrants groups the four values.
func NewQuadrants[T any](nw, ne, sw, se T) Quadrants[T] {
	return Quadrants[T]{
		NW: nw,
		NE: ne,
		SW: sw,
		SE: se,
	}
}

// Slots returns pointers to the four values in routing precedence order:
// northwest, northeast, southwest, southeast.
func (q *Quadrants[T]) Slots() [4]*T {
	return [4]*T{&q.NW, &q.NE, &q.SW, &q.SE}
}
