package quadtree

import (
	"github.com/cockroachdb/errors"
)

// Tree is a region quadtree over a square region.
//
// Every leaf holds at most cutoff points. Inserting into a full leaf breaks it
// up into four child leaves over its quadrants and redistributes its points
// between them.
//
// A Tree is not safe for concurrent use.
type Tree[N Number, P Point[N]] interface {
	// Insert adds the point to the tree. It returns false, leaving the tree
	// untouched, if the point lies outside the tree's region.
	Insert(p P) bool
}

// tree is a region quadtree.
//
// The root is always an interior node, so a tree is split at least once.
type tree[N Number, P Point[N]] struct {
	Root *interiorNode[N, P]
}

// New creates a quadtree over bounds whose leaves hold up to cutoff points.
//
// New panics if cutoff is not positive.
//
// With integer coordinates a region with an odd side splits into quadrants
// that stop one unit short of its top and right edges. Points in that strip
// are still accepted; they are routed to the southeast quadrant even though
// it does not contain them. Use a power of two side to keep every point
// inside the bounds of the leaf holding it.
//
// A leaf whose side halves to zero, such as an integer leaf of side one,
// cannot be broken up and keeps taking points past cutoff. This is what lets
// more than cutoff identical points settle.
func New[N Number, P Point[N]](bounds AABB[N], cutoff int) Tree[N, P] {
	if cutoff < 1 {
		panic(errors.AssertionFailedf("quadtree: cutoff must be positive, got %d", cutoff))
	}

	return &tree[N, P]{
		Root: newInteriorNode[N, P](bounds, cutoff),
	}
}

// Insert adds a point to the quadtree.
//
// Containment is only checked here. Below the root every point is routed to
// some child, so a point inside the tree's bounds is never rejected.
func (t *tree[N, P]) Insert(p P) bool {
	if !t.Root.bounds.Contains(p) {
		return false
	}

	t.Root.Insert(p)

	return true
}

// node is a quadtree node, either a *leafNode or an *interiorNode.
type node[N Number, P Point[N]] interface {
	Bounds() AABB[N]
	IsFull() bool
	Insert(p P)
}

// leafNode is a node that stores points directly.
type leafNode[N Number, P Point[N]] struct {
	bounds AABB[N]
	cutoff int
	Points []P
}

var _ node[float64, Point[float64]] = &leafNode[float64, Point[float64]]{}

// interiorNode is a node with one child per quadrant of its region.
type interiorNode[N Number, P Point[N]] struct {
	bounds   AABB[N]
	cutoff   int
	Children Quadrants[node[N, P]]
}

var _ node[float64, Point[float64]] = &interiorNode[float64, Point[float64]]{}

// newLeafNode creates an empty leaf node.
func newLeafNode[N Number, P Point[N]](bounds AABB[N], cutoff int) *leafNode[N, P] {
	return &leafNode[N, P]{
		bounds: bounds,
		cutoff: cutoff,
		Points: make([]P, 0, cutoff),
	}
}

// newInteriorNode creates an interior node whose children are empty leaves
// over the quadrants of bounds.
func newInteriorNode[N Number, P Point[N]](bounds AABB[N], cutoff int) *interiorNode[N, P] {
	quadrants := bounds.Split()

	return &interiorNode[N, P]{
		bounds: bounds,
		cutoff: cutoff,
		Children: NewQuadrants[node[N, P]](
			newLeafNode[N, P](quadrants.NW, cutoff),
			newLeafNode[N, P](quadrants.NE, cutoff),
			newLeafNode[N, P](quadrants.SW, cutoff),
			newLeafNode[N, P](quadrants.SE, cutoff),
		),
	}
}

// Bounds returns the region covered by the leaf.
func (l *leafNode[N, P]) Bounds() AABB[N] {
	return l.bounds
}

// IsFull reports whether the leaf must be broken up before it can take
// another point.
//
// A leaf whose side halves to zero is never full.
func (l *leafNode[N, P]) IsFull() bool {
	return len(l.Points) == l.cutoff && l.bounds.Divisible()
}

// Insert appends the point to the leaf.
func (l *leafNode[N, P]) Insert(p P) {
	l.Points = append(l.Points, p)
}

// Bounds returns the region covered by the interior node.
func (i *interiorNode[N, P]) Bounds() AABB[N] {
	return i.bounds
}

// IsFull is always false; capacity is a property of leaves.
func (i *interiorNode[N, P]) IsFull() bool {
	return false
}

// Insert routes the point to a child, breaking the child up first if it is a
// full leaf.
func (i *interiorNode[N, P]) Insert(p P) {
	child := i.route(p)

	if (*child).IsFull() {
		*child = breakup(*child)
	}

	(*child).Insert(p)
}

// route selects the child slot for the point. Children are tested northwest,
// northeast, southwest; southeast takes whatever the others do not, including
// points that rounding or integer truncation leaves outside all four. A point
// on an edge shared by two children goes to whichever is tested first.
func (i *interiorNode[N, P]) route(p P) *node[N, P] {
	slots := i.Children.Slots()

	for _, slot := range slots[:3] {
		if (*slot).Bounds().Contains(p) {
			return slot
		}
	}

	return slots[3]
}

// breakup converts a full leaf into an interior node over the same region,
// re-inserting the leaf's points in order.
//
// It panics if n is not a leaf.
func breakup[N Number, P Point[N]](n node[N, P]) *interiorNode[N, P] {
	leaf, ok := n.(*leafNode[N, P])
	if !ok {
		panic(errors.AssertionFailedf("quadtree: breakup of non-leaf node %s", n.Bounds()))
	}

	interior := newInteriorNode[N, P](leaf.bounds, leaf.cutoff)

	for _, p := range leaf.Points {
		interior.Insert(p)
	}

	return interior
}
