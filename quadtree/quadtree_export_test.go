package quadtree

// Leaf is a snapshot of a leaf node, for inspecting tree structure in tests.
type Leaf[N Number, P Point[N]] struct {
	Bounds AABB[N]
	Points []P
}

// Interior is a snapshot of an interior node's region and its children's
// regions.
type Interior[N Number] struct {
	Bounds   AABB[N]
	Children Quadrants[AABB[N]]
}

// Leaves returns every leaf of the tree, depth first in routing order.
func Leaves[N Number, P Point[N]](t Tree[N, P]) []Leaf[N, P] {
	var leaves []Leaf[N, P]

	walk[N, P](t.(*tree[N, P]).Root, func(n node[N, P]) {
		if l, ok := n.(*leafNode[N, P]); ok {
			leaves = append(leaves, Leaf[N, P]{
				Bounds: l.bounds,
				Points: append([]P(nil), l.Points...),
			})
		}
	})

	return leaves
}

// Interiors returns every interior node of the tree, depth first in routing
// order.
func Interiors[N Number, P Point[N]](t Tree[N, P]) []Interior[N] {
	var interiors []Interior[N]

	walk[N, P](t.(*tree[N, P]).Root, func(n node[N, P]) {
		if i, ok := n.(*interiorNode[N, P]); ok {
			interiors = append(interiors, Interior[N]{
				Bounds: i.bounds,
				Children: NewQuadrants(
					i.Children.NW.Bounds(),
					i.Children.NE.Bounds(),
					i.Children.SW.Bounds(),
					i.Children.SE.Bounds(),
				),
			})
		}
	})

	return interiors
}

// Root re-exports the tree's root node for dumping.
func Root[N Number, P Point[N]](t Tree[N, P]) any {
	return t.(*tree[N, P]).Root
}

// BreakupLeaf builds a leaf over bounds holding points and breaks it up,
// returning the resulting tree.
func BreakupLeaf[N Number, P Point[N]](bounds AABB[N], cutoff int, points ...P) Tree[N, P] {
	leaf := newLeafNode[N, P](bounds, cutoff)
	leaf.Points = append(leaf.Points, points...)

	return &tree[N, P]{Root: breakup[N, P](leaf)}
}

// BreakupInterior calls breakup on a fresh interior node.
func BreakupInterior[N Number, P Point[N]](bounds AABB[N], cutoff int) {
	breakup[N, P](newInteriorNode[N, P](bounds, cutoff))
}

// LeafIsFull reports whether a leaf over bounds holding count points is full.
func LeafIsFull[N Number](bounds AABB[N], cutoff, count int) bool {
	leaf := newLeafNode[N, Point[N]](bounds, cutoff)
	leaf.Points = make([]Point[N], count)

	return leaf.IsFull()
}

func walk[N Number, P Point[N]](n node[N, P], visit func(node[N, P])) {
	visit(n)

	i, ok := n.(*interiorNode[N, P])
	if !ok {
		return
	}

	for _, child := range i.Children.Slots() {
		walk(*child, visit)
	}
}
