package scheme

// TreeNode is one region of the spatial index. A node either holds objects
// directly or has been split into four quadrant children. Objects whose
// bounding rect straddles a split boundary are duplicated into every
// overlapping child; an object that overlaps no child under the open
// boundary convention (a degenerate rect lying exactly on a split line)
// stays at the parent, so no object is ever lost to a query.
type TreeNode struct {
	region   Rect
	objects  []SchemeObject
	children []*TreeNode // nil, or exactly 4 (NW, NE, SW, SE)
	depth    int
}

// Region returns the world rect this node covers.
func (n *TreeNode) Region() Rect { return n.region }

// Objects returns the objects held directly by this node.
// The returned slice MUST NOT be mutated.
func (n *TreeNode) Objects() []SchemeObject { return n.objects }

// Tree is the spatial index: a quad tree over the combined bounds of the
// indexed objects. A tree is immutable once built; the storage layer
// replaces it wholesale when the object set changes.
type Tree struct {
	root       *TreeNode
	maxObjects int
	maxDepth   int
}

// BuildTree indexes the given objects. The root region is the union of all
// bounding rects; a node splits into four quadrants once it holds more than
// maxObjects and is above maxDepth. Insertion follows slice order and
// children are visited in fixed NW/NE/SW/SE order, so the same input
// produces the same tree.
func BuildTree(objects []SchemeObject, maxObjects, maxDepth int) *Tree {
	if maxObjects < 1 {
		maxObjects = 1
	}
	if maxDepth < 0 {
		maxDepth = 0
	}
	t := &Tree{
		root:       &TreeNode{},
		maxObjects: maxObjects,
		maxDepth:   maxDepth,
	}
	if len(objects) == 0 {
		return t
	}
	bound := objects[0].BoundingRect()
	for _, o := range objects[1:] {
		bound = bound.Union(o.BoundingRect())
	}
	// Pad degenerate axes so point-only content still overlaps query
	// rects under the open boundary convention.
	if bound.Right <= bound.Left {
		bound.Right = bound.Left + 1
	}
	if bound.Bottom <= bound.Top {
		bound.Bottom = bound.Top + 1
	}
	t.root.region = bound
	for _, o := range objects {
		t.insert(t.root, o, o.BoundingRect())
	}
	return t
}

// insert places an object into the subtree rooted at n. The object's rect
// is known to overlap (or at least touch) n's region.
func (t *Tree) insert(n *TreeNode, o SchemeObject, rect Rect) {
	if n.children != nil {
		if !t.insertIntoChildren(n, o, rect) {
			// Overlaps no child: degenerate rect on a split line.
			n.objects = append(n.objects, o)
		}
		return
	}

	n.objects = append(n.objects, o)
	if len(n.objects) > t.maxObjects && n.depth < t.maxDepth {
		t.subdivide(n)
	}
}

// insertIntoChildren appends the object to every child whose region
// overlaps its rect. Returns false when no child overlaps.
func (t *Tree) insertIntoChildren(n *TreeNode, o SchemeObject, rect Rect) bool {
	placed := false
	for _, child := range n.children {
		if child.region.Intersects(rect) {
			t.insert(child, o, rect)
			placed = true
		}
	}
	return placed
}

// subdivide splits n into four quadrants and redistributes its objects.
// Objects overlapping no child remain at n.
func (t *Tree) subdivide(n *TreeNode) {
	r := n.region
	midX := (r.Left + r.Right) / 2
	midY := (r.Top + r.Bottom) / 2
	n.children = []*TreeNode{
		{region: Rect{Left: r.Left, Top: r.Top, Right: midX, Bottom: midY}, depth: n.depth + 1},
		{region: Rect{Left: midX, Top: r.Top, Right: r.Right, Bottom: midY}, depth: n.depth + 1},
		{region: Rect{Left: r.Left, Top: midY, Right: midX, Bottom: r.Bottom}, depth: n.depth + 1},
		{region: Rect{Left: midX, Top: midY, Right: r.Right, Bottom: r.Bottom}, depth: n.depth + 1},
	}

	retained := n.objects[:0:0]
	for _, o := range n.objects {
		if !t.insertIntoChildren(n, o, o.BoundingRect()) {
			retained = append(retained, o)
		}
	}
	n.objects = retained
}

// Query returns every object-bearing node whose region overlaps rect,
// under the open boundary convention of Rect.Intersects: a node that only
// touches the rect's edge does not match. A degenerate rect (zero width or
// height) returns no nodes. Querying a nil tree is a programming error and
// panics; go through Storage.FindNodesByBoundingRect, which rebuilds on
// demand, to make that unreachable.
func (t *Tree) Query(rect Rect) []*TreeNode {
	if t == nil || t.root == nil {
		panic("scheme: query on unbuilt tree")
	}
	if rect.Empty() {
		return nil
	}
	var out []*TreeNode
	collect(t.root, &rect, &out)
	return out
}

// Nodes returns every object-bearing node in the tree, used for
// full-content enumeration. Panics on a nil tree like Query.
func (t *Tree) Nodes() []*TreeNode {
	if t == nil || t.root == nil {
		panic("scheme: query on unbuilt tree")
	}
	var out []*TreeNode
	collect(t.root, nil, &out)
	return out
}

// collect appends object-bearing nodes overlapping rect (all nodes when
// rect is nil) in deterministic pre-order.
func collect(n *TreeNode, rect *Rect, out *[]*TreeNode) {
	if rect != nil && !n.region.Intersects(*rect) {
		return
	}
	if len(n.objects) > 0 {
		*out = append(*out, n)
	}
	for _, child := range n.children {
		collect(child, rect, out)
	}
}
