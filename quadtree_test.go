package scheme

import (
	"math/rand/v2"
	"testing"
)

// boxObject is a minimal SchemeObject with fixed bounds and no drawing.
type boxObject struct {
	rect Rect
}

func box(left, top, right, bottom float64) *boxObject {
	return &boxObject{rect: Rect{Left: left, Top: top, Right: right, Bottom: bottom}}
}

func (o *boxObject) BoundingRect() Rect     { return o.rect }
func (o *boxObject) Render(c *Canvas) error { return nil }

// nodeObjects collects the distinct objects held by the given nodes.
func nodeObjects(nodes []*TreeNode) map[SchemeObject]int {
	out := make(map[SchemeObject]int)
	for _, n := range nodes {
		for _, o := range n.Objects() {
			out[o]++
		}
	}
	return out
}

// randomObjects generates a reproducible set of boxes, including
// overlapping and zero-area ones.
func randomObjects(n int) []SchemeObject {
	rng := rand.New(rand.NewPCG(42, 1))
	objects := make([]SchemeObject, 0, n)
	for i := 0; i < n; i++ {
		left := rng.Float64()*1000 - 500
		top := rng.Float64()*1000 - 500
		w := rng.Float64() * 80
		h := rng.Float64() * 80
		if i%10 == 0 {
			w, h = 0, 0 // zero-area box
		}
		objects = append(objects, box(left, top, left+w, top+h))
	}
	return objects
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(nil, 8, 6)
	if nodes := tree.Query(Rect{-1e9, -1e9, 1e9, 1e9}); len(nodes) != 0 {
		t.Errorf("query on empty tree returned %d nodes, want 0", len(nodes))
	}
	if nodes := tree.Nodes(); len(nodes) != 0 {
		t.Errorf("Nodes() on empty tree returned %d, want 0", len(nodes))
	}
}

func TestQueryNilTreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("query on nil tree did not panic")
		}
	}()
	var tree *Tree
	tree.Query(Rect{0, 0, 10, 10})
}

func TestFullWorldQueryReturnsAllObjects(t *testing.T) {
	objects := randomObjects(500)
	tree := BuildTree(objects, 8, 6)

	world := Rect{-1e9, -1e9, 1e9, 1e9}
	found := nodeObjects(tree.Query(world))
	if len(found) != len(objects) {
		t.Fatalf("full-world query found %d distinct objects, want %d", len(found), len(objects))
	}
	for i, o := range objects {
		if found[o] == 0 {
			t.Errorf("object %d (%v) lost by the index", i, o.(*boxObject).rect)
		}
	}
}

func TestNodesEnumeratesAllObjects(t *testing.T) {
	objects := randomObjects(200)
	tree := BuildTree(objects, 4, 5)
	found := nodeObjects(tree.Nodes())
	if len(found) != len(objects) {
		t.Errorf("Nodes() enumerated %d distinct objects, want %d", len(found), len(objects))
	}
}

func TestZeroAreaObjectsNotLost(t *testing.T) {
	// Points only, including one exactly on the eventual split line.
	objects := []SchemeObject{
		box(0, 0, 0, 0),
		box(100, 100, 100, 100),
		box(50, 50, 50, 50),
	}
	tree := BuildTree(objects, 1, 4)
	found := nodeObjects(tree.Query(Rect{-10, -10, 110, 110}))
	for i, o := range objects {
		if found[o] == 0 {
			t.Errorf("point object %d lost by the index", i)
		}
	}
}

func TestQueryMonotonicity(t *testing.T) {
	objects := randomObjects(300)
	tree := BuildTree(objects, 4, 6)

	inner := Rect{-100, -100, 150, 200}
	outer := Rect{-300, -250, 400, 450} // contains inner

	innerObjs := nodeObjects(tree.Query(inner))
	outerObjs := nodeObjects(tree.Query(outer))
	for o := range innerObjs {
		if outerObjs[o] == 0 {
			t.Errorf("object returned for inner rect missing for enclosing rect")
		}
	}
}

func TestDegenerateQueryRect(t *testing.T) {
	tree := BuildTree([]SchemeObject{box(0, 0, 100, 100)}, 8, 6)
	tests := []struct {
		name string
		rect Rect
	}{
		{"zero width", Rect{50, 0, 50, 100}},
		{"zero height", Rect{0, 50, 100, 50}},
		{"zero rect", Rect{}},
		{"inverted", Rect{100, 100, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if nodes := tree.Query(tt.rect); len(nodes) != 0 {
				t.Errorf("degenerate rect returned %d nodes, want 0", len(nodes))
			}
		})
	}
}

// A rect that only touches the index region's edge matches on no edge:
// the boundary convention is open and symmetric on all four sides.
func TestQueryBoundaryConvention(t *testing.T) {
	obj := box(0, 0, 100, 100)
	tree := BuildTree([]SchemeObject{obj}, 8, 6)

	tests := []struct {
		name   string
		rect   Rect
		expect bool
	}{
		{"touching right", Rect{100, 0, 200, 100}, false},
		{"touching left", Rect{-100, 0, 0, 100}, false},
		{"touching top", Rect{0, -100, 100, 0}, false},
		{"touching bottom", Rect{0, 100, 100, 200}, false},
		{"past right edge", Rect{99.999, 0, 200, 100}, true},
		{"past left edge", Rect{-100, 0, 0.001, 100}, true},
		{"past top edge", Rect{0, -100, 100, 0.001}, true},
		{"past bottom edge", Rect{0, 99.999, 100, 200}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := nodeObjects(tree.Query(tt.rect))
			if (found[obj] > 0) != tt.expect {
				t.Errorf("object included = %v, want %v", found[obj] > 0, tt.expect)
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	objects := randomObjects(200)
	a := BuildTree(objects, 4, 6)
	b := BuildTree(objects, 4, 6)
	if !sameTree(a.root, b.root) {
		t.Error("two builds from the same input produced different trees")
	}
}

// sameTree compares structure, regions, and object order.
func sameTree(a, b *TreeNode) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if a.region != b.region || len(a.objects) != len(b.objects) || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.objects {
		if a.objects[i] != b.objects[i] {
			return false
		}
	}
	for i := range a.children {
		if !sameTree(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func TestStraddlerDuplicatedIntoChildren(t *testing.T) {
	// Four objects in distinct quadrants force a split; the fifth
	// straddles the center split lines and lands in all four children.
	corner := []SchemeObject{
		box(0, 0, 10, 10),
		box(90, 0, 100, 10),
		box(0, 90, 10, 100),
		box(90, 90, 100, 100),
	}
	straddler := box(40, 40, 60, 60)
	objects := append(corner, straddler)
	tree := BuildTree(objects, 1, 3)

	found := nodeObjects(tree.Query(Rect{-1, -1, 101, 101}))
	if found[straddler] < 2 {
		t.Errorf("straddler held by %d nodes, want duplication into several", found[straddler])
	}

	// A query covering one quadrant only sees the straddler once per
	// overlapping node on that side.
	left := nodeObjects(tree.Query(Rect{-1, -1, 45, 101}))
	if left[straddler] == 0 {
		t.Error("straddler missing from left-half query")
	}
	if left[corner[1]] != 0 {
		t.Error("right-quadrant object returned for left-half query")
	}
}

func TestMaxDepthLimitsSubdivision(t *testing.T) {
	var objects []SchemeObject
	for i := 0; i < 50; i++ {
		objects = append(objects, box(float64(i), 0, float64(i)+0.5, 1))
	}
	tree := BuildTree(objects, 1, 0)
	if tree.root.children != nil {
		t.Error("tree with maxDepth 0 subdivided")
	}
	if len(tree.root.objects) != 50 {
		t.Errorf("root holds %d objects, want 50", len(tree.root.objects))
	}
}
