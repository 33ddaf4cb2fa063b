package scheme

// Storage owns the live object set and the cached spatial index. The set
// keeps insertion order, which makes tree builds deterministic. Mutations
// never touch an already built tree; they flip a dirty flag and the next
// GetTree call rebuilds. All methods are called from the single
// cooperative thread, so there is no locking.
type Storage struct {
	objects []SchemeObject
	tree    *Tree
	dirty   bool

	maxObjectsPerNode int
	maxTreeDepth      int
}

// newStorage creates an empty storage with the given tree build parameters.
func newStorage(maxObjectsPerNode, maxTreeDepth int) *Storage {
	return &Storage{
		maxObjectsPerNode: maxObjectsPerNode,
		maxTreeDepth:      maxTreeDepth,
		dirty:             true,
	}
}

// AddObject inserts an object and marks the index dirty. Adding an object
// that is already present is a no-op.
func (s *Storage) AddObject(o SchemeObject) {
	for _, existing := range s.objects {
		if existing == o {
			return
		}
	}
	s.objects = append(s.objects, o)
	s.dirty = true
}

// RemoveObject removes an object if present and marks the index dirty.
// Removing an absent object is a no-op.
func (s *Storage) RemoveObject(o SchemeObject) {
	for i, existing := range s.objects {
		if existing == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			s.dirty = true
			return
		}
	}
}

// RemoveObjects clears the object set and marks the index dirty.
func (s *Storage) RemoveObjects() {
	s.objects = nil
	s.dirty = true
}

// Objects returns a snapshot copy of the object set in insertion order.
// Callers may iterate it freely while the live set is mutated.
func (s *Storage) Objects() []SchemeObject {
	out := make([]SchemeObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of stored objects.
func (s *Storage) Len() int { return len(s.objects) }

// GetTree returns the spatial index, rebuilding it first if the object set
// changed since the last build. This is the only rebuild trigger; the
// rebuild has no side effect beyond replacing the cached tree.
func (s *Storage) GetTree() *Tree {
	if s.dirty || s.tree == nil {
		s.tree = BuildTree(s.objects, s.maxObjectsPerNode, s.maxTreeDepth)
		s.dirty = false
	}
	return s.tree
}

// FindNodesByBoundingRect returns the object-bearing index nodes
// overlapping rect. A nil tree resolves through GetTree, so a stale or
// unbuilt index can never be queried through this path.
func (s *Storage) FindNodesByBoundingRect(tree *Tree, rect Rect) []*TreeNode {
	if tree == nil {
		tree = s.GetTree()
	}
	return tree.Query(rect)
}

// BoundingRect returns the union of all object bounds, or a zero rect when
// the storage is empty.
func (s *Storage) BoundingRect() Rect {
	if len(s.objects) == 0 {
		return Rect{}
	}
	bound := s.objects[0].BoundingRect()
	for _, o := range s.objects[1:] {
		bound = bound.Union(o.BoundingRect())
	}
	return bound
}
