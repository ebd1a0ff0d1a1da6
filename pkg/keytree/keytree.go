package keytree

// nodeData is the backing record shared by every handle that refers to the
// same logical node: the optional value slot, the keyed child store and a
// weak (uncounted) back-link to the parent record.
//
// Liveness is an explicit reference count. The owners of a record are its
// parent edge, a Tree's root slot and every outstanding strong handle.
// Once the last owner is released the record is flagged dead and its
// edges to the children are released in turn, so an unreferenced subtree
// collapses. Weak handles only consult the flag; the Go GC reclaims the
// memory whenever it pleases.
type nodeData[K comparable, V any] struct {
	parent   *nodeData[K, V] // weak: never counted as an owner
	children childStore[K, V]
	value    V
	hasValue bool

	// newStore creates child stores of the same backend, so descendants
	// inherit the container the tree was built with.
	newStore func() childStore[K, V]

	refs int
	dead bool
}

func newNodeData[K comparable, V any](newStore func() childStore[K, V]) *nodeData[K, V] {
	return &nodeData[K, V]{
		children: newStore(),
		newStore: newStore,
	}
}

func (d *nodeData[K, V]) ref() {
	d.refs++
}

// unref releases one owner. Dropping the last one kills the record and
// releases the parent edges it holds on its children, which may cascade.
func (d *nodeData[K, V]) unref() {
	d.refs--
	if d.refs > 0 || d.dead {
		return
	}
	d.dead = true
	d.children.each(func(_ K, child *nodeData[K, V]) bool {
		child.parent = nil
		child.unref()
		return true
	})
	d.children.clear()
}

// subKey locates this record's own key inside its parent's child store.
// The scan is O(siblings); a record is never stored under two keys.
func (d *nodeData[K, V]) subKey() (K, bool) {
	if d.parent == nil {
		var zero K
		return zero, false
	}
	return d.parent.children.keyOf(d)
}

// keyPath reconstructs the full key path from the root by walking parent
// links, O(depth * branching factor).
func (d *nodeData[K, V]) keyPath() []K {
	path := []K{}
	for cur := d; cur.parent != nil; cur = cur.parent {
		key, ok := cur.subKey()
		if !ok {
			break
		}
		path = append([]K{key}, path...)
	}
	return path
}

func (d *nodeData[K, V]) depth() int {
	depth := 0
	for cur := d.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// find walks nested child lookups for a sequence of keys. It never
// creates missing segments.
func (d *nodeData[K, V]) find(path []K) *nodeData[K, V] {
	cur := d
	for _, key := range path {
		child, ok := cur.children.get(key)
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// clone deep-copies this record and all its descendants. The copy's
// parent link is left empty; each copied child owns exactly its new
// parent edge.
func (d *nodeData[K, V]) clone() *nodeData[K, V] {
	cloned := newNodeData(d.newStore)
	cloned.value = d.value
	cloned.hasValue = d.hasValue
	d.children.each(func(key K, child *nodeData[K, V]) bool {
		childClone := child.clone()
		childClone.parent = cloned
		childClone.ref()
		cloned.children.set(key, childClone)
		return true
	})
	return cloned
}

// detachFromParent removes the record from its parent's child store and
// clears the back-link, releasing the parent edge. It is a no-op for a
// record that has no parent.
func (d *nodeData[K, V]) detachFromParent() {
	parent := d.parent
	if parent == nil {
		return
	}
	key, ok := d.subKey()
	d.parent = nil
	if ok {
		parent.children.remove(key)
		d.unref()
	}
}
