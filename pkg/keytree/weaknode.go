package keytree

// WeakNode is a non-owning observer of a tree node. It never keeps the
// node alive and cannot access its value directly; upgrade with Node
// first. Its validity can change between consecutive checks as strong
// handles are dropped elsewhere.
type WeakNode[K comparable, V any] struct {
	d *nodeData[K, V]
}

// IsValid reports whether the observed node is still alive, i.e. some
// owning path to it remains.
func (w WeakNode[K, V]) IsValid() bool {
	return w.d != nil && !w.d.dead
}

// Node upgrades the observer back to a strong handle, or returns an
// invalid Node if the target has been destroyed.
func (w WeakNode[K, V]) Node() Node[K, V] {
	if !w.IsValid() {
		return Node[K, V]{}
	}
	return wrapNode(w.d)
}
