package keytree

import "golang.org/x/exp/constraints"

// Node is a strong, owning handle to a tree node. The zero Node is the
// invalid handle: it is what lookups return for missing keys and what a
// handle becomes after Drop. Check IsValid before using a handle obtained
// from a lookup.
//
// Every handle returned by the API owns one reference on the backing
// record. Drop releases it; Ref takes an additional one. Handle equality
// is identity of the backing record (Same), never value equality.
type Node[K comparable, V any] struct {
	d *nodeData[K, V]
}

// NewUnorderedNode creates a standalone root node whose descendants store
// children in a hash map, iterated in insertion order.
func NewUnorderedNode[K comparable, V any]() Node[K, V] {
	return newNode(newMapStore[K, V])
}

// NewOrderedNode creates a standalone root node whose descendants store
// children in a B-tree, iterated in ascending key order.
func NewOrderedNode[K constraints.Ordered, V any]() Node[K, V] {
	return newNode(newBTreeStore[K, V])
}

func newNode[K comparable, V any](newStore func() childStore[K, V]) Node[K, V] {
	d := newNodeData(newStore)
	d.ref()
	return Node[K, V]{d: d}
}

func wrapNode[K comparable, V any](d *nodeData[K, V]) Node[K, V] {
	if d == nil {
		return Node[K, V]{}
	}
	d.ref()
	return Node[K, V]{d: d}
}

// data guards every operation that needs a live backing record.
func (n Node[K, V]) data() *nodeData[K, V] {
	if n.d == nil || n.d.dead {
		panic("[BUG] keytree: operation on an invalid node handle")
	}
	return n.d
}

// IsValid reports whether the handle refers to a live node. A freshly
// constructed root is always valid; lookups for missing keys are not.
func (n Node[K, V]) IsValid() bool {
	return n.d != nil && !n.d.dead
}

// Value access

// HasValue reports whether the node currently carries a value. A node may
// exist purely as a path segment. False for invalid handles.
func (n Node[K, V]) HasValue() bool {
	return n.IsValid() && n.d.hasValue
}

// Value returns the node's value, or defaultValue if none is present.
func (n Node[K, V]) Value(defaultValue V) V {
	if d := n.data(); d.hasValue {
		return d.value
	}
	return defaultValue
}

// MustValue returns the node's value. Calling it without a present value
// is a contract violation and panics; check HasValue first.
func (n Node[K, V]) MustValue() V {
	d := n.data()
	if !d.hasValue {
		panic("[BUG] MustValue: node has no value")
	}
	return d.value
}

// ValueRef returns a pointer to the value slot for in-place mutation.
// Panics if no value is present.
func (n Node[K, V]) ValueRef() *V {
	d := n.data()
	if !d.hasValue {
		panic("[BUG] ValueRef: node has no value")
	}
	return &d.value
}

// SetValue stores a value on the node, replacing any present one.
func (n Node[K, V]) SetValue(value V) {
	d := n.data()
	d.value = value
	d.hasValue = true
}

// TakeValue removes and returns the value, or the zero value if none is
// present.
func (n Node[K, V]) TakeValue() V {
	d := n.data()
	value := d.value
	var zero V
	d.value = zero
	d.hasValue = false
	return value
}

// ClearValue removes the value, leaving the node as a pure path segment.
func (n Node[K, V]) ClearValue() {
	d := n.data()
	var zero V
	d.value = zero
	d.hasValue = false
}

// Child access

func (n Node[K, V]) ContainsChild(key K) bool {
	_, ok := n.data().children.get(key)
	return ok
}

func (n Node[K, V]) ChildCount() int {
	return n.data().children.len()
}

func (n Node[K, V]) HasChildren() bool {
	return n.data().children.len() > 0
}

// Children returns a snapshot of the child handles in backend order.
func (n Node[K, V]) Children() []Node[K, V] {
	d := n.data()
	children := make([]Node[K, V], 0, d.children.len())
	d.children.each(func(_ K, child *nodeData[K, V]) bool {
		children = append(children, wrapNode(child))
		return true
	})
	return children
}

// Child returns the child at key, or an invalid Node if absent. It never
// creates; see GetOrCreateChild for upsert semantics.
func (n Node[K, V]) Child(key K) Node[K, V] {
	child, ok := n.data().children.get(key)
	if !ok {
		return Node[K, V]{}
	}
	return wrapNode(child)
}

// GetOrCreateChild returns the child at key, creating an empty one if
// absent.
func (n Node[K, V]) GetOrCreateChild(key K) Node[K, V] {
	d := n.data()
	if child, ok := d.children.get(key); ok {
		return wrapNode(child)
	}
	return n.EmplaceChild(key)
}

// InsertChild reparents the given node under this one at key, replacing
// any existing child there. The replaced child, if not otherwise
// referenced, is released.
func (n Node[K, V]) InsertChild(key K, child Node[K, V]) {
	d := n.data()
	cd := child.data()
	for cur := d; cur != nil; cur = cur.parent {
		if cur == cd {
			panic("[BUG] InsertChild: node is an ancestor of the target")
		}
	}
	cd.detachFromParent()
	if old, ok := d.children.get(key); ok && old != cd {
		old.parent = nil
		old.unref()
	}
	cd.parent = d
	cd.ref() // the new parent edge
	d.children.set(key, cd)
}

// EmplaceChild creates a fresh empty child under this node at key,
// replacing any existing child there, and returns it.
func (n Node[K, V]) EmplaceChild(key K) Node[K, V] {
	d := n.data()
	if old, ok := d.children.get(key); ok {
		old.parent = nil
		old.unref()
	}
	child := newNodeData(d.newStore)
	child.parent = d
	child.ref() // the parent edge
	d.children.set(key, child)
	return wrapNode(child)
}

// TakeChild removes and returns the child at key with its parent link
// cleared, or an invalid Node if absent. Ownership moves from the parent
// edge to the returned handle.
func (n Node[K, V]) TakeChild(key K) Node[K, V] {
	d := n.data()
	child, ok := d.children.get(key)
	if !ok {
		return Node[K, V]{}
	}
	d.children.remove(key)
	child.parent = nil
	return Node[K, V]{d: child}
}

// RemoveChild removes and discards the child at key, reporting whether
// one existed.
func (n Node[K, V]) RemoveChild(key K) bool {
	d := n.data()
	child, ok := d.children.get(key)
	if !ok {
		return false
	}
	d.children.remove(key)
	child.parent = nil
	child.unref()
	return true
}

// ClearChildren removes all children.
func (n Node[K, V]) ClearChildren() {
	d := n.data()
	d.children.each(func(_ K, child *nodeData[K, V]) bool {
		child.parent = nil
		child.unref()
		return true
	})
	d.children.clear()
}

// Tree position

// Depth is the number of parent links between this node and its root.
func (n Node[K, V]) Depth() int {
	return n.data().depth()
}

// Key returns the full key path from the root to this node, empty for a
// root.
func (n Node[K, V]) Key() []K {
	return n.data().keyPath()
}

// SubKey returns this node's own key under its parent, or the zero key
// for a root.
func (n Node[K, V]) SubKey() K {
	key, _ := n.data().subKey()
	return key
}

// Parent returns the parent handle, or an invalid Node for a root.
func (n Node[K, V]) Parent() Node[K, V] {
	return wrapNode(n.data().parent)
}

// FindChild walks nested child lookups for a sequence of keys, returning
// the target or an invalid Node if any segment is missing. An empty path
// returns this node.
func (n Node[K, V]) FindChild(path []K) Node[K, V] {
	return wrapNode(n.data().find(path))
}

// Structure

// Detach removes this node from its parent, making it a standalone
// subtree root. The subtree itself is untouched. No-op on a root.
func (n Node[K, V]) Detach() {
	n.data().detachFromParent()
}

// Clone returns an independent deep copy of the subtree rooted here. The
// copy has no parent; mutating either side never affects the other.
func (n Node[K, V]) Clone() Node[K, V] {
	clone := n.data().clone()
	clone.ref()
	return Node[K, V]{d: clone}
}

// Drop releases this handle's reference and invalidates it. The node
// lives on while other owners (handles, a parent edge, a tree root slot)
// remain.
func (n *Node[K, V]) Drop() {
	if n.d == nil {
		return
	}
	n.d.unref()
	n.d = nil
}

// Ref returns an additional owning handle to the same node.
func (n Node[K, V]) Ref() Node[K, V] {
	return wrapNode(n.data())
}

// Weak returns a non-owning observer of this node.
func (n Node[K, V]) Weak() WeakNode[K, V] {
	return WeakNode[K, V]{d: n.data()}
}

// Same reports whether two handles refer to the same backing record.
func (n Node[K, V]) Same(other Node[K, V]) bool {
	return n.d == other.d
}

// Swap exchanges the referents of two handles in place. Weak handles
// derived before the swap keep tracking their original records, so they
// appear crossed relative to the swapped handles afterwards.
func (n *Node[K, V]) Swap(other *Node[K, V]) {
	n.d, other.d = other.d, n.d
}
