package keytree

import "golang.org/x/exp/constraints"

// Tree owns exactly one root node. The root is always valid, has depth 0
// and an empty key path, and is never reparented.
//
// Trees are move-only: pass them by pointer and duplicate them only via
// the explicit Clone.
type Tree[K comparable, V any] struct {
	root *nodeData[K, V]
}

// NewUnordered creates a tree on the hash-backed child store; children
// iterate in insertion order.
func NewUnordered[K comparable, V any]() *Tree[K, V] {
	return newTree(newMapStore[K, V])
}

// NewOrdered creates a tree on the B-tree child store; children iterate
// in ascending key order.
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return newTree(newBTreeStore[K, V])
}

func newTree[K comparable, V any](newStore func() childStore[K, V]) *Tree[K, V] {
	root := newNodeData(newStore)
	root.ref() // the tree's root slot
	return &Tree[K, V]{root: root}
}

// NewTreeFromNode builds a tree adopting an existing rootless node as its
// root. Passing a node that currently has a parent is a contract
// violation and panics; Detach it first.
func NewTreeFromNode[K comparable, V any](node Node[K, V]) *Tree[K, V] {
	d := node.data()
	if d.parent != nil {
		panic("[BUG] NewTreeFromNode: node still has a parent")
	}
	d.ref() // the tree's root slot
	return &Tree[K, V]{root: d}
}

// Root returns a handle to the root node.
func (t *Tree[K, V]) Root() Node[K, V] {
	return wrapNode(t.root)
}

// Contains reports whether the root has a direct child at key.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.root.children.get(key)
	return ok
}

// ContainsPath reports whether a node exists at the full key path.
func (t *Tree[K, V]) ContainsPath(path []K) bool {
	return t.root.find(path) != nil
}

// Find returns the node at the key path, or an invalid Node if any
// segment is missing. It never creates.
func (t *Tree[K, V]) Find(path []K) Node[K, V] {
	return wrapNode(t.root.find(path))
}

// GetOrCreate walks down the key path, creating each missing segment as
// an empty node, and returns the target.
func (t *Tree[K, V]) GetOrCreate(path []K) Node[K, V] {
	cur := t.root
	for _, key := range path {
		child, ok := cur.children.get(key)
		if !ok {
			child = newNodeData(cur.newStore)
			child.parent = cur
			child.ref() // the parent edge
			cur.children.set(key, child)
		}
		cur = child
	}
	return wrapNode(cur)
}

// CountElements counts the nodes visited by a full iteration. With
// valueOnly set, only nodes carrying a value are counted.
func (t *Tree[K, V]) CountElements(valueOnly bool) int {
	count := 0
	for it := t.Begin(); !it.AtEnd(); it.Next() {
		if !valueOnly || it.HasValue() {
			count++
		}
	}
	return count
}

// Clear discards the root's value and all its children, leaving an empty
// root.
func (t *Tree[K, V]) Clear() {
	var zero V
	t.root.value = zero
	t.root.hasValue = false
	t.root.children.each(func(_ K, child *nodeData[K, V]) bool {
		child.parent = nil
		child.unref()
		return true
	})
	t.root.children.clear()
}

// Clone returns a new tree whose root is a deep, independent copy of this
// tree's root.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	root := t.root.clone()
	root.ref() // the clone's root slot
	return &Tree[K, V]{root: root}
}

// Walk visits the tree in pre-order, begin to end, until fn returns
// false. The iterator passed to fn is positioned; holes (nodes without a
// value) are visited too.
func (t *Tree[K, V]) Walk(fn func(it *Iterator[K, V]) bool) {
	for it := t.Begin(); !it.AtEnd(); it.Next() {
		if !fn(it) {
			return
		}
	}
}

// WalkBack visits the tree in reverse pre-order, last element first,
// until fn returns false.
func (t *Tree[K, V]) WalkBack(fn func(it *Iterator[K, V]) bool) {
	it := t.End()
	for {
		before := it.cur
		it.Prev()
		if it.end || it.cur == before {
			return
		}
		if !fn(it) {
			return
		}
	}
}
