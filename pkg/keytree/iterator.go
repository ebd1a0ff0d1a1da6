package keytree

// Iterator is a bidirectional depth-first pre-order cursor over all nodes
// of a tree, holes included: a node without a value is still visited so
// its key and structure can be inspected, it just reports HasValue false.
//
// The root is treated as a pure container and skipped whenever it has at
// least one child; iterating a tree whose root has no children yields the
// root as the single element, so a lone value placed directly on the root
// is still observable. Retreating from the first element is a no-op.
type Iterator[K comparable, V any] struct {
	tree *Tree[K, V]
	cur  *nodeData[K, V]
	end  bool
}

// Begin returns a cursor at the first element: the root's first child in
// backend order, or the root itself when it has none.
func (t *Tree[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t, cur: t.root}
	if first, ok := t.root.children.firstKey(); ok {
		it.cur, _ = t.root.children.get(first)
	}
	return it
}

// End returns the past-the-end cursor.
func (t *Tree[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, end: true}
}

// AtEnd reports whether the cursor is past the end.
func (it *Iterator[K, V]) AtEnd() bool {
	return it.end
}

// HasValue reports whether the current node carries a value. It says
// nothing about cursor validity; see AtEnd.
func (it *Iterator[K, V]) HasValue() bool {
	return !it.end && it.cur.hasValue
}

// Key returns the full key path of the current position, nil past the
// end.
func (it *Iterator[K, V]) Key() []K {
	if it.end {
		return nil
	}
	return it.cur.keyPath()
}

// SubKey returns the current node's own key under its parent, the zero
// key for the root or past the end.
func (it *Iterator[K, V]) SubKey() K {
	var zero K
	if it.end {
		return zero
	}
	key, _ := it.cur.subKey()
	return key
}

// Node returns a strong handle to the current node, or an invalid Node
// past the end.
func (it *Iterator[K, V]) Node() Node[K, V] {
	if it.end {
		return Node[K, V]{}
	}
	return wrapNode(it.cur)
}

// Equal reports whether two cursors are at the same position. The
// past-the-end state is part of the comparison, so an end cursor never
// equals a positioned one.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return it.tree == other.tree && it.cur == other.cur && it.end == other.end
}

// Next advances in pre-order: down to the first child if any, otherwise
// to the next sibling, climbing ancestors until one has a next sibling.
// Running out of ancestors is the end of the traversal.
func (it *Iterator[K, V]) Next() {
	if it.end {
		return
	}
	if first, ok := it.cur.children.firstKey(); ok {
		it.cur, _ = it.cur.children.get(first)
		return
	}
	for node := it.cur; node.parent != nil; node = node.parent {
		key, ok := node.subKey()
		if !ok {
			break
		}
		if nextKey, ok := node.parent.children.nextKey(key); ok {
			it.cur, _ = node.parent.children.get(nextKey)
			return
		}
	}
	it.cur = nil
	it.end = true
}

// Prev retreats in pre-order: from past the end to the deepest
// last-ordered descendant of the tree; otherwise to the previous
// sibling's deepest last-ordered descendant, or to the parent when there
// is none. The unemitted root is the boundary, so retreating from the
// first element changes nothing.
func (it *Iterator[K, V]) Prev() {
	if it.end {
		it.cur = deepestLast(it.tree.root)
		it.end = false
		return
	}
	if it.cur.parent == nil {
		return
	}
	key, ok := it.cur.subKey()
	if !ok {
		return
	}
	if prevKey, ok := it.cur.parent.children.prevKey(key); ok {
		prev, _ := it.cur.parent.children.get(prevKey)
		it.cur = deepestLast(prev)
		return
	}
	if it.cur.parent == it.tree.root {
		return
	}
	it.cur = it.cur.parent
}

func deepestLast[K comparable, V any](d *nodeData[K, V]) *nodeData[K, V] {
	for {
		last, ok := d.children.lastKey()
		if !ok {
			return d
		}
		d, _ = d.children.get(last)
	}
}
