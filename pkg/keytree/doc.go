// ## Overview
// Package keytree implements a generic, keyed multi-way tree container.
// Every node may optionally hold a value and owns a keyed collection of
// children, so a tree doubles as a hierarchical key/value store: callers
// address nodes by key paths, attach values at any depth, and traverse,
// clone or restructure subtrees without recursion.
//
// Two child-storage backends are available: an unordered one backed by a
// hash map (iteration in insertion order) and an ordered one backed by a
// B-tree (iteration in ascending key order).
//
// Nodes are manipulated through handles. A Node is a strong handle: the
// backing record stays alive while any strong handle or an owning parent
// edge refers to it. A WeakNode observes a record without keeping it
// alive. Go cannot intercept struct copies, so copying a Node value
// shares a single reference; use Ref to take an additional owning handle
// and Drop to release one.
//
// ## Example usage:
//
//	tree := keytree.NewOrdered[string, int]()
//
//	// Build paths, attaching values anywhere along the way.
//	node := tree.GetOrCreate([]string{"a", "b", "c"})
//	node.SetValue(42)
//	tree.Root().GetOrCreateChild("z").SetValue(1)
//
//	// Address nodes by key path.
//	if n := tree.Find([]string{"a", "b", "c"}); n.IsValid() {
//	    fmt.Println(n.Value(0)) // Output: 42
//	}
//
//	// Walk the whole tree in pre-order, holes included.
//	for it := tree.Begin(); !it.AtEnd(); it.Next() {
//	    if it.HasValue() {
//	        fmt.Println(it.Key(), it.Node().MustValue())
//	    }
//	}
package keytree
