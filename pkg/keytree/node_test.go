package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewNode verifies that a fresh root node is valid, empty and at depth zero.
func TestNewNode(t *testing.T) {
	root := NewUnorderedNode[string, int]()

	assert.True(t, root.IsValid(), "A freshly constructed root should be valid")
	assert.False(t, root.HasValue(), "A new node should carry no value")
	assert.False(t, root.HasChildren(), "A new node should have no children")
	assert.Equal(t, 0, root.Depth(), "Depth should be 0 for a root")
	assert.Empty(t, root.Key(), "Key path should be empty for a root")
	assert.False(t, root.Parent().IsValid(), "Parent of a root should be invalid")
}

// TestValueAccess verifies the value slot operations, including the
// distinction between "no value" and a zero value.
func TestValueAccess(t *testing.T) {
	node := NewUnorderedNode[string, int]()

	assert.Equal(t, 99, node.Value(99), "Value should fall back to the default when absent")

	node.SetValue(0)
	assert.True(t, node.HasValue(), "A stored zero value should still count as present")
	assert.Equal(t, 0, node.Value(99), "Value should return the stored value, not the default")
	assert.Equal(t, 0, node.MustValue(), "MustValue should return the stored value")

	*node.ValueRef() = 7
	assert.Equal(t, 7, node.MustValue(), "ValueRef should mutate the value in place")

	taken := node.TakeValue()
	assert.Equal(t, 7, taken, "TakeValue should return the stored value")
	assert.False(t, node.HasValue(), "TakeValue should remove the value")
	assert.Equal(t, 0, node.TakeValue(), "TakeValue on an empty slot should return the zero value")

	node.SetValue(3)
	node.ClearValue()
	assert.False(t, node.HasValue(), "ClearValue should remove the value")

	assert.Panics(t, func() { node.MustValue() }, "MustValue without a value should panic")
	assert.Panics(t, func() { node.ValueRef() }, "ValueRef without a value should panic")
}

// TestChildUpsert verifies lookup-without-creation versus explicit upsert
// and the position bookkeeping of a new child.
func TestChildUpsert(t *testing.T) {
	root := NewUnorderedNode[int, string]()

	assert.False(t, root.ContainsChild(5), "A missing key should not be contained")
	assert.False(t, root.Child(5).IsValid(), "Child should return an invalid handle for a missing key")
	assert.False(t, root.ContainsChild(5), "A read lookup must not create the child")

	child := root.GetOrCreateChild(5)
	child.SetValue("five")

	assert.True(t, root.ContainsChild(5), "GetOrCreateChild should create the missing child")
	assert.Equal(t, "five", root.Child(5).MustValue(), "The created child should hold the assigned value")
	assert.True(t, child.Parent().Same(root), "The child's parent should be the creating node")
	assert.Equal(t, root.Depth()+1, child.Depth(), "The child's depth should be one below its parent")
	assert.Equal(t, 5, child.SubKey(), "SubKey should be the key the child was created under")
	assert.Equal(t, []int{5}, child.Key(), "Key should be the full path from the root")

	again := root.GetOrCreateChild(5)
	assert.True(t, again.Same(child), "GetOrCreateChild should return the existing child, not a new one")
}

// TestInsertChildReparents verifies that inserting an attached node moves
// it, and that an overwritten child is released.
func TestInsertChildReparents(t *testing.T) {
	left := NewOrderedNode[string, int]()
	right := NewOrderedNode[string, int]()

	moving := left.EmplaceChild("x")
	moving.SetValue(1)
	displaced := right.EmplaceChild("y")
	weakDisplaced := displaced.Weak()

	right.InsertChild("y", moving)

	assert.False(t, left.ContainsChild("x"), "The old parent should no longer contain the moved node")
	assert.True(t, moving.Parent().Same(right), "The moved node's parent should be the new one")
	assert.Equal(t, "y", moving.SubKey(), "The moved node should sit under its new key")

	displaced.Drop()
	assert.False(t, weakDisplaced.IsValid(), "The overwritten child should be released once unreferenced")

	assert.Panics(t, func() { moving.InsertChild("loop", right) },
		"Inserting an ancestor under its descendant should panic")
}

// TestEmplaceAndTakeChild verifies creation, ownership transfer on take
// and the invalid handle for a missing key.
func TestEmplaceAndTakeChild(t *testing.T) {
	root := NewUnorderedNode[string, int]()
	child := root.EmplaceChild("a")
	child.SetValue(1)
	child.EmplaceChild("nested").SetValue(2)

	taken := root.TakeChild("a")
	assert.True(t, taken.Same(child), "TakeChild should return the existing child")
	assert.False(t, root.ContainsChild("a"), "TakeChild should remove the child from the parent")
	assert.False(t, taken.Parent().IsValid(), "A taken child should have no parent")
	assert.Equal(t, 2, taken.Child("nested").MustValue(), "The taken subtree should be intact")

	assert.False(t, root.TakeChild("missing").IsValid(), "TakeChild on a missing key should return an invalid handle")
}

// TestRemoveAndClearChildren verifies discarding children.
func TestRemoveAndClearChildren(t *testing.T) {
	root := NewUnorderedNode[string, int]()
	root.EmplaceChild("a")
	root.EmplaceChild("b")
	root.EmplaceChild("c")

	assert.True(t, root.RemoveChild("b"), "RemoveChild should report an existing child")
	assert.False(t, root.RemoveChild("b"), "RemoveChild should report a missing child")
	assert.Equal(t, 2, root.ChildCount(), "Two children should remain after one removal")

	root.ClearChildren()
	assert.False(t, root.HasChildren(), "ClearChildren should remove all children")
}

// TestDetach verifies that a detached node becomes a standalone subtree
// root with its substructure unchanged.
func TestDetach(t *testing.T) {
	root := NewOrderedNode[string, int]()
	branch := root.EmplaceChild("branch")
	branch.SetValue(1)
	branch.EmplaceChild("leaf").SetValue(2)

	branch.Detach()

	assert.False(t, root.ContainsChild("branch"), "The old parent should no longer contain the detached node")
	assert.False(t, branch.Parent().IsValid(), "A detached node should have no parent")
	assert.Equal(t, 0, branch.Depth(), "A detached node should be at depth 0")
	assert.Empty(t, branch.Key(), "A detached node's key path should be empty")
	assert.Equal(t, 2, branch.Child("leaf").MustValue(), "The detached subtree should be unchanged")
	assert.True(t, branch.IsValid(), "Detaching must not destroy a node the caller still holds")
}

// TestClone verifies deep, independent duplication of a subtree.
func TestClone(t *testing.T) {
	source := NewOrderedNode[string, int]()
	source.SetValue(1)
	source.EmplaceChild("a").SetValue(2)
	source.GetOrCreateChild("a").EmplaceChild("b").SetValue(3)

	clone := source.Clone()

	assert.False(t, clone.Same(source), "A clone should be a different node, not the source")
	assert.False(t, clone.Parent().IsValid(), "A clone should have no parent")
	assert.Equal(t, 1, clone.MustValue(), "The clone should copy the value")
	assert.Equal(t, 3, clone.FindChild([]string{"a", "b"}).MustValue(), "The clone should copy the whole subtree")
	assert.True(t, clone.Child("a").Parent().Same(clone), "Cloned children should be rewired to the clone")

	clone.Child("a").SetValue(99)
	assert.Equal(t, 2, source.Child("a").MustValue(), "Mutating the clone must not change the source")
	source.Child("a").SetValue(55)
	assert.Equal(t, 99, clone.Child("a").MustValue(), "Mutating the source must not change the clone")
}

// TestFindChild verifies multi-level lookup with missing segments.
func TestFindChild(t *testing.T) {
	root := NewUnorderedNode[string, int]()
	root.EmplaceChild("a").EmplaceChild("b").SetValue(1)

	assert.Equal(t, 1, root.FindChild([]string{"a", "b"}).MustValue(), "FindChild should reach an existing path")
	assert.True(t, root.FindChild([]string{}).Same(root), "FindChild with an empty path should return the node itself")
	assert.False(t, root.FindChild([]string{"a", "x", "b"}).IsValid(), "A missing intermediate segment should yield an invalid handle")
	assert.False(t, root.ContainsChild("x"), "FindChild must not create segments")
}

// TestSwap verifies pointer-swap semantics: handles exchange referents
// while previously derived weak handles keep tracking their originals.
func TestSwap(t *testing.T) {
	first := NewUnorderedNode[string, int]()
	first.SetValue(1)
	second := NewUnorderedNode[string, int]()
	second.SetValue(2)

	weakFirst := first.Weak()
	weakSecond := second.Weak()

	first.Swap(&second)

	assert.Equal(t, 2, first.MustValue(), "After the swap the first handle should hold the second node")
	assert.Equal(t, 1, second.MustValue(), "After the swap the second handle should hold the first node")
	assert.Equal(t, 1, weakFirst.Node().MustValue(), "A weak handle taken before the swap should keep its original target")
	assert.Equal(t, 2, weakSecond.Node().MustValue(), "A weak handle taken before the swap should keep its original target")
	assert.True(t, weakFirst.Node().Same(second), "The crossed weak handle should now match the other strong handle")
}

// TestSame verifies identity equality of handles.
func TestSame(t *testing.T) {
	node := NewUnorderedNode[string, int]()
	other := NewUnorderedNode[string, int]()
	node.SetValue(1)
	other.SetValue(1)

	assert.True(t, node.Same(node.Ref()), "A handle and its Ref should be the same node")
	assert.False(t, node.Same(other), "Equal values on different nodes are still different nodes")
	assert.False(t, node.Same(node.Clone()), "A clone is never the same node as its source")
}
