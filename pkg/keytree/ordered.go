package keytree

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// btreeDegree is the branching factor of the ordered child store. Child
// maps are typically small, so a low degree keeps nodes compact.
const btreeDegree = 4

type storeEntry[K constraints.Ordered, V any] struct {
	key   K
	child *nodeData[K, V]
}

// btreeStore is the ordered backend: entries sorted ascending by key on a
// google/btree B-tree.
type btreeStore[K constraints.Ordered, V any] struct {
	entries *btree.BTreeG[storeEntry[K, V]]
}

func newBTreeStore[K constraints.Ordered, V any]() childStore[K, V] {
	return &btreeStore[K, V]{
		entries: btree.NewG(btreeDegree, func(a, b storeEntry[K, V]) bool {
			return a.key < b.key
		}),
	}
}

func (s *btreeStore[K, V]) len() int {
	return s.entries.Len()
}

func (s *btreeStore[K, V]) get(key K) (*nodeData[K, V], bool) {
	entry, ok := s.entries.Get(storeEntry[K, V]{key: key})
	if !ok {
		return nil, false
	}
	return entry.child, true
}

func (s *btreeStore[K, V]) set(key K, child *nodeData[K, V]) {
	s.entries.ReplaceOrInsert(storeEntry[K, V]{key: key, child: child})
}

func (s *btreeStore[K, V]) remove(key K) bool {
	_, removed := s.entries.Delete(storeEntry[K, V]{key: key})
	return removed
}

func (s *btreeStore[K, V]) clear() {
	s.entries.Clear(false)
}

func (s *btreeStore[K, V]) firstKey() (K, bool) {
	entry, ok := s.entries.Min()
	return entry.key, ok
}

func (s *btreeStore[K, V]) lastKey() (K, bool) {
	entry, ok := s.entries.Max()
	return entry.key, ok
}

func (s *btreeStore[K, V]) nextKey(after K) (K, bool) {
	var next K
	found := false
	s.entries.AscendGreaterOrEqual(storeEntry[K, V]{key: after}, func(entry storeEntry[K, V]) bool {
		if entry.key == after {
			return true
		}
		next = entry.key
		found = true
		return false
	})
	return next, found
}

func (s *btreeStore[K, V]) prevKey(before K) (K, bool) {
	var prev K
	found := false
	s.entries.DescendLessOrEqual(storeEntry[K, V]{key: before}, func(entry storeEntry[K, V]) bool {
		if entry.key == before {
			return true
		}
		prev = entry.key
		found = true
		return false
	})
	return prev, found
}

func (s *btreeStore[K, V]) each(fn func(key K, child *nodeData[K, V]) bool) {
	s.entries.Ascend(func(entry storeEntry[K, V]) bool {
		return fn(entry.key, entry.child)
	})
}

func (s *btreeStore[K, V]) keyOf(child *nodeData[K, V]) (K, bool) {
	var key K
	found := false
	s.entries.Ascend(func(entry storeEntry[K, V]) bool {
		if entry.child == child {
			key = entry.key
			found = true
			return false
		}
		return true
	})
	return key, found
}
