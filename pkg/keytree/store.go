package keytree

// childStore is the pluggable child-storage strategy of a node. The two
// implementations are mapStore (hash-backed, insertion order) and
// btreeStore (B-tree backed, ascending key order). Iteration order over a
// store is whatever the backend defines, but it must be stable between
// mutations; the bidirectional key stepping (nextKey/prevKey) must agree
// with each.
type childStore[K comparable, V any] interface {
	len() int
	get(key K) (*nodeData[K, V], bool)
	set(key K, child *nodeData[K, V])
	remove(key K) bool
	clear()

	firstKey() (K, bool)
	lastKey() (K, bool)
	nextKey(after K) (K, bool)
	prevKey(before K) (K, bool)

	// each visits entries in backend order until fn returns false.
	each(fn func(key K, child *nodeData[K, V]) bool)
	// keyOf scans for the entry whose child is the given record.
	keyOf(child *nodeData[K, V]) (K, bool)
}

// mapStore is the unordered backend: a hash map plus a side slice of keys
// in insertion order. Go randomizes map range order on every pass, so the
// slice is the iteration source of truth.
type mapStore[K comparable, V any] struct {
	entries map[K]*nodeData[K, V]
	order   []K
}

func newMapStore[K comparable, V any]() childStore[K, V] {
	return &mapStore[K, V]{entries: map[K]*nodeData[K, V]{}}
}

func (s *mapStore[K, V]) len() int {
	return len(s.entries)
}

func (s *mapStore[K, V]) get(key K) (*nodeData[K, V], bool) {
	child, ok := s.entries[key]
	return child, ok
}

func (s *mapStore[K, V]) set(key K, child *nodeData[K, V]) {
	if _, exists := s.entries[key]; !exists {
		s.order = append(s.order, key)
	}
	s.entries[key] = child
}

func (s *mapStore[K, V]) remove(key K) bool {
	if _, exists := s.entries[key]; !exists {
		return false
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *mapStore[K, V]) clear() {
	s.entries = map[K]*nodeData[K, V]{}
	s.order = nil
}

func (s *mapStore[K, V]) firstKey() (K, bool) {
	if len(s.order) == 0 {
		var zero K
		return zero, false
	}
	return s.order[0], true
}

func (s *mapStore[K, V]) lastKey() (K, bool) {
	if len(s.order) == 0 {
		var zero K
		return zero, false
	}
	return s.order[len(s.order)-1], true
}

func (s *mapStore[K, V]) nextKey(after K) (K, bool) {
	for i, k := range s.order {
		if k == after && i+1 < len(s.order) {
			return s.order[i+1], true
		}
	}
	var zero K
	return zero, false
}

func (s *mapStore[K, V]) prevKey(before K) (K, bool) {
	for i, k := range s.order {
		if k == before && i > 0 {
			return s.order[i-1], true
		}
	}
	var zero K
	return zero, false
}

func (s *mapStore[K, V]) each(fn func(key K, child *nodeData[K, V]) bool) {
	for _, key := range s.order {
		if !fn(key, s.entries[key]) {
			return
		}
	}
}

func (s *mapStore[K, V]) keyOf(child *nodeData[K, V]) (K, bool) {
	for _, key := range s.order {
		if s.entries[key] == child {
			return key, true
		}
	}
	var zero K
	return zero, false
}
