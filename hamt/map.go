package hamt

// Map is an immutable, persistent associative map from K to V backed by a
// hash array mapped trie. Insert and Remove return a new Map sharing all
// untouched subtrees with the receiver; the receiver itself is never
// affected by any operation.
//
// A Map must be created by New, NewWithHasher or From; the zero value has
// no hasher and is not usable.
//
// Any number of goroutines may read any number of Map values concurrently
// without coordination, including values that share subtrees.
type Map[K comparable, V any] struct {
	hasher Hasher[K]
	root   *node[K, V]
	count  int
}

// New returns an empty Map hashing keys with a freshly seeded
// hash/maphash hasher. Use NewWithHasher when hashes must be stable
// across processes or controlled by the caller.
func New[K comparable, V any]() Map[K, V] {
	return NewWithHasher[K, V](newSeededHasher[K]())
}

// NewWithHasher returns an empty Map using hasher for key hashing. The
// hasher is shared by every map derived from the result and must stay
// deterministic for that whole lineage.
func NewWithHasher[K comparable, V any](hasher Hasher[K]) Map[K, V] {
	return Map[K, V]{hasher: hasher, root: &node[K, V]{}}
}

// From builds a Map from pairs by repeated insertion starting from empty.
// Later pairs with duplicate keys overwrite earlier ones.
func From[K comparable, V any](pairs []Pair[K, V]) Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// Get returns the value bound to key and whether the key is present.
func (m Map[K, V]) Get(key K) (V, bool) {
	return lookup(m.root, m.hasher.Hash(key), key)
}

// ContainsKey reports whether key is present.
func (m Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert returns a new Map with key bound to value. An existing binding
// for key is overwritten; m is unaffected either way.
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	root, added := insert(m.root, m.hasher, key, m.hasher.Hash(key), value, 0)
	count := m.count
	if added {
		count++
	}
	return Map[K, V]{hasher: m.hasher, root: root, count: count}
}

// Remove returns a new Map with key absent. Removing an absent key is a
// true no-op: the result shares the identical root with m and nothing is
// allocated.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	root, removed := removeKey(m.root, key, m.hasher.Hash(key))
	if !removed {
		return m
	}
	return Map[K, V]{hasher: m.hasher, root: root, count: m.count - 1}
}

// Len returns the number of keys in the map.
func (m Map[K, V]) Len() int {
	return m.count
}

// Height returns the maximum depth of the trie: 0 for an empty map or one
// whose keys all sit directly in the root, plus one per node level below
// the root, with a terminal chain counting one more.
func (m Map[K, V]) Height() int {
	return height(m.root)
}

// Clone returns a new handle aliasing the same tree as m. O(1); the two
// handles diverge only when one of them performs a mutating operation.
func (m Map[K, V]) Clone() Map[K, V] {
	return m
}
