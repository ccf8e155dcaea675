package hamt

// entryKind discriminates the variant stored at an occupied branch.
type entryKind uint8

const (
	// kindValue holds a single key directly at this branch.
	kindValue entryKind = 1
	// kindNode points at a deeper node; present only where two or more
	// keys collided on this branch's fragment.
	kindNode entryKind = 2
	// kindChain holds an ordered list of pairs, most recently inserted
	// first; used only at the terminal level where hash bits are exhausted.
	kindChain entryKind = 3
)

// entry is the kind-tagged variant held at each occupied branch of a node.
// Only the fields for the active kind are meaningful.
type entry[K comparable, V any] struct {
	kind  entryKind
	key   K
	value V
	child *node[K, V]
	chain []Pair[K, V]
}

func valueEntry[K comparable, V any](key K, value V) entry[K, V] {
	return entry[K, V]{kind: kindValue, key: key, value: value}
}

func nodeEntry[K comparable, V any](child *node[K, V]) entry[K, V] {
	return entry[K, V]{kind: kindNode, child: child}
}

func chainEntry[K comparable, V any](chain []Pair[K, V]) entry[K, V] {
	return entry[K, V]{kind: kindChain, chain: chain}
}

// node is one level of the trie: a presence bitmap over the branchCount
// possible branches, and a dense slice holding one entry per occupied
// branch in ascending branch order. A node is never mutated after
// construction; the insertEntry/replaceEntry/removeEntry primitives below
// build replacements and alias everything they do not touch.
type node[K comparable, V any] struct {
	presence uint32
	entries  []entry[K, V]
}

// insertEntry returns a copy of n with e occupying the previously empty
// branch idx.
func (n *node[K, V]) insertEntry(idx uint32, e entry[K, V]) *node[K, V] {
	i := rank(n.presence, idx)
	entries := make([]entry[K, V], len(n.entries)+1)
	copy(entries, n.entries[:i])
	entries[i] = e
	copy(entries[i+1:], n.entries[i:])
	return &node[K, V]{presence: n.presence | branchBit(idx), entries: entries}
}

// replaceEntry returns a copy of n with e in place of the entry at the
// occupied branch idx.
func (n *node[K, V]) replaceEntry(idx uint32, e entry[K, V]) *node[K, V] {
	entries := make([]entry[K, V], len(n.entries))
	copy(entries, n.entries)
	entries[rank(n.presence, idx)] = e
	return &node[K, V]{presence: n.presence, entries: entries}
}

// removeEntry returns a copy of n with the occupied branch idx cleared
// and its slot dropped.
func (n *node[K, V]) removeEntry(idx uint32) *node[K, V] {
	i := rank(n.presence, idx)
	entries := make([]entry[K, V], len(n.entries)-1)
	copy(entries, n.entries[:i])
	copy(entries[i:], n.entries[i+1:])
	return &node[K, V]{presence: n.presence &^ branchBit(idx), entries: entries}
}
