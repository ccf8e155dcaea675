package hamt

// insert returns a replacement for n with key bound to value, rebuilding
// only the path it descends. h is the working hash with level fragments
// already consumed. added reports whether key was new rather than
// overwritten.
func insert[K comparable, V any](
	n *node[K, V], hasher Hasher[K], key K, h uint64, value V, level int,
) (*node[K, V], bool) {

	branch := fragment(h)
	if n.presence&branchBit(branch) == 0 {
		return n.insertEntry(branch, valueEntry(key, value)), true
	}

	e := &n.entries[rank(n.presence, branch)]
	switch e.kind {
	case kindValue:
		if e.key == key {
			return n.replaceEntry(branch, valueEntry(key, value)), false
		}
		// Two distinct keys collide on this fragment. Split on the next
		// level's fragments; the resident key's hash is recomputed and
		// pre-shifted past the levels already consumed.
		otherHash := hasher.Hash(e.key) << (fragBits * (level + 1))
		split := splitEntry(key, h<<fragBits, value, e.key, otherHash, e.value, level+1)
		return n.replaceEntry(branch, split), true
	case kindChain:
		chain, added := setChained(e.chain, key, value)
		return n.replaceEntry(branch, chainEntry(chain)), added
	default: // kindNode
		child, added := insert(e.child, hasher, key, h<<fragBits, value, level+1)
		return n.replaceEntry(branch, nodeEntry(child)), added
	}
}

// splitEntry resolves a collision between two keys whose fragments agree
// through level-1. Both hashes have level fragments consumed. It builds a
// chain of single-branch nodes down to the level where the fragments
// diverge, where a fresh two entry node holds both keys in ascending
// fragment order. If the hash is exhausted first the keys are chained.
func splitEntry[K comparable, V any](
	key1 K, h1 uint64, val1 V, key2 K, h2 uint64, val2 V, level int,
) entry[K, V] {

	if level == maxLevel {
		// No hash bits remain to tell the keys apart.
		return chainEntry([]Pair[K, V]{{key1, val1}, {key2, val2}})
	}

	frag1 := fragment(h1)
	frag2 := fragment(h2)
	if frag1 == frag2 {
		deeper := splitEntry(key1, h1<<fragBits, val1, key2, h2<<fragBits, val2, level+1)
		return nodeEntry(&node[K, V]{
			presence: branchBit(frag1),
			entries:  []entry[K, V]{deeper},
		})
	}

	lo := valueEntry(key1, val1)
	hi := valueEntry(key2, val2)
	if frag2 < frag1 {
		lo, hi = hi, lo
	}
	return nodeEntry(&node[K, V]{
		presence: branchBit(frag1) | branchBit(frag2),
		entries:  []entry[K, V]{lo, hi},
	})
}

// setChained returns a copy of chain with key bound to value. An existing
// pair keeps its position; a new pair goes to the front.
func setChained[K comparable, V any](chain []Pair[K, V], key K, value V) ([]Pair[K, V], bool) {
	for i := range chain {
		if chain[i].Key == key {
			out := make([]Pair[K, V], len(chain))
			copy(out, chain)
			out[i].Value = value
			return out, false
		}
	}
	out := make([]Pair[K, V], 0, len(chain)+1)
	out = append(out, Pair[K, V]{key, value})
	out = append(out, chain...)
	return out, true
}
