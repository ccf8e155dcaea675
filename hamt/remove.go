package hamt

// removeKey returns a replacement for n with key absent, collapsing any
// branch it drains. When key is not present under n it returns n itself,
// so untouched paths allocate nothing.
func removeKey[K comparable, V any](n *node[K, V], key K, h uint64) (*node[K, V], bool) {
	branch := fragment(h)
	if n.presence&branchBit(branch) == 0 {
		return n, false
	}

	e := &n.entries[rank(n.presence, branch)]
	switch e.kind {
	case kindValue:
		if e.key != key {
			return n, false
		}
		return n.removeEntry(branch), true
	case kindChain:
		chain, removed := cutChained(e.chain, key)
		if !removed {
			return n, false
		}
		if len(chain) == 0 {
			// Last chained pair gone; the branch collapses exactly as a
			// value deletion would.
			return n.removeEntry(branch), true
		}
		return n.replaceEntry(branch, chainEntry(chain)), true
	default: // kindNode
		child, removed := removeKey(e.child, key, h<<fragBits)
		if !removed {
			return n, false
		}
		if child.presence == 0 {
			// Never retain a pointer to an emptied node.
			return n.removeEntry(branch), true
		}
		// A child left with a single entry stays a node; there is no
		// promotion back to a bare value entry.
		return n.replaceEntry(branch, nodeEntry(child)), true
	}
}

// cutChained returns chain without the pair for key, preserving order,
// and whether a pair was removed.
func cutChained[K comparable, V any](chain []Pair[K, V], key K) ([]Pair[K, V], bool) {
	for i := range chain {
		if chain[i].Key == key {
			out := make([]Pair[K, V], 0, len(chain)-1)
			out = append(out, chain[:i]...)
			out = append(out, chain[i+1:]...)
			return out, true
		}
	}
	return nil, false
}
