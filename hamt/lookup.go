package hamt

// lookup walks the trie from n looking for key, whose unconsumed hash
// bits are at the top of h.
func lookup[K comparable, V any](n *node[K, V], h uint64, key K) (V, bool) {
	var zero V
	for {
		branch := fragment(h)
		if n.presence&branchBit(branch) == 0 {
			return zero, false
		}
		e := &n.entries[rank(n.presence, branch)]
		switch e.kind {
		case kindValue:
			if e.key == key {
				return e.value, true
			}
			// A true collision is always split or chained, so a
			// mismatched value here means the key is definitively absent.
			return zero, false
		case kindChain:
			for i := range e.chain {
				if e.chain[i].Key == key {
					return e.chain[i].Value, true
				}
			}
			return zero, false
		default: // kindNode
			n = e.child
			h <<= fragBits
		}
	}
}
