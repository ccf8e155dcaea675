package hamt

// height returns the maximum depth reachable from n. A value entry
// contributes 0, a chained entry 1 and a child node one more than its own
// height; an empty node has height 0.
func height[K comparable, V any](n *node[K, V]) int {
	h := 0
	for i := range n.entries {
		var d int
		switch n.entries[i].kind {
		case kindValue:
			d = 0
		case kindChain:
			d = 1
		default: // kindNode
			d = 1 + height(n.entries[i].child)
		}
		if d > h {
			h = d
		}
	}
	return h
}
