package hamt

import (
	"fmt"
	"math/bits"
)

// CheckInvariants walks every node reachable from m and verifies the
// structural invariants of the trie. It is a test and debug aid: the map
// operations cannot produce a violation unless the engine itself is
// broken, so a non-nil result is unrecoverable. It reports the first of:
//
//   - ErrInvalidEntryCount: len(entries) != popcount(presence)
//   - ErrEmptyNode: an empty node anywhere but the root
//   - ErrEmptyChain: a chained entry with no pairs
//   - ErrChainDepth: a chained entry above the terminal level
//   - ErrNodeDepth: a child node deep enough that its branches would need
//     hash bits past the 64 bit width
func CheckInvariants[K comparable, V any](m Map[K, V]) error {
	return checkNode(m.root, 0, true)
}

func checkNode[K comparable, V any](n *node[K, V], level int, isRoot bool) error {
	if got, want := len(n.entries), bits.OnesCount32(n.presence); got != want {
		return fmt.Errorf("%w: level=%d presence=%#08x entries=%d", ErrInvalidEntryCount, level, n.presence, got)
	}
	if !isRoot && n.presence == 0 {
		return fmt.Errorf("%w: level=%d", ErrEmptyNode, level)
	}
	for i := range n.entries {
		e := &n.entries[i]
		switch e.kind {
		case kindChain:
			if len(e.chain) == 0 {
				return fmt.Errorf("%w: level=%d slot=%d", ErrEmptyChain, level, i)
			}
			if level != maxLevel-1 {
				return fmt.Errorf("%w: level=%d slot=%d", ErrChainDepth, level, i)
			}
		case kindNode:
			if level+1 >= maxLevel {
				return fmt.Errorf("%w: level=%d slot=%d", ErrNodeDepth, level, i)
			}
			if err := checkNode(e.child, level+1, false); err != nil {
				return err
			}
		}
	}
	return nil
}
