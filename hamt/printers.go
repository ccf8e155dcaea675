package hamt

import (
	"fmt"
	"strings"
)

// debug utilities

func (m Map[K, V]) String() string {
	return fmt.Sprintf("Map{len=%d height=%d}", m.count, m.Height())
}

// Dump renders the trie one branch per line, indented by level, with each
// node's presence bitmap. Intended for debugging and demo output only;
// the rendering makes no ordering promises beyond ascending branch index
// within a node.
func (m Map[K, V]) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.String())
	dumpNode(&b, m.root, "")
	return b.String()
}

func dumpNode[K comparable, V any](b *strings.Builder, n *node[K, V], indent string) {
	fmt.Fprintf(b, "%snode presence=%#08x\n", indent, n.presence)
	for i := range n.entries {
		e := &n.entries[i]
		switch e.kind {
		case kindValue:
			fmt.Fprintf(b, "%s  value %v=%v\n", indent, e.key, e.value)
		case kindChain:
			pairs := make([]string, 0, len(e.chain))
			for _, p := range e.chain {
				pairs = append(pairs, fmt.Sprintf("%v=%v", p.Key, p.Value))
			}
			fmt.Fprintf(b, "%s  chain [%s]\n", indent, strings.Join(pairs, " "))
		case kindNode:
			dumpNode(b, e.child, indent+"  ")
		}
	}
}
