package hamt

/*

# Persistent hash array mapped trie

This package provides an immutable, versioned associative map over arbitrary
hashable keys, backed by a hash array mapped trie (HAMT): a 32-way trie keyed
by successive 5 bit fragments of a key's 64 bit hash, with a presence bitmap
per node so that only occupied branches consume storage.

It follows the same "functional primitives" style as the rest of our tree
structure packages:

- small, composable functions
- explicit bit layouts and index arithmetic
- nodes are never mutated after construction

## Core invariants

1. `len(node.entries) == popcount(node.presence)`, entries in ascending
   branch order. The dense slot for branch i is the count of presence bits
   below i (see rank).
2. A child node appears at a branch only where two or more keys actually
   collided on that branch's fragment; a lone key is always stored directly
   as a value entry.
3. Chained entries appear only at the terminal level, once all 64 hash bits
   have been consumed and keys still collide.
4. No node other than a map's own root is ever empty. Removals that drain a
   branch clear its presence bit and drop its slot.

## Copy-on-write and structural sharing

Insert and Remove rebuild only the path from the root to the affected leaf
and return a new Map handle around the new root. Every subtree off that
path is aliased by reference into the new version, so any number of handles
over any number of versions can be read concurrently without coordination.
Node lifetime is left to the garbage collector: a node lives exactly as
long as some live handle's root can still reach it.

## Hash addressing

The 64 bit hash is consumed most-significant-first, 5 bits per level, by
left shifting a working copy as the traversal descends. 12 full levels
consume 60 bits; level 13 is the hard cutoff where no further fragment
exists and colliding keys fall back to a chained list rather than further
subdivision.

Any deterministic, well distributed 64 bit hash is acceptable; distribution
quality affects performance, never correctness. See Hasher.

*/
