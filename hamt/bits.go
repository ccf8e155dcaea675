package hamt

import "math/bits"

// fragMask selects the fragBits most significant bits of a 64 bit word.
const fragMask = uint64(branchCount-1) << (64 - fragBits)

// fragment returns the branch index exposed at the top of the working
// hash, in [0, branchCount). The working hash is shifted left by fragBits
// per level as the traversal descends, so the current level's fragment is
// always the top 5 bits.
func fragment(h uint64) uint32 {
	return uint32((h & fragMask) >> (64 - fragBits))
}

// branchBit returns the presence bit for branch idx.
func branchBit(idx uint32) uint32 {
	return 1 << idx
}

// rank maps a branch index to its dense position in a node's entries
// slice: the count of occupied branches below idx. rank of the lowest
// occupied branch is 0.
func rank(presence uint32, idx uint32) int {
	return bits.OnesCount32(presence & (branchBit(idx) - 1))
}
