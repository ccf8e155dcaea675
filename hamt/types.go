package hamt

import "errors"

// fragBits is the number of hash bits consumed per trie level.
const fragBits = 5

// branchCount is the branching factor of every node, 1<<fragBits.
const branchCount = 1 << fragBits

// maxLevel is the terminal level. Levels [0..maxLevel-1] are addressed by
// hash fragments; at maxLevel the 64 bit hash is exhausted and colliding
// keys are chained rather than split further.
const maxLevel = 13

// Pair is a key/value pair, used for bulk construction and chained
// collision storage.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Sentinel errors reported by CheckInvariants. None of the map operations
// themselves can fail; a non-nil result from CheckInvariants means the
// trie engine has a construction bug and the structure must be considered
// corrupt.
var (
	ErrInvalidEntryCount = errors.New("hamt: entry count does not match presence bitmap")
	ErrEmptyNode         = errors.New("hamt: empty non-root node")
	ErrEmptyChain        = errors.New("hamt: empty chained entry")
	ErrChainDepth        = errors.New("hamt: chained entry above the terminal level")
	ErrNodeDepth         = errors.New("hamt: child node at or below the terminal level")
)
