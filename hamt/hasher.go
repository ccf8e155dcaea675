package hamt

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/crypto/sha3"
)

// Hasher derives the 64 bit hash value the trie consumes 5 bits at a time.
//
// An implementation must be deterministic: the same key must hash to the
// same value for the whole lifetime of every map it is used with,
// including every version derived from those maps. Distribution quality
// affects performance only, never correctness; any two keys may share an
// arbitrarily long hash prefix and still be stored and retrieved
// independently.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// seededHasher hashes any comparable key with hash/maphash. The seed is
// fixed when the map is created, so hashes are deterministic within a map
// lineage but vary from process to process.
type seededHasher[K comparable] struct {
	seed maphash.Seed
}

func newSeededHasher[K comparable]() seededHasher[K] {
	return seededHasher[K]{seed: maphash.MakeSeed()}
}

func (h seededHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// StringHasher hashes string keys with SHA3-256, keeping the 8 most
// significant bytes big endian. Unlike the seeded default it is stable
// across processes.
type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 {
	sum := sha3.Sum256([]byte(key))
	return binary.BigEndian.Uint64(sum[:8])
}
