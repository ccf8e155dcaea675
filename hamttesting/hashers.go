package hamttesting

import "github.com/maxov/hamster/hamt"

// FixedHasher hashes every key to the same 64 bit value, forcing every
// insert after the first through the full split recursion down to the
// terminal chain.
type FixedHasher[K comparable] uint64

func (h FixedHasher[K]) Hash(K) uint64 {
	return uint64(h)
}

// TableHasher returns scripted hashes so that exact collision shapes can
// be arranged: shared prefixes of any length, divergence at a chosen
// level, or total collision. Keys without an entry fall back to Fallback,
// or hash to 0 when Fallback is nil.
type TableHasher[K comparable] struct {
	Hashes   map[K]uint64
	Fallback hamt.Hasher[K]
}

func (h TableHasher[K]) Hash(key K) uint64 {
	if v, ok := h.Hashes[key]; ok {
		return v
	}
	if h.Fallback != nil {
		return h.Fallback.Hash(key)
	}
	return 0
}
