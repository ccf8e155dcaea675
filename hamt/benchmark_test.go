package hamt_test

import (
	"testing"

	"github.com/maxov/hamster/hamt"
)

// Comparative benchmarks: bulk insert/remove against the built-in map.
// The persistent map pays for path copying on every operation, so these
// are expected to trail the mutable baseline; they exist to keep the gap
// visible, not to win.

const benchKeys = 10000

func setupBigMap() hamt.Map[uint64, int] {
	m := hamt.New[uint64, int]()
	for k := uint64(1); k < benchKeys; k++ {
		m = m.Insert(k, -int(k))
	}
	return m
}

func BenchmarkBigInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupBigMap()
	}
}

func BenchmarkBigInsertStdMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := make(map[uint64]int)
		for k := uint64(1); k < benchKeys; k++ {
			m[k] = -int(k)
		}
	}
}

func BenchmarkBigRemove(b *testing.B) {
	base := setupBigMap()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := base
		for k := uint64(1); k < benchKeys; k += 2 {
			m = m.Remove(k)
		}
		for k := uint64(1); k < benchKeys; k += 2 {
			if m.ContainsKey(k) {
				b.Fatalf("key %d still present", k)
			}
		}
		for k := uint64(2); k < benchKeys; k += 2 {
			if !m.ContainsKey(k) {
				b.Fatalf("key %d missing", k)
			}
		}
	}
}

func BenchmarkBigRemoveStdMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := make(map[uint64]int, benchKeys)
		for k := uint64(1); k < benchKeys; k++ {
			m[k] = -int(k)
		}
		b.StartTimer()

		for k := uint64(1); k < benchKeys; k += 2 {
			delete(m, k)
		}
		for k := uint64(1); k < benchKeys; k += 2 {
			if _, ok := m[k]; ok {
				b.Fatalf("key %d still present", k)
			}
		}
		for k := uint64(2); k < benchKeys; k += 2 {
			if _, ok := m[k]; !ok {
				b.Fatalf("key %d missing", k)
			}
		}
	}
}

func BenchmarkGet(b *testing.B) {
	m := setupBigMap()
	b.ResetTimer()
	k := uint64(1)
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(k); !ok {
			b.Fatalf("key %d missing", k)
		}
		k++
		if k >= benchKeys {
			k = 1
		}
	}
}
