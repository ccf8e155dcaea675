package hamt_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/maxov/hamster/hamt"
	"github.com/maxov/hamster/hamttesting"
)

// TestRandomOpsAgainstReference drives a generated workload against both
// the persistent map and a built-in map and requires them to agree after
// every phase, with the structural invariants intact throughout.
func TestRandomOpsAgainstReference(t *testing.T) {
	g := hamttesting.NewTestGenerator(t, hamttesting.TestConfig{
		Seed:            23,
		TestLabelPrefix: "randomops",
	})

	pairs := g.GenerateKeyValues(2000)

	m := hamt.New[string, string]()
	ref := map[string]string{}
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
		ref[p.Key] = p.Value
	}
	assert.NilError(t, hamt.CheckInvariants(m))
	assert.Equal(t, len(ref), m.Len())

	// Overwrite a random third of the keys.
	for _, p := range pairs {
		if g.Rng.Intn(3) != 0 {
			continue
		}
		m = m.Insert(p.Key, p.Value+"/updated")
		ref[p.Key] = p.Value + "/updated"
	}
	assert.NilError(t, hamt.CheckInvariants(m))
	assert.Equal(t, len(ref), m.Len())

	// Remove a random half, interleaved with removals of absent keys.
	for _, p := range pairs {
		if g.Rng.Intn(2) == 0 {
			m = m.Remove(p.Key)
			delete(ref, p.Key)
		}
		m = m.Remove(p.Key + "/never-inserted")
	}
	assert.NilError(t, hamt.CheckInvariants(m))
	assert.Equal(t, len(ref), m.Len())

	for _, p := range pairs {
		want, inRef := ref[p.Key]
		got, inMap := m.Get(p.Key)
		assert.Equal(t, inRef, inMap, "key %q", p.Key)
		if inRef {
			assert.Equal(t, want, got, "key %q", p.Key)
		}
	}
}
