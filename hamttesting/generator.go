// Package hamttesting provides deterministic test data generation and
// scriptable hash adapters for exercising the hamt package's collision
// split and chaining paths, which a real hash makes effectively
// impossible to hit by accident.
package hamttesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/maxov/hamster/hamt"
)

type TestConfig struct {
	// Seed fixes the RNG so that the generated keys and values are the
	// same from run to run.
	Seed            int64
	TestLabelPrefix string
}

type TestGenerator struct {
	T   *testing.T
	Rng *rand.Rand
	Cfg TestConfig

	// RunLabel uniquely identifies one generator instance within a test
	// run, so values from overlapping generators cannot be confused.
	RunLabel string
}

func NewTestGenerator(t *testing.T, cfg TestConfig) TestGenerator {
	if cfg.TestLabelPrefix == "" {
		cfg.TestLabelPrefix = "hamttesting"
	}
	g := TestGenerator{
		T:        t,
		Rng:      rand.New(rand.NewSource(cfg.Seed)),
		Cfg:      cfg,
		RunLabel: fmt.Sprintf("%s/%s", cfg.TestLabelPrefix, uuid.NewString()),
	}
	return g
}

// GenerateKeyValues returns count pairs with distinct keys. Keys are
// derived from the seeded RNG and are stable for a given (Seed, count);
// values carry the RunLabel.
func (g *TestGenerator) GenerateKeyValues(count int) []hamt.Pair[string, string] {
	pairs := make([]hamt.Pair[string, string], 0, count)
	seen := make(map[string]bool, count)
	for len(pairs) < count {
		key := fmt.Sprintf("%s/key-%016x", g.Cfg.TestLabelPrefix, g.Rng.Uint64())
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, hamt.Pair[string, string]{
			Key:   key,
			Value: fmt.Sprintf("%s/%d", g.RunLabel, len(pairs)),
		})
	}
	return pairs
}
