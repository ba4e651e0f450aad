package partition

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

const ceilTol = 1e-9

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Sample draws a representative subsample of both sides of p.
//
// Each non-empty side keeps ⌈ratio·n⌉ ids (at least one), chosen by a seeded
// Fisher–Yates shuffle and returned in ascending order. The same (p, ratio,
// seed) always yields the same result.
//
// Contracts: 0 < ratio ≤ 1.
//
// Complexity: O(|EP| + |CP|).
func Sample(p Partition, ratio float64, seed int64) (Partition, error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return Partition{}, fmt.Errorf("sample ratio %g: %w", ratio, ErrBadRatio)
	}
	rng := rngFromSeed(seed)

	return Partition{
		Existing:   sampleSide(rng, p.Existing, ratio),
		Candidates: sampleSide(rng, p.Candidates, ratio),
	}, nil
}

// sampleSide picks ⌈ratio·len(ids)⌉ ids without replacement.
func sampleSide(rng *rand.Rand, ids []int, ratio float64) []int {
	if len(ids) == 0 {
		return []int{}
	}
	// ceilTol absorbs representation error, e.g. 0.2·30 = 6.0000000000000004.
	n := int(math.Ceil(ratio*float64(len(ids)) - ceilTol))
	if n < 1 {
		n = 1
	}
	if n > len(ids) {
		n = len(ids)
	}

	pool := slices.Clone(ids)
	// Partial Fisher–Yates: only the first n slots are needed.
	var i, j int
	for i = 0; i < n; i++ {
		j = i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := pool[:n:n]
	slices.Sort(out)

	return out
}
