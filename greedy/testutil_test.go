// Package greedy_test - small helpers shared across *_test.go files.
package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/assortment/coverage"
	"github.com/stretchr/testify/require"
)

// Product ids of the three-product scenario.
const (
	prodA = 0
	prodB = 1
	prodC = 2
)

// abcRows: A and B each serve one customer strongly, C serves all three moderately.
var abcRows = [][]float64{
	{5, 0, 0}, // A
	{0, 5, 0}, // B
	{3, 3, 3}, // C
}

// overlapRows: A and B capture the same customers; C serves a customer nobody else does.
// Standalone sums A=9, B=8, C=5.
var overlapRows = [][]float64{
	{3, 3, 3, 0}, // A
	{3, 3, 2, 0}, // B
	{0, 0, 0, 5}, // C
}

func mustScores(t testing.TB, rows [][]float64) *coverage.Scores {
	t.Helper()
	s, err := coverage.NewScoresFromRows(rows)
	require.NoError(t, err)

	return s
}

// tiedRows returns a deterministic matrix of small integers; the narrow value
// range produces many exact gain ties.
func tiedRows(seed int64, products, customers int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, products)
	for p := range rows {
		rows[p] = make([]float64, customers)
		for c := range rows[p] {
			rows[p][c] = float64(rng.Intn(4))
		}
	}

	return rows
}

// span returns [lo, hi).
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}
