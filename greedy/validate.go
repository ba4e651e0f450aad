// Package greedy - validation shared by both selectors.
//
// Stages (first failure wins):
//  1. scores non-nil.
//  2. k ≥ 1; CP non-empty; k ≤ |CP|.
//  3. EP/CP ids in range, unique, disjoint.
//  4. C non-empty, ids in range, unique.
//
// Validation is deterministic and side-effect free; every slice the selectors
// keep is a private copy.
package greedy

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/assortment/coverage"
	"github.com/katalvlaran/assortment/partition"
)

// problem is a validated, normalised selector input.
type problem struct {
	k          int
	candidates []int             // ascending copy of CP
	base       *coverage.Tracker // offered set = EP
	baseline   float64           // coverage of EP
}

// prepare runs the staged validation and builds the EP tracker.
//
// Complexity: O(|EP|·|C| + |CP| log |CP|).
func prepare(k int, customers []int, scores *coverage.Scores, existing, candidates []int) (*problem, error) {
	// Stage 1: matrix.
	if scores == nil {
		return nil, ErrNilScores
	}

	// Stage 2: selection size vs candidate pool.
	if k <= 0 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInvalidSelectionSize)
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	if k > len(candidates) {
		return nil, fmt.Errorf("k=%d > |CP|=%d: %w", k, len(candidates), ErrInvalidSelectionSize)
	}

	// Stage 3: partition shape.
	p := partition.Partition{Existing: existing, Candidates: candidates}
	if err := p.Validate(scores.Products()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPartition, err)
	}

	// Stage 4: customers.
	if len(customers) == 0 {
		return nil, fmt.Errorf("no customers: %w", ErrInvalidCustomerSet)
	}
	base, err := coverage.NewTracker(scores, customers)
	if err != nil {
		if errors.Is(err, coverage.ErrCustomerOutOfRange) || errors.Is(err, coverage.ErrDuplicateCustomer) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCustomerSet, err)
		}
		return nil, err
	}
	for _, id := range existing {
		if err = base.Add(id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPartition, err)
		}
	}

	baseline, err := total(base)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	return &problem{k: k, candidates: sorted, base: base, baseline: baseline}, nil
}

// total is t.Total() rejecting an overflowed sum.
func total(t *coverage.Tracker) (float64, error) {
	v := t.Total()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coverage total: %w", ErrInvalidScoreValue)
	}

	return v, nil
}
