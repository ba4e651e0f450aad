package coverage

import (
	"fmt"
	"slices"
)

// Tracker maintains, for a running offered set, the best captured score of
// every customer in a fixed customer list.
//
// A fresh Tracker represents the empty offered set (every customer at 0).
// Add grows the set; Gain evaluates a candidate against it without mutating.
type Tracker struct {
	s         *Scores
	customers []int     // customer ids, caller order
	best      []float64 // best[i] is the captured score of customers[i]
}

// NewTracker validates customers against s and returns an empty-set Tracker.
//
// Errors: ErrNilScores, ErrCustomerOutOfRange, ErrDuplicateCustomer.
//
// Complexity: O(|C|).
func NewTracker(s *Scores, customers []int) (*Tracker, error) {
	if s == nil {
		return nil, ErrNilScores
	}
	seen := make(map[int]struct{}, len(customers))
	for _, c := range customers {
		if c < 0 || c >= s.customers {
			return nil, fmt.Errorf("customer %d: %w", c, ErrCustomerOutOfRange)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("customer %d: %w", c, ErrDuplicateCustomer)
		}
		seen[c] = struct{}{}
	}

	return &Tracker{
		s:         s,
		customers: slices.Clone(customers),
		best:      make([]float64, len(customers)),
	}, nil
}

// Gain returns MarginalGain(p | offered) for the tracked offered set.
//
// Errors: ErrProductOutOfRange, ErrInvalidScoreValue when the sum overflows.
//
// Complexity: O(|C|).
func (t *Tracker) Gain(p int) (float64, error) {
	if err := t.s.checkProduct(p); err != nil {
		return 0, err
	}
	g := t.gain(p)
	if !finite(g) {
		return 0, fmt.Errorf("gain of product %d: %w", p, ErrInvalidScoreValue)
	}

	return g, nil
}

// gain is the unchecked kernel behind Gain. Positive deltas go through the
// same compensated accumulator as Total, so equal gains over permuted
// customers compare equal and Gain matches the difference of two totals.
func (t *Tracker) gain(p int) float64 {
	row := t.s.row(p)
	var (
		acc accumulator
		d   float64
		i   int
	)
	for i = range t.customers {
		if d = row[t.customers[i]] - t.best[i]; d > 0 {
			acc.add(d)
		}
	}

	return acc.value()
}

// Add puts p into the offered set. Adding a product twice is a no-op.
// Complexity: O(|C|).
func (t *Tracker) Add(p int) error {
	if err := t.s.checkProduct(p); err != nil {
		return err
	}
	row := t.s.row(p)
	var (
		v float64
		i int
	)
	for i = range t.customers {
		if v = row[t.customers[i]]; v > t.best[i] {
			t.best[i] = v
		}
	}

	return nil
}

// Total returns Coverage of the tracked offered set (compensated sum).
// Complexity: O(|C|).
func (t *Tracker) Total() float64 {
	return neumaierSum(t.best)
}

// Clone returns an independent copy sharing only the immutable Scores.
func (t *Tracker) Clone() *Tracker {
	return &Tracker{
		s:         t.s,
		customers: t.customers, // never written after construction
		best:      slices.Clone(t.best),
	}
}

// Customers returns the number of tracked customers.
func (t *Tracker) Customers() int { return len(t.customers) }
