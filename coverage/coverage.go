package coverage

import "fmt"

// Coverage returns Σ_{c∈customers} max_{p∈offered} score(p, c).
//
// An empty offered set covers nothing (0). Repeated ids in offered are
// harmless because max is idempotent.
//
// Errors: ErrNilScores, ErrProductOutOfRange, ErrCustomerOutOfRange,
// ErrDuplicateCustomer, ErrInvalidScoreValue when the total overflows.
//
// Complexity: O(|offered|·|C|).
func Coverage(s *Scores, offered, customers []int) (float64, error) {
	t, err := Offered(s, offered, customers)
	if err != nil {
		return 0, err
	}
	total := t.Total()
	if !finite(total) {
		return 0, fmt.Errorf("coverage total: %w", ErrInvalidScoreValue)
	}

	return total, nil
}

// MarginalGain returns Coverage(offered ∪ {p}) − Coverage(offered), computed
// directly as Σ_c max(0, score(p,c) − best(c)). The result is always ≥ 0.
//
// Complexity: O((|offered|+1)·|C|).
func MarginalGain(s *Scores, p int, offered, customers []int) (float64, error) {
	t, err := Offered(s, offered, customers)
	if err != nil {
		return 0, err
	}

	return t.Gain(p)
}

// Offered returns a Tracker preloaded with every product in offered.
func Offered(s *Scores, offered, customers []int) (*Tracker, error) {
	t, err := NewTracker(s, customers)
	if err != nil {
		return nil, err
	}
	for _, p := range offered {
		if err = t.Add(p); err != nil {
			return nil, fmt.Errorf("offered set: %w", err)
		}
	}

	return t, nil
}
