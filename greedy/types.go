package greedy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/assortment/coverage"
)

var (
	// ErrInvalidSelectionSize is returned when k ≤ 0 or k > |CP|.
	ErrInvalidSelectionSize = errors.New("greedy: selection size out of range")

	// ErrInvalidPartition is returned when EP and CP overlap, repeat an id, or
	// reference an id outside the matrix row space.
	ErrInvalidPartition = errors.New("greedy: invalid partition")

	// ErrInvalidCustomerSet is returned when C is empty, repeats an id, or
	// references an id outside the matrix column space.
	ErrInvalidCustomerSet = errors.New("greedy: invalid customer set")

	// ErrEmptyCandidateSet is returned when CP is empty while k > 0.
	ErrEmptyCandidateSet = errors.New("greedy: empty candidate set")

	// ErrUnsupportedAlgorithm is returned by Select and ParseAlgorithm for an unknown algorithm.
	ErrUnsupportedAlgorithm = errors.New("greedy: unsupported algorithm")
)

// Sentinels shared with package coverage. They are the same values, so
// errors.Is matches either name.
var (
	// ErrInvalidScoreValue reports a non-finite marginal gain.
	ErrInvalidScoreValue = coverage.ErrInvalidScoreValue

	// ErrNilScores reports a nil score matrix.
	ErrNilScores = coverage.ErrNilScores
)

// Algorithm enumerates the selectors reachable through Select.
type Algorithm int

const (
	// IncrementalGreedy re-evaluates marginal gains every round.
	IncrementalGreedy Algorithm = iota

	// SingleProductGreedy ranks candidates once by standalone gain.
	SingleProductGreedy
)

// String returns the short name used in logs and configuration ("ig", "spg").
func (a Algorithm) String() string {
	switch a {
	case IncrementalGreedy:
		return "ig"
	case SingleProductGreedy:
		return "spg"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "ig"/"incremental" and "spg"/"single-product" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ig", "incremental":
		return IncrementalGreedy, nil
	case "spg", "single-product", "single_product":
		return SingleProductGreedy, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
	}
}

// Result holds the outcome of a selector.
type Result struct {
	// Selected lists exactly k distinct candidate ids in selection order.
	Selected []int

	// Scores maps every selected id to the value it was selected on:
	// the marginal gain at its round (IG) or its standalone gain over EP (SPG).
	Scores map[int]float64

	// Coverage is the coverage of EP ∪ Selected.
	Coverage float64

	// Baseline is the coverage of EP alone.
	Baseline float64
}
