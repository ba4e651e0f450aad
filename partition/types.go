package partition

import (
	"context"
	"errors"

	"github.com/katalvlaran/assortment/coverage"
)

var (
	// ErrOverlap indicates that a product id appears in both EP and CP.
	ErrOverlap = errors.New("partition: existing and candidate sets overlap")

	// ErrOutOfRange indicates a product id outside the matrix row space.
	ErrOutOfRange = errors.New("partition: product id out of range")

	// ErrDuplicate indicates the same id listed twice on one side.
	ErrDuplicate = errors.New("partition: duplicate product id")

	// ErrBadRatio indicates a percentage or sampling ratio outside its domain.
	ErrBadRatio = errors.New("partition: ratio out of range")

	// ErrNoProducts indicates a non-positive product count.
	ErrNoProducts = errors.New("partition: no products")
)

// DefaultExistingPercent is the share of row ids treated as existing by RatioSplit.
const DefaultExistingPercent = 30

// Partition is a pair of disjoint product id sets.
type Partition struct {
	// Existing products are always part of the offered set.
	Existing []int

	// Candidates are eligible for selection.
	Candidates []int
}

// Refiner re-derives a partition, typically from feature data the core never
// sees. seed is a pre-filtered candidate set (e.g. single-product greedy with
// a doubled k) the refiner may use to anchor clusters.
//
// A Refiner returns either a new valid partition or an error; it never
// silently returns its input on failure. The caller decides whether to fall
// back to the previous partition.
type Refiner interface {
	Refine(ctx context.Context, scores *coverage.Scores, current Partition, seed []int) (Partition, error)
}

// RefinerFunc adapts an ordinary function to the Refiner interface.
type RefinerFunc func(ctx context.Context, scores *coverage.Scores, current Partition, seed []int) (Partition, error)

// Refine calls f.
func (f RefinerFunc) Refine(ctx context.Context, scores *coverage.Scores, current Partition, seed []int) (Partition, error) {
	return f(ctx, scores, current, seed)
}
