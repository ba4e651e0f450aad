package partition

import (
	"context"
	"fmt"

	"github.com/katalvlaran/assortment/coverage"
)

// SeedFilter returns a Refiner that keeps EP and narrows CP to the seed set.
// It lets a run score the pre-filtered candidates on their own, without any
// clustering collaborator.
//
// Errors: ErrNoProducts when no candidate survives.
func SeedFilter() Refiner {
	return RefinerFunc(func(ctx context.Context, _ *coverage.Scores, current Partition, seed []int) (Partition, error) {
		if err := ctx.Err(); err != nil {
			return Partition{}, err
		}
		out := Restrict(current, seed)
		if len(out.Candidates) == 0 {
			return Partition{}, fmt.Errorf("seed filter: %w", ErrNoProducts)
		}

		return out, nil
	})
}
