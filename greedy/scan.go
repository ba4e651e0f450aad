package greedy

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/assortment/coverage"
)

// scanGains returns gains[i] = MarginalGain(ids[i] | offered(t)).
//
// With workers > 1 and enough ids, contiguous chunks are scored on separate
// goroutines. t is only read, and each goroutine writes a disjoint range of
// gains, so the returned slice is one consistent snapshot.
//
// Complexity: O(|ids|·|C|) work.
func scanGains(t *coverage.Tracker, ids []int, workers int) ([]float64, error) {
	gains := make([]float64, len(ids))
	if workers <= 1 || len(ids) < parallelThreshold {
		var (
			i   int
			err error
		)
		for i = range ids {
			if gains[i], err = t.Gain(ids[i]); err != nil {
				return nil, err
			}
		}

		return gains, nil
	}

	if workers > len(ids) {
		workers = len(ids)
	}
	chunk := (len(ids) + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < len(ids); lo += chunk {
		hi := min(lo+chunk, len(ids))
		g.Go(func() error {
			var err error
			for i := lo; i < hi; i++ {
				if gains[i], err = t.Gain(ids[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return gains, nil
}

// argmax returns the index of the largest gain; ties resolve to the lowest
// index. ids are ascending, so that is the smallest product id.
func argmax(gains []float64) int {
	best := 0
	for i := 1; i < len(gains); i++ {
		if gains[i] > gains[best] {
			best = i
		}
	}

	return best
}
