package greedy

import "github.com/katalvlaran/assortment/coverage"

// Select routes to the selector named by algo.
//
// Errors: ErrUnsupportedAlgorithm for an unknown algo, otherwise those of the
// chosen selector.
func Select(algo Algorithm, k int, customers []int, scores *coverage.Scores, existing, candidates []int, opts ...Option) (Result, error) {
	switch algo {
	case IncrementalGreedy:
		return Incremental(k, customers, scores, existing, candidates, opts...)
	case SingleProductGreedy:
		return SingleProduct(k, customers, scores, existing, candidates, opts...)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
