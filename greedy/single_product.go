package greedy

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/assortment/coverage"
)

// SingleProduct runs Single-Product Greedy (SPG).
//
// Every candidate is scored once by its standalone MarginalGain(p | EP);
// candidates are sorted by that value descending, ties by smallest id, and
// the first k are returned. Scores holds each selected id's standalone gain.
//
// Because candidates are never re-scored against each other, Result.Coverage
// can be strictly lower than Incremental's when selected products capture
// the same customers.
//
// Contracts: identical to Incremental.
//
// Complexity: O(|CP|·|C| + |CP| log |CP|) time, O(|CP|) extra space.
func SingleProduct(k int, customers []int, scores *coverage.Scores, existing, candidates []int, opts ...Option) (Result, error) {
	prob, err := prepare(k, customers, scores, existing, candidates)
	if err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	gains, err := scanGains(prob.base, prob.candidates, o.workers)
	if err != nil {
		return Result{}, err
	}

	order := make([]int, len(prob.candidates)) // positions into candidates/gains
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(gains[b], gains[a]); c != 0 {
			return c
		}
		return cmp.Compare(prob.candidates[a], prob.candidates[b])
	})

	res := newResult(prob)
	tr := prob.base.Clone()
	for _, pos := range order[:prob.k] {
		id := prob.candidates[pos]
		res.Selected = append(res.Selected, id)
		res.Scores[id] = gains[pos]
		if err = tr.Add(id); err != nil {
			return Result{}, err
		}
	}
	if res.Coverage, err = total(tr); err != nil {
		return Result{}, err
	}

	return res, nil
}
