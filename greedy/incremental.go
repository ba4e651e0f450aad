package greedy

import (
	"container/heap"
	"math"
	"slices"

	"github.com/katalvlaran/assortment/coverage"
)

// Incremental runs Incremental Greedy (IG).
//
// Starting from offered = EP and remaining = CP, it repeats k times:
//  1. score every remaining candidate by MarginalGain(p | offered);
//  2. pick the maximum, ties by smallest product id;
//  3. record it with its gain, add it to offered, drop it from remaining.
//
// Contracts: see package validation (ErrInvalidSelectionSize,
// ErrEmptyCandidateSet, ErrInvalidPartition, ErrInvalidCustomerSet,
// ErrInvalidScoreValue, ErrNilScores). On error no partial result is returned.
//
// Guarantee: Coverage(EP ∪ Selected) ≥ (1 − 1/e)·max_{|S|=k} Coverage(EP ∪ S).
//
// Complexity: O(k·|CP|·|C|) time, O(|CP| + |C|) extra space.
func Incremental(k int, customers []int, scores *coverage.Scores, existing, candidates []int, opts ...Option) (Result, error) {
	prob, err := prepare(k, customers, scores, existing, candidates)
	if err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	if o.lazy {
		return incrementalLazy(prob, o)
	}

	return incrementalEager(prob, o)
}

// incrementalEager re-scores every remaining candidate each round.
func incrementalEager(prob *problem, o options) (Result, error) {
	tr := prob.base.Clone()
	res := newResult(prob)

	remaining := slices.Clone(prob.candidates)
	var (
		round, best int
		gains       []float64
		err         error
	)
	for round = 0; round < prob.k; round++ {
		if gains, err = scanGains(tr, remaining, o.workers); err != nil {
			return Result{}, err
		}
		best = argmax(gains)

		id := remaining[best]
		res.Selected = append(res.Selected, id)
		res.Scores[id] = gains[best]
		if err = tr.Add(id); err != nil {
			return Result{}, err
		}
		remaining = slices.Delete(remaining, best, best+1)
	}
	if res.Coverage, err = total(tr); err != nil {
		return Result{}, err
	}

	return res, nil
}

// lazyItem is a candidate with a cached gain computed at round stamp.
// By submodularity the cached gain is an upper bound on the current one.
type lazyItem struct {
	id    int
	gain  float64
	stamp int
}

// lazyHeap orders by gain descending, then id ascending.
type lazyHeap []lazyItem

func (h lazyHeap) Len() int { return len(h) }
func (h lazyHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].id < h[j].id
}
func (h lazyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *lazyHeap) Push(x any)   { *h = append(*h, x.(lazyItem)) }
func (h *lazyHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// nearTieUlps bounds how far a compensated gain may rise above its cached
// value after the offered set grows.
const nearTieUlps = 4

// below returns g lowered by nearTieUlps units in the last place.
func below(g float64) float64 {
	for range nearTieUlps {
		g = math.Nextafter(g, math.Inf(-1))
	}
	return g
}

// staleAbove appends the indices of entries not yet scored this round whose
// cached gain is at least lo. Subtrees under a smaller gain are skipped.
func (h lazyHeap) staleAbove(lo float64, round int, out []int) []int {
	stack := []int{0}
	var i int
	for len(stack) > 0 {
		i = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i >= len(h) || h[i].gain < lo {
			continue
		}
		if h[i].stamp != round {
			out = append(out, i)
		}
		stack = append(stack, 2*i+1, 2*i+2)
	}

	return out
}

// incrementalLazy keeps every candidate in a max-heap keyed by its last
// computed gain. A top whose gain is fresh for this round beats every other
// upper bound, so it is exactly the eager winner; ties keep the smaller id on
// top because the heap breaks equal gains by id. Stale entries within a few
// ulps of a fresh top are rescored before it is accepted.
func incrementalLazy(prob *problem, o options) (Result, error) {
	tr := prob.base.Clone()
	res := newResult(prob)

	gains, err := scanGains(tr, prob.candidates, o.workers)
	if err != nil {
		return Result{}, err
	}
	h := make(lazyHeap, len(prob.candidates))
	for i, id := range prob.candidates {
		h[i] = lazyItem{id: id, gain: gains[i], stamp: 0}
	}
	heap.Init(&h)

	var (
		g     float64
		near  []int
		i     int
		fresh bool
	)
	for round := 0; round < prob.k; round++ {
		for !fresh {
			for h[0].stamp != round {
				if g, err = tr.Gain(h[0].id); err != nil {
					return Result{}, err
				}
				h[0].gain = g
				h[0].stamp = round
				heap.Fix(&h, 0)
			}
			// Compensated sums are monotone only up to a few ulps, so stale
			// bounds just under the top may still hide the eager winner.
			if near = h.staleAbove(below(h[0].gain), round, near[:0]); len(near) == 0 {
				fresh = true
				continue
			}
			for _, i = range near {
				if h[i].gain, err = tr.Gain(h[i].id); err != nil {
					return Result{}, err
				}
				h[i].stamp = round
			}
			heap.Init(&h)
		}
		fresh = false
		top := heap.Pop(&h).(lazyItem)
		res.Selected = append(res.Selected, top.id)
		res.Scores[top.id] = top.gain
		if err = tr.Add(top.id); err != nil {
			return Result{}, err
		}
	}
	if res.Coverage, err = total(tr); err != nil {
		return Result{}, err
	}

	return res, nil
}

// newResult allocates a Result sized for prob with the EP baseline filled in.
func newResult(prob *problem) Result {
	return Result{
		Selected: make([]int, 0, prob.k),
		Scores:   make(map[int]float64, prob.k),
		Baseline: prob.baseline,
	}
}
