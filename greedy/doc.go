// Package greedy selects k candidate products that maximise captured customer
// preference on top of an existing offering.
//
// It provides two selectors over a coverage.Scores matrix:
//
//   - Incremental: Incremental Greedy (IG). k rounds; each round re-scores
//     every remaining candidate against the current offered set and takes the
//     best marginal gain.
//
//   - Guarantee:  coverage ≥ (1 − 1/e)·OPT ≈ 63.2% of the best k-subset
//     (monotone submodular maximisation under a cardinality constraint).
//
//   - Complexity: O(k·|CP|·|C|) eager; WithLazy re-scores only candidates
//     whose cached upper bound can still win, with an identical result.
//
//   - SingleProduct: Single-Product Greedy (SPG). Scores every candidate
//     once against EP alone, sorts, and takes the top k. Candidates are never
//     re-scored against each other, so overlapping capture is ignored and the
//     result may be strictly worse than IG.
//
//   - Complexity: O(|CP|·|C| + |CP| log |CP|).
//
// Both selectors:
//
//   - validate inputs and fail fast with sentinel errors (no partial result);
//   - break ties by ascending product id, independent of input order;
//   - never mutate the caller's slices or the matrix;
//   - may scan candidates on several goroutines (WithWorkers); the winner is
//     always chosen from one complete snapshot of gains.
//
// Use SingleProduct with 2k as a cheap pre-filter producing seed candidates
// for partition refinement.
package greedy
