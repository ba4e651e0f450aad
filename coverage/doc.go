// Package coverage implements the captured-preference model that the
// assortment selectors optimise.
//
// A score matrix assigns every (product, customer) pair a non-negative
// affinity. An offered set S captures each customer with its single best
// product (max-assignment), so
//
//	Coverage(S)          = Σ_{c∈C} max_{p∈S} score(p, c)      (0 when S = ∅)
//	MarginalGain(p | S)  = Coverage(S ∪ {p}) − Coverage(S)
//	                     = Σ_{c∈C} max(0, score(p, c) − best_S(c))
//
// Coverage is monotone and submodular: adding a product never lowers it, and
// a product's gain can only shrink as S grows. These two properties give the
// incremental greedy selector its (1 − 1/e) guarantee.
//
// Types:
//
//   - Scores: an immutable snapshot of a matrix.Matrix with validated values.
//   - Tracker: the best-captor value per customer for a growing offered set;
//     O(|C|) per Gain/Add, which is the hot path of every selector.
//
// Numeric policy:
//
//   - Scores rejects NaN, ±Inf and negative entries (ErrInvalidScoreValue).
//   - Totals use Neumaier compensated summation.
//   - Gains use left-to-right float64 accumulation over non-negative terms;
//     rounding is monotone, so a gain never grows when the offered set grows.
//     Lazy evaluation in package greedy relies on this.
//
// Scores and a Tracker that is only read are safe for concurrent use.
// A Tracker being mutated with Add is not.
package coverage
