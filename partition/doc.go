// Package partition models the split of the product universe into existing
// products (EP, already offered) and candidate products (CP, eligible for
// selection).
//
// A Partition is a plain value passed to the selectors. Nothing in this
// package holds global state; every function returns a fresh Partition and
// never mutates its inputs.
//
// Sources of partitions:
//
//   - RatioSplit: the fixed initial split, the first pct% of row ids are EP.
//   - Sample: a seeded subsample of both sides for a cheap preliminary run.
//   - Restrict: keep only a chosen subset of candidates.
//   - Refiner: caller-supplied re-derivation (e.g. clustering on feature
//     data); this package only defines the contract.
package partition
