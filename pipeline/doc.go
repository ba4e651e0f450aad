// Package pipeline orchestrates assortment selection runs.
//
// A run walks a fixed sequence of stages over one immutable score matrix:
//
//  1. baseline: the ratio split (first 30% of product ids existing by
//     default) is scored with Incremental and Single-Product Greedy;
//  2. sampling: a seeded subsample of the baseline partition is ranked with
//     Single-Product Greedy for 2k products, producing the seed set that
//     refinement stages may anchor on;
//  3. refinement: every registered partition.Refiner, in registration order,
//     re-derives the partition, which is validated and scored again with
//     both selectors.
//
// Every stage yields an explicit StageResult. A failing refinement never
// disappears silently: its error is recorded and, depending on the Fallback
// policy, the run either keeps the last valid partition or stops with the
// error. Durations are measured per selector, logged through zerolog and,
// when a Metrics value is supplied, exported to Prometheus.
//
// The score matrix is shared read-only; a Pipeline may be Run concurrently.
package pipeline
