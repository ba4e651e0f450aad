// Package assortment picks products to add to an existing assortment so that
// the offered set captures as much customer preference as possible.
//
// Given a product × customer score matrix, the products are split into
// existing (always offered) and candidate ids. A customer is captured by its
// single best offered product, so total coverage is monotone and submodular
// and greedy selection carries the classic (1 − 1/e) guarantee.
//
// Packages, leaves first:
//
//	matrix      row-major Dense storage with bounds-checked accessors
//	coverage    immutable Scores, Coverage, MarginalGain, Tracker
//	greedy      Incremental (IG) and SingleProduct (SPG) selectors
//	partition   existing/candidate partitions, ratio split, sampling, Refiner
//	pipeline    staged runs with explicit fallback, zerolog and Prometheus
//	scorefile   CSV/JSON score matrix loading
//	config      koanf layered configuration with validation
//	logging     process-wide zerolog setup
//
// Quick start:
//
//	scores, _ := coverage.NewScoresFromRows(rows)
//	split, _ := partition.RatioSplit(scores.Products(), partition.DefaultExistingPercent)
//	res, _ := greedy.Incremental(5, scores.AllCustomers(), scores, split.Existing, split.Candidates)
//	fmt.Println(res.Selected, res.Coverage)
//
// The binary in cmd/assortment wires the same steps from configuration.
package assortment
