// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the assortment
// selectors.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with a finite-only numeric policy.
//   - Validators for nil, shape and non-negativity checks shared by callers.
//
// Score matrices are laid out with one row per product and one column per
// customer. A 1 000 × 1 728 matrix of float64 costs ~13.8 MB; every public
// accessor returns sentinel errors instead of panicking.
//
// See the examples in this package and in coverage for usage patterns.
package matrix
