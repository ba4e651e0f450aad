// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Value scans run O(r·c) in fixed row→column order; the first offending cell wins.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonNegative ensures every entry of m is finite and ≥ 0.
//
// Errors (first offending cell in row-major order):
//   - ErrNilMatrix, ErrNaNInf, ErrNegativeValue, or the error returned by At.
//
// Complexity: O(r·c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateNonNegative(%d,%d): %w", i, j, ErrNaNInf)
			}
			if v < 0 {
				return fmt.Errorf("ValidateNonNegative(%d,%d): %w", i, j, ErrNegativeValue)
			}
		}
	}

	return nil
}

// ValidateRows ensures a slice-of-rows input is non-empty and rectangular.
// Returns the shape on success.
// Complexity: O(r).
func ValidateRows(rows [][]float64) (int, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, 0, fmt.Errorf("ValidateRows(row %d): %w", i, ErrRaggedRows)
		}
	}

	return len(rows), cols, nil
}
