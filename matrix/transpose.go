// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Transpose returns a new Dense with rows and columns swapped, keeping the
// numeric policy of a *Dense source. Score files stored customer-major are
// turned product-major with it.
//
// Implementation:
//   - Stage 1: nil-check.
//   - Stage 2: allocate cols×rows.
//   - Stage 3: fast path for *Dense, bounds-checked At for any other Matrix.
//
// Errors: ErrNilMatrix, or the error returned by At.
//
// Complexity: O(r·c) time and space.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	rows, cols := m.Rows(), m.Cols()
	var opts []Option
	if dm, ok := m.(*Dense); ok && !dm.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}
	res, err := NewDense(cols, rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	var (
		i, j int
		v    float64
	)
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("Transpose: %w", err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
