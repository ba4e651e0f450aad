package coverage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/assortment/matrix"
)

// Scores is an immutable product × customer affinity table.
//
// Row p holds product p's affinity for every customer; column c is customer c.
// The buffer is private and never handed out, so a *Scores can be shared by
// any number of concurrent selector invocations without locking.
type Scores struct {
	products  int
	customers int
	data      []float64 // row-major, len == products*customers
}

// NewScores snapshots m into an immutable Scores.
//
// Contracts:
//   - m is non-nil with at least one row and one column.
//   - every entry is finite and ≥ 0.
//
// Later mutation of m does not affect the returned value.
//
// Errors:
//   - ErrNilScores for a nil matrix.
//   - ErrInvalidScoreValue (wrapped with coordinates) for NaN, ±Inf or negative entries.
//
// Complexity: O(rows·cols) time and memory.
func NewScores(m matrix.Matrix) (*Scores, error) {
	if matrix.ValidateNotNil(m) != nil {
		return nil, ErrNilScores
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("shape %dx%d: %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) || errors.Is(err, matrix.ErrNegativeValue) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScoreValue, err)
		}
		return nil, err
	}

	s := &Scores{
		products:  rows,
		customers: cols,
		data:      make([]float64, rows*cols),
	}

	var (
		p, c int
		v    float64
		err  error
	)
	for p = 0; p < rows; p++ {
		for c = 0; c < cols; c++ {
			if v, err = m.At(p, c); err != nil {
				return nil, err
			}
			s.data[p*cols+c] = v
		}
	}

	return s, nil
}

// NewScoresFromRows is a convenience wrapper building Scores from a
// slice-of-rows literal (one row per product).
func NewScoresFromRows(rows [][]float64) (*Scores, error) {
	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}

	return NewScores(m)
}

// Products returns the number of product rows.
func (s *Scores) Products() int { return s.products }

// Customers returns the number of customer columns.
func (s *Scores) Customers() int { return s.customers }

// At returns score(p, c).
func (s *Scores) At(p, c int) (float64, error) {
	if p < 0 || p >= s.products {
		return 0, fmt.Errorf("product %d: %w", p, ErrProductOutOfRange)
	}
	if c < 0 || c >= s.customers {
		return 0, fmt.Errorf("customer %d: %w", c, ErrCustomerOutOfRange)
	}

	return s.data[p*s.customers+c], nil
}

// AllCustomers returns the full customer id space 0..Customers()-1.
// The slice is freshly allocated on every call.
func (s *Scores) AllCustomers() []int {
	out := make([]int, s.customers)
	for i := range out {
		out[i] = i
	}

	return out
}

// AllProducts returns the full product id space 0..Products()-1.
func (s *Scores) AllProducts() []int {
	out := make([]int, s.products)
	for i := range out {
		out[i] = i
	}

	return out
}

// row returns the backing row of product p. Callers must have range-checked p
// and must not write to the result.
func (s *Scores) row(p int) []float64 {
	return s.data[p*s.customers : (p+1)*s.customers]
}

// checkProduct range-checks a product id.
func (s *Scores) checkProduct(p int) error {
	if p < 0 || p >= s.products {
		return fmt.Errorf("product %d: %w", p, ErrProductOutOfRange)
	}

	return nil
}
