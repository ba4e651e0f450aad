package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/assortment/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateNonNegative(t *testing.T) {
	ok, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonNegative(ok))

	neg, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {-2, 0}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegativeValue)

	inf, err := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, inf.Set(0, 1, math.Inf(1)))
	require.ErrorIs(t, matrix.ValidateNonNegative(inf), matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

func TestValidateRows(t *testing.T) {
	r, c, err := matrix.ValidateRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	_, _, err = matrix.ValidateRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, _, err = matrix.ValidateRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
