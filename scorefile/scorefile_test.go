package scorefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assortment/matrix"
	"github.com/katalvlaran/assortment/scorefile"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "scores.csv", "5,0,0\n0, 5, 0\n3,3,3\n")

	m, err := scorefile.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, row)
}

func TestLoad_CustomerRows(t *testing.T) {
	path := writeFile(t, "scores.csv", "5,0,3\n0,5,3\n0,0,3\n1,1,1\n")

	m, err := scorefile.Load(path, scorefile.CustomerRows())
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3, 1}, row)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "scores.JSON", `{"scores": [[0.5, 1.25], [2, 0]]}`)

	m, err := scorefile.Load(path)
	require.NoError(t, err)
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.25}, row)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scorefile.Load(writeFile(t, "scores.parquet", "x"))
	require.ErrorIs(t, err, scorefile.ErrUnsupportedFormat)

	_, err = scorefile.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = scorefile.Load(writeFile(t, "empty.csv", ""))
	require.ErrorIs(t, err, scorefile.ErrEmpty)

	_, err = scorefile.Load(writeFile(t, "empty.json", `{"scores": []}`))
	require.ErrorIs(t, err, scorefile.ErrEmpty)
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := scorefile.ReadCSV(strings.NewReader("1,2\n3,x\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2 column 2")

	_, err = scorefile.ReadCSV(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = scorefile.ReadCSV(strings.NewReader("1,NaN\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := scorefile.ReadJSON(strings.NewReader(`{"scores": [[1, 2], [3]]}`))
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = scorefile.ReadJSON(strings.NewReader(`{"scores": `))
	require.Error(t, err)
}
