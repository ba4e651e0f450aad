// Package scorefile reads a cached product × customer score matrix.
//
// Two layouts are accepted, chosen by file extension:
//
//	.csv   one product per line, customer scores separated by commas, no header
//	.json  {"scores": [[...], [...]]}, rows are products
//
// Both produce a *matrix.Dense with NaN/Inf rejected on load. Files written
// one customer per line are read with CustomerRows and transposed.
package scorefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/assortment/matrix"
)

var (
	// ErrUnsupportedFormat indicates an extension other than .csv or .json.
	ErrUnsupportedFormat = errors.New("scorefile: unsupported format")

	// ErrEmpty indicates a file without any score row.
	ErrEmpty = errors.New("scorefile: no scores")
)

// document is the JSON layout.
type document struct {
	Scores [][]float64 `json:"scores"`
}

// Option configures Load.
type Option func(*options)

type options struct {
	customerRows bool
}

// CustomerRows declares the file customer-major; the result is transposed
// so rows are products.
func CustomerRows() Option {
	return func(o *options) { o.customerRows = true }
}

// Load reads path and dispatches on its extension.
func Load(path string, opts ...Option) (*matrix.Dense, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m *matrix.Dense
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		m, err = ReadCSV(f)
	case ".json":
		m, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil || !o.customerRows {
		return m, err
	}

	return matrix.Transpose(m)
}

// ReadCSV parses one product row per record. Blank cells are errors; ragged
// rows fail with matrix.ErrRaggedRows.
func ReadCSV(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is checked by the matrix constructor
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rows [][]float64
		rec  []string
		err  error
	)
	for line := 1; ; line++ {
		if rec, err = cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		row := make([]float64, len(rec))
		for col, cell := range rec {
			if row[col], err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				return nil, fmt.Errorf("scorefile: line %d column %d: %w", line, col+1, err)
			}
		}
		rows = append(rows, row)
	}

	return build(rows)
}

// ReadJSON decodes the {"scores": [...]} document.
func ReadJSON(r io.Reader) (*matrix.Dense, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("scorefile: %w", err)
	}

	return build(doc.Scores)
}

func build(rows [][]float64) (*matrix.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	m, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("scorefile: %w", err)
	}

	return m, nil
}
