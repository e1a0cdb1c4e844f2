package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// errMalformed marks a row that violates the schema. Such rows are skipped.
var errMalformed = errors.New("malformed row")

// LoadStats reports how many rows were kept and skipped during a load.
type LoadStats struct {
	Rows    int `json:"rows"`
	Skipped int `json:"skipped"`
}

// header maps column names to their positions.
type header map[string]int

func newHeader(cols []string, required []string) (header, error) {
	h := make(header, len(cols))
	for i, c := range cols {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if _, dup := h[c]; !dup {
			h[c] = i
		}
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return h, nil
}

// row wraps a record with typed accessors. The first accessor failure is kept
// in err so callers can check once per row.
type row struct {
	h   header
	rec []string
	err error
}

func (r *row) str(col string) string {
	i, ok := r.h[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

// requiredStr fails the row when the cell is blank.
func (r *row) requiredStr(col string) string {
	v := r.str(col)
	if v == "" && r.err == nil {
		r.err = fmt.Errorf("%w: blank %s", errMalformed, col)
	}
	return v
}

// num parses an optional numeric cell. Blank cells are NaN.
func (r *row) num(col string) float64 {
	v := r.str(col)
	if v == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %s=%q", errMalformed, col, v)
		}
		return math.NaN()
	}
	return f
}

// requiredNum parses a numeric cell that must be present.
func (r *row) requiredNum(col string) float64 {
	f := r.num(col)
	if math.IsNaN(f) && r.err == nil {
		r.err = fmt.Errorf("%w: blank %s", errMalformed, col)
	}
	return f
}

// readTable streams records from a delimited source, calling fn for every row
// that parses. Rows the csv reader rejects, and rows fn rejects with
// errMalformed, are counted as skipped.
func readTable(ctx context.Context, src io.Reader, comma rune, required []string, fn func(*row) error) (LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(src)
	reader.Comma = comma
	reader.LazyQuotes = true

	cols, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("failed to read header: %w", err)
	}
	h, err := newHeader(cols, required)
	if err != nil {
		return stats, err
	}
	reader.FieldsPerRecord = len(cols)

	for n := 0; ; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}

		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Skipped++
				continue
			}
			return stats, fmt.Errorf("failed to read row: %w", err)
		}

		if err := fn(&row{h: h, rec: rec}); err != nil {
			if errors.Is(err, errMalformed) {
				stats.Skipped++
				continue
			}
			return stats, err
		}
		stats.Rows++
	}

	return stats, nil
}
