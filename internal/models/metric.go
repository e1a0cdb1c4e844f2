package models

import (
	"math"
	"strconv"
)

// Metric is an aggregated numeric value. NaN marks a value that could not be
// computed (every underlying row was missing) and encodes as JSON null.
type Metric float64

// Missing is the Metric used for absent values.
var Missing = Metric(math.NaN())

// IsMissing reports whether m carries no value.
func (m Metric) IsMissing() bool {
	return math.IsNaN(float64(m))
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if m.IsMissing() || math.IsInf(float64(m), 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(m), 'f', -1, 64), nil
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Missing
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*m = Metric(v)
	return nil
}

// Format renders the metric with the given precision, or "-" when missing.
func (m Metric) Format(prec int) string {
	if m.IsMissing() {
		return "-"
	}
	return strconv.FormatFloat(float64(m), 'f', prec, 64)
}
