package models

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AirportCoordinate is one row of the airport coordinates table.
type AirportCoordinate struct {
	Code string `json:"code"`
	City string `json:"city,omitempty"`
	Coordinate
}

// CoordinateTable is a read-only airport code lookup. When a code appears more
// than once the first row wins.
type CoordinateTable struct {
	byCode map[string]AirportCoordinate
	order  []string
}

// NewCoordinateTable builds a table from rows in source order.
func NewCoordinateTable(rows []AirportCoordinate) *CoordinateTable {
	t := &CoordinateTable{byCode: make(map[string]AirportCoordinate, len(rows))}
	for _, row := range rows {
		if _, dup := t.byCode[row.Code]; dup {
			continue
		}
		t.byCode[row.Code] = row
		t.order = append(t.order, row.Code)
	}
	return t
}

// Resolve looks up code exactly. The boolean is false when no row matches.
func (t *CoordinateTable) Resolve(code string) (Coordinate, bool) {
	if t == nil {
		return Coordinate{}, false
	}
	row, ok := t.byCode[code]
	return row.Coordinate, ok
}

// Len returns the number of distinct airports.
func (t *CoordinateTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// All returns the airports in source order.
func (t *CoordinateTable) All() []AirportCoordinate {
	if t == nil {
		return nil
	}
	out := make([]AirportCoordinate, 0, len(t.order))
	for _, code := range t.order {
		out = append(out, t.byCode[code])
	}
	return out
}
