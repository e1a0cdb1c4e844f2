package models

// FlightRecord is one row of the flights dataset. Optional numeric fields that
// were blank in the source hold NaN.
type FlightRecord struct {
	FlightDate   string `json:"flight_date,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`

	Origin     string `json:"origin"`
	OriginCity string `json:"origin_city"`
	Dest       string `json:"dest"`
	DestCity   string `json:"dest_city"`

	Airline     string `json:"airline"`
	AirlineDOT  string `json:"airline_dot"`
	AirlineCode string `json:"airline_code"`
	DOTCode     string `json:"dot_code,omitempty"`

	CRSDepTime float64 `json:"crs_dep_time"`
	DepTime    float64 `json:"dep_time"`
	DepDelay   float64 `json:"dep_delay"`
	TaxiOut    float64 `json:"taxi_out"`
	WheelsOff  float64 `json:"wheels_off"`
	WheelsOn   float64 `json:"wheels_on"`
	TaxiIn     float64 `json:"taxi_in"`
	CRSArrTime float64 `json:"crs_arr_time"`
	ArrTime    float64 `json:"arr_time"`
	ArrDelay   float64 `json:"arr_delay"`

	Cancelled        float64 `json:"cancelled"`
	CancellationCode string  `json:"cancellation_code,omitempty"`
	Diverted         float64 `json:"diverted"`

	CRSElapsedTime float64 `json:"crs_elapsed_time"`
	ElapsedTime    float64 `json:"elapsed_time"`
	AirTime        float64 `json:"air_time"`
	Distance       float64 `json:"distance"`

	DelayDueCarrier      float64 `json:"delay_due_carrier"`
	DelayDueWeather      float64 `json:"delay_due_weather"`
	DelayDueNAS          float64 `json:"delay_due_nas"`
	DelayDueSecurity     float64 `json:"delay_due_security"`
	DelayDueLateAircraft float64 `json:"delay_due_late_aircraft"`
}

// OriginOption is an entry of the origin selector.
type OriginOption struct {
	Code  string `json:"code"`
	City  string `json:"city"`
	Label string `json:"label"`
}

// FlightTable is the read-only flights dataset. It is built once and never
// mutated, so it can be shared across goroutines without locking.
type FlightTable struct {
	rows     []FlightRecord
	byOrigin map[string][]int
	origins  []OriginOption
	dests    []string
}

// NewFlightTable copies records into a new immutable table.
func NewFlightTable(records []FlightRecord) *FlightTable {
	t := &FlightTable{
		rows:     make([]FlightRecord, len(records)),
		byOrigin: make(map[string][]int),
	}
	copy(t.rows, records)

	seenDest := make(map[string]bool)
	for i, rec := range t.rows {
		if _, ok := t.byOrigin[rec.Origin]; !ok {
			t.origins = append(t.origins, OriginOption{
				Code:  rec.Origin,
				City:  rec.OriginCity,
				Label: rec.Origin + ", " + rec.OriginCity,
			})
		}
		t.byOrigin[rec.Origin] = append(t.byOrigin[rec.Origin], i)

		if !seenDest[rec.Dest] {
			seenDest[rec.Dest] = true
			t.dests = append(t.dests, rec.Dest)
		}
	}
	return t
}

// Len returns the number of rows.
func (t *FlightTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// At returns a copy of row i.
func (t *FlightTable) At(i int) FlightRecord {
	return t.rows[i]
}

// FromOrigin calls fn for every row departing origin, in table order.
func (t *FlightTable) FromOrigin(origin string, fn func(rec *FlightRecord)) {
	if t == nil {
		return
	}
	for _, i := range t.byOrigin[origin] {
		rec := t.rows[i]
		fn(&rec)
	}
}

// Origins lists distinct origins in first-seen order.
func (t *FlightTable) Origins() []OriginOption {
	if t == nil {
		return nil
	}
	out := make([]OriginOption, len(t.origins))
	copy(out, t.origins)
	return out
}

// HasOrigin reports whether any row departs from origin.
func (t *FlightTable) HasOrigin(origin string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byOrigin[origin]
	return ok
}

// Destinations lists distinct destinations in first-seen order.
func (t *FlightTable) Destinations() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.dests))
	copy(out, t.dests)
	return out
}
