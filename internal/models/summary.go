package models

// RouteSummary is one destination reachable from the queried origin, with the
// first-row projection and per-field means over all matching flights.
type RouteSummary struct {
	Dest        string `json:"dest"`
	Origin      string `json:"origin"`
	OriginCity  string `json:"origin_city"`
	DestCity    string `json:"dest_city"`
	Airline     string `json:"airline"`
	FlightCount int    `json:"flight_count"`

	MeanCRSDepTime           Metric `json:"mean_crs_dep_time"`
	MeanDepTime              Metric `json:"mean_dep_time"`
	MeanDepDelay             Metric `json:"mean_dep_delay"`
	MeanTaxiOut              Metric `json:"mean_taxi_out"`
	MeanWheelsOff            Metric `json:"mean_wheels_off"`
	MeanWheelsOn             Metric `json:"mean_wheels_on"`
	MeanTaxiIn               Metric `json:"mean_taxi_in"`
	MeanCRSArrTime           Metric `json:"mean_crs_arr_time"`
	MeanArrTime              Metric `json:"mean_arr_time"`
	MeanArrDelay             Metric `json:"mean_arr_delay"`
	MeanCancelled            Metric `json:"mean_cancelled"`
	MeanDiverted             Metric `json:"mean_diverted"`
	MeanCRSElapsedTime       Metric `json:"mean_crs_elapsed_time"`
	MeanElapsedTime          Metric `json:"mean_elapsed_time"`
	MeanAirTime              Metric `json:"mean_air_time"`
	MeanDistance             Metric `json:"mean_distance"`
	MeanDelayDueCarrier      Metric `json:"mean_delay_due_carrier"`
	MeanDelayDueWeather      Metric `json:"mean_delay_due_weather"`
	MeanDelayDueNAS          Metric `json:"mean_delay_due_nas"`
	MeanDelayDueSecurity     Metric `json:"mean_delay_due_security"`
	MeanDelayDueLateAircraft Metric `json:"mean_delay_due_late_aircraft"`
}

// DestinationAirlines lists every distinct carrier serving a route.
type DestinationAirlines struct {
	Dest         string `json:"dest"`
	OriginCity   string `json:"origin_city"`
	DestCity     string `json:"dest_city"`
	Airlines     string `json:"airlines"`
	AirlineDOTs  string `json:"airline_dots"`
	AirlineCodes string `json:"airline_codes"`
	DOTCodes     string `json:"dot_codes"`
}

// DestinationTimes holds mean schedule and delay figures.
type DestinationTimes struct {
	Dest           string `json:"dest"`
	MeanCRSDepTime Metric `json:"mean_crs_dep_time"`
	MeanDepTime    Metric `json:"mean_dep_time"`
	MeanDepDelay   Metric `json:"mean_dep_delay"`
	MeanCRSArrTime Metric `json:"mean_crs_arr_time"`
	MeanArrTime    Metric `json:"mean_arr_time"`
	MeanArrDelay   Metric `json:"mean_arr_delay"`
}

// DestinationInFlightTimes holds mean ground and airborne timings.
type DestinationInFlightTimes struct {
	Dest          string `json:"dest"`
	MeanTaxiOut   Metric `json:"mean_taxi_out"`
	MeanWheelsOff Metric `json:"mean_wheels_off"`
	MeanWheelsOn  Metric `json:"mean_wheels_on"`
	MeanTaxiIn    Metric `json:"mean_taxi_in"`
	MeanAirTime   Metric `json:"mean_air_time"`
}

// DestinationDurationDistance holds mean elapsed times and distance.
type DestinationDurationDistance struct {
	Dest               string `json:"dest"`
	MeanCRSElapsedTime Metric `json:"mean_crs_elapsed_time"`
	MeanElapsedTime    Metric `json:"mean_elapsed_time"`
	MeanDistance       Metric `json:"mean_distance"`
}

// DestinationFlightStatus counts cancelled and diverted flights on a route.
type DestinationFlightStatus struct {
	Dest         string `json:"dest"`
	Flights      int    `json:"flights"`
	CancelledSum int    `json:"cancelled_sum"`
	DivertedSum  int    `json:"diverted_sum"`
}

// OriginSummary bundles every aggregate view for one origin. Each slice holds
// one row per destination in the same order.
type OriginSummary struct {
	Origin           string                        `json:"origin"`
	Routes           []RouteSummary                `json:"routes"`
	Airports         []DestinationAirlines         `json:"airports"`
	Times            []DestinationTimes            `json:"times"`
	InFlightTimes    []DestinationInFlightTimes    `json:"in_flight_times"`
	DurationDistance []DestinationDurationDistance `json:"duration_distance"`
	FlightStatus     []DestinationFlightStatus     `json:"flight_status"`
}
