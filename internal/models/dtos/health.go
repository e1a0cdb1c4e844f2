package dtos

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

type DatasetStatus struct {
	SnapshotID      string `json:"snapshot_id"`
	LoadedAt        string `json:"loaded_at"`
	Flights         int    `json:"flights"`
	FlightsSkipped  int    `json:"flights_skipped"`
	Airports        int    `json:"airports"`
	AirportsSkipped int    `json:"airports_skipped"`

	// Store is set only when airports are served from a database.
	Store *AirportStoreStats `json:"store,omitempty"`
}

type AirportStoreStats struct {
	TotalAirports int64 `json:"total_airports"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Dataset  DatasetStatus            `json:"dataset"`
	Services map[string]ServiceStatus `json:"services"`
}
