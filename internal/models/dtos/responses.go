package dtos

import "flightroutes/explorer/internal/models"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// OriginsResponse is returned by the origin selector endpoint.
type OriginsResponse struct {
	Count   int                   `json:"count"`
	Origins []models.OriginOption `json:"origins"`
}

// DestinationsResponse lists every destination in the dataset.
type DestinationsResponse struct {
	Count        int      `json:"count"`
	Destinations []string `json:"destinations"`
}

// RoutesResponse wraps the flattened per-destination summary.
type RoutesResponse struct {
	Origin string                `json:"origin"`
	Count  int                   `json:"count"`
	Routes []models.RouteSummary `json:"routes"`
}

// AirportResponse is the outcome of a coordinate lookup.
type AirportResponse struct {
	Code string `json:"code"`
	models.Coordinate
}
