package constants

const (
	MsgRoutesFound       = "Routes found"
	MsgNoRoutesFound     = "No routes found for origin"
	MsgSummaryFound      = "Summary computed"
	MsgMapBuilt          = "Route map built"
	MsgOriginsListed     = "Origins listed"
	MsgDestinations      = "Destinations listed"
	MsgAirportFound      = "Airport found"
	MsgAirportNotFound   = "Airport coordinates not found"
	MsgMissingOrigin     = "Missing required origin code"
	MsgMissingAirport    = "Missing required airport code"
	MsgMapBuildFailed    = "Failed to build route map"
	MsgResolveFailed     = "Failed to resolve airport"
	MsgSummaryFailed     = "Failed to compute summary"
	MsgRateLimitExceeded = "Too many requests"
)
