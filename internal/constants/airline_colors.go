package constants

// DefaultAirlineColor is used for carriers missing from AirlineColors.
const DefaultAirlineColor = "#6B7280"

// OriginMarkerColor is the color of the departure airport marker.
const OriginMarkerColor = "green"

// AirlineColors maps carrier names, as they appear in the AIRLINE column, to
// their brand color.
var AirlineColors = map[string]string{
	"Alaska Airlines Inc.":               "#0033A0",
	"Allegiant Air":                      "#7A0048",
	"American Airlines Inc.":             "#DF0024",
	"Delta Air Lines Inc.":               "#8B1024",
	"Endeavor Air Inc.":                  "#8A8D8F",
	"Envoy Air":                          "#949CA0",
	"ExpressJet Airlines LLC d/b/a aha!": "#FF6600",
	"Frontier Airlines Inc.":             "#1E4FA3",
	"Hawaiian Airlines Inc.":             "#FF0000",
	"Horizon Air":                        "#74ACD1",
	"JetBlue Airways":                    "#0071BC",
	"Mesa Airlines Inc.":                 "#5276A7",
	"PSA Airlines Inc.":                  "#004A85",
	"Republic Airline":                   "#3B75B3",
	"SkyWest Airlines Inc.":              "#0033A0",
	"Southwest Airlines Co.":             "#EE352E",
	"Spirit Air Lines":                   "#FF7F00",
	"United Air Lines Inc.":              "#002244",
}

// AirlineColor returns the line color for a carrier.
func AirlineColor(airline string) string {
	if c, ok := AirlineColors[airline]; ok {
		return c
	}
	return DefaultAirlineColor
}
