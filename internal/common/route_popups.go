package common

import (
	"fmt"
	"html"
	"strings"

	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/models"
)

// MarkerDescription renders the popup of an airport marker.
func MarkerDescription(code, city string) string {
	return fmt.Sprintf(
		`<div class="popup popup-airport"><center>Airport <i><b>%s</b></i><br>in<br><b><i>%s</i></b></center></div>`,
		html.EscapeString(code), html.EscapeString(city),
	)
}

// RouteDescription renders the popup of an origin to destination line.
func RouteDescription(origin, originCity, dest, destCity string, distance, elapsedTime models.Metric) string {
	var b strings.Builder
	b.WriteString(`<div class="popup popup-route">`)
	b.WriteString(`<div><center>Route:</center><br>`)
	fmt.Fprintf(&b, `<b>%s (%s)</b></div>`, html.EscapeString(origin), html.EscapeString(originCity))
	b.WriteString(`<div style="text-align: center; font-size: 24px; margin: 10px 0;">&rarr;</div>`)
	fmt.Fprintf(&b, `<div><b>%s (%s)</b></div>`, html.EscapeString(dest), html.EscapeString(destCity))
	fmt.Fprintf(&b, `<div><i>Distance: %s (miles)</i><br>`, distance.Format(1))
	fmt.Fprintf(&b, `<i>Elapsed Time Arrival: %s (minutes)</i></div>`, elapsedTime.Format(1))
	b.WriteString(`</div>`)
	return b.String()
}

// AirlineLegend lists the distinct airlines of the routes, in first-seen
// order, with their line colors.
func AirlineLegend(routes []models.RouteSummary) []models.LegendEntry {
	seen := make(map[string]bool)
	legend := make([]models.LegendEntry, 0)
	for _, r := range routes {
		if seen[r.Airline] {
			continue
		}
		seen[r.Airline] = true
		legend = append(legend, models.LegendEntry{
			Airline: r.Airline,
			Color:   constants.AirlineColor(r.Airline),
		})
	}
	return legend
}
