package services

import (
	"math"
	"sort"
	"strings"

	"flightroutes/explorer/internal/models"
)

// airlineSeparator joins distinct values in the airports view.
const airlineSeparator = ", "

// routeGroup holds the flights from one origin to one destination, in table
// order.
type routeGroup struct {
	dest  string
	rows  []*models.FlightRecord
	first *models.FlightRecord
}

// groupByDestination filters flights departing origin (exact, case-sensitive)
// and groups them by destination. Groups are sorted by destination code.
func groupByDestination(flights *models.FlightTable, origin string) []*routeGroup {
	index := make(map[string]*routeGroup)
	var groups []*routeGroup

	flights.FromOrigin(origin, func(rec *models.FlightRecord) {
		g, ok := index[rec.Dest]
		if !ok {
			g = &routeGroup{dest: rec.Dest, first: rec}
			index[rec.Dest] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, rec)
	})

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].dest < groups[j].dest
	})
	return groups
}

// mean averages field over the group, ignoring missing values.
func (g *routeGroup) mean(field func(*models.FlightRecord) float64) models.Metric {
	var sum float64
	var n int
	for _, rec := range g.rows {
		v := field(rec)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return models.Missing
	}
	return models.Metric(sum / float64(n))
}

// sum adds field over the group, ignoring missing values.
func (g *routeGroup) sum(field func(*models.FlightRecord) float64) float64 {
	var total float64
	for _, rec := range g.rows {
		if v := field(rec); !math.IsNaN(v) {
			total += v
		}
	}
	return total
}

// distinct joins the distinct non-blank values of field in first-seen order.
func (g *routeGroup) distinct(field func(*models.FlightRecord) string) string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range g.rows {
		v := field(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return strings.Join(out, airlineSeparator)
}

func (g *routeGroup) summary() models.RouteSummary {
	return models.RouteSummary{
		Dest:        g.dest,
		Origin:      g.first.Origin,
		OriginCity:  g.first.OriginCity,
		DestCity:    g.first.DestCity,
		Airline:     g.first.Airline,
		FlightCount: len(g.rows),

		MeanCRSDepTime:           g.mean(func(r *models.FlightRecord) float64 { return r.CRSDepTime }),
		MeanDepTime:              g.mean(func(r *models.FlightRecord) float64 { return r.DepTime }),
		MeanDepDelay:             g.mean(func(r *models.FlightRecord) float64 { return r.DepDelay }),
		MeanTaxiOut:              g.mean(func(r *models.FlightRecord) float64 { return r.TaxiOut }),
		MeanWheelsOff:            g.mean(func(r *models.FlightRecord) float64 { return r.WheelsOff }),
		MeanWheelsOn:             g.mean(func(r *models.FlightRecord) float64 { return r.WheelsOn }),
		MeanTaxiIn:               g.mean(func(r *models.FlightRecord) float64 { return r.TaxiIn }),
		MeanCRSArrTime:           g.mean(func(r *models.FlightRecord) float64 { return r.CRSArrTime }),
		MeanArrTime:              g.mean(func(r *models.FlightRecord) float64 { return r.ArrTime }),
		MeanArrDelay:             g.mean(func(r *models.FlightRecord) float64 { return r.ArrDelay }),
		MeanCancelled:            g.mean(func(r *models.FlightRecord) float64 { return r.Cancelled }),
		MeanDiverted:             g.mean(func(r *models.FlightRecord) float64 { return r.Diverted }),
		MeanCRSElapsedTime:       g.mean(func(r *models.FlightRecord) float64 { return r.CRSElapsedTime }),
		MeanElapsedTime:          g.mean(func(r *models.FlightRecord) float64 { return r.ElapsedTime }),
		MeanAirTime:              g.mean(func(r *models.FlightRecord) float64 { return r.AirTime }),
		MeanDistance:             g.mean(func(r *models.FlightRecord) float64 { return r.Distance }),
		MeanDelayDueCarrier:      g.mean(func(r *models.FlightRecord) float64 { return r.DelayDueCarrier }),
		MeanDelayDueWeather:      g.mean(func(r *models.FlightRecord) float64 { return r.DelayDueWeather }),
		MeanDelayDueNAS:          g.mean(func(r *models.FlightRecord) float64 { return r.DelayDueNAS }),
		MeanDelayDueSecurity:     g.mean(func(r *models.FlightRecord) float64 { return r.DelayDueSecurity }),
		MeanDelayDueLateAircraft: g.mean(func(r *models.FlightRecord) float64 { return r.DelayDueLateAircraft }),
	}
}

// SummarizeRoutes returns one row per destination served from origin, sorted by
// destination code. The airline of each row is the one on the first matching
// flight in table order, so routes flown by several carriers collapse to one.
// An origin with no flights yields an empty slice.
func SummarizeRoutes(flights *models.FlightTable, origin string) []models.RouteSummary {
	groups := groupByDestination(flights, origin)

	out := make([]models.RouteSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.summary())
	}
	return out
}

// SummarizeFromOrigin computes every aggregate view for origin. Unlike
// SummarizeRoutes, the Airports view keeps all distinct carriers of a route,
// and FlightStatus reports sums rather than means.
func SummarizeFromOrigin(flights *models.FlightTable, origin string) models.OriginSummary {
	groups := groupByDestination(flights, origin)

	out := models.OriginSummary{
		Origin:           origin,
		Routes:           make([]models.RouteSummary, 0, len(groups)),
		Airports:         make([]models.DestinationAirlines, 0, len(groups)),
		Times:            make([]models.DestinationTimes, 0, len(groups)),
		InFlightTimes:    make([]models.DestinationInFlightTimes, 0, len(groups)),
		DurationDistance: make([]models.DestinationDurationDistance, 0, len(groups)),
		FlightStatus:     make([]models.DestinationFlightStatus, 0, len(groups)),
	}

	for _, g := range groups {
		s := g.summary()
		out.Routes = append(out.Routes, s)

		out.Airports = append(out.Airports, models.DestinationAirlines{
			Dest:         g.dest,
			OriginCity:   g.first.OriginCity,
			DestCity:     g.first.DestCity,
			Airlines:     g.distinct(func(r *models.FlightRecord) string { return r.Airline }),
			AirlineDOTs:  g.distinct(func(r *models.FlightRecord) string { return r.AirlineDOT }),
			AirlineCodes: g.distinct(func(r *models.FlightRecord) string { return r.AirlineCode }),
			DOTCodes:     g.distinct(func(r *models.FlightRecord) string { return r.DOTCode }),
		})

		out.Times = append(out.Times, models.DestinationTimes{
			Dest:           g.dest,
			MeanCRSDepTime: s.MeanCRSDepTime,
			MeanDepTime:    s.MeanDepTime,
			MeanDepDelay:   s.MeanDepDelay,
			MeanCRSArrTime: s.MeanCRSArrTime,
			MeanArrTime:    s.MeanArrTime,
			MeanArrDelay:   s.MeanArrDelay,
		})

		out.InFlightTimes = append(out.InFlightTimes, models.DestinationInFlightTimes{
			Dest:          g.dest,
			MeanTaxiOut:   s.MeanTaxiOut,
			MeanWheelsOff: s.MeanWheelsOff,
			MeanWheelsOn:  s.MeanWheelsOn,
			MeanTaxiIn:    s.MeanTaxiIn,
			MeanAirTime:   s.MeanAirTime,
		})

		out.DurationDistance = append(out.DurationDistance, models.DestinationDurationDistance{
			Dest:               g.dest,
			MeanCRSElapsedTime: s.MeanCRSElapsedTime,
			MeanElapsedTime:    s.MeanElapsedTime,
			MeanDistance:       s.MeanDistance,
		})

		out.FlightStatus = append(out.FlightStatus, models.DestinationFlightStatus{
			Dest:         g.dest,
			Flights:      len(g.rows),
			CancelledSum: int(math.Round(g.sum(func(r *models.FlightRecord) float64 { return r.Cancelled }))),
			DivertedSum:  int(math.Round(g.sum(func(r *models.FlightRecord) float64 { return r.Diverted }))),
		})
	}

	return out
}
