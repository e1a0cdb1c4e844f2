package dataset

import (
	"context"
	"io"

	"flightroutes/explorer/internal/models"
)

// Flight dataset column names.
const (
	ColFlightDate           = "FL_DATE"
	ColFlightNumber         = "FL_NUMBER"
	ColAirline              = "AIRLINE"
	ColAirlineDOT           = "AIRLINE_DOT"
	ColAirlineCode          = "AIRLINE_CODE"
	ColDOTCode              = "DOT_CODE"
	ColOrigin               = "ORIGIN"
	ColOriginCity           = "ORIGIN_CITY"
	ColDest                 = "DEST"
	ColDestCity             = "DEST_CITY"
	ColCRSDepTime           = "CRS_DEP_TIME"
	ColDepTime              = "DEP_TIME"
	ColDepDelay             = "DEP_DELAY"
	ColTaxiOut              = "TAXI_OUT"
	ColWheelsOff            = "WHEELS_OFF"
	ColWheelsOn             = "WHEELS_ON"
	ColTaxiIn               = "TAXI_IN"
	ColCRSArrTime           = "CRS_ARR_TIME"
	ColArrTime              = "ARR_TIME"
	ColArrDelay             = "ARR_DELAY"
	ColCancelled            = "CANCELLED"
	ColCancellationCode     = "CANCELLATION_CODE"
	ColDiverted             = "DIVERTED"
	ColCRSElapsedTime       = "CRS_ELAPSED_TIME"
	ColElapsedTime          = "ELAPSED_TIME"
	ColAirTime              = "AIR_TIME"
	ColDistance             = "DISTANCE"
	ColDelayDueCarrier      = "DELAY_DUE_CARRIER"
	ColDelayDueWeather      = "DELAY_DUE_WEATHER"
	ColDelayDueNAS          = "DELAY_DUE_NAS"
	ColDelayDueSecurity     = "DELAY_DUE_SECURITY"
	ColDelayDueLateAircraft = "DELAY_DUE_LATE_AIRCRAFT"
)

var requiredFlightColumns = []string{
	ColOrigin, ColOriginCity, ColDest, ColDestCity, ColAirline,
	ColCancelled, ColDiverted, ColDistance,
}

// LoadFlights reads a comma separated flights table. Columns are matched by
// header name; optional columns may be absent and read as missing values.
func LoadFlights(ctx context.Context, src io.Reader) (*models.FlightTable, LoadStats, error) {
	var records []models.FlightRecord

	stats, err := readTable(ctx, src, ',', requiredFlightColumns, func(r *row) error {
		rec := models.FlightRecord{
			FlightDate:   r.str(ColFlightDate),
			FlightNumber: r.str(ColFlightNumber),

			Origin:     r.requiredStr(ColOrigin),
			OriginCity: r.str(ColOriginCity),
			Dest:       r.requiredStr(ColDest),
			DestCity:   r.str(ColDestCity),

			Airline:     r.str(ColAirline),
			AirlineDOT:  r.str(ColAirlineDOT),
			AirlineCode: r.str(ColAirlineCode),
			DOTCode:     r.str(ColDOTCode),

			CRSDepTime: r.num(ColCRSDepTime),
			DepTime:    r.num(ColDepTime),
			DepDelay:   r.num(ColDepDelay),
			TaxiOut:    r.num(ColTaxiOut),
			WheelsOff:  r.num(ColWheelsOff),
			WheelsOn:   r.num(ColWheelsOn),
			TaxiIn:     r.num(ColTaxiIn),
			CRSArrTime: r.num(ColCRSArrTime),
			ArrTime:    r.num(ColArrTime),
			ArrDelay:   r.num(ColArrDelay),

			Cancelled:        r.requiredNum(ColCancelled),
			CancellationCode: r.str(ColCancellationCode),
			Diverted:         r.requiredNum(ColDiverted),

			CRSElapsedTime: r.num(ColCRSElapsedTime),
			ElapsedTime:    r.num(ColElapsedTime),
			AirTime:        r.num(ColAirTime),
			Distance:       r.num(ColDistance),

			DelayDueCarrier:      r.num(ColDelayDueCarrier),
			DelayDueWeather:      r.num(ColDelayDueWeather),
			DelayDueNAS:          r.num(ColDelayDueNAS),
			DelayDueSecurity:     r.num(ColDelayDueSecurity),
			DelayDueLateAircraft: r.num(ColDelayDueLateAircraft),
		}
		if r.err != nil {
			return r.err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	return models.NewFlightTable(records), stats, nil
}
