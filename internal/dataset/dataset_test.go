package dataset

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const flightsHeader = "FL_DATE,AIRLINE,AIRLINE_DOT,AIRLINE_CODE,ORIGIN,ORIGIN_CITY,DEST,DEST_CITY,CRS_DEP_TIME,DEP_TIME,DEP_DELAY,TAXI_OUT,WHEELS_OFF,WHEELS_ON,TAXI_IN,CRS_ARR_TIME,ARR_TIME,ARR_DELAY,CANCELLED,DIVERTED,CRS_ELAPSED_TIME,ELAPSED_TIME,AIR_TIME,DISTANCE,DELAY_DUE_CARRIER,DELAY_DUE_WEATHER,DELAY_DUE_NAS,DELAY_DUE_SECURITY,DELAY_DUE_LATE_AIRCRAFT\n"

func TestLoadFlights_ParsesRows(t *testing.T) {
	csv := flightsHeader +
		`2019-01-09,United Air Lines Inc.,United Air Lines Inc.: UA,UA,FLL,"Fort Lauderdale, FL",EWR,"Newark, NJ",1155,1151,-4,19,1210,1443,4,1501,1447,-14,0,0,186,176,153,1065,,,,,` + "\n" +
		`2022-11-19,Delta Air Lines Inc.,Delta Air Lines Inc.: DL,DL,MSP,"Minneapolis, MN",SEA,"Seattle, WA",2120,2114,-6,9,2123,2232,38,2315,2310,-5,0,0,235,236,189,1399,0,0,0,0,0` + "\n"

	table, stats, err := LoadFlights(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Rows != 2 || stats.Skipped != 0 {
		t.Fatalf("Expected 2 rows and 0 skipped, got %+v", stats)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected table length 2, got %d", table.Len())
	}

	first := table.At(0)
	if first.Origin != "FLL" || first.OriginCity != "Fort Lauderdale, FL" {
		t.Errorf("Unexpected origin fields: %q %q", first.Origin, first.OriginCity)
	}
	if first.AirlineDOT != "United Air Lines Inc.: UA" || first.AirlineCode != "UA" {
		t.Errorf("Unexpected airline ids: %q %q", first.AirlineDOT, first.AirlineCode)
	}
	if first.Distance != 1065 || first.DepDelay != -4 {
		t.Errorf("Unexpected numbers: distance=%v dep_delay=%v", first.Distance, first.DepDelay)
	}
	if !math.IsNaN(first.DelayDueCarrier) {
		t.Errorf("Expected blank delay cause to be NaN, got %v", first.DelayDueCarrier)
	}
	if table.At(1).DelayDueNAS != 0 {
		t.Errorf("Expected explicit zero delay cause, got %v", table.At(1).DelayDueNAS)
	}
}

func TestLoadFlights_ReadsDOTCode(t *testing.T) {
	csv := "AIRLINE,AIRLINE_DOT,AIRLINE_CODE,DOT_CODE,ORIGIN,ORIGIN_CITY,DEST,DEST_CITY,CANCELLED,DIVERTED,DISTANCE\n" +
		`Delta Air Lines Inc.,Delta Air Lines Inc.: DL,DL,19790,JFK,"New York, NY",LAX,"Los Angeles, CA",0,0,2475` + "\n" +
		`JetBlue Airways,JetBlue Airways: B6,B6,,JFK,"New York, NY",BOS,"Boston, MA",0,0,187` + "\n"

	table, _, err := LoadFlights(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if table.At(0).DOTCode != "19790" {
		t.Errorf("Expected DOT code 19790, got %q", table.At(0).DOTCode)
	}
	if table.At(1).DOTCode != "" {
		t.Errorf("Expected blank DOT code, got %q", table.At(1).DOTCode)
	}

	// Tables without the column still load.
	table, _, err = LoadFlights(context.Background(), strings.NewReader(flightsHeader+
		`2019-01-09,X Air,X Air: XA,XA,AAA,"A City",BBB,"B City",1000,1000,0,10,1010,1100,5,1110,1105,-5,0,0,70,65,50,100,,,,,`+"\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if table.At(0).DOTCode != "" {
		t.Errorf("Expected empty DOT code when column is absent, got %q", table.At(0).DOTCode)
	}
}

func TestLoadFlights_SkipsMalformedRows(t *testing.T) {
	good := `2019-01-09,X Air,X Air: XA,XA,AAA,"A City",BBB,"B City",1000,1000,0,10,1010,1100,5,1110,1105,-5,0,0,70,65,50,100,,,,,`
	csv := flightsHeader +
		good + "\n" +
		"too,few,fields\n" +
		`2019-01-09,X Air,X Air: XA,XA,AAA,"A City",BBB,"B City",abc,1000,0,10,1010,1100,5,1110,1105,-5,0,0,70,65,50,100,,,,,` + "\n" +
		`2019-01-09,X Air,X Air: XA,XA,,"A City",BBB,"B City",1000,1000,0,10,1010,1100,5,1110,1105,-5,0,0,70,65,50,100,,,,,` + "\n" +
		`2019-01-09,X Air,X Air: XA,XA,AAA,"A City",BBB,"B City",1000,1000,0,10,1010,1100,5,1110,1105,-5,,0,70,65,50,100,,,,,` + "\n" +
		good + "\n"

	table, stats, err := LoadFlights(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected malformed rows to be skipped, got error %v", err)
	}
	if stats.Rows != 2 {
		t.Errorf("Expected 2 rows kept, got %d", stats.Rows)
	}
	if stats.Skipped != 4 {
		t.Errorf("Expected 4 rows skipped, got %d", stats.Skipped)
	}
	if table.Len() != 2 {
		t.Errorf("Expected table length 2, got %d", table.Len())
	}
}

func TestLoadFlights_MissingRequiredColumn(t *testing.T) {
	csv := "ORIGIN,DEST\nAAA,BBB\n"

	_, _, err := LoadFlights(context.Background(), strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadFlights_EmptySource(t *testing.T) {
	_, _, err := LoadFlights(context.Background(), strings.NewReader(""))
	if err == nil {
		t.Fatal("Expected error for source without header")
	}
}

func TestLoadAirports_ParsesAndSkips(t *testing.T) {
	csv := "Airport Code;Latitude;Longitude;City\n" +
		"JFK;40.6413;-73.7781;New York\n" +
		"BAD;north;-73.0;Nowhere\n" +
		"OUT;123.0;10.0;Far\n" +
		"LAX;33.9416;-118.4085\n" +
		"JFK;0;0;Duplicate\n" +
		";10;10;Blank\n"

	table, stats, err := LoadAirports(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Rows != 2 {
		t.Errorf("Expected 2 rows kept, got %d", stats.Rows)
	}
	if stats.Skipped != 4 {
		t.Errorf("Expected 4 rows skipped, got %d", stats.Skipped)
	}

	coord, ok := table.Resolve("JFK")
	if !ok {
		t.Fatal("Expected JFK to resolve")
	}
	if coord.Latitude != 40.6413 || coord.Longitude != -73.7781 {
		t.Errorf("Expected first JFK row to win, got %+v", coord)
	}
	if _, ok := table.Resolve("LAX"); ok {
		t.Error("Expected short LAX row to be skipped")
	}
}

func TestLoad_ReadsBothFiles(t *testing.T) {
	dir := t.TempDir()
	flightsPath := filepath.Join(dir, "flights.csv")
	airportsPath := filepath.Join(dir, "airports.csv")

	flights := flightsHeader +
		`2019-01-09,X Air,X Air: XA,XA,AAA,"A City",BBB,"B City",1000,1000,0,10,1010,1100,5,1110,1105,-5,0,0,70,65,50,100,,,,,` + "\n"
	airports := "Airport Code;Latitude;Longitude;City\nAAA;1;2;A City\nBBB;3;4;B City\n"

	if err := os.WriteFile(flightsPath, []byte(flights), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(airportsPath, []byte(airports), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(context.Background(), flightsPath, airportsPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.ID == "" {
		t.Error("Expected snapshot ID")
	}
	if snap.Flights.Len() != 1 || snap.Airports.Len() != 2 {
		t.Errorf("Unexpected sizes: flights=%d airports=%d", snap.Flights.Len(), snap.Airports.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	airportsPath := filepath.Join(dir, "airports.csv")
	if err := os.WriteFile(airportsPath, []byte("Airport Code;Latitude;Longitude\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(context.Background(), filepath.Join(dir, "nope.csv"), airportsPath); err == nil {
		t.Fatal("Expected error for missing flights file")
	}
}
