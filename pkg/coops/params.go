package coops

import (
	"fmt"
	"time"
)

// Datum is the tidal reference plane heights are reported against.
// Values are the exact tokens the CO-OPS API accepts, see
// https://api.tidesandcurrents.noaa.gov/api/prod/#datum
type Datum string

const (
	// DatumMHHW is Mean Higher High Water
	DatumMHHW Datum = "MHHW"
	// DatumMHW is Mean High Water
	DatumMHW Datum = "MHW"
	// DatumMTL is Mean Tide Level
	DatumMTL Datum = "MTL"
	// DatumMSL is Mean Sea Level
	DatumMSL Datum = "MSL"
	// DatumMLW is Mean Low Water
	DatumMLW Datum = "MLW"
	// DatumMLLW is Mean Lower Low Water, the nautical chart datum for all
	// U.S. coastal waters
	DatumMLLW Datum = "MLLW"
	// DatumCRD is the Columbia River Datum, only available for certain
	// stations on the Columbia River
	DatumCRD Datum = "CRD"
	// DatumIGLD is the International Great Lakes Datum, Great Lakes
	// stations only
	DatumIGLD Datum = "IGLD"
	// DatumLWD is the Great Lakes Low Water Datum, Great Lakes stations only
	DatumLWD Datum = "LWD"
	// DatumNAVD is the North American Vertical Datum, not available for
	// all stations
	DatumNAVD Datum = "NAVD"
	// DatumSTND is the station datum, the original reference all data is
	// collected to, uniquely defined per station
	DatumSTND Datum = "STND"
)

func (d Datum) Valid() bool {
	switch d {
	case DatumMHHW, DatumMHW, DatumMTL, DatumMSL, DatumMLW, DatumMLLW,
		DatumCRD, DatumIGLD, DatumLWD, DatumNAVD, DatumSTND:
		return true
	}
	return false
}

// Timezone selects how the API reports timestamps, see
// https://api.tidesandcurrents.noaa.gov/api/prod/#timezone
type Timezone string

const (
	// TimezoneGMT is Greenwich Mean Time
	TimezoneGMT Timezone = "gmt"
	// TimezoneLST is local standard time at the station, never corrected
	// for daylight saving
	TimezoneLST Timezone = "lst"
	// TimezoneLSTLDT is local time at the station, corrected for daylight
	// saving when in effect
	TimezoneLSTLDT Timezone = "lst_ldt"
)

func (tz Timezone) Valid() bool {
	switch tz {
	case TimezoneGMT, TimezoneLST, TimezoneLSTLDT:
		return true
	}
	return false
}

// location returns the time.Location response timestamps are interpreted
// in. Payload timestamps carry no offset of their own; the timezone option
// from the originating request decides their meaning. For the two
// station-local options the caller-supplied location is used.
func (tz Timezone) location(local *time.Location) *time.Location {
	if tz == TimezoneGMT {
		return time.UTC
	}
	if local == nil {
		return time.Local
	}
	return local
}

// Interval is the granularity or mode of returned records, see
// https://api.tidesandcurrents.noaa.gov/api/prod/#interval
type Interval string

const (
	// IntervalHourly returns one prediction per hour
	IntervalHourly Interval = "h"
	// IntervalHighLow returns only the discrete high/low tide events
	IntervalHighLow Interval = "hilo"
	IntervalOneMinute      Interval = "1"
	IntervalFiveMinutes    Interval = "5"
	IntervalSixMinutes     Interval = "6"
	IntervalTenMinutes     Interval = "10"
	IntervalFifteenMinutes Interval = "15"
	IntervalThirtyMinutes  Interval = "30"
	IntervalSixtyMinutes   Interval = "60"
)

func (i Interval) Valid() bool {
	switch i {
	case IntervalHourly, IntervalHighLow, IntervalOneMinute,
		IntervalFiveMinutes, IntervalSixMinutes, IntervalTenMinutes,
		IntervalFifteenMinutes, IntervalThirtyMinutes, IntervalSixtyMinutes:
		return true
	}
	return false
}

// Units selects english (feet, knots) or metric (meters, cm/s) values,
// see https://api.tidesandcurrents.noaa.gov/api/prod/#units
type Units string

const (
	UnitsMetric  Units = "metric"
	UnitsEnglish Units = "english"
)

func (u Units) Valid() bool {
	return u == UnitsMetric || u == UnitsEnglish
}

const dateFormat = "20060102"

// DateRange is the calendar-date window of a request. Only the year,
// month and day of Begin and End are used; the API encodes dates as
// YYYYMMDD with no time of day.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// NewDateRange returns a DateRange after checking that end does not
// precede begin. The API does not enforce the ordering itself; a reversed
// range comes back as an in-band API error.
func NewDateRange(begin, end time.Time) (DateRange, error) {
	dr := DateRange{Begin: begin, End: end}
	if err := dr.validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) validate() error {
	if dr.Begin.IsZero() || dr.End.IsZero() {
		return fmt.Errorf("date range requires both begin and end dates")
	}
	if dr.End.Before(dr.Begin) {
		return fmt.Errorf("end date %s precedes begin date %s",
			dr.End.Format(dateFormat), dr.Begin.Format(dateFormat))
	}
	return nil
}
