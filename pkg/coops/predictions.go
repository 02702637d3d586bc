package coops

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const predictionTimeFormat = "2006-01-02 15:04"

// TideType classifies a discrete tide event. Present only on records from
// IntervalHighLow requests; sampled intervals carry no classification.
type TideType string

const (
	TideHigh       TideType = "H"
	TideLow        TideType = "L"
	TideHigherHigh TideType = "HH"
	TideLowerLow   TideType = "LL"
)

// PredictionsRequest describes one query against the predictions product.
type PredictionsRequest struct {
	// Station is the numeric identifier of a tide station, e.g. "9414290"
	// for San Francisco Golden Gate.
	Station  string
	Dates    DateRange
	Datum    Datum
	TimeZone Timezone
	Interval Interval
	Units    Units
}

// Validate checks the request before any network call. Enum members and
// constructed date ranges are valid by construction; this catches empty
// stations, zero values, and literal ranges built without NewDateRange.
func (r *PredictionsRequest) Validate() error {
	if r.Station == "" {
		return fmt.Errorf("station must not be empty")
	}
	if err := r.Dates.validate(); err != nil {
		return err
	}
	if !r.Datum.Valid() {
		return fmt.Errorf("invalid datum %q", string(r.Datum))
	}
	if !r.TimeZone.Valid() {
		return fmt.Errorf("invalid time zone %q", string(r.TimeZone))
	}
	if !r.Interval.Valid() {
		return fmt.Errorf("invalid interval %q", string(r.Interval))
	}
	if !r.Units.Valid() {
		return fmt.Errorf("invalid units %q", string(r.Units))
	}
	return nil
}

// query encodes the request into the parameter set the API expects. The
// fixed product and format parameters are appended by the client.
func (r *PredictionsRequest) query() url.Values {
	vals := make(url.Values)
	vals.Set("station", r.Station)
	vals.Set("begin_date", r.Dates.Begin.Format(dateFormat))
	vals.Set("end_date", r.Dates.End.Format(dateFormat))
	vals.Set("datum", string(r.Datum))
	vals.Set("time_zone", string(r.TimeZone))
	vals.Set("interval", string(r.Interval))
	vals.Set("units", string(r.Units))
	return vals
}

// Prediction is a single predicted tide height.
type Prediction struct {
	// Time is the prediction timestamp, interpreted in the timezone the
	// request asked for.
	Time time.Time `json:"time"`
	// Height is the predicted water level relative to the requested
	// datum, in the requested units. Negative heights are common.
	Height float64 `json:"height"`
	// Type is the high/low classification, nil unless the request used
	// IntervalHighLow.
	Type *TideType `json:"type,omitempty"`
}

// PredictionsResponse holds the decoded records in the chronological
// order the API returned them.
type PredictionsResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// rawPrediction is the wire shape of one record: every field arrives as a
// string.
type rawPrediction struct {
	Time   string  `json:"t"`
	Height string  `json:"v"`
	Type   *string `json:"type,omitempty"`
}

type rawPredictionsResponse struct {
	Predictions []rawPrediction `json:"predictions"`
}

// decodePredictions parses a predictions payload. Timestamps are naive in
// the payload and interpreted in loc, which the caller derives from the
// originating request's timezone option.
func decodePredictions(body []byte, loc *time.Location) (*PredictionsResponse, error) {
	var raw rawPredictionsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewDecodeError("predictions body", snippet(body), err)
	}
	if raw.Predictions == nil {
		return nil, NewDecodeError("predictions body", snippet(body),
			fmt.Errorf("missing predictions field"))
	}

	predictions := make([]Prediction, len(raw.Predictions))
	for i, p := range raw.Predictions {
		t, err := time.ParseInLocation(predictionTimeFormat, p.Time, loc)
		if err != nil {
			return nil, NewDecodeError("prediction time", p.Time, err)
		}

		height, err := strconv.ParseFloat(p.Height, 64)
		if err != nil {
			return nil, NewDecodeError("prediction height", p.Height, err)
		}

		var tideType *TideType
		if p.Type != nil {
			parsed, err := parseTideType(*p.Type)
			if err != nil {
				return nil, err
			}
			tideType = &parsed
		}

		predictions[i] = Prediction{
			Time:   t,
			Height: height,
			Type:   tideType,
		}
	}

	return &PredictionsResponse{Predictions: predictions}, nil
}

func parseTideType(s string) (TideType, error) {
	switch t := TideType(s); t {
	case TideHigh, TideLow, TideHigherHigh, TideLowerLow:
		return t, nil
	}
	return "", NewDecodeError("tide type", s, fmt.Errorf("unknown classification"))
}

// snippet truncates a payload for error reporting.
func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
