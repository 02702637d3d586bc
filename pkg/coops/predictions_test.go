package coops

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *PredictionsRequest {
	return &PredictionsRequest{
		Station: "9414290",
		Dates: DateRange{
			Begin: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		Datum:    DatumMLLW,
		TimeZone: TimezoneLSTLDT,
		Interval: IntervalHourly,
		Units:    UnitsEnglish,
	}
}

func TestPredictionsRequestQuery(t *testing.T) {
	request := validRequest()

	vals := request.query()

	want := map[string]string{
		"station":    "9414290",
		"begin_date": "20260101",
		"end_date":   "20260131",
		"datum":      "MLLW",
		"time_zone":  "lst_ldt",
		"interval":   "h",
		"units":      "english",
	}

	assert.Len(t, vals, len(want))
	for key, value := range want {
		assert.Equal(t, value, vals.Get(key), "parameter %s", key)
	}
}

func TestPredictionsRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*PredictionsRequest)
		errMessage string
	}{
		{
			name:   "valid request",
			mutate: func(r *PredictionsRequest) {},
		},
		{
			name:       "empty station",
			mutate:     func(r *PredictionsRequest) { r.Station = "" },
			errMessage: "station must not be empty",
		},
		{
			name:       "zero value datum",
			mutate:     func(r *PredictionsRequest) { r.Datum = "" },
			errMessage: "invalid datum",
		},
		{
			name:       "unknown time zone",
			mutate:     func(r *PredictionsRequest) { r.TimeZone = "pst" },
			errMessage: "invalid time zone",
		},
		{
			name:       "unknown interval",
			mutate:     func(r *PredictionsRequest) { r.Interval = "weekly" },
			errMessage: "invalid interval",
		},
		{
			name:       "unknown units",
			mutate:     func(r *PredictionsRequest) { r.Units = "imperial" },
			errMessage: "invalid units",
		},
		{
			name: "reversed dates",
			mutate: func(r *PredictionsRequest) {
				r.Dates.Begin, r.Dates.End = r.Dates.End, r.Dates.Begin
			},
			errMessage: "precedes begin date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(request)

			err := request.Validate()

			if tt.errMessage == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMessage)
		})
	}
}

func TestDecodePredictionsHighLow(t *testing.T) {
	body := []byte(`{
		"predictions": [
			{"t": "2026-01-01 04:12", "v": "5.841", "type": "HH"},
			{"t": "2026-01-01 11:03", "v": "-0.35", "type": "LL"},
			{"t": "2026-01-01 17:28", "v": "3.502", "type": "H"},
			{"t": "2026-01-01 22:51", "v": "1.149", "type": "L"}
		]
	}`)

	response, err := decodePredictions(body, time.UTC)
	require.NoError(t, err)
	require.Len(t, response.Predictions, 4)

	first := response.Predictions[0]
	assert.Equal(t, time.Date(2026, 1, 1, 4, 12, 0, 0, time.UTC), first.Time)
	assert.Equal(t, 5.841, first.Height)
	require.NotNil(t, first.Type)
	assert.Equal(t, TideHigherHigh, *first.Type)

	// Negative heights must survive decoding exactly
	low := response.Predictions[1]
	assert.Equal(t, -0.35, low.Height)
	require.NotNil(t, low.Type)
	assert.Equal(t, TideLowerLow, *low.Type)

	assert.Equal(t, TideHigh, *response.Predictions[2].Type)
	assert.Equal(t, TideLow, *response.Predictions[3].Type)
}

func TestDecodePredictionsHourly(t *testing.T) {
	body := []byte(`{
		"predictions": [
			{"t": "2026-01-01 00:00", "v": "2.245"},
			{"t": "2026-01-01 01:00", "v": "3.102"}
		]
	}`)

	loc := time.FixedZone("PST", -8*3600)
	response, err := decodePredictions(body, loc)
	require.NoError(t, err)
	require.Len(t, response.Predictions, 2)

	for _, p := range response.Predictions {
		assert.Nil(t, p.Type)
	}

	// Naive payload timestamps take on the requested timezone
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, loc), response.Predictions[0].Time)
	assert.Equal(t, 2.245, response.Predictions[0].Height)
}

func TestDecodePredictionsOrderPreserved(t *testing.T) {
	body := []byte(`{
		"predictions": [
			{"t": "2026-01-02 00:00", "v": "1.0"},
			{"t": "2026-01-01 00:00", "v": "2.0"}
		]
	}`)

	response, err := decodePredictions(body, time.UTC)
	require.NoError(t, err)
	require.Len(t, response.Predictions, 2)

	// Records stay in payload order even when out of chronological order
	assert.Equal(t, 1.0, response.Predictions[0].Height)
	assert.Equal(t, 2.0, response.Predictions[1].Height)
}

func TestDecodePredictionsErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		errMessage string
	}{
		{
			name:       "truncated payload",
			body:       `{"predictions": [{"t": "2026-01-01 0`,
			errMessage: "decoding predictions body",
		},
		{
			name:       "missing predictions field",
			body:       `{"count": 3}`,
			errMessage: "missing predictions field",
		},
		{
			name:       "bad timestamp",
			body:       `{"predictions": [{"t": "01/01/2026", "v": "1.0"}]}`,
			errMessage: "decoding prediction time",
		},
		{
			name:       "bad height",
			body:       `{"predictions": [{"t": "2026-01-01 00:00", "v": "five"}]}`,
			errMessage: "decoding prediction height",
		},
		{
			name:       "unknown tide type",
			body:       `{"predictions": [{"t": "2026-01-01 00:00", "v": "1.0", "type": "X"}]}`,
			errMessage: "unknown classification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := decodePredictions([]byte(tt.body), time.UTC)

			require.Error(t, err)
			assert.Nil(t, response)
			assert.Contains(t, err.Error(), tt.errMessage)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
		})
	}
}

func TestDetectAPIError(t *testing.T) {
	body := []byte(`{"error": {"message": "No data was found. This product may not be offered at this station at the requested time."}}`)

	apiErr := detectAPIError(body)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "No data was found")

	assert.Nil(t, detectAPIError([]byte(`{"predictions": []}`)))
	assert.Nil(t, detectAPIError([]byte(`not json`)))
}
