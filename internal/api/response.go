package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/ebbwatch/coops/pkg/coops"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type PredictionsResponse struct {
	APIResponse
	Station     string             `json:"station"`
	Predictions []coops.Prediction `json:"predictions"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewPredictionsResponse(station string, predictions []coops.Prediction) *PredictionsResponse {
	return &PredictionsResponse{
		APIResponse: APIResponse{ResponseType: "predictions"},
		Station:     station,
		Predictions: predictions,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

const queryDateFormat = "2006-01-02"

// ParseDateRange reads beginDate/endDate query parameters, defaulting to
// a one-day window starting today.
func ParseDateRange(params map[string]string) (coops.DateRange, error) {
	begin := time.Now()
	end := begin.AddDate(0, 0, 1)

	if s, ok := params["beginDate"]; ok {
		parsed, err := time.Parse(queryDateFormat, s)
		if err != nil {
			return coops.DateRange{}, InvalidParameterError{Name: "beginDate", Value: s}
		}
		begin = parsed
		end = begin.AddDate(0, 0, 1)
	}

	if s, ok := params["endDate"]; ok {
		parsed, err := time.Parse(queryDateFormat, s)
		if err != nil {
			return coops.DateRange{}, InvalidParameterError{Name: "endDate", Value: s}
		}
		end = parsed
	}

	dates, err := coops.NewDateRange(begin, end)
	if err != nil {
		return coops.DateRange{}, InvalidParameterError{Name: "endDate", Value: err.Error()}
	}
	return dates, nil
}

// ParseInterval reads the interval query parameter, defaulting to the
// discrete high/low events.
func ParseInterval(params map[string]string) (coops.Interval, error) {
	s, ok := params["interval"]
	if !ok {
		return coops.IntervalHighLow, nil
	}

	interval := coops.Interval(s)
	if !interval.Valid() {
		return "", InvalidParameterError{Name: "interval", Value: s}
	}
	return interval, nil
}

type InvalidParameterError struct {
	Name  string
	Value string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s parameter: %s", e.Name, e.Value)
}
