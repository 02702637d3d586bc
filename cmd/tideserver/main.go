// Command tideserver is an AWS Lambda exposing tide predictions over API
// Gateway. Query parameters: stationId (required), beginDate, endDate
// (YYYY-MM-DD), interval.
package main

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/ebbwatch/coops/internal/api"
	"github.com/ebbwatch/coops/internal/config"
	"github.com/ebbwatch/coops/pkg/coops"
	"github.com/rs/zerolog/log"
)

var (
	tideClient *coops.Client
	setupOnce  sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("Loading configuration")
		}
		cfg.InitializeLogging()

		tideClient = coops.New(
			coops.WithBaseURL(cfg.BaseURL),
			coops.WithTimeout(cfg.HTTPTimeout),
		)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters
	log.Info().Msg("Handling tide predictions request")

	stationID, ok := params["stationId"]
	if !ok {
		return api.Error("Missing stationId parameter", http.StatusBadRequest)
	}

	dates, err := api.ParseDateRange(params)
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	interval, err := api.ParseInterval(params)
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	predictionsReq := &coops.PredictionsRequest{
		Station:  stationID,
		Dates:    dates,
		Datum:    coops.DatumMLLW,
		TimeZone: coops.TimezoneLSTLDT,
		Interval: interval,
		Units:    coops.UnitsEnglish,
	}

	response, err := tideClient.Predictions(ctx, predictionsReq)
	if err != nil {
		log.Error().Err(err).Str("station_id", stationID).Msg("Error getting tide predictions")

		var apiErr *coops.APIError
		if errors.As(err, &apiErr) {
			return api.Error(apiErr.Message, http.StatusBadRequest)
		}
		return api.Error("Error getting tide predictions", http.StatusInternalServerError)
	}

	return api.Success(api.NewPredictionsResponse(stationID, response.Predictions))
}

func main() {
	lambda.Start(handleRequest)
}
