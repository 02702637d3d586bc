// Command tides prints tide height predictions for a station and date
// range, either as discrete high/low events or sampled at an interval.
//
//	tides -station 9414290 -begin 2026-01-01 -end 2026-01-31 -interval hilo
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ebbwatch/coops/internal/config"
	"github.com/ebbwatch/coops/pkg/coops"
	"github.com/rs/zerolog/log"
)

const dateFormat = "2006-01-02"

func main() {
	station := flag.String("station", "9414290", "tide station identifier")
	begin := flag.String("begin", "", "begin date (YYYY-MM-DD, default today)")
	end := flag.String("end", "", "end date (YYYY-MM-DD, default begin)")
	interval := flag.String("interval", "hilo", "interval token (h, hilo, 1, 5, 6, 10, 15, 30, 60)")
	datum := flag.String("datum", "MLLW", "tidal datum")
	metric := flag.Bool("metric", false, "report heights in meters instead of feet")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration")
	}
	cfg.InitializeLogging()

	beginDate := time.Now()
	if *begin != "" {
		beginDate, err = time.Parse(dateFormat, *begin)
		if err != nil {
			log.Fatal().Err(err).Msg("Parsing begin date")
		}
	}

	endDate := beginDate
	if *end != "" {
		endDate, err = time.Parse(dateFormat, *end)
		if err != nil {
			log.Fatal().Err(err).Msg("Parsing end date")
		}
	}

	dates, err := coops.NewDateRange(beginDate, endDate)
	if err != nil {
		log.Fatal().Err(err).Msg("Building date range")
	}

	units := coops.UnitsEnglish
	if *metric {
		units = coops.UnitsMetric
	}

	request := &coops.PredictionsRequest{
		Station:  *station,
		Dates:    dates,
		Datum:    coops.Datum(*datum),
		TimeZone: coops.TimezoneLSTLDT,
		Interval: coops.Interval(*interval),
		Units:    units,
	}

	client := coops.New(
		coops.WithBaseURL(cfg.BaseURL),
		coops.WithTimeout(cfg.HTTPTimeout),
	)

	response, err := client.Predictions(context.Background(), request)
	if err != nil {
		log.Fatal().Err(err).Msg("Fetching predictions")
	}

	for _, p := range response.Predictions {
		if p.Type != nil {
			fmt.Printf("%s  %-2s  %+.3f\n", p.Time.Format("2006-01-02 15:04"), *p.Type, p.Height)
		} else {
			fmt.Printf("%s  %+.3f\n", p.Time.Format("2006-01-02 15:04"), p.Height)
		}
	}
}
