// Package coops is a typed client for the NOAA CO-OPS tides and currents
// data API. Requests are described with closed enumerations (datum, time
// zone, interval, units) and a calendar date range, encoded into the query
// parameters the API expects, and responses are decoded into ordered,
// strongly-typed prediction records.
//
// The API is a single endpoint serving multiple products. This package
// currently supports the "predictions" product (predicted tide heights for
// a station and date range); each product keeps its own request/decoder
// pair so further products can be added alongside.
//
// The client holds no per-call state and is safe for concurrent use. It
// does not retry, cache, or log; callers apply their own deadline and
// cancellation policy through the context. No API key is required since
// the CO-OPS API is unauthenticated.
package coops
