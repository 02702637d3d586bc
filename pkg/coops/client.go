package coops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	httpclient "github.com/ebbwatch/coops/pkg/http/client"
)

// DefaultBaseURL is the production CO-OPS API host.
const DefaultBaseURL = "https://api.tidesandcurrents.noaa.gov"

const dataPath = "/api/prod/datagetter"

// Client fetches typed data from the CO-OPS API. The zero cost of a call
// is one HTTP GET; nothing is cached or retried and no state survives a
// call, so a single Client may be shared across goroutines.
type Client struct {
	httpClient *httpclient.Client
	baseURL    string
	timeout    time.Duration
	local      *time.Location
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP timeout for each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *httpclient.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLocation sets the location used to interpret station-local
// timestamps (the lst and lst_ldt timezone options). Defaults to
// time.Local; gmt responses always use time.UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		c.local = loc
	}
}

// New creates a Client against the production API.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		local:   time.Local,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.Options{
			BaseURL: c.baseURL,
			Timeout: c.timeout,
		})
	}

	return c
}

// Predictions fetches tide height predictions for the request. Records
// come back in the chronological order the API returned them, with the
// high/low classification populated only for IntervalHighLow requests.
func (c *Client) Predictions(ctx context.Context, req *PredictionsRequest) (*PredictionsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vals := req.query()
	body, err := c.fetch(ctx, "predictions", vals)
	if err != nil {
		return nil, err
	}

	return decodePredictions(body, req.TimeZone.location(c.local))
}

// fetch performs one GET for a product and returns the raw body after
// screening out in-band API errors. Product-agnostic so further products
// can share it.
func (c *Client) fetch(ctx context.Context, product string, vals url.Values) ([]byte, error) {
	vals.Set("product", product)
	vals.Set("format", "json")

	resp, err := c.httpClient.Get(ctx, dataPath+"?"+vals.Encode())
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	if apiErr := detectAPIError(resp.Body); apiErr != nil {
		return nil, apiErr
	}

	return resp.Body, nil
}

// errorEnvelope is the shape the API uses to report problems in-band,
// e.g. {"error": {"message": "No data was found."}}.
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func detectAPIError(body []byte) *APIError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Not even valid JSON; let the product decoder report it.
		return nil
	}
	if envelope.Error == nil {
		return nil
	}
	return NewAPIError(envelope.Error.Message)
}
