// Package overpass provides a client for the Overpass API, the spatial
// query service over OpenStreetMap data.
package overpass

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Client defines Overpass API operations.
type Client interface {
	// Query runs a raw Overpass QL query.
	Query(ctx context.Context, ql string) (*Response, error)

	// NearbyOutdoorAreas finds named outdoor recreation areas within
	// radiusKm of the given coordinate.
	NearbyOutdoorAreas(ctx context.Context, lat, lon float64, radiusKm int) ([]Element, error)
}

// Response is the parsed Overpass API response envelope.
type Response struct {
	Elements []Element `json:"elements"`
}

// Option configures the Overpass client.
type Option func(*httpClient)

// WithBaseURL sets a custom interpreter endpoint (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithQueryTimeout sets the server-side timeout written into generated
// queries, in seconds.
func WithQueryTimeout(secs int) Option {
	return func(c *httpClient) {
		if secs > 0 {
			c.queryTimeoutSecs = secs
		}
	}
}

type httpClient struct {
	baseURL          string
	queryTimeoutSecs int
	http             *http.Client
}

// NewClient creates a new Overpass API client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:          "https://overpass-api.de/api/interpreter",
		queryTimeoutSecs: 30,
		http:             &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query implements Client.
func (c *httpClient) Query(ctx context.Context, ql string) (*Response, error) {
	form := url.Values{"data": {ql}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, eris.Wrap(err, "overpass: build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("overpass: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: read body")
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "overpass: parse response")
	}

	return &parsed, nil
}

// NearbyOutdoorAreas implements Client.
func (c *httpClient) NearbyOutdoorAreas(ctx context.Context, lat, lon float64, radiusKm int) ([]Element, error) {
	ql := OutdoorAreasQuery(lat, lon, radiusKm, c.queryTimeoutSecs)

	resp, err := c.Query(ctx, ql)
	if err != nil {
		return nil, err
	}

	return resp.Elements, nil
}
