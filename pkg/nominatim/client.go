// Package nominatim provides a client for the OpenStreetMap Nominatim
// reverse-geocoding API.
package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client defines Nominatim operations.
type Client interface {
	// Reverse resolves a coordinate into address components.
	Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error)
}

// Address is the address block of a reverse-geocoding response. Fields the
// source data does not carry stay empty.
type Address struct {
	City     string `json:"city,omitempty"`
	Town     string `json:"town,omitempty"`
	Village  string `json:"village,omitempty"`
	County   string `json:"county,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Locality returns the first present of city, town, or village.
func (a Address) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	default:
		return a.Village
	}
}

// ReverseResult is the parsed reverse-geocoding response.
type ReverseResult struct {
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// Option configures the Nominatim client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
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

// WithUserAgent sets the User-Agent header. Nominatim's usage policy
// requires an identifying agent.
func WithUserAgent(ua string) Option {
	return func(c *httpClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithZoom sets the reverse-geocoding detail level.
func WithZoom(zoom int) Option {
	return func(c *httpClient) {
		c.zoom = zoom
	}
}

// WithRateLimit sets the requests-per-second limit toward Nominatim.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	zoom      int
	limiter   *rate.Limiter
	http      *http.Client
}

// NewClient creates a new Nominatim client. The default rate limit follows
// Nominatim's public usage policy of one request per second.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: "locate-cli/1.0 (activity location finder)",
		zoom:      10,
		limiter:   rate.NewLimiter(1, 1),
		http:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reverse implements Client.
func (c *httpClient) Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "nominatim: rate limit")
	}

	params := url.Values{
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format":         {"json"},
		"addressdetails": {"1"},
		"zoom":           {strconv.Itoa(c.zoom)},
	}

	reqURL := c.baseURL + "/reverse?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "nominatim: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "nominatim: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("nominatim: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "nominatim: read body")
	}

	var result ReverseResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "nominatim: parse response")
	}

	return &result, nil
}
