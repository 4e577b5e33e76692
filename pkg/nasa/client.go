// Package nasa implements a client for the picture-of-the-day and near-earth-object feed endpoints.
// Each call performs a single request bounded by the client timeout, there are no retries.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/skyharvest/pkg/domain"
)

const (
	// DefaultAPODURL is the picture-of-the-day endpoint
	DefaultAPODURL = "https://api.nasa.gov/planetary/apod"
	// DefaultFeedURL is the near-earth-object feed endpoint
	DefaultFeedURL = "https://api.nasa.gov/neo/rest/v1/feed"
	// DefaultAPIKey is the shared, heavily rate-limited demo key
	DefaultAPIKey = "DEMO_KEY"
)

// StatusError is returned for non-success HTTP responses
type StatusError struct {
	Unit   string // date or date range the request was made for
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("no data for %s, status %d", e.Unit, e.Status)
}

// Unwrap makes errors.Is(err, domain.ErrNoData) work
func (e *StatusError) Unwrap() error { return domain.ErrNoData }

// Config holds client configuration
type Config struct {
	APIKey     string
	APODURL    string
	FeedURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches data from the upstream feeds
type Client struct {
	apiKey     string
	apodURL    string
	feedURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// New makes a client, empty config fields are set to defaults
func New(cfg Config) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = DefaultAPIKey
	}
	if cfg.APODURL == "" {
		cfg.APODURL = DefaultAPODURL
	}
	if cfg.FeedURL == "" {
		cfg.FeedURL = DefaultFeedURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		apodURL:    cfg.APODURL,
		feedURL:    cfg.FeedURL,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
}

// getJSON makes a single GET request and decodes the response into dest.
// Non-success status gives *StatusError, transport and decoding failures are returned wrapped.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, unit string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint %s: %w", endpoint, err)
	}
	params.Set("api_key", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("make request for %s: %w", unit, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", unit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		lgr.Printf("[WARN] upstream returned %d for %s", resp.StatusCode, unit)
		return &StatusError{Unit: unit, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response for %s: %w", unit, err)
	}
	return nil
}
