// Package geocoding resolves application locations to coordinates through
// an OpenStreetMap Nominatim endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/example/jobtrack/internal/ports/secondary"
)

const (
	defaultUserAgent   = "jobtrack"
	defaultTimeout     = 10 * time.Second
	defaultMinInterval = time.Second
)

// Config configures a Nominatim client.
type Config struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration // minimum spacing between requests
	HTTPClient  *http.Client
}

// Client implements secondary.Geocoder against the Nominatim search API.
type Client struct {
	baseURL     string
	userAgent   string
	minInterval time.Duration
	httpClient  *http.Client

	mu   sync.Mutex
	last time.Time
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewClient instantiates a Nominatim client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("geocoding: base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("geocoding: parse base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	minInterval := cfg.MinInterval
	if minInterval < 0 {
		minInterval = defaultMinInterval
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:   userAgent,
		minInterval: minInterval,
		httpClient:  httpClient,
	}, nil
}

// Geocode returns the best match for query, or secondary.ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, query string) (*secondary.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, secondary.ErrLocationNotFound
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("format", "json")
	values.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("geocoding: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, secondary.ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: parse longitude %q: %w", results[0].Lon, err)
	}

	return &secondary.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// wait blocks until minInterval has passed since the previous request.
func (c *Client) wait(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.last.IsZero() {
		if d := c.minInterval - time.Since(c.last); d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	c.last = time.Now()
	return nil
}

// Ensure Client implements the interface
var _ secondary.Geocoder = (*Client)(nil)
