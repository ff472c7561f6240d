// Package elevation resolves observer height above sea level via the
// Open-Elevation API.
package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Sector035/chronocalc/internal/logging"
)

const (
	// DefaultBaseURL is the public Open-Elevation lookup endpoint.
	DefaultBaseURL = "https://api.open-elevation.com/api/v1/lookup"

	// RequestTimeout is the HTTP request timeout. The lookup happens once
	// per run, before scanning starts.
	RequestTimeout = 10 * time.Second

	// FallbackHeightM is used when the service cannot be reached.
	FallbackHeightM = 0.0
)

// Client queries the Open-Elevation API.
type Client struct {
	// BaseURL may be overridden for tests.
	BaseURL string

	httpClient *http.Client
}

// NewClient creates a client for the public Open-Elevation endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// lookupResponse is the Open-Elevation JSON payload.
type lookupResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// Lookup returns the height in meters at the given coordinates.
func (c *Client) Lookup(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{}
	params.Set("locations", fmt.Sprintf("%.6f,%.6f", lat, lon))
	reqURL := c.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building elevation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("elevation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("elevation service returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read elevation response: %w", err)
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse elevation response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return 0, fmt.Errorf("elevation response contains no results")
	}

	return parsed.Results[0].Elevation, nil
}

// Resolve looks up the observer height, falling back to sea level when the
// service is unreachable. A failed lookup is logged as a warning and never
// stops the run.
func Resolve(ctx context.Context, c *Client, lat, lon float64, logger *logging.Logger) float64 {
	height, err := c.Lookup(ctx, lat, lon)
	if err != nil {
		logger.Warn("Elevation lookup failed, using %.0f m: %v", FallbackHeightM, err)
		return FallbackHeightM
	}
	logger.Debug("Resolved height %.1f m for %.4f, %.4f", height, lat, lon)
	return height
}
