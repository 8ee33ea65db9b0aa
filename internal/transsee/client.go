package transsee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StopFetcher defines the interface for looking up arrivals at a stop.
// This interface is implemented by *Client and can be used for testing.
type StopFetcher interface {
	LookupStop(ctx context.Context, stopID int) (*StopResponse, error)
}

// Ensure Client implements StopFetcher at compile time.
var _ StopFetcher = (*Client)(nil)

// Client talks to the TransSee seek API. It is safe for concurrent use.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultEndpoint  = "https://42cummer-transseeapi.hf.space/seek"
	defaultUserAgent = "headway/0.1"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client posting to the given seek endpoint.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// LookupStop retrieves routes and vehicles currently reported for stopID.
func (c *Client) LookupStop(ctx context.Context, stopID int) (*StopResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if stopID <= 0 {
		return nil, fmt.Errorf("stop id required")
	}
	var payload StopResponse
	body := seekRequest{Stop: strconv.Itoa(stopID)}
	if err := c.post(ctx, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

type seekRequest struct {
	Stop string `json:"stop"`
}

func (c *Client) post(ctx context.Context, body any, dest any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api %s returned status %d", c.endpoint.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
