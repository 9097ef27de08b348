// Package espn fetches and normalizes ESPN public JSON APIs into canonical
// shapes. One transformer family per sport; all of them share the Client
// and the status/category utilities here.
//
// ESPN has two hosts: the site API (scoreboards, teams, standings) and the
// web API (athlete bios and stat splits). Both are unauthenticated; a
// token-bucket limiter keeps us polite.
package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	SiteAPIBase = "https://site.api.espn.com/apis/site/v2/sports"
	WebAPIBase  = "https://site.web.api.espn.com/apis/common/v3/sports"

	// Per-call budget. The request context carries this deadline so a hung
	// upstream can never stall a gather barrier past it.
	requestTimeout = 10 * time.Second
)

// ErrNotFound marks a required upstream lookup that returned 404.
var ErrNotFound = errors.New("upstream resource not found")

// StatusError is a non-2xx upstream response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("espn returned %d for %s", e.Code, e.URL)
}

// IsNotFound reports whether err represents an upstream 404.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client is the shared HTTP client for all ESPN endpoints.
type Client struct {
	httpClient *http.Client
	siteBase   string
	webBase    string
	limiter    *rate.Limiter
	logger     *slog.Logger
	userAgent  string
}

// NewClient creates an ESPN client with rate limiting.
func NewClient(requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		siteBase:   SiteAPIBase,
		webBase:    WebAPIBase,
		limiter:    rate.NewLimiter(rate.Limit(rps), requestsPerMinute/4+1),
		logger:     logger,
		userAgent:  "Mozilla/5.0 (compatible; ScorepulseBot/1.0)",
	}
}

// WithBaseURLs overrides both API hosts. Used by tests to point at a local
// server.
func (c *Client) WithBaseURLs(site, web string) *Client {
	c.siteBase = site
	c.webBase = web
	return c
}

// SiteURL builds a site-API URL for a league path and resource.
func (c *Client) SiteURL(leaguePath, resource string, params url.Values) string {
	u := fmt.Sprintf("%s/%s/%s", c.siteBase, leaguePath, resource)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// WebURL builds a web-API URL for a league path and resource.
func (c *Client) WebURL(leaguePath, resource string, params url.Values) string {
	u := fmt.Sprintf("%s/%s/%s", c.webBase, leaguePath, resource)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Get performs a rate-limited GET against a fully-formed URL and returns
// the raw body. 404s map to ErrNotFound so callers can distinguish a
// missing resource from a sick endpoint.
func (c *Client) Get(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", fullURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, fullURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: fullURL, Code: resp.StatusCode}
	}
	return body, nil
}

// GetJSON fetches a URL and decodes the body into target.
func (c *Client) GetJSON(ctx context.Context, fullURL string, target interface{}) error {
	body, err := c.Get(ctx, fullURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", fullURL, err)
	}
	return nil
}
