package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"sjsage522/competitorshots/pkg/errors"

	"golang.org/x/net/html/charset"
)

// Client issues single-shot GET requests with a fixed browser User-Agent.
// There is no retry; every failure is returned to the caller as a *errors.FetchError.
type Client struct {
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client with the given User-Agent and per-request timeout
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get performs the request and returns the response only when it is 200 OK
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetwork(url, "failed to create request", err)
	}

	// Only the User-Agent is set; listings and images get the same request
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetwork(url, "failed to fetch URL", err)
	}

	// Check for rate limiting
	if slices.Contains([]int{http.StatusTooManyRequests, 430}, resp.StatusCode) {
		resp.Body.Close()
		return nil, errors.NewRateLimit(url, resp.StatusCode, resp.Header.Get("Retry-After"))
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.NewStatus(url, resp.StatusCode)
	}

	return resp, nil
}

// FetchBytes downloads the full response body as raw bytes
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetwork(url, "failed to read response body", err)
	}

	return data, nil
}

// FetchPage fetches an HTML page and converts the body to UTF-8 (if needed),
// returning it as an io.Reader.
func (c *Client) FetchPage(ctx context.Context, url string) (io.Reader, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetwork(url, "failed to read response body", err)
	}

	// Determine the encoding from Content-Type header and body content
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, resp.Header.Get("Content-Type"))

	// If already UTF-8, return as is
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, errors.NewParsing(url, fmt.Sprintf("failed to convert %s body to UTF-8", name), err)
	}

	return &buf, nil
}
