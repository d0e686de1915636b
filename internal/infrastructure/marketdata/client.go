// Package marketdata implements the client for the external token price API.
// The upstream response is relayed to callers verbatim; nothing is parsed or
// cached here.
package marketdata

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Result carries one upstream response, opaque to the proxy.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client fetches token market data from the upstream price API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new upstream client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchToken requests market data for one token address and returns the
// upstream status, content type and raw body. A non-2xx upstream status is
// not an error; only transport failures are.
func (c *Client) FetchToken(ctx context.Context, address string) (*Result, error) {
	target := c.baseURL + "?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
