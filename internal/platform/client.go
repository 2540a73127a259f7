// Package platform is a minimal client for the Nimbus hosting API. It
// covers only what the CLI needs: fetching the server alias document and
// verifying a token. Failures are surfaced immediately; nothing is retried.
package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nimbushost/nimbus-cli/internal/alias"
)

const requestTimeout = 30 * time.Second

// Client talks to the platform API with a bearer token.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewClient creates a client for the given API endpoint.
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// FetchAliases downloads and parses the server alias document.
func (c *Client) FetchAliases(ctx context.Context) (*alias.Document, error) {
	body, err := c.get(ctx, "/v1/aliases")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aliases: %w", err)
	}
	return alias.Parse(body)
}

// Ping verifies that the endpoint is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.get(ctx, "/v1/ping"); err != nil {
		return fmt.Errorf("failed to reach platform API: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/yaml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("authentication failed (%s); run login again", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected response: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
