// Package oddsapi pulls moneyline odds from the-odds-api.com (v3).
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.the-odds-api.com"

type Client struct {
	baseURL string
	apiKey  string
	region  string
	client  *http.Client
}

func NewClient(baseURL, apiKey, region string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if region == "" {
		region = "us"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		region:  region,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetOdds fetches American-format head-to-head odds for one sport key.
// GET /v3/odds/?apiKey=...&sport=...&region=us&mkt=h2h&oddsFormat=american
func (c *Client) GetOdds(ctx context.Context, sportKey string) ([]Game, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("sport", sportKey)
	params.Set("region", c.region)
	params.Set("mkt", "h2h")
	params.Set("oddsFormat", "american")

	u := fmt.Sprintf("%s/v3/odds/?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds api returned status %d", resp.StatusCode)
	}

	if remaining := resp.Header.Get("x-requests-remaining"); remaining != "" {
		slog.Info("Odds API quota", "requests_remaining", remaining)
	}

	var out oddsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode odds: %w", err)
	}
	return out.Data, nil
}
