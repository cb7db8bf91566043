package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/tavern/internal/logger"
)

// searchResponse mirrors the top-level /vacancies response.
type searchResponse struct {
	Items   []json.RawMessage `json:"items"`
	Found   int               `json:"found"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// Client performs requests against the hh.ru API.
type Client struct {
	cfg         Config
	http        *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client. When cfg.AccessToken is set every request
// carries it as a bearer token.
func NewClient(ctx context.Context, cfg Config) *Client {
	cfg = cfg.withDefaults()

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.AccessToken != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.AccessToken},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		cfg:         cfg,
		http:        httpClient,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// SearchVacancies requests the first page of vacancies matching text.
func (c *Client) SearchVacancies(ctx context.Context, text string) (*searchResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("text", text)
	params.Set("per_page", strconv.Itoa(PageSize))
	params.Set("page", strconv.Itoa(Page))

	reqURL := c.cfg.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("HH-User-Agent", c.cfg.UserAgent)

	logger.Debug("GET %s", reqURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError("http GET", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
			URL:        reqURL,
			RetryAfter: c.rateLimiter.Observe(resp),
		}
	}

	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, transportError("decode response", err)
	}

	logger.Debug("hh returned %d items (%d found)", len(out.Items), out.Found)
	return &out, nil
}
