// Package stockfishonline asks the public Stockfish.online API for moves.
package stockfishonline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultURL is the v2 endpoint of the Stockfish.online API.
const DefaultURL = "https://stockfish.online/api/s/v2.php"

// Response is the JSON body returned by the API.
type Response struct {
	Success      bool     `json:"success"`
	Evaluation   *float64 `json:"evaluation"`
	Mate         *int     `json:"mate"`
	BestMove     string   `json:"bestmove"`
	Continuation string   `json:"continuation"`
	Data         string   `json:"data"`
}

// Client is a thin HTTP client for the API.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means the
// request is bounded only by its context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{},
	}
}

// GetNextMove fetches the engine's analysis of fen at the given depth.
func (c *Client) GetNextMove(ctx context.Context, fen string, depth int) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("fen", fen)
	q.Set("depth", strconv.Itoa(depth))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request stockfish.online: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("stockfish.online returned %s: %s", resp.Status, body)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
