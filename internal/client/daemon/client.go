// Package daemon talks to the compute daemon that runs algorithms against
// purchased content, and watches its health.
package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrUnhealthy = errors.New("daemon unhealthy")

// ComputeRequest is the body of POST /compute.
type ComputeRequest struct {
	ContentRef string `json:"contentRef"`
	Algorithm  string `json:"algorithm"`
}

type computeResponse struct {
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message,omitempty"`
}

// ComputeError is a non-2xx answer from the daemon. Message is filled only
// when the body carried a JSON message.
type ComputeError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *ComputeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("compute failed: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("compute failed: %s", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Compute asks the daemon to run algorithm over the content behind
// contentRef. The caller must already hold access to the listing; the
// daemon is not an authority on that. The raw JSON result is returned.
func (c *Client) Compute(ctx context.Context, contentRef, algorithm string) (json.RawMessage, error) {
	body, err := json.Marshal(ComputeRequest{ContentRef: contentRef, Algorithm: algorithm})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/compute", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("compute: read body: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		e := &ComputeError{StatusCode: resp.StatusCode, Status: resp.Status}
		var body computeResponse
		if json.Unmarshal(raw, &body) == nil {
			e.Message = body.Message
		}
		return nil, e
	}

	var out computeResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("compute: decode: %w", err)
		}
	}
	return out.Result, nil
}

// Health calls GET /health. Any non-200 answer is ErrUnhealthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnhealthy, resp.Status)
	}
	return nil
}
