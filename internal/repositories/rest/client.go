package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
)

// DefaultThrottle is the minimum latency applied before every backend
// request. It is a UX pacing constant inherited from the product design, not
// a retry or backoff mechanism; set it to zero in tests.
const DefaultThrottle = 500 * time.Millisecond

// ClientConfig holds the configuration for the backend connection.
type ClientConfig struct {
	BaseURL string

	// Throttle overrides DefaultThrottle when non-nil.
	Throttle *time.Duration

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is the shared HTTP transport for the REST repositories. It owns the
// base URL, the request throttle and the translation of non-success
// responses into the domain error taxonomy. It performs no caching.
type Client struct {
	baseURL  string
	throttle time.Duration
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(cfg ClientConfig) *Client {
	throttle := DefaultThrottle
	if cfg.Throttle != nil {
		throttle = *cfg.Throttle
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		throttle: throttle,
		http:     httpClient,
		logger:   logger,
	}
}

// pace applies the minimum-latency throttle, honoring cancellation.
func (c *Client) pace(ctx context.Context) error {
	if c.throttle <= 0 {
		return nil
	}

	timer := time.NewTimer(c.throttle)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// backendMessage is the error body shape the backend uses.
type backendMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON issues one request and decodes a success response into out (when
// out is non-nil). Transport failures come back wrapped; non-success
// statuses come back as *repositories.BackendError carrying the
// server-supplied message.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.pace(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode)
		return &repositories.BackendError{
			StatusCode: resp.StatusCode,
			Message:    decodeBackendMessage(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeBackendMessage(body []byte) string {
	var msg backendMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	if msg.Message != "" {
		return msg.Message
	}
	return msg.Error
}
