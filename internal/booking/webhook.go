package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bookmehq/bookme-server/pkg/logging"
)

// WebhookClient posts booking records to the configured external log
// endpoint. The response body is never interpreted; only the status code is
// checked.
type WebhookClient struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logging.Logger
}

// WebhookOption is a functional option for configuring the WebhookClient.
type WebhookOption func(*WebhookClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) WebhookOption {
	return func(c *WebhookClient) {
		c.httpClient = client
	}
}

// NewWebhookClient creates a client for the booking log endpoint. Returns
// nil when no URL is configured, which disables logging entirely.
func NewWebhookClient(url string, timeout time.Duration, logger *logging.Logger, opts ...WebhookOption) *WebhookClient {
	if url == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	c := &WebhookClient{
		url:     url,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts one booking record. Callers treat failures as best-effort.
func (c *WebhookClient) Send(ctx context.Context, payload LogPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("booking: marshal log payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("booking: build log request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("booking: post log: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("booking: log endpoint returned %d", resp.StatusCode)
	}

	c.logger.Debug("booking log dispatched", "status", resp.StatusCode)
	return nil
}
