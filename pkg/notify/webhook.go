package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"monitoring-srv/pkg/log"
)

// WebhookConfig configures the outbound webhook sender.
type WebhookConfig struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// DefaultWebhookConfig returns the sender defaults.
func DefaultWebhookConfig(url string) WebhookConfig {
	return WebhookConfig{
		URL:        url,
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryDelay: time.Second,
	}
}

// WebhookSender POSTs notifications as JSON to a fixed endpoint.
type WebhookSender struct {
	l      log.Logger
	config WebhookConfig
	client *http.Client
}

// NewWebhookSender creates a webhook sender.
func NewWebhookSender(l log.Logger, cfg WebhookConfig) (*WebhookSender, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	return &WebhookSender{
		l:      l,
		config: cfg,
		client: client,
	}, nil
}

// Notify sends the notification with retries.
func (w *WebhookSender) Notify(ctx context.Context, n Notification) error {
	var lastErr error

	for attempt := 0; attempt <= w.config.RetryCount; attempt++ {
		if attempt > 0 {
			w.l.Infof(ctx, "pkg.notify.WebhookSender.Notify: retrying attempt %d/%d", attempt, w.config.RetryCount)
			time.Sleep(w.config.RetryDelay)
		}

		err := w.sendRequest(ctx, n)
		if err == nil {
			return nil
		}

		lastErr = err
		w.l.Warnf(ctx, "pkg.notify.WebhookSender.Notify: attempt %d failed: %v", attempt+1, err)
	}

	return fmt.Errorf("failed after %d attempts, last error: %w", w.config.RetryCount+1, lastErr)
}

func (w *WebhookSender) sendRequest(ctx context.Context, n Notification) error {
	jsonData, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// Close closes idle connections in the HTTP client.
func (w *WebhookSender) Close() error {
	w.client.CloseIdleConnections()
	return nil
}
