package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"subscription-automation-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

// ChatWebhookNotifier implements ports.OpsNotifier by posting alerts to a
// chat webhook URL (Slack-compatible payload). An empty URL disables
// notifications; Notify then succeeds without doing anything.
type ChatWebhookNotifier struct {
	webhookURL string
	timeout    time.Duration
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewChatWebhookNotifier creates an ops notifier. timeout <= 0 falls back
// to 5s.
func NewChatWebhookNotifier(webhookURL string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *ChatWebhookNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ChatWebhookNotifier{
		webhookURL: webhookURL,
		timeout:    timeout,
		httpClient: httpClient,
		log:        log,
	}
}

// Notify posts the alert to the configured webhook.
func (n *ChatWebhookNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	if n.webhookURL == "" {
		n.log.Debug().Str("category", string(alert.Category)).Msg("ops notifier disabled, dropping alert")
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"text": fmt.Sprintf("[%s] %s: %s", alert.Severity, alert.Category, alert.Message),
	})
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ops webhook returned status %d", resp.StatusCode)
	}
	return nil
}
