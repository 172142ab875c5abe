package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type webhookPayload struct {
	Version string `json:"version"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// WebhookSender POSTs a JSON document. json:// and jsons:// are aliases for
// http:// and https://.
type WebhookSender struct {
	client *http.Client
}

func NewWebhookSender(client *http.Client) *WebhookSender {
	return &WebhookSender{client: client}
}

func (s *WebhookSender) Send(ctx context.Context, rawURL string, msg Message) error {
	target := webhookURL(rawURL)

	body, err := json.Marshal(webhookPayload{
		Version: "1.0",
		Title:   msg.Title,
		Message: msg.Body,
		Type:    "info",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	return nil
}

func webhookURL(raw string) string {
	switch Scheme(raw) {
	case "json":
		return "http" + raw[len("json"):]
	case "jsons":
		return "https" + raw[len("jsons"):]
	default:
		return raw
	}
}
