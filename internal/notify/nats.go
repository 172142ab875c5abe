package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSSender publishes core NATS messages: nats://[user:pass@]host[:port]/{subject}.
type NATSSender struct{}

func NewNATSSender() *NATSSender {
	return &NATSSender{}
}

func (s *NATSSender) Send(ctx context.Context, rawURL string, msg Message) error {
	server, subject, err := parseNATSURL(rawURL)
	if err != nil {
		return err
	}

	conn, err := nats.Connect(server, nats.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("nats connect failed: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(webhookPayload{Version: "1.0", Title: msg.Title, Message: msg.Body, Type: "info"})
	if err != nil {
		return fmt.Errorf("failed to marshal nats payload: %w", err)
	}

	if err := conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("nats publish to %s failed: %w", subject, err)
	}

	if err := conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("nats flush failed: %w", err)
	}

	return nil
}

func parseNATSURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid nats url: %w", err)
	}

	subject := strings.ReplaceAll(strings.Trim(u.Path, "/"), "/", ".")
	if u.Host == "" || subject == "" {
		return "", "", fmt.Errorf("nats url needs a host and a subject")
	}

	u.Path = ""

	return u.String(), subject, nil
}
