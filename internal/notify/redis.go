package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisSender publishes to a pub/sub channel:
// redis://[user:password@]host[:port]/{channel}. rediss:// enables TLS.
type RedisSender struct{}

func NewRedisSender() *RedisSender {
	return &RedisSender{}
}

func (s *RedisSender) Send(ctx context.Context, rawURL string, msg Message) error {
	opts, channel, err := parseRedisURL(rawURL)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(webhookPayload{Version: "1.0", Title: msg.Title, Message: msg.Body, Type: "info"})
	if err != nil {
		return fmt.Errorf("failed to marshal redis payload: %w", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if err := client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s failed: %w", channel, err)
	}

	return nil
}

func parseRedisURL(raw string) (*redis.Options, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, "", fmt.Errorf("invalid redis url: %w", err)
	}

	channel := strings.Trim(u.Path, "/")
	if u.Host == "" || channel == "" {
		return nil, "", fmt.Errorf("redis url needs a host and a channel")
	}

	addr := u.Host
	if u.Port() == "" {
		addr += ":6379"
	}

	opts := &redis.Options{
		Addr:     addr,
		Username: u.User.Username(),
	}
	opts.Password, _ = u.User.Password()

	if u.Scheme == "rediss" {
		opts.TLSConfig = &tls.Config{ServerName: u.Hostname(), MinVersion: tls.VersionTLS12}
	}

	return opts, channel, nil
}
