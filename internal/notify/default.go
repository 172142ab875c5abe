package notify

import (
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// NewDefaultDispatcher registers every built-in sender.
func NewDefaultDispatcher() *MultiDispatcher {
	client := &http.Client{Timeout: defaultTimeout}

	d := NewMultiDispatcher()
	d.Register(NewWebhookSender(client), "json", "jsons", "http", "https")
	d.Register(NewTelegramSender(client), "tgram")
	d.Register(NewTwilioSender(), "twilio")
	d.Register(NewRedisSender(), "redis", "rediss")
	d.Register(NewAMQPSender(), "amqp", "amqps")
	d.Register(NewNATSSender(), "nats")
	d.Register(NewSMTPSender(), "mailto")

	return d
}
