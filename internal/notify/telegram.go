package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender handles tgram://{bot_token}/{chat_id}[/{chat_id}...].
// A chat id starting with '@' addresses a public channel.
type TelegramSender struct {
	client   *http.Client
	endpoint string
}

func NewTelegramSender(client *http.Client) *TelegramSender {
	return &TelegramSender{client: client, endpoint: tgbotapi.APIEndpoint}
}

// WithEndpoint points the sender at another Bot API server.
func (s *TelegramSender) WithEndpoint(endpoint string) *TelegramSender {
	s.endpoint = endpoint

	return s
}

func (s *TelegramSender) Send(_ context.Context, rawURL string, msg Message) error {
	token, chats, err := parseTelegramURL(rawURL)
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, s.endpoint, s.client)
	if err != nil {
		return fmt.Errorf("telegram bot init failed: %w", err)
	}

	for _, chat := range chats {
		var out tgbotapi.MessageConfig

		if strings.HasPrefix(chat, "@") {
			out = tgbotapi.NewMessageToChannel(chat, msg.Text())
		} else {
			id, err := strconv.ParseInt(chat, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid telegram chat id %q", chat)
			}

			out = tgbotapi.NewMessage(id, msg.Text())
		}

		if _, err := bot.Send(out); err != nil {
			return fmt.Errorf("telegram send to %s failed: %w", chat, err)
		}
	}

	return nil
}

func parseTelegramURL(raw string) (string, []string, error) {
	_, rest, _ := strings.Cut(raw, "://")

	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return "", nil, fmt.Errorf("telegram url needs a bot token and at least one chat id")
	}

	chats := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p != "" {
			chats = append(chats, p)
		}
	}

	if len(chats) == 0 {
		return "", nil, fmt.Errorf("telegram url needs at least one chat id")
	}

	return parts[0], chats, nil
}
