package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender handles twilio://{account_sid}:{auth_token}@{from}/{to}[/{to}...].
// Phone numbers may omit the leading '+'.
type TwilioSender struct{}

func NewTwilioSender() *TwilioSender {
	return &TwilioSender{}
}

func (s *TwilioSender) Send(_ context.Context, rawURL string, msg Message) error {
	target, err := parseTwilioURL(rawURL)
	if err != nil {
		return err
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: target.sid,
		Password: target.token,
	})

	for _, to := range target.to {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(target.from)
		params.SetBody(msg.Text())

		if _, err := rest.Api.CreateMessage(params); err != nil {
			return fmt.Errorf("twilio send to %s failed: %w", to, err)
		}
	}

	return nil
}

type twilioTarget struct {
	sid   string
	token string
	from  string
	to    []string
}

func parseTwilioURL(raw string) (twilioTarget, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return twilioTarget{}, fmt.Errorf("invalid twilio url: %w", err)
	}

	token, _ := u.User.Password()
	if u.User.Username() == "" || token == "" {
		return twilioTarget{}, fmt.Errorf("twilio url needs account sid and auth token")
	}

	t := twilioTarget{
		sid:   u.User.Username(),
		token: token,
		from:  phoneNumber(u.Hostname()),
	}

	for _, p := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if p != "" {
			t.to = append(t.to, phoneNumber(p))
		}
	}

	if t.from == "" || len(t.to) == 0 {
		return twilioTarget{}, fmt.Errorf("twilio url needs a sender and at least one recipient")
	}

	return t, nil
}

func phoneNumber(s string) string {
	if s == "" || strings.HasPrefix(s, "+") || strings.Contains(s, ":") {
		return s
	}

	return "+" + s
}
