package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=notify

var ErrUnsupportedScheme = errors.New("unsupported notification url scheme")

// Message is the payload every sender renders into its own format.
type Message struct {
	Title string
	Body  string
}

// Text joins title and body the way plain text channels show them.
func (m Message) Text() string {
	if m.Body == "" {
		return m.Title
	}

	return m.Title + "\n\n" + m.Body
}

// Dispatcher delivers one message to every target URL. A failing target never
// stops delivery to the others; the failures are joined into the result.
type Dispatcher interface {
	Send(ctx context.Context, title, body string, urls []string) error
	Schemes() []string
}

// Sender delivers to the targets of the schemes it is registered for.
type Sender interface {
	Send(ctx context.Context, rawURL string, msg Message) error
}

type MultiDispatcher struct {
	senders map[string]Sender
}

func NewMultiDispatcher() *MultiDispatcher {
	return &MultiDispatcher{
		senders: make(map[string]Sender),
	}
}

func (d *MultiDispatcher) Register(sender Sender, schemes ...string) {
	for _, s := range schemes {
		d.senders[strings.ToLower(s)] = sender
	}
}

func (d *MultiDispatcher) Send(ctx context.Context, title, body string, urls []string) error {
	msg := Message{Title: title, Body: body}

	var errs []error

	for _, raw := range urls {
		scheme := Scheme(raw)

		sender, ok := d.senders[scheme]
		if !ok {
			slog.WarnContext(ctx, "no sender for notification target",
				slog.String("event", "notify.send.skip"),
				slog.String("scheme", scheme),
			)

			errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme))

			continue
		}

		if err := sender.Send(ctx, raw, msg); err != nil {
			slog.ErrorContext(ctx, "failed to deliver notification",
				slog.String("event", "notify.send.fail"),
				slog.String("scheme", scheme),
				slog.String("error", err.Error()),
			)

			errs = append(errs, fmt.Errorf("%s: %w", scheme, err))

			continue
		}

		slog.DebugContext(ctx, "notification delivered",
			slog.String("event", "notify.send"),
			slog.String("scheme", scheme),
		)
	}

	return errors.Join(errs...)
}

func (d *MultiDispatcher) Schemes() []string {
	schemes := make([]string, 0, len(d.senders))
	for s := range d.senders {
		schemes = append(schemes, s)
	}

	slices.Sort(schemes)

	return schemes
}

// Scheme returns the lower-cased scheme of a target URL, or "" when absent.
func Scheme(raw string) string {
	scheme, _, ok := strings.Cut(raw, "://")
	if !ok {
		return ""
	}

	return strings.ToLower(scheme)
}
