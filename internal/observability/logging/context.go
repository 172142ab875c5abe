package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleReminder     Module = "reminder"
	ModuleScheduler    Module = "scheduler"
	ModuleNotification Module = "notification"
	ModuleAuth         Module = "auth"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)

	return v
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFrom(ctx context.Context) Module {
	v, _ := ctx.Value(moduleKey).(Module)

	return v
}

// ValidateAndExtractRequestID keeps a client supplied id only when it parses
// as a UUID, otherwise a fresh one is minted.
func ValidateAndExtractRequestID(header string) string {
	if header != "" {
		if _, err := uuid.Parse(header); err == nil {
			return header
		}
	}

	return uuid.Must(uuid.NewV7()).String()
}

// ContextHandler decorates records with the request id, module and trace
// attributes carried by the context.
type ContextHandler struct {
	next      slog.Handler
	projectID string
}

func NewContextHandler(next slog.Handler, projectID string) *ContextHandler {
	return &ContextHandler{next: next, projectID: projectID}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	if m := ModuleFrom(ctx); m != "" {
		r.AddAttrs(slog.String("module", string(m)))
	}

	r.AddAttrs(traceAttrs(ctx, h.projectID)...)

	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), projectID: h.projectID}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), projectID: h.projectID}
}
