package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/tracing"
)

type GinConfig struct {
	// SkipPaths are paths that skip observability
	SkipPaths []string
	Module    logging.Module
	// ModuleResolver returns a module for the request when module depends on path
	ModuleResolver func(*gin.Context) logging.Module
	TracerName     string
	HTTPMetrics    *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get("x-request-id"))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		module := cfg.Module
		if cfg.ModuleResolver != nil {
			if m := cfg.ModuleResolver(c); m != "" {
				module = m
			}
		}

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, path))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header("x-request-id", requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, path, status, duration)
		}

		slog.LogAttrs(ctx, slog.LevelInfo, "request completed",
			slog.String("event", "http.request.finish"),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}
