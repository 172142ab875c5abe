package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/config"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/handler"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/scheduler"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const serviceName = "remind-scheduler"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	tracerProvider, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
	}, cfg.PubSub.GCloudProjectID)
	if err != nil {
		slog.Error("failed to create tracer provider", "error", err)
		return 1
	}

	otel.SetTracerProvider(tracerProvider.TracerProvider())
	tracing.SetupPropagator()

	meterProvider, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
	}, cfg.PubSub.GCloudProjectID)
	if err != nil {
		slog.Error("failed to create meter provider", "error", err)
		return 1
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown meter provider", "error", err)
		}

		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown tracer provider", "error", err)
		}
	}()

	db, err := initDatabase(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics(meterProvider.MeterProvider())
	if err != nil {
		slog.Error("failed to create scheduler metrics", "error", err)
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics(meterProvider.MeterProvider())
	if err != nil {
		slog.Error("failed to create http metrics", "error", err)
		return 1
	}

	reminderRepo := repository.NewReminderRepository(db)
	dueSetRepo := repository.NewDueSetRepository(db)
	serviceRepo := repository.NewNotificationServiceRepository(db)
	staticRepo := repository.NewStaticReminderRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	userRepo := repository.NewUserRepository(db)

	dispatcher := notify.NewDefaultDispatcher()

	trigger := scheduler.NewTrigger(dueSetRepo, dispatcher, publisher, schedulerMetrics)
	sched := scheduler.New(dueSetRepo, trigger.Handle,
		scheduler.WithMetrics(schedulerMetrics),
		scheduler.WithBaseContext(logging.WithModule(context.Background(), logging.ModuleScheduler)),
	)
	defer sched.StopHandling()

	if err := sched.FindNextReminder(ctx); err != nil {
		// Resync retries on its own schedule.
		slog.Error("failed to arm scheduler at startup", "error", err)
	}

	resync, err := scheduler.NewResync(ctx, sched, cfg.Scheduler.ResyncSpec)
	if err != nil {
		slog.Error("failed to create scheduler resync", "error", err)
		return 1
	}

	resync.Start()
	defer resync.Stop()

	reminderUseCase := app.NewReminderUseCase(reminderRepo, serviceRepo, dispatcher, sched)
	staticUseCase := app.NewStaticReminderUseCase(staticRepo, serviceRepo, dispatcher)
	templateUseCase := app.NewTemplateUseCase(templateRepo, serviceRepo)
	serviceUseCase := app.NewNotificationServiceUseCase(serviceRepo, dispatcher, sched)
	userUseCase := app.NewUserUseCase(userRepo, sched, app.AuthConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.JWTTTL,
	})

	router := setupRouter(cfg, httpMetrics, userUseCase,
		handler.NewAuthHandler(userUseCase),
		handler.NewReminderHandler(reminderUseCase),
		handler.NewStaticReminderHandler(staticUseCase),
		handler.NewTemplateHandler(templateUseCase),
		handler.NewNotificationServiceHandler(serviceUseCase),
		handler.NewSchedulerHandler(sched),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		slog.Info("server exited properly")

		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}

		slog.Error("server exited with error", "error", err)

		return 1
	}
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         logging.NewGormLogger(cfg.Log.GormLevel, 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return nil, err
	}

	return db, nil
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(
	cfg *config.Config,
	httpMetrics *metrics.HTTPMetrics,
	users app.UserUseCase,
	authHandler *handler.AuthHandler,
	protected ...routeRegistrar,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.PanicRecoveryGin(),
		cors.New(corsConfig(cfg.CORS)),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping"},
			ModuleResolver: moduleForPath,
			TracerName:     serviceName,
			HTTPMetrics:    httpMetrics,
		}),
		middleware.RateLimitGin(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	auth := handler.AuthMiddleware(users)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1, auth)

	authorized := v1.Group("", auth)
	for _, h := range protected {
		h.RegisterRoutes(authorized)
	}

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-Id")
	c.ExposeHeaders = []string{"X-Request-Id"}

	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}

	return c
}

func moduleForPath(c *gin.Context) logging.Module {
	path := strings.TrimPrefix(c.Request.URL.Path, "/api/v1")

	switch {
	case strings.HasPrefix(path, "/auth"):
		return logging.ModuleAuth
	case strings.HasPrefix(path, "/notification-services"):
		return logging.ModuleNotification
	case strings.HasPrefix(path, "/scheduler"):
		return logging.ModuleScheduler
	default:
		return logging.ModuleReminder
	}
}

func setupLogger(cfg *config.Config) {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})
	slog.SetDefault(slog.New(logging.NewContextHandler(h, cfg.PubSub.GCloudProjectID)))
}
