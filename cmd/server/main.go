package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"travelsuite.app/api/common/id"
	"travelsuite.app/api/common/logger"
	"travelsuite.app/api/common/otel"
	"travelsuite.app/api/core/config"
	"travelsuite.app/api/core/db"
	"travelsuite.app/api/internal/auth"
	"travelsuite.app/api/internal/http/middleware"
	httprouter "travelsuite.app/api/internal/http/router"
	"travelsuite.app/api/internal/queue"
	"travelsuite.app/api/internal/service"
	"travelsuite.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses the OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "travelsuite api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)

	ids, err := id.NewSnowflake(cfg.NodeID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize token manager", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected", "migrated", cfg.DB.MigrateOnStart)

	eventProducer, err := newEventProducer(ctx, cfg.Events)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer eventProducer.Close()

	services := service.NewServices(service.ServicesConfig{
		Stores:         store.NewStores(database.Queries()),
		TxRunner:       service.NewTxRunner(database),
		Tokens:         tokens,
		Hasher:         auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		IDs:            ids,
		Events:         eventProducer,
		DefaultLogoURL: cfg.LogoURL,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, tokens, database)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapHandler(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// newEventProducer connects to Redis when an event stream is configured and
// falls back to a producer that drops events otherwise.
func newEventProducer(ctx context.Context, cfg config.EventsConfig) (queue.Producer, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "event publishing disabled (no REDIS_URL)")
		return queue.NopProducer{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream)

	return queue.NewRedisProducer(client, cfg.Stream, slog.Default()), nil
}

func setupRouter(cfg config.Config, services *service.Services, tokens *auth.TokenManager, database *db.DB) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	if cfg.Metrics {
		router.Use(middleware.Metrics())
	}

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		Tokens:         tokens,
		DB:             database,
		MetricsEnabled: cfg.Metrics,
	})

	return router
}

// wrapHandler adds CORS and response compression around the router.
func wrapHandler(cfg config.Config, h http.Handler) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.CORSAllow}),
		handlers.AllowedHeaders([]string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"}),
		handlers.AllowedMethods([]string{http.MethodPut, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodGet}),
	)
	return handlers.CompressHandler(cors(h))
}

const banner = `
 _                       _           _ _
| |_ _ __ __ ___   _____| |___ _   _(_) |_ ___
| __| '__/ _' \ \ / / _ \ / __| | | | | __/ _ \
| |_| | | (_| |\ V /  __/ \__ \ |_| | | ||  __/
 \__|_|  \__,_| \_/ \___|_|___/\__,_|_|\__\___|
`
