package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"myvoice/internal/cache"
	"myvoice/internal/config"
	"myvoice/internal/repository"
	"myvoice/internal/scheduler"
	"myvoice/internal/service"
	"myvoice/internal/survey"
	"myvoice/internal/transport/rest"
)

// @title My Voice Survey API
// @version 1.0
// @description Employee survey collection and reporting service
// @host localhost:8080
// @BasePath /v1
func main() {
	// .env is a local convenience; deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to parse config:", err)
	}

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()

	questions := survey.Catalog()
	logger.Info("questionnaire loaded",
		zap.String("version", questions.Version),
		zap.Int("questions", len(questions.Questions)))

	// MongoDB connection. A missing or unreachable endpoint degrades the
	// store instead of stopping the process: intake and reporting answer
	// with connectivity errors until storage comes back.
	store, mongoClient := connectStore(ctx, cfg, logger)
	if mongoClient != nil {
		defer mongoClient.Disconnect(ctx)
	}

	// Redis connection (optional dataset cache).
	responseCache, rdb := connectCache(ctx, cfg, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	// Initialize services
	intakeSvc := service.NewIntakeService(questions, store, responseCache, logger)
	reportSvc := service.NewReportService(questions, store, responseCache, logger)

	// Optional scheduled cache warming
	if cfg.CacheWarmCron != "" && responseCache != nil {
		warmer := scheduler.New(reportSvc.WarmCache, logger)
		if err := warmer.Start(cfg.CacheWarmCron); err != nil {
			logger.Warn("invalid CACHE_WARM_CRON, warmer disabled",
				zap.String("spec", cfg.CacheWarmCron), zap.Error(err))
		} else {
			defer warmer.Stop()
		}
	}

	// Create router with container
	container := &rest.Container{
		IntakeService: intakeSvc,
		ReportService: reportSvc,
		Store:         store,
		Cache:         responseCache,
		CORS: rest.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: cfg.CORSAllowedMethods,
			AllowedHeaders: cfg.CORSAllowedHeaders,
		},
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		logger.Info("endpoints",
			zap.Strings("routes", []string{
				"GET  /health",
				"GET  /v1/questionnaire",
				"POST /v1/responses",
				"GET  /v1/responses",
				"GET  /v1/responses/export",
				"GET  /v1/reports",
				"GET  /v1/reports/questions/{questionID}",
			}))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// buildLogger builds the process logger at the configured level. An
// unknown level falls back to info rather than refusing to start.
func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Printf("Warning: unknown LOG_LEVEL %q, using info", level)
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	return logger
}

// connectStore builds the Mongo-backed response store. Without a usable
// endpoint it returns a degraded stand-in whose operations report
// connectivity errors, so the process still serves health checks and
// validation-level failures.
func connectStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.ResponseStore, *mongo.Client) {
	if cfg.MongoURI == "" {
		logger.Error("MONGO_URI not set; storage operations will report connectivity errors")
		return repository.NewUnavailableStore("MONGO_URI is not set"), nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("mongo client setup failed; storage degraded", zap.Error(err))
		return repository.NewUnavailableStore(err.Error()), nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		// Keep the client; the driver reconnects when the endpoint returns.
		logger.Error("mongo ping failed; storage operations will report connectivity errors", zap.Error(err))
	} else {
		logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))
	}

	return repository.NewResponseStore(client.Database(cfg.MongoDB)), client
}

// connectCache dials Redis when an address is configured. A missing or
// unreachable cache only disables caching; reporting reads the store
// directly.
func connectCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.ResponseCache, *redis.Client) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set; dataset cache disabled")
		return nil, nil
	}

	// Remove redis:// prefix if present
	addr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Warn("redis ping failed; dataset cache disabled", zap.Error(err))
		rdb.Close()
		return nil, nil
	}

	logger.Info("connected to Redis", zap.String("addr", addr))
	return cache.NewResponseCache(rdb, cfg.CacheTTL), rdb
}
