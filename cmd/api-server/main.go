package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stackit/database"
	"stackit/internal/config"
	"stackit/internal/microservices/http-api/handler"
	"stackit/internal/microservices/http-api/middleware"
	"stackit/internal/microservices/http-api/repository"
	"stackit/internal/microservices/http-api/service"
	"stackit/internal/microservices/websocket"
	"stackit/internal/middleware/auth"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err.Error())
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	limiter, closeLimiter := newLimiter(cfg, logger)
	defer closeLimiter()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	registry := websocket.NewRegistry(tokens,
		websocket.WithLogger(logger),
		websocket.WithWriteWait(cfg.WSWriteWait),
		websocket.WithPingInterval(cfg.WSPingInterval),
		websocket.WithMaxMessageSize(int64(cfg.WSMaxMessageSize)),
		websocket.WithAllowedOrigins(cfg.CORSOrigins),
	)
	dispatcher := websocket.NewDispatcher(registry, logger)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	flagRepo := repository.NewFlagRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	router := handler.NewRouter(handler.RouterDeps{
		Auth:          service.NewAuthService(userRepo, tokens),
		Users:         service.NewUserService(userRepo),
		Questions:     service.NewQuestionService(questionRepo),
		Answers:       service.NewAnswerService(answerRepo, questionRepo, notificationRepo, dispatcher, logger),
		Flags:         service.NewFlagService(flagRepo, questionRepo, answerRepo, notificationRepo, dispatcher, logger),
		Notifications: service.NewNotificationService(notificationRepo),
		Registry:      registry,
		Limiter:       limiter,
		CORSOrigins:   cfg.CORSOrigins,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_api_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}

	// hijacked websocket connections are not tracked by Shutdown
	registry.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
		return
	}
	logger.Info("server_stopped_gracefully")
}

// newLimiter prefers the shared Redis window and falls back to an in-process limiter
// when Redis is not configured or not reachable.
func newLimiter(cfg *config.Config, logger *slog.Logger) (middleware.Limiter, func()) {
	if cfg.RedisURL == "" {
		logger.Info("rate_limiter_in_memory", "per_minute", cfg.RateLimitPerMinute)
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute), func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid_redis_url", "error", err.Error())
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute), func() {}
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis_unavailable", "addr", opts.Addr, "error", err.Error())
		rdb.Close()
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute), func() {}
	}

	logger.Info("rate_limiter_redis", "addr", opts.Addr, "per_minute", cfg.RateLimitPerMinute)
	return middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute), func() { rdb.Close() }
}
