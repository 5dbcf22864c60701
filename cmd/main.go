package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/eaglebank/ledger-service/internal/command"
	"github.com/eaglebank/ledger-service/internal/handler"
	"github.com/eaglebank/ledger-service/internal/service"
	"github.com/eaglebank/ledger-service/shared/events"
	"github.com/eaglebank/ledger-service/shared/logger"
	"github.com/eaglebank/ledger-service/shared/middleware"
	redisClient "github.com/eaglebank/ledger-service/shared/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New(getEnv("LOG_FORMAT", "console"))
	if level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Event publishing is optional: without REDIS_ADDR ledger events are dropped.
	var publisher command.EventPublisher = events.NopPublisher{}
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redis, err := redisClient.NewClient(ctx, redisClient.Config{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client, int64(getEnvInt("EVENT_STREAM_MAXLEN", 10000)))
		log.Info().Str("addr", redisAddr).Str("stream", events.LedgerEventsStream).Msg("Publishing ledger events to Redis")
	}

	ledger := service.NewLedger(publisher, log)

	accountHandler := handler.NewAccountHandler(ledger.AccountCommands, ledger.AccountQueries)
	transactionHandler := handler.NewTransactionHandler(ledger.TransactionCommands, ledger.TransactionQueries)

	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware(log), middleware.BodyLimit(int64(getEnvInt("MAX_BODY_BYTES", 64<<10))))
	handler.RegisterRoutes(router, accountHandler, transactionHandler)

	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Msg("Ledger service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}
