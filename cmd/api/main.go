package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/bookmehq/bookme-server/internal/api/router"
	"github.com/bookmehq/bookme-server/internal/booking"
	"github.com/bookmehq/bookme-server/internal/business"
	appconfig "github.com/bookmehq/bookme-server/internal/config"
	"github.com/bookmehq/bookme-server/internal/describe"
	"github.com/bookmehq/bookme-server/internal/observability/metrics"
	"github.com/bookmehq/bookme-server/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting bookme API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis ping failed", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	store := business.NewStore(redisClient, cfg.DefaultCountryCode)

	var generator describe.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := describe.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to initialize Gemini generator", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		generator = gemini
		logger.Info("description generation enabled", "model", cfg.GeminiModelID)
	} else {
		logger.Info("description generation disabled, GEMINI_API_KEY not set")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	webhook := booking.NewWebhookClient(cfg.BookingWebhookURL, cfg.BookingWebhookTimeout, logger)
	submitter := booking.NewSubmitter(webhook, logger, bookingMetrics)

	businessHandler := business.NewHandler(store, generator, logger)
	bookingHandler := booking.NewHandler(store, submitter, logger, bookingMetrics)

	if cfg.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, dashboard endpoints will reject all requests")
	}

	r := router.New(&router.Config{
		Logger:             logger,
		BusinessHandler:    businessHandler,
		BookingHandler:     bookingHandler,
		MetricsHandler:     metricsHandler,
		AdminJWTSecret:     cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
