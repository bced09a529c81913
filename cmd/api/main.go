package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/smarthub/restaurant-backend/internal/api/router"
	"github.com/smarthub/restaurant-backend/internal/cart"
	"github.com/smarthub/restaurant-backend/internal/chat"
	appconfig "github.com/smarthub/restaurant-backend/internal/config"
	"github.com/smarthub/restaurant-backend/internal/contact"
	"github.com/smarthub/restaurant-backend/internal/favorites"
	"github.com/smarthub/restaurant-backend/internal/llm"
	"github.com/smarthub/restaurant-backend/internal/menu"
	"github.com/smarthub/restaurant-backend/internal/notify"
	"github.com/smarthub/restaurant-backend/internal/observability/metrics"
	"github.com/smarthub/restaurant-backend/internal/payments"
	"github.com/smarthub/restaurant-backend/internal/reservations"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

func main() {
	// Load .env in development; the file is optional.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting restaurant-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Menu store, optionally fronted by Redis.
	menuRepo := menu.NewPostgresRepository(pool)
	var menuStore menu.Repository = menuRepo
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		menuStore = menu.NewCache(menuRepo, rdb, cfg.MenuCacheTTL, logger)
		logger.Info("menu cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.MenuCacheTTL.String())
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	chatMetrics := metrics.NewChatMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Chat assistant (enabled only when a Gemini key is configured)
	var chatHandler *chat.Handler
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gemini.Close() }()

		generator := llm.NewRetryClient(gemini, logger).
			WithMaxRetries(cfg.ChatMaxRetries).
			WithBaseDelay(cfg.ChatRetryBaseDelay).
			WithRetryHook(func(int, time.Duration) { chatMetrics.ObserveRetry() })

		info := chat.DefaultInfo()
		info.Name = cfg.RestaurantName
		info.Phone = cfg.RestaurantPhone
		info.Address = cfg.RestaurantAddress
		info.ReservationURL = cfg.SiteBaseURL + "/reservation"

		chatSvc := chat.NewService(generator, menuStore, info, logger).
			WithMetrics(chatMetrics).
			WithMaxTokens(int32(cfg.ChatMaxTokens))
		chatHandler = chat.NewHandler(chatSvc, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat endpoints disabled")
	}

	// Email
	var emailSender notify.EmailSender = notify.NewStubEmailSender(logger)
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	}

	reservationSvc := reservations.NewService(
		reservations.NewPostgresRepository(pool),
		emailSender,
		reservations.RestaurantDetails{
			Name:    cfg.RestaurantName,
			Phone:   cfg.RestaurantPhone,
			Address: cfg.RestaurantAddress,
		},
		logger,
	)

	var paymentsHandler *payments.Handler
	if cfg.StripeSecretKey != "" {
		intents := payments.NewStripeIntentService(cfg.StripeSecretKey, logger)
		paymentsHandler = payments.NewHandler(intents, menuRepo, logger)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	r := router.New(&router.Config{
		Logger:              logger,
		MenuHandler:         menu.NewHandler(menuStore, logger),
		ChatHandler:         chatHandler,
		ContactHandler:      contact.NewHandler(contact.NewPostgresRepository(pool), logger),
		ReservationsHandler: reservations.NewHandler(reservationSvc, logger),
		PaymentsHandler:     paymentsHandler,
		CartHandler:         cart.NewHandler(cart.NewPostgresRepository(pool), logger),
		FavoritesHandler:    favorites.NewHandler(favorites.NewPostgresRepository(pool), logger),
		MetricsHandler:      metricsHandler,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		SupabaseJWTSecret:   cfg.SupabaseJWTSecret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
