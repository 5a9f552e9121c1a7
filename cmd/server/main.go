package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/http/handler"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/http/middleware"
	redisAdapter "github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/storage/redis"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/upstream/salebot"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/infrastructure/config"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/infrastructure/logger"
	infraRedis "github.com/egorsokolov/mortgage-miniapp-api/internal/infrastructure/redis"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/calculate"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/check_rate_limit"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/forward_lead"
)

func main() {
	// 1. Setup logger
	log := logger.New()
	log.Info("Starting Mortgage Mini-App API")

	// 2. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	log.Info("Configuration loaded",
		"port", cfg.ServerPort,
		"redis", fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		"rate_limit", cfg.RateLimit,
		"rate_window", cfg.RateWindow,
		"origins", len(cfg.AllowedOrigins),
	)

	// 3. Connect Redis
	redisClient, err := infraRedis.NewClient(cfg)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info("Connected to Redis")

	// Diagnostic log for upstream transport failures
	upstreamLog, upstreamLogCloser, err := logger.NewUpstreamErrorLog(cfg.UpstreamErrorLog)
	if err != nil {
		log.Error("Failed to open upstream error log", "error", err)
		os.Exit(1)
	}
	defer upstreamLogCloser.Close()

	// 4. Assemble layers (Dependency Injection)

	// Storage layer
	storage := redisAdapter.NewRedisStorage(redisClient)

	// Upstream layer
	upstream := salebot.NewClient(cfg.SalebotBaseURL, cfg.SalebotAPIKey,
		cfg.UpstreamConnectTimeout, cfg.UpstreamTimeout)

	// Use case layer
	checkRateLimitUC := check_rate_limit.NewUseCase(storage)
	forwardLeadUC := forward_lead.NewUseCase(upstream, forward_lead.Credentials{
		APIKey:    cfg.SalebotAPIKey,
		GroupID:   cfg.SalebotGroupID,
		GroupIDVK: cfg.SalebotGroupIDVK,
	})
	calculateUC := calculate.NewUseCase()

	// Middleware layer
	trustGate := middleware.NewTrustGate(cfg.AllowedOrigins)
	methodGate := middleware.NewMethodGate(trustGate)
	admission := middleware.NewAdmission(cfg.MaxBodyBytes)
	rateLimiterMW := middleware.NewRateLimiterMiddleware(checkRateLimitUC, cfg.RateLimit, cfg.RateWindow)

	// Handler layer
	relayHandler := handler.NewRelayHandler(forwardLeadUC, cfg.MaxBodyBytes, upstreamLog)
	calculateHandler := handler.NewCalculateHandler(calculateUC)
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	// 5. Setup HTTP Router
	r := chi.NewRouter()

	// Health stays outside the admission pipeline
	r.Get("/health", healthHandler.ServeHTTP)

	// The gates run before routing on the mounted subrouter, so OPTIONS
	// and wrong methods are answered by the method gate itself.
	api := chi.NewRouter()
	api.Use(methodGate.Handle)
	api.Use(admission.Handle)
	api.Use(rateLimiterMW.Handle)
	api.Use(trustGate.Handle)
	api.Post("/lead", relayHandler.ServeHTTP)
	api.Post("/calculate", calculateHandler.ServeHTTP)
	r.Mount("/api", api)

	// 6. HTTP Server
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 7. Start server in a goroutine
	go func() {
		log.Info("Server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Mortgage Mini-App API stopped")
}
