package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"farmadvice-backend/internal/config"
	"farmadvice-backend/internal/database"
	"farmadvice-backend/internal/handlers"
	"farmadvice-backend/internal/logger"
	"farmadvice-backend/internal/middleware"
	"farmadvice-backend/internal/router"
	"farmadvice-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	log.Info("🚀 Starting Farm Advice Backend...", zap.String("env", cfg.Env))

	// ──── Step 2: Initialize Inference Provider ────
	var generator services.Generator
	switch {
	case cfg.InferenceKey() == "":
		log.Warn("✗ Inference API key not configured, serving fallback advice only",
			zap.String("provider", cfg.InferenceProvider))
	case cfg.InferenceProvider == config.ProviderGemini:
		gemini, err := services.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("✗ Gemini client initialization failed", zap.Error(err))
		}
		defer gemini.Close()
		generator = gemini
		log.Info("✓ Gemini client initialized", zap.String("model", cfg.GeminiModel))
	default:
		generator = services.NewHuggingFaceGenerator(cfg.HFAPIKey, cfg.HFAPIURL, cfg.HFModel, cfg.InferenceTimeout)
		log.Info("✓ Hugging Face client initialized", zap.String("model", cfg.HFModel))
	}

	advisor := services.NewAdvisor(generator, log)

	// ──── Step 3: Initialize Rate Limiter ────
	var adviceLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("✗ Redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		adviceLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute, log)
		log.Info("✓ Redis connected, rate limits shared")
	} else {
		adviceLimiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, log)
		log.Info("✓ In-memory rate limiter ready")
	}
	defer adviceLimiter.Stop()

	// ──── Step 4: Start HTTP Server ────
	adviceHandler := handlers.NewAdviceHandler(advisor)
	r := router.New(log, adviceHandler, adviceLimiter, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Leave room for a cold model to load
		WriteTimeout: cfg.InferenceTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info(fmt.Sprintf("✓ Agricultural API Server ready on http://localhost:%s", cfg.Port),
		zap.Bool("api_key_configured", advisor.Configured()),
		zap.String("provider", cfg.InferenceProvider),
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("Server error", zap.Error(err))
	}
}
