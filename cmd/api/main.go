package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"smart-travel-planner/config"
	_ "smart-travel-planner/docs" // Swagger docs
	"smart-travel-planner/internal/app"
	"smart-travel-planner/internal/httpserver"
	"smart-travel-planner/pkg/log"
	"smart-travel-planner/pkg/telemetry"
)

// @title       Smart Travel Planner API
// @description Personalized travel itineraries from free-text requests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Local .env, if any
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := telemetry.Init(telemetry.Config{
		ServiceName:    httpserver.ServiceName,
		TracingEnabled: cfg.Telemetry.TracingEnabled,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing disabled: %v", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(flushCtx)
		}()
	}

	// 4. Pipeline
	application, err := app.Build(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Errorf(ctx, "Failed to build planner: %v", err)
		return
	}
	defer application.Close()

	// Retrieval uses keyword matching until the index is ready.
	if application.Index != nil {
		go func() {
			ran, err := application.WarmIndex(ctx)
			if err != nil {
				logger.Warnf(ctx, "Knowledge indexing failed, staying on keyword retrieval: %v", err)
				return
			}
			if !ran {
				logger.Infof(ctx, "Knowledge index already populated, skipping embedding")
				return
			}
			logger.Infof(ctx, "Knowledge index ready (%d documents)", len(application.Docs))
		}()
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TracingEnabled:  cfg.Telemetry.TracingEnabled,
		MetricsEnabled:  cfg.Telemetry.MetricsEnabled,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ReadyCheck:      application.Ready,
		PlannerUseCase:  application.Planner,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
