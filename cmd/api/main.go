package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"event-calendar-webhook/config"
	_ "event-calendar-webhook/docs" // Swagger docs
	"event-calendar-webhook/internal/event/usecase"
	"event-calendar-webhook/internal/httpserver"
	"event-calendar-webhook/internal/middleware"
	"event-calendar-webhook/pkg/datemath"
	"event-calendar-webhook/pkg/log"
	"event-calendar-webhook/pkg/openrouter"
)

// @title       Event Calendar Webhook API
// @description Turns free-text event descriptions into a Google Calendar link and a downloadable .ics file.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Event Calendar Webhook...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s, event log driver: %s", cfg.Storage.Driver, cfg.EventLog.Driver)

	// 3. Clock for fallback dates
	clock, err := datemath.NewClock(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	// 4. LLM client
	llm, err := openrouter.New(openrouter.Config{
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
		Referer:  cfg.LLM.Referer,
		AppTitle: cfg.LLM.AppTitle,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	logger.Infof(ctx, "LLM model: %s", llm.Model())

	// 5. File store and event log
	stores, err := newStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close(ctx)

	// 6. Event UseCase
	eventUC := usecase.New(logger, llm, stores.files, stores.sink, clock)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		EventUseCase:    eventUC,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}
