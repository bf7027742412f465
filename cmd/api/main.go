package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	calendar "google.golang.org/api/calendar/v3"

	"calendar-clipper/config"
	"calendar-clipper/internal/event"
	"calendar-clipper/internal/event/usecase"
	"calendar-clipper/internal/httpserver"
	"calendar-clipper/pkg/credential"
	"calendar-clipper/pkg/extractor"
	"calendar-clipper/pkg/log"
	"calendar-clipper/pkg/telemetry"
)

// @title       Calendar Clipper API
// @description Turns selected text into calendar events: AI-backed extraction, normalization, and Google Calendar submission.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Calendar Clipper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Extractor URL: %s", cfg.Extractor.BaseURL)

	// 3. Extraction backend client
	backend := extractor.NewClient(cfg.Extractor.BaseURL, cfg.Extractor.Timeout)

	// 4. Google Calendar credentials (optional: submission fails with an
	// auth error until configured, extraction still works)
	var creds credential.Provider
	if cfg.GoogleCalendar.CredentialsPath != "" {
		provider, credErr := credential.NewOAuthProviderFromFile(
			cfg.GoogleCalendar.CredentialsPath,
			cfg.GoogleCalendar.TokenPath,
			calendar.CalendarEventsScope,
		)
		if credErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", credErr)
		} else {
			creds = provider
			logger.Info(ctx, "Google Calendar credentials loaded")
		}
	}

	// 5. Telemetry sink (optional)
	tel := telemetry.NewClient(cfg.Telemetry.URL, logger)

	// 6. Event UseCase
	cache := event.NewCache(cfg.Cache.MaxItems, cfg.Cache.TTL)
	eventUC := usecase.New(
		logger,
		backend,
		cache,
		creds,
		nil,
		tel,
		cfg.GoogleCalendar.CalendarID,
		cfg.GoogleCalendar.Timezone,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		EventUseCase:        eventUC,
		RateLimitPerMin:     cfg.RateLimit.ExtractPerMin,
		ExtractorConfigured: cfg.Extractor.BaseURL != "",
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
