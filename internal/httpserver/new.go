package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-clipper/internal/event"
	pkgLog "calendar-clipper/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Event domain
	eventUC event.UseCase

	// Extraction rate limit, requests per minute per client. Zero
	// disables limiting.
	rateLimitPerMin int

	// Surfaced on /health so a misconfigured deploy is visible without
	// triggering an extraction.
	extractorConfigured bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	EventUseCase event.UseCase

	RateLimitPerMin     int
	ExtractorConfigured bool
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		eventUC:             cfg.EventUseCase,
		rateLimitPerMin:     cfg.RateLimitPerMin,
		extractorConfigured: cfg.ExtractorConfigured,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	return nil
}
