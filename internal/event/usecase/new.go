package usecase

import (
	"context"
	"time"

	"calendar-clipper/internal/event"
	"calendar-clipper/pkg/credential"
	"calendar-clipper/pkg/extractor"
	"calendar-clipper/pkg/gcalendar"
	pkgLog "calendar-clipper/pkg/log"
	"calendar-clipper/pkg/telemetry"
)

// ExtractionService is the extraction backend collaborator.
type ExtractionService interface {
	ProcessEvent(ctx context.Context, req extractor.ProcessRequest) (*extractor.CandidateEvent, error)
}

// CalendarWriter is the calendar-write collaborator.
type CalendarWriter interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarFactory builds a CalendarWriter bound to a bearer token.
type CalendarFactory func(ctx context.Context, token string) (CalendarWriter, error)

// Notifier is the best-effort save-outcome sink.
type Notifier interface {
	Notify(outcome telemetry.SaveOutcome)
}

type implUseCase struct {
	l          pkgLog.Logger
	backend    ExtractionService
	cache      *event.ResultCache
	creds      credential.Provider
	newWriter  CalendarFactory
	telemetry  Notifier
	calendarID string
	timezone   string // fallback when the request carries none
	now        func() time.Time
}

// New creates a new event UseCase instance.
func New(
	l pkgLog.Logger,
	backend ExtractionService,
	cache *event.ResultCache,
	creds credential.Provider,
	newWriter CalendarFactory,
	tel Notifier,
	calendarID string,
	timezone string,
) *implUseCase {
	if newWriter == nil {
		newWriter = func(ctx context.Context, token string) (CalendarWriter, error) {
			return gcalendar.NewClientWithToken(ctx, token)
		}
	}
	if cache == nil {
		cache = event.NewCache(event.DefaultCacheMaxItems, event.DefaultCacheTTL)
	}
	return &implUseCase{
		l:          l,
		backend:    backend,
		cache:      cache,
		creds:      creds,
		newWriter:  newWriter,
		telemetry:  tel,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
