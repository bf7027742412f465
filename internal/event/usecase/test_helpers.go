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

// Test doubles shared across the usecase tests.

type fakeBackend struct {
	candidate *extractor.CandidateEvent
	err       error
	calls     int
	lastReq   extractor.ProcessRequest
}

func (f *fakeBackend) ProcessEvent(ctx context.Context, req extractor.ProcessRequest) (*extractor.CandidateEvent, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.candidate, nil
}

type fakeCreds struct {
	token           string
	silentErr       error
	interactiveErr  error
	invalidateCalls int
}

func (f *fakeCreds) Token(ctx context.Context, interactive bool) (string, error) {
	if !interactive {
		if f.silentErr != nil {
			return "", f.silentErr
		}
		return f.token, nil
	}
	if f.interactiveErr != nil {
		return "", f.interactiveErr
	}
	return f.token, nil
}

func (f *fakeCreds) Invalidate() { f.invalidateCalls++ }

type fakeWriter struct {
	created *gcalendar.Event
	err     error
	lastReq gcalendar.CreateEventRequest
}

func (f *fakeWriter) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

type fakeNotifier struct {
	outcomes []telemetry.SaveOutcome
}

func (f *fakeNotifier) Notify(outcome telemetry.SaveOutcome) {
	f.outcomes = append(f.outcomes, outcome)
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func newTestUseCase(backend ExtractionService, creds *fakeCreds, writer *fakeWriter, notifier *fakeNotifier) *implUseCase {
	factory := CalendarFactory(nil)
	if writer != nil {
		factory = func(ctx context.Context, token string) (CalendarWriter, error) {
			return writer, nil
		}
	}
	uc := New(
		testLogger(),
		backend,
		event.NewCache(event.DefaultCacheMaxItems, event.DefaultCacheTTL),
		providerOrNil(creds),
		factory,
		notifierOrNil(notifier),
		"primary",
		"UTC",
	)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func providerOrNil(f *fakeCreds) credential.Provider {
	if f == nil {
		return nil
	}
	return f
}

func notifierOrNil(f *fakeNotifier) Notifier {
	if f == nil {
		return nil
	}
	return f
}
