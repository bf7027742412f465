package usecase

import (
	"context"
	"strings"
	"time"

	"calendar-clipper/internal/event"
	"calendar-clipper/pkg/extractor"
)

// Process runs the extraction flow for one user-initiated selection:
// cache check, backend call, normalization, cache store. The returned
// result is terminal: ready with an event, or error with a classified
// outcome and the manual-entry offer.
func (uc *implUseCase) Process(ctx context.Context, input event.ProcessInput) (event.ProcessResult, error) {
	text := input.Text
	if strings.TrimSpace(text) == "" {
		return event.ProcessResult{}, event.ErrEmptyText
	}

	uc.l.Debugf(ctx, "Process: state=%s text_length=%d", event.StateLoading, len(text))

	// A fresh user trigger for the same text invalidates the previous
	// entry first, so a stale earlier result can never shadow the new
	// response.
	if input.ForceRefresh {
		uc.cache.Remove(text)
	}

	if cached, ok := uc.cache.Get(text); ok {
		uc.l.Infof(ctx, "Process: cache hit for fingerprint %q", event.Fingerprint(text))
		return event.ProcessResult{State: event.StateReady, Event: cached, FromCache: true}, nil
	}

	capturedAt := input.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = uc.now()
	}

	candidate, err := uc.backend.ProcessEvent(ctx, extractor.ProcessRequest{
		Text:         text,
		CurrentTime:  capturedAt.Format(time.RFC3339),
		UserTimezone: uc.timezoneFor(input.Timezone),
		Context:      extractor.Context{TimeContext: inferTimeContext(text)},
	})
	if err != nil {
		outcome := event.Classify(err)
		uc.l.Warnf(ctx, "Process: extraction failed code=%s: %v", outcome.Code, err)
		return event.ProcessResult{
			State:            event.StateError,
			Outcome:          outcome,
			AllowManualEntry: true,
			RawText:          text,
		}, nil
	}

	// Backend-reported error with no usable title: hard failure.
	if candidate.ErrorCode != "" && candidate.Title == "" {
		uc.l.Warnf(ctx, "Process: backend error %s with no usable fields", candidate.ErrorCode)
		return event.ProcessResult{
			State:            event.StateError,
			Outcome:          event.BackendOutcome(candidate.ErrorCode, candidate.ExtractionError),
			AllowManualEntry: true,
			RawText:          text,
		}, nil
	}

	// An error code alongside a usable title is a soft failure: the
	// form is filled and the warning rides along on the event.
	normalized := event.Normalize(*candidate, text, capturedAt)
	uc.cache.Put(text, normalized)

	if normalized.ErrorCode != "" {
		uc.l.Infof(ctx, "Process: partial extraction %s, proceeding with usable fields", normalized.ErrorCode)
	}

	return event.ProcessResult{State: event.StateReady, Event: normalized}, nil
}

// ManualEntry builds the fallback form seed: blank title and location,
// the raw selection as description.
func (uc *implUseCase) ManualEntry(input event.ManualInput) event.NormalizedEvent {
	now := uc.now()
	return event.NormalizedEvent{
		Title:       "",
		Date:        now.Format(event.DateFormatISO),
		StartTime:   event.DefaultStartTime,
		EndTime:     event.DefaultEndTime,
		Location:    "",
		Description: input.Text,
		Attendees:   []string{},
		RawText:     input.Text,
	}
}

func (uc *implUseCase) timezoneFor(requested string) string {
	if requested != "" {
		return requested
	}
	return uc.timezone
}
