package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-clipper/internal/event"
	"calendar-clipper/pkg/credential"
	"calendar-clipper/pkg/gcalendar"
	"calendar-clipper/pkg/telemetry"
	"calendar-clipper/pkg/timeparse"
)

// Submit validates the user-edited event, resolves its times, and
// writes it to the calendar provider. Validation and submission
// failures leave the caller's event untouched so the form can be
// retried without data loss.
func (uc *implUseCase) Submit(ctx context.Context, input event.SubmitInput) (event.SubmitResult, error) {
	started := uc.now()

	ev := input.Event
	ev.StartTime = timeparse.RepairNaN(ev.StartTime)
	ev.EndTime = timeparse.RepairNaN(ev.EndTime)
	if ev.Title == "" {
		ev.Title = event.DefaultTitle
	}

	if err := event.ValidateForSubmit(ev); err != nil {
		return event.SubmitResult{}, err
	}

	tz := uc.timezoneFor(input.Timezone)
	resolved, err := event.Resolve(ev.Date, ev.StartTime, ev.EndTime, tz)
	if err != nil {
		return event.SubmitResult{}, err
	}

	token, err := uc.token(ctx)
	if err != nil {
		uc.notify(ev, "", false, err.Error(), started)
		return event.SubmitResult{}, err
	}

	writer, err := uc.newWriter(ctx, token)
	if err != nil {
		uc.notify(ev, "", false, err.Error(), started)
		return event.SubmitResult{}, fmt.Errorf("failed to build calendar client: %w", err)
	}

	created, err := writer.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     ev.Title,
		Location:    ev.Location,
		Description: ev.Description,
		StartTime:   resolved.Start,
		EndTime:     resolved.End,
		Timezone:    resolved.Timezone,
		Attendees:   ev.Attendees,
	})
	if err != nil {
		mapped := uc.mapCalendarError(ctx, err)
		uc.notify(ev, "", false, mapped.Error(), started)
		return event.SubmitResult{}, mapped
	}

	duration := uc.now().Sub(started).Milliseconds()
	uc.l.Infof(ctx, "Submit: created event %s (%s .. %s)", created.ID, resolved.Start, resolved.End)
	uc.notify(ev, created.ID, true, "", started)

	return event.SubmitResult{
		EventID:    created.ID,
		HtmlLink:   created.HtmlLink,
		Resolved:   resolved,
		DurationMs: duration,
	}, nil
}

// AuthStatus reports whether a credential is silently available.
func (uc *implUseCase) AuthStatus(ctx context.Context) event.AuthResult {
	if uc.creds == nil {
		return event.AuthResult{}
	}
	_, err := uc.creds.Token(ctx, false)
	return event.AuthResult{Authenticated: err == nil}
}

// Authenticate attempts the interactive credential flow. When consent
// is needed the result carries the URL to send the user to.
func (uc *implUseCase) Authenticate(ctx context.Context) (event.AuthResult, error) {
	if uc.creds == nil {
		return event.AuthResult{}, event.ErrAuthFailed
	}

	_, err := uc.creds.Token(ctx, true)
	if err == nil {
		return event.AuthResult{Authenticated: true}, nil
	}

	var authErr *credential.AuthorizationRequiredError
	if errors.As(err, &authErr) {
		return event.AuthResult{AuthURL: authErr.URL}, nil
	}
	return event.AuthResult{}, fmt.Errorf("%w: %v", event.ErrAuthFailed, err)
}

// token tries the silent credential path first; interactive prompting
// is a fallback only.
func (uc *implUseCase) token(ctx context.Context) (string, error) {
	if uc.creds == nil {
		return "", event.ErrAuthFailed
	}

	token, err := uc.creds.Token(ctx, false)
	if err == nil {
		return token, nil
	}

	token, err = uc.creds.Token(ctx, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", event.ErrAuthFailed, err)
	}
	return token, nil
}

// mapCalendarError translates a provider failure into the submission
// taxonomy. A 401 invalidates the credential immediately: the same
// token is never retried.
func (uc *implUseCase) mapCalendarError(ctx context.Context, err error) error {
	if gcalendar.IsUnauthorized(err) {
		uc.l.Warnf(ctx, "Submit: credential rejected (401), invalidating")
		uc.creds.Invalidate()
		return fmt.Errorf("%w: %v", event.ErrAuthExpired, err)
	}

	return &event.CalendarAPIError{
		Message: gcalendar.APIErrorMessage(err),
		Err:     err,
	}
}

// notify ships the save outcome on a detached best-effort path.
// Telemetry failures never reach the user-visible flow.
func (uc *implUseCase) notify(ev event.NormalizedEvent, eventID string, success bool, errMsg string, started time.Time) {
	if uc.telemetry == nil {
		return
	}
	uc.telemetry.Notify(telemetry.SaveOutcome{
		Success:        success,
		EventID:        eventID,
		EventTitle:     ev.Title,
		EventDate:      ev.Date,
		EventStartTime: ev.StartTime,
		EventEndTime:   ev.EndTime,
		Error:          errMsg,
		SaveDurationMs: uc.now().Sub(started).Milliseconds(),
	})
}
