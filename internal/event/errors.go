package event

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the event package.
var (
	ErrEmptyText      = errors.New("selection text is empty")
	ErrInvalidDate    = errors.New("invalid date format")
	ErrInvalidTime    = errors.New("invalid time format")
	ErrEndBeforeStart = errors.New("end time is not after start time")
	ErrInvalidEmail   = errors.New("invalid attendee email")
	ErrAuthFailed     = errors.New("calendar authentication failed")
	ErrAuthExpired    = errors.New("calendar credential expired")
)

// CalendarAPIError is a non-auth failure from the calendar provider.
// The provider message is kept for user display.
type CalendarAPIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *CalendarAPIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("calendar API error: %s", e.Message)
	}
	return fmt.Sprintf("calendar API error (status %d)", e.StatusCode)
}

func (e *CalendarAPIError) Unwrap() error {
	return e.Err
}
