package event

import (
	"fmt"
	"regexp"

	"calendar-clipper/pkg/timeparse"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateForSubmit re-checks the user-edited event before the
// calendar write. Failures block submission and are surfaced inline;
// the caller keeps the form populated.
func ValidateForSubmit(ev NormalizedEvent) error {
	if !dateRe.MatchString(ev.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, ev.Date)
	}

	if _, err := timeparse.Parse(timeparse.RepairNaN(ev.StartTime)); err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidTime, ev.StartTime)
	}
	if ev.EndTime != "" {
		if _, err := timeparse.Parse(timeparse.RepairNaN(ev.EndTime)); err != nil {
			return fmt.Errorf("%w: end %q", ErrInvalidTime, ev.EndTime)
		}
	}

	for _, email := range ev.Attendees {
		if !emailRe.MatchString(email) {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
		}
	}

	return nil
}
