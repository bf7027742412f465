package event

import (
	"fmt"
	"regexp"
	"time"

	"calendar-clipper/pkg/timeparse"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve combines a calendar date and two time-of-day strings into
// concrete start/end instants in the given timezone.
//
// An empty endTime defaults to one hour after the start (minute
// preserved, hour wrapping modulo 24). When the naive end does not
// exceed the start, the end date is rolled forward one day: events
// crossing midnight are assumed rather than rejected, so the user
// never has to enter two dates.
//
// An unknown timezone falls back to the process-local zone, matching
// the extension running in the user's own environment.
func Resolve(date, startTime, endTime, timezone string) (ResolvedTimeRange, error) {
	if !dateRe.MatchString(date) {
		return ResolvedTimeRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	day, err := time.Parse(DateFormatISO, date)
	if err != nil {
		return ResolvedTimeRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	start, err := timeparse.Parse(startTime)
	if err != nil {
		return ResolvedTimeRange{}, fmt.Errorf("%w: start %q", ErrInvalidTime, startTime)
	}

	var end timeparse.TimeOfDay
	if endTime == "" {
		end = start.AddHours(1)
	} else {
		end, err = timeparse.Parse(endTime)
		if err != nil {
			return ResolvedTimeRange{}, fmt.Errorf("%w: end %q", ErrInvalidTime, endTime)
		}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.Local
	}

	startAt := time.Date(day.Year(), day.Month(), day.Day(), start.Hour, start.Minute, 0, 0, loc)
	endAt := time.Date(day.Year(), day.Month(), day.Day(), end.Hour, end.Minute, 0, 0, loc)

	overnight := false
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
		overnight = true
	}

	if !endAt.After(startAt) {
		return ResolvedTimeRange{}, fmt.Errorf("%w: %s .. %s", ErrEndBeforeStart, startAt, endAt)
	}

	return ResolvedTimeRange{
		Start:     startAt,
		End:       endAt,
		Timezone:  loc.String(),
		Overnight: overnight,
	}, nil
}
