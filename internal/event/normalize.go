package event

import (
	"time"

	"calendar-clipper/pkg/extractor"
	"calendar-clipper/pkg/timeparse"
)

// Normalize maps a raw extraction result to a complete event record.
// It never fails; missing fields get defaults. Field-name aliases
// (camelCase vs snake_case) are already resolved by the candidate's
// decoder, camelCase winning.
//
// The end-time default is derived from the start time plus one hour so
// that a service result carrying only a start does not collapse into a
// zero-length range. With the default start of 12:00 PM that yields the
// classic 1:00 PM default.
func Normalize(c extractor.CandidateEvent, rawText string, now time.Time) NormalizedEvent {
	ev := NormalizedEvent{
		Title:           c.Title,
		Date:            c.Date,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		Location:        c.Location,
		Description:     c.Description,
		Attendees:       make([]string, 0, len(c.Attendees)),
		RawText:         rawText,
		ErrorCode:       c.ErrorCode,
		ExtractionError: c.ExtractionError,
	}

	if ev.Title == "" {
		ev.Title = DefaultTitle
	}
	if ev.Date == "" {
		ev.Date = now.Format(DateFormatISO)
	}
	if ev.StartTime == "" {
		ev.StartTime = DefaultStartTime
	}
	if ev.EndTime == "" {
		ev.EndTime = defaultEndTime(ev.StartTime)
	}

	for _, a := range c.Attendees {
		if a.Email != "" {
			ev.Attendees = append(ev.Attendees, a.Email)
		}
	}

	return ev
}

// defaultEndTime is the start time plus one hour, rendered 12-hour.
func defaultEndTime(startTime string) string {
	start, err := timeparse.Parse(startTime)
	if err != nil {
		return DefaultEndTime
	}
	return start.AddHours(1).Format12()
}
