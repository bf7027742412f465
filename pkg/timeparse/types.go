package timeparse

import "time"

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// AddHours returns the time of day n hours later, wrapping modulo 24.
// The minute of the hour is preserved.
func (t TimeOfDay) AddHours(n int) TimeOfDay {
	h := (t.Hour + n) % 24
	if h < 0 {
		h += 24
	}
	return TimeOfDay{Hour: h, Minute: t.Minute}
}

// Format12 renders the time in 12-hour "3:04 PM" form.
func (t TimeOfDay) Format12() string {
	ref := time.Date(2000, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC)
	return ref.Format("3:04 PM")
}
