package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a string matches neither the
// 24-hour "HH:MM" nor the 12-hour "H:MM AM/PM" shape.
var ErrInvalidTimeFormat = errors.New("invalid time format")

var (
	re24  = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	re12  = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	reNaN = regexp.MustCompile(`(?i)^(\d+):NaN\s*(AM|PM)$`)
)

// Parse converts a time string to a TimeOfDay.
//
// Two shapes are accepted: strict 24-hour "HH:MM" and 12-hour
// "H:MM AM/PM" (meridiem case-insensitive, space optional). A minute
// field of the literal text "NaN" is repaired to "00" before matching;
// it shows up when an upstream numeric formatter fails.
func Parse(timeStr string) (TimeOfDay, error) {
	s := strings.TrimSpace(timeStr)

	if m := reNaN.FindStringSubmatch(s); m != nil {
		s = fmt.Sprintf("%s:00 %s", m[1], strings.ToUpper(m[2]))
	}

	if m := re24.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if m := re12.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
		}

		isPM := strings.EqualFold(m[3], "PM")
		if isPM && hour != 12 {
			hour += 12
		}
		if !isPM && hour == 12 {
			hour = 0
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
}

// RepairNaN rewrites the "H:NaN AM/PM" corruption to "H:00 AM/PM".
// Any other string is returned unchanged.
func RepairNaN(timeStr string) string {
	if !strings.Contains(timeStr, "NaN") {
		return timeStr
	}
	m := reNaN.FindStringSubmatch(strings.TrimSpace(timeStr))
	if m == nil {
		return timeStr
	}
	return fmt.Sprintf("%s:00 %s", m[1], strings.ToUpper(m[2]))
}
