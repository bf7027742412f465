package event_test

import (
	"errors"
	"testing"
	"time"

	"calendar-clipper/internal/event"
)

func TestResolve(t *testing.T) {
	t.Run("Same-day range", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "9:00 AM", "10:30 AM", "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
			t.Errorf("got %v..%v, want %v..%v", got.Start, got.End, wantStart, wantEnd)
		}
		if got.Overnight {
			t.Errorf("ordinary same-day range must not roll over")
		}
	})

	t.Run("Overnight rollover", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "11:00 PM", "1:00 AM", "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.End.Day() != 11 {
			t.Errorf("expected end rolled to March 11, got %v", got.End)
		}
		if !got.Overnight {
			t.Errorf("expected overnight flag")
		}
		if !got.End.After(got.Start) {
			t.Errorf("end must strictly follow start")
		}
	})

	t.Run("Equal times roll over too", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "9:00 AM", "9:00 AM", "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Overnight || got.End.Day() != 11 {
			t.Errorf("expected next-day end for equal times, got %v", got.End)
		}
	})

	t.Run("Missing end defaults to start plus one hour", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "9:30 AM", "", "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
		if !got.End.Equal(want) {
			t.Errorf("got end %v, want %v", got.End, want)
		}
	})

	t.Run("Default end wraps past midnight", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "11:30 PM", "", "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)
		if !got.End.Equal(want) {
			t.Errorf("got end %v, want %v", got.End, want)
		}
	})

	t.Run("Named zone carried through", func(t *testing.T) {
		got, err := event.Resolve("2025-03-10", "9:00 AM", "", "America/New_York")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Timezone != "America/New_York" {
			t.Errorf("unexpected timezone: %q", got.Timezone)
		}
		if got.Start.Location().String() != "America/New_York" {
			t.Errorf("instants must be zone-qualified, got %v", got.Start.Location())
		}
	})

	t.Run("Invalid date shape", func(t *testing.T) {
		_, err := event.Resolve("not-a-date", "9:00 AM", "", "UTC")
		if !errors.Is(err, event.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Impossible calendar date", func(t *testing.T) {
		_, err := event.Resolve("2025-13-40", "9:00 AM", "", "UTC")
		if !errors.Is(err, event.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Invalid time", func(t *testing.T) {
		_, err := event.Resolve("2025-03-10", "nine-ish", "", "UTC")
		if !errors.Is(err, event.ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime, got %v", err)
		}
	})
}
