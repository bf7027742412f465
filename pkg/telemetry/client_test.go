package telemetry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgLog "calendar-clipper/pkg/log"
	"calendar-clipper/pkg/telemetry"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func TestNotify(t *testing.T) {
	t.Run("Delivers record", func(t *testing.T) {
		received := make(chan telemetry.SaveOutcome, 1)
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var outcome telemetry.SaveOutcome
			json.NewDecoder(r.Body).Decode(&outcome)
			received <- outcome
		}))
		defer ts.Close()

		client := telemetry.NewClient(ts.URL, testLogger())
		client.Notify(telemetry.SaveOutcome{
			Success:        true,
			EventID:        "event-123",
			EventTitle:     "Lunch with Sam",
			SaveDurationMs: 42,
		})

		select {
		case outcome := <-received:
			if !outcome.Success || outcome.EventID != "event-123" {
				t.Errorf("unexpected outcome: %+v", outcome)
			}
			if outcome.RecordID == "" {
				t.Errorf("expected a record id to be assigned")
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("telemetry record never arrived")
		}
	})

	t.Run("Sink failure is swallowed", func(t *testing.T) {
		client := telemetry.NewClient("http://127.0.0.1:1", testLogger())
		// Must not panic or block the caller.
		client.Notify(telemetry.SaveOutcome{Success: false, Error: "boom"})
	})

	t.Run("Disabled when URL empty", func(t *testing.T) {
		client := telemetry.NewClient("", testLogger())
		client.Notify(telemetry.SaveOutcome{Success: true})
	})
}
