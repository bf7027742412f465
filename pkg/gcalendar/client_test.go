package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"calendar-clipper/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]interface{}
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&gotBody)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Lunch with Sam",
					"htmlLink": "https://calendar.google.com/event-uri"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer ts.Close()

		start := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Lunch with Sam",
			Location:  "Cafe Luna",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Timezone:  "America/New_York",
			Attendees: []string{"sam@example.com"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" {
			t.Errorf("unexpected id: %s", event.ID)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}

		attendees, ok := gotBody["attendees"].([]interface{})
		if !ok || len(attendees) != 1 {
			t.Fatalf("expected 1 attendee in request, got %v", gotBody["attendees"])
		}
		startBody, _ := gotBody["start"].(map[string]interface{})
		if startBody["timeZone"] != "America/New_York" {
			t.Errorf("expected timezone on start, got %v", startBody)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"code": 401, "message": "Invalid Credentials"}}`))
		})
		defer ts.Close()

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
		if err == nil {
			t.Fatalf("expected error")
		}
		if !gcalendar.IsUnauthorized(err) {
			t.Errorf("expected 401 to be detected, got %v", err)
		}
		if msg := gcalendar.APIErrorMessage(err); !strings.Contains(msg, "Invalid Credentials") {
			t.Errorf("expected provider message, got %q", msg)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer ts.Close()

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
		if err == nil {
			t.Fatalf("expected create event error")
		}
		if gcalendar.IsUnauthorized(err) {
			t.Errorf("500 misclassified as unauthorized")
		}
	})
}
