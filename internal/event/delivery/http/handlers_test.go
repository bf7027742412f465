package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-clipper/internal/event"
	"calendar-clipper/internal/middleware"
	pkgLog "calendar-clipper/pkg/log"
)

type fakeUseCase struct {
	processResult event.ProcessResult
	processErr    error
	manualEvent   event.NormalizedEvent
	submitResult  event.SubmitResult
	submitErr     error
	authResult    event.AuthResult
	authErr       error
}

func (f *fakeUseCase) Process(ctx context.Context, input event.ProcessInput) (event.ProcessResult, error) {
	return f.processResult, f.processErr
}

func (f *fakeUseCase) ManualEntry(input event.ManualInput) event.NormalizedEvent {
	return f.manualEvent
}

func (f *fakeUseCase) Submit(ctx context.Context, input event.SubmitInput) (event.SubmitResult, error) {
	return f.submitResult, f.submitErr
}

func (f *fakeUseCase) AuthStatus(ctx context.Context) event.AuthResult {
	return f.authResult
}

func (f *fakeUseCase) Authenticate(ctx context.Context) (event.AuthResult, error) {
	return f.authResult, f.authErr
}

func testRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})

	r := gin.New()
	h := New(l, uc)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, 0))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestExtractHandler(t *testing.T) {
	t.Run("Ready result", func(t *testing.T) {
		uc := &fakeUseCase{processResult: event.ProcessResult{
			State: event.StateReady,
			Event: event.NormalizedEvent{Title: "Lunch with Sam", Date: "2025-06-02"},
		}}
		r := testRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/events/extract", gin.H{"text": "lunch tomorrow"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data extractResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.State != "ready" || resp.Data.Event == nil || resp.Data.Event.Title != "Lunch with Sam" {
			t.Errorf("unexpected body: %+v", resp.Data)
		}
	})

	t.Run("Classified failure still returns 200", func(t *testing.T) {
		uc := &fakeUseCase{processResult: event.ProcessResult{
			State: event.StateError,
			Outcome: event.Outcome{
				Code:        event.CodeBackendTimeout,
				Message:     "Request timed out. Please try again.",
				Recoverable: true,
			},
			AllowManualEntry: true,
			RawText:          "lunch tomorrow",
		}}
		r := testRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/events/extract", gin.H{"text": "lunch tomorrow"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Data extractResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Error == nil || resp.Data.Error.Code != "BACKEND_TIMEOUT" {
			t.Errorf("unexpected error payload: %+v", resp.Data)
		}
		if !resp.Data.AllowManualEntry {
			t.Errorf("manual entry offer missing")
		}
	})

	t.Run("Missing text is a 400", func(t *testing.T) {
		r := testRouter(&fakeUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/events/extract", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty text maps to 400", func(t *testing.T) {
		r := testRouter(&fakeUseCase{processErr: event.ErrEmptyText})
		w := doJSON(t, r, http.MethodPost, "/api/v1/events/extract", gin.H{"text": "  "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestSubmitHandler(t *testing.T) {
	body := gin.H{
		"event": gin.H{
			"title":     "Lunch with Sam",
			"date":      "2025-06-02",
			"startTime": "1:00 PM",
			"endTime":   "2:00 PM",
		},
		"timezone": "America/New_York",
	}

	t.Run("Created", func(t *testing.T) {
		loc, _ := time.LoadLocation("America/New_York")
		uc := &fakeUseCase{submitResult: event.SubmitResult{
			EventID:  "evt-1",
			HtmlLink: "https://calendar.example/evt-1",
			Resolved: event.ResolvedTimeRange{
				Start:    time.Date(2025, 6, 2, 13, 0, 0, 0, loc),
				End:      time.Date(2025, 6, 2, 14, 0, 0, 0, loc),
				Timezone: "America/New_York",
			},
		}}
		r := testRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data submitResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.EventID != "evt-1" || resp.Data.Timezone != "America/New_York" {
			t.Errorf("unexpected body: %+v", resp.Data)
		}
	})

	t.Run("Expired auth maps to 401", func(t *testing.T) {
		r := testRouter(&fakeUseCase{submitErr: event.ErrAuthExpired})
		w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Provider failure maps to 502", func(t *testing.T) {
		r := testRouter(&fakeUseCase{submitErr: &event.CalendarAPIError{Message: "Backend Error"}})
		w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})

	t.Run("Validation failure maps to 400", func(t *testing.T) {
		r := testRouter(&fakeUseCase{submitErr: event.ErrInvalidDate})
		w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestManualEntryHandler(t *testing.T) {
	uc := &fakeUseCase{manualEvent: event.NormalizedEvent{
		Date:        "2025-06-01",
		StartTime:   "12:00 PM",
		EndTime:     "1:00 PM",
		Description: "pasted text",
	}}
	r := testRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/manual", gin.H{"text": "pasted text"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data manualResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Event.Description != "pasted text" || resp.Data.Event.StartTime != "12:00 PM" {
		t.Errorf("unexpected body: %+v", resp.Data)
	}
}

func TestAuthHandlers(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		r := testRouter(&fakeUseCase{authResult: event.AuthResult{Authenticated: true}})
		w := doJSON(t, r, http.MethodGet, "/api/v1/auth/status", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Data authResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Data.Authenticated {
			t.Errorf("expected authenticated")
		}
	})

	t.Run("Connect needing consent returns the URL", func(t *testing.T) {
		r := testRouter(&fakeUseCase{authResult: event.AuthResult{AuthURL: "https://accounts.example/consent"}})
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/connect", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Data authResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.AuthURL == "" {
			t.Errorf("expected consent URL")
		}
	})

	t.Run("Auth failure maps to 401", func(t *testing.T) {
		r := testRouter(&fakeUseCase{authErr: event.ErrAuthFailed})
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/connect", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
