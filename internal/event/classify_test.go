package event_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"calendar-clipper/internal/event"
	"calendar-clipper/pkg/extractor"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want event.ErrorCode
	}{
		{
			name: "Deadline exceeded",
			err:  context.DeadlineExceeded,
			want: event.CodeBackendTimeout,
		},
		{
			name: "Wrapped deadline",
			err:  fmt.Errorf("failed to call extraction backend: %w", context.DeadlineExceeded),
			want: event.CodeBackendTimeout,
		},
		{
			name: "Cancellation",
			err:  context.Canceled,
			want: event.CodeBackendTimeout,
		},
		{
			name: "Connectivity failure",
			err:  &url.Error{Op: "Post", URL: "http://backend", Err: errors.New("connection refused")},
			want: event.CodeBackendUnreachable,
		},
		{
			name: "HTTP 429",
			err:  &extractor.StatusError{Code: 429, Detail: "slow down"},
			want: event.CodeRateLimited,
		},
		{
			name: "Rate limit by message",
			err:  errors.New("backend said: rate limit exceeded"),
			want: event.CodeRateLimited,
		},
		{
			name: "HTTP 500",
			err:  &extractor.StatusError{Code: 500, Detail: "boom"},
			want: event.CodeBackendError,
		},
		{
			name: "Unknown error",
			err:  errors.New("weird"),
			want: event.CodeBackendError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := event.Classify(tt.err)
			if got.Code != tt.want {
				t.Errorf("Classify() code = %s, want %s", got.Code, tt.want)
			}
			if !got.Recoverable {
				t.Errorf("every backend failure must offer manual entry")
			}
			if got.Message == "" {
				t.Errorf("expected a user-facing message")
			}
			if !errors.Is(got.Err, tt.err) {
				t.Errorf("outcome must carry its cause")
			}
		})
	}
}

func TestBackendOutcome(t *testing.T) {
	got := event.BackendOutcome("EXTRACTION_FAILED", "nothing event-like found")
	if got.Code != event.ErrorCode("EXTRACTION_FAILED") || !got.Recoverable {
		t.Errorf("unexpected outcome: %+v", got)
	}

	got = event.BackendOutcome("", "")
	if got.Code != event.CodeBackendError || got.Message == "" {
		t.Errorf("expected defaults, got %+v", got)
	}
}
