package event

import (
	"time"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// Default field values substituted during normalization.
const (
	DefaultTitle     = "Untitled Event"
	DefaultStartTime = "12:00 PM"
	DefaultEndTime   = "1:00 PM"
)

// State is the orchestrator state surfaced to the presentation layer.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// NormalizedEvent is the canonical event record. Every field has a
// guaranteed value, so it is always safe to render in a form and to
// attempt a calendar submission against.
type NormalizedEvent struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Attendees   []string `json:"attendees"`

	// RawText is the original selection, retained for diagnostics and
	// the manual-entry fallback.
	RawText string `json:"rawText"`

	// Partial-failure passthrough from the extraction backend.
	ErrorCode       string `json:"errorCode,omitempty"`
	ExtractionError string `json:"extractionError,omitempty"`
}

// ResolvedTimeRange holds the concrete start/end instants for an event.
// End strictly follows Start; overnight events get End rolled to the
// following calendar day.
type ResolvedTimeRange struct {
	Start     time.Time
	End       time.Time
	Timezone  string // IANA identifier carried for serialization
	Overnight bool
}

// ProcessInput is a user-initiated selection to extract an event from.
type ProcessInput struct {
	Text       string
	Timezone   string // IANA, from the user's browser
	CapturedAt time.Time
	// ForceRefresh bypasses and invalidates the cache entry for this
	// exact text before re-extracting.
	ForceRefresh bool
}

// ProcessResult is the terminal state of one extraction flow.
type ProcessResult struct {
	State State

	// Populated when State == StateReady.
	Event     NormalizedEvent
	FromCache bool

	// Populated when State == StateError.
	Outcome          Outcome
	AllowManualEntry bool
	RawText          string
}

// ManualInput seeds the manual-entry fallback form.
type ManualInput struct {
	Text     string
	Timezone string
}

// SubmitInput is a user-reviewed event to write to the calendar.
type SubmitInput struct {
	Event    NormalizedEvent
	Timezone string
}

// SubmitResult is a successful calendar write.
type SubmitResult struct {
	EventID    string
	HtmlLink   string
	Resolved   ResolvedTimeRange
	DurationMs int64
}

// AuthResult reports credential availability.
type AuthResult struct {
	Authenticated bool
	// AuthURL is set when user interaction is required.
	AuthURL string
}
