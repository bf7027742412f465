package extractor

import (
	"encoding/json"
	"fmt"
)

// ProcessRequest is the request body for the extraction backend.
type ProcessRequest struct {
	Text         string  `json:"text"`
	CurrentTime  string  `json:"current_time"`  // ISO-8601
	UserTimezone string  `json:"user_timezone"` // IANA, e.g. "America/New_York"
	Context      Context `json:"context"`
}

// Context carries disambiguation hints derived from the selection.
type Context struct {
	TimeContext string `json:"time_context"` // "am" | "pm" | "unknown"
}

// CandidateEvent is the loosely-typed extraction result. The backend has
// shipped both snake_case and camelCase variants of the time fields, so
// both are decoded and the camelCase spelling wins when both are present.
type CandidateEvent struct {
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	StartTime   string     `json:"-"`
	EndTime     string     `json:"-"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Attendees   []Attendee `json:"attendees"`

	// Partial-failure passthrough.
	ErrorCode       string `json:"error_code"`
	ExtractionError string `json:"extraction_error"`
}

// Attendee decodes either a bare email string or an {email} object.
type Attendee struct {
	Email string `json:"email"`
}

// UnmarshalJSON implements json.Unmarshaler for Attendee.
func (a *Attendee) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Email = s
		return nil
	}
	type plain Attendee
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	a.Email = p.Email
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for CandidateEvent,
// resolving the field-name aliases once at the decode boundary.
func (c *CandidateEvent) UnmarshalJSON(data []byte) error {
	type plain CandidateEvent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var aliases struct {
		StartTime      string `json:"startTime"`
		StartTimeSnake string `json:"start_time"`
		EndTime        string `json:"endTime"`
		EndTimeSnake   string `json:"end_time"`
	}
	if err := json.Unmarshal(data, &aliases); err != nil {
		return err
	}

	*c = CandidateEvent(p)
	c.StartTime = firstNonEmpty(aliases.StartTime, aliases.StartTimeSnake)
	c.EndTime = firstNonEmpty(aliases.EndTime, aliases.EndTimeSnake)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// StatusError is a non-2xx response from the extraction backend.
// Detail holds the response body when it was readable.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("extraction backend returned %d: %s", e.Code, e.Detail)
}
