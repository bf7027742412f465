package telemetry

// SaveOutcome is the record shipped after every calendar-write attempt.
type SaveOutcome struct {
	RecordID       string `json:"record_id"`
	Success        bool   `json:"success"`
	EventID        string `json:"event_id,omitempty"`
	EventTitle     string `json:"event_title"`
	EventDate      string `json:"event_date"`
	EventStartTime string `json:"event_start_time"`
	EventEndTime   string `json:"event_end_time"`
	Error          string `json:"error,omitempty"`
	SaveDurationMs int64  `json:"save_duration_ms"`
}
