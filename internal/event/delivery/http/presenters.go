package http

import (
	"time"

	"calendar-clipper/internal/event"
)

// --- Request DTOs ---

type extractReq struct {
	Text         string `json:"text"         binding:"required"`
	Timezone     string `json:"timezone"`
	CapturedAt   string `json:"capturedAt"   binding:"omitempty"`
	ForceRefresh bool   `json:"forceRefresh"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() event.ProcessInput {
	capturedAt, _ := time.Parse(time.RFC3339, r.CapturedAt)
	return event.ProcessInput{
		Text:         r.Text,
		Timezone:     r.Timezone,
		CapturedAt:   capturedAt,
		ForceRefresh: r.ForceRefresh,
	}
}

// ---

type manualReq struct {
	Text string `json:"text"`
}

func (r manualReq) validate() error { return nil }

func (r manualReq) toInput() event.ManualInput {
	return event.ManualInput{Text: r.Text}
}

// ---

type submitReq struct {
	Event    eventPayload `json:"event"    binding:"required"`
	Timezone string       `json:"timezone"`
}

type eventPayload struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"        binding:"required"`
	StartTime   string   `json:"startTime"   binding:"required"`
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Attendees   []string `json:"attendees"`
}

func (r submitReq) validate() error { return nil }

func (r submitReq) toInput() event.SubmitInput {
	return event.SubmitInput{
		Event: event.NormalizedEvent{
			Title:       r.Event.Title,
			Date:        r.Event.Date,
			StartTime:   r.Event.StartTime,
			EndTime:     r.Event.EndTime,
			Location:    r.Event.Location,
			Description: r.Event.Description,
			Attendees:   r.Event.Attendees,
		},
		Timezone: r.Timezone,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Attendees       []string `json:"attendees"`
	RawText         string   `json:"rawText,omitempty"`
	ErrorCode       string   `json:"errorCode,omitempty"`
	ExtractionError string   `json:"extractionError,omitempty"`
}

func newEventResp(ev event.NormalizedEvent) eventResp {
	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return eventResp{
		Title:           ev.Title,
		Date:            ev.Date,
		StartTime:       ev.StartTime,
		EndTime:         ev.EndTime,
		Location:        ev.Location,
		Description:     ev.Description,
		Attendees:       attendees,
		RawText:         ev.RawText,
		ErrorCode:       ev.ErrorCode,
		ExtractionError: ev.ExtractionError,
	}
}

type outcomeResp struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

type extractResp struct {
	State            string       `json:"state"`
	Event            *eventResp   `json:"event,omitempty"`
	FromCache        bool         `json:"fromCache"`
	Error            *outcomeResp `json:"error,omitempty"`
	AllowManualEntry bool         `json:"allowManualEntry"`
	RawText          string       `json:"rawText,omitempty"`
}

func (h *handler) newExtractResp(out event.ProcessResult) extractResp {
	resp := extractResp{
		State:            string(out.State),
		FromCache:        out.FromCache,
		AllowManualEntry: out.AllowManualEntry,
		RawText:          out.RawText,
	}
	if out.State == event.StateReady {
		ev := newEventResp(out.Event)
		resp.Event = &ev
	}
	if out.State == event.StateError {
		resp.Error = &outcomeResp{
			Code:        string(out.Outcome.Code),
			Message:     out.Outcome.Message,
			Recoverable: out.Outcome.Recoverable,
		}
	}
	return resp
}

type manualResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newManualResp(ev event.NormalizedEvent) manualResp {
	return manualResp{Event: newEventResp(ev)}
}

type submitResp struct {
	EventID    string `json:"eventId"`
	HtmlLink   string `json:"htmlLink,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Timezone   string `json:"timezone"`
	Overnight  bool   `json:"overnight"`
	DurationMs int64  `json:"durationMs"`
}

func (h *handler) newSubmitResp(out event.SubmitResult) submitResp {
	return submitResp{
		EventID:    out.EventID,
		HtmlLink:   out.HtmlLink,
		Start:      out.Resolved.Start.Format(time.RFC3339),
		End:        out.Resolved.End.Format(time.RFC3339),
		Timezone:   out.Resolved.Timezone,
		Overnight:  out.Resolved.Overnight,
		DurationMs: out.DurationMs,
	}
}

type authResp struct {
	Authenticated bool   `json:"authenticated"`
	AuthURL       string `json:"authUrl,omitempty"`
}

func (h *handler) newAuthResp(out event.AuthResult) authResp {
	return authResp{
		Authenticated: out.Authenticated,
		AuthURL:       out.AuthURL,
	}
}
