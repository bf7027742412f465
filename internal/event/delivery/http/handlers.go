package http

import (
	"github.com/gin-gonic/gin"

	"calendar-clipper/pkg/response"
)

// Extract godoc
// @Summary     Extract an event from selected text
// @Description Runs the extraction pipeline on the selection: cache check, AI backend call, normalization. A failed extraction still returns 200 with state "error" and the manual-entry offer.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Selection payload"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ManualEntry godoc
// @Summary     Seed the manual-entry form
// @Description Returns a blank event form seeded with defaults and the raw selection as description. Used when extraction failed or the user prefers to type.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body manualReq true "Raw selection"
// @Success     200 {object} manualResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/manual [POST]
func (h *handler) ManualEntry(c *gin.Context) {
	req, err := h.processManualReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newManualResp(h.uc.ManualEntry(req.toInput())))
}

// Submit godoc
// @Summary     Save an event to the calendar
// @Description Validates the user-edited event, resolves its date and times against the timezone, and creates it in the connected calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Event to save"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request - validation failure"
// @Failure     401 {object} response.Resp "Unauthorized - calendar not connected or token expired"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// AuthStatus godoc
// @Summary     Calendar connection status
// @Description Reports whether a calendar credential is silently available, without prompting the user.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authResp
// @Router      /api/v1/auth/status [GET]
func (h *handler) AuthStatus(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, h.newAuthResp(h.uc.AuthStatus(ctx)))
}

// Authenticate godoc
// @Summary     Connect the calendar
// @Description Runs the interactive credential flow. When consent is still needed the response carries the authorization URL to open.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Unauthorized - authentication failed"
// @Router      /api/v1/auth/connect [POST]
func (h *handler) Authenticate(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Authenticate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Authenticate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(output))
}
