package http

import (
	"github.com/gin-gonic/gin"

	"calendar-clipper/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extraction is rate limited per client; the backend behind it is the
// expensive call in the whole flow.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.POST("/manual", h.ManualEntry)
		events.POST("", h.Submit)
	}

	auth := rg.Group("/auth")
	{
		auth.GET("/status", h.AuthStatus)
		auth.POST("/connect", h.Authenticate)
	}
}
