package http

import (
	"github.com/gin-gonic/gin"

	"calendar-clipper/internal/event"
	pkgLog "calendar-clipper/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ManualEntry(c *gin.Context)
	Submit(c *gin.Context)
	AuthStatus(c *gin.Context)
	Authenticate(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l pkgLog.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
