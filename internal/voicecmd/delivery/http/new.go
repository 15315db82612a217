package http

import (
	"github.com/gin-gonic/gin"

	"voice-notes/internal/voicecmd"
	"voice-notes/pkg/log"
)

// Handler is the public interface for the voicecmd HTTP delivery layer.
type Handler interface {
	Resolve(c *gin.Context)
	CreateNote(c *gin.Context)
	AppendToNote(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voicecmd.UseCase
}

// New creates a new HTTP handler for the voicecmd domain.
func New(l log.Logger, uc voicecmd.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
