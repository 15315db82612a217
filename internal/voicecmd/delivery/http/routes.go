package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// mw runs before every route, typically the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	voice := rg.Group("/voice", mw...)
	{
		voice.POST("/commands/resolve", h.Resolve)
		voice.POST("/notes", h.CreateNote)
		voice.POST("/notes/:id", h.AppendToNote)
	}
}
