package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	voiceHTTP "voice-notes/internal/voicecmd/delivery/http"
)

// setupVoiceDomain registers /api/v1/voice/* behind the rate limiter.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.voiceHandler == nil {
		srv.l.Warnf(ctx, "Voice handler not configured, skipping /api/v1/voice routes")
		return
	}

	voiceHTTP.RegisterRoutes(api, srv.voiceHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Voice domain registered")
}
