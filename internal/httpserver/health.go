package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-notes/pkg/errors"
	"voice-notes/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "voice-notes"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "voice pipeline not configured")

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once the voice pipeline is wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve voice commands
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Voice pipeline not configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.voiceHandler == nil {
		response.Error(c, errNotReady, nil)
		return
	}

	data := srv.status("ready")
	data["telegram"] = srv.telegramHandler != nil
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
