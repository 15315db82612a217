package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-notes/pkg/errors"
	"voice-notes/pkg/response"
)

// TelegramSecretHeader carries the secret_token registered with setWebhook.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

var errInvalidSecret = pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid webhook secret")

// TelegramSecret rejects webhook calls without the configured secret token.
// Without a configured secret every call passes.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warn(c.Request.Context(), "middleware.TelegramSecret: rejected webhook call", "client", c.ClientIP())
			response.Error(c, errInvalidSecret, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
