package middleware

import (
	"voice-notes/config"
	"voice-notes/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, rateCfg config.RateLimitConfig, telegramCfg config.TelegramConfig) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(rateCfg.RequestsPerMin),
		telegramSecret: telegramCfg.SecretToken,
	}
}
