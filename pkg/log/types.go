package log

import "go.uber.org/zap"

// ZapConfig controls how Init builds the zap logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// ctxKeyRequestID is looked up on every call so request-scoped lines can be correlated.
	ctxKeyRequestID ctxKey = "request_id"
)

type ctxKey string

type zapLogger struct {
	sugar *zap.SugaredLogger
}
