package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a zap-backed Logger from the given configuration.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// WithRequestID stores a request id that will be attached to log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if id, ok := ctx.Value(ctxKeyRequestID).(string); ok && id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

// Args after the message are treated as key/value pairs, matching zap's Infow.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(ctx, zapcore.DebugLevel, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.InfoLevel, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.WarnLevel, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(ctx, zapcore.ErrorLevel, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.log(ctx, zapcore.DPanicLevel, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(ctx, zapcore.PanicLevel, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(ctx, zapcore.FatalLevel, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// log supports both Info(ctx, "msg", "k", v) and Info(ctx, "a", err) call styles.
func (l *zapLogger) log(ctx context.Context, lvl zapcore.Level, arg []any) {
	s := l.with(ctx)
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok && isKeyValues(arg[1:]) {
			s.Logw(lvl, msg, arg[1:]...)
			return
		}
	}
	s.Log(lvl, arg...)
}

func isKeyValues(kv []any) bool {
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			return false
		}
	}
	return true
}
