package reminder

import (
	"context"
	"time"

	"voice-notes/pkg/datemath"
	"voice-notes/pkg/llmprovider"
	pkgLog "voice-notes/pkg/log"
)

// Completer is the remote completion service. llmprovider.Manager satisfies it.
type Completer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Extractor detects a reminder request in a transcript.
type Extractor interface {
	// Analyze never fails: every remote or parsing problem yields an Analysis
	// without a reminder whose CleanText is the original transcript.
	Analyze(ctx context.Context, transcript string, now time.Time) Analysis
}

// New creates a reminder Extractor.
func New(l pkgLog.Logger, completer Completer, dateMath *datemath.Parser, cfg Config) Extractor {
	if cfg.Locale == "" {
		cfg.Locale = datemath.LocaleES
	}
	return &implExtractor{
		l:         l,
		completer: completer,
		dateMath:  dateMath,
		cfg:       cfg,
	}
}
