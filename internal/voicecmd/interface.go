package voicecmd

import (
	"context"

	"voice-notes/internal/model"
)

// UseCase turns transcripts into note mutations.
type UseCase interface {
	// Resolve interprets a transcript. It never fails; anything it cannot
	// classify comes back as plain text.
	Resolve(ctx context.Context, input ResolveInput) ParsedVoiceCommand

	// Process resolves a transcript and applies it to a new or existing note.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ApplyOutput, error)

	// ApplyToNote writes an already resolved command to a note and schedules its reminder.
	ApplyToNote(ctx context.Context, sc model.Scope, input ApplyInput) (ApplyOutput, error)
}
