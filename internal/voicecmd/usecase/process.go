package usecase

import (
	"context"
	"errors"
	"strings"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
)

// Process resolves a transcript against the note it targets and writes it.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input voicecmd.ProcessInput) (voicecmd.ApplyOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return voicecmd.ApplyOutput{}, voicecmd.ErrEmptyTranscript
	}
	now := uc.reference(input.Now)

	var target *model.Note
	var existing []model.ChecklistItem
	if input.NoteID != "" {
		note, err := uc.getNote(ctx, input.NoteID)
		if err != nil {
			return voicecmd.ApplyOutput{}, err
		}
		target = &note
		existing = uc.checklist.Items(note.Content)
	}

	cmd := uc.Resolve(ctx, voicecmd.ResolveInput{
		Transcript:    input.Transcript,
		ExistingItems: existing,
		Now:           now,
	})

	if target == nil && cmd.TargetsExistingChecklist && input.RecentNoteID != "" {
		note, err := uc.getNote(ctx, input.RecentNoteID)
		switch {
		case err == nil:
			target = &note
		case errors.Is(err, voicecmd.ErrNoteNotFound):
			uc.l.Info(ctx, "voicecmd.Process: recent note is gone, creating a new one", "note", input.RecentNoteID)
		default:
			return voicecmd.ApplyOutput{}, err
		}
	}

	return uc.apply(ctx, sc, target, cmd, now)
}
