package repository

import (
	"context"
	"errors"

	"voice-notes/internal/model"
)

// ErrNotFound is returned when the requested note does not exist.
var ErrNotFound = errors.New("note not found")

// NoteRepository is the interface for note storage.
type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	GetNote(ctx context.Context, id string) (model.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
}
