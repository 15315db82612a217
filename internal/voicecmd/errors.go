package voicecmd

import "errors"

var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrNoteNotFound    = errors.New("note not found")
	ErrNoteUpdate      = errors.New("failed to update note")
)
