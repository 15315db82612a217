package http

import (
	"errors"
	"net/http"

	"voice-notes/internal/voicecmd"
	pkgErrors "voice-notes/pkg/errors"
)

var (
	errEmptyTranscript = pkgErrors.NewHTTPError(http.StatusBadRequest, "transcript is required")
	errNoteNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "note not found")
	errNoteUpdate      = pkgErrors.NewHTTPError(http.StatusBadGateway, "note storage unavailable")
	errMissingNoteID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "note id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voicecmd.ErrEmptyTranscript):
		return errEmptyTranscript
	case errors.Is(err, voicecmd.ErrNoteNotFound):
		return errNoteNotFound
	case errors.Is(err, voicecmd.ErrNoteUpdate):
		return errNoteUpdate
	default:
		return pkgErrors.ErrInternalServerError
	}
}
