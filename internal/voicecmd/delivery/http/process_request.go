package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
)

// --- Request DTOs ---

type itemReq struct {
	ID        string `json:"id"`
	Text      string `json:"text" binding:"required"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

type resolveReq struct {
	Transcript    string     `json:"transcript"`
	ExistingItems []itemReq  `json:"existing_items"`
	Now           *time.Time `json:"now"`
}

func (r resolveReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errEmptyTranscript
	}
	return nil
}

func (r resolveReq) toInput() voicecmd.ResolveInput {
	existing := make([]model.ChecklistItem, len(r.ExistingItems))
	for i, it := range r.ExistingItems {
		existing[i] = model.ChecklistItem{
			ID:        it.ID,
			Text:      it.Text,
			Completed: it.Completed,
			Order:     it.Order,
		}
	}
	return voicecmd.ResolveInput{
		Transcript:    r.Transcript,
		ExistingItems: existing,
		Now:           derefTime(r.Now),
	}
}

// ---

type processReq struct {
	Transcript   string     `json:"transcript"`
	RecentNoteID string     `json:"recent_note_id"`
	UserID       string     `json:"user_id"`
	Username     string     `json:"username"`
	Now          *time.Time `json:"now"`

	noteID string
}

func (r processReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errEmptyTranscript
	}
	return nil
}

func (r processReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID, Username: r.Username}
}

func (r processReq) toInput() voicecmd.ProcessInput {
	return voicecmd.ProcessInput{
		Transcript:   r.Transcript,
		NoteID:       r.noteID,
		RecentNoteID: r.RecentNoteID,
		Now:          derefTime(r.Now),
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// processResolveReq binds and validates the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create note request body.
func (h *handler) processCreateReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAppendReq binds and validates the append request body + URI param.
func (h *handler) processAppendReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.noteID = strings.TrimSpace(c.Param("id"))
	if req.noteID == "" {
		return req, errMissingNoteID
	}
	return req, req.validate()
}
