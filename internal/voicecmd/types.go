package voicecmd

import (
	"strings"
	"time"

	"voice-notes/internal/checklist"
	"voice-notes/internal/model"
)

// ParsedVoiceCommand describes how a transcript should mutate a note. It holds
// no reference to the note itself.
type ParsedVoiceCommand struct {
	ReminderTime             *time.Time            `json:"reminderTime,omitempty"`
	TextContent              string                `json:"textContent"`
	ChecklistItems           []model.ChecklistItem `json:"checklistItems"`
	TargetsExistingChecklist bool                  `json:"targetsExistingChecklist"`
	SuggestedTitle           string                `json:"suggestedTitle,omitempty"`
	// ReminderPhrase is the wording the model recognized as the reminder, for confirmations.
	ReminderPhrase string `json:"reminderPhrase,omitempty"`
}

// IsEmpty reports whether the command carries neither text nor items.
// Whitespace-only text counts as none.
func (c ParsedVoiceCommand) IsEmpty() bool {
	return strings.TrimSpace(c.TextContent) == "" && len(c.ChecklistItems) == 0
}

// ResolveInput is the input of Resolve.
type ResolveInput struct {
	Transcript string
	// ExistingItems are the items of the checklist being edited, if any. New
	// items added to it continue after their highest order.
	ExistingItems []model.ChecklistItem
	// Now is the reference time for reminder validation. Zero means time.Now().
	Now time.Time
}

// ProcessInput is the input of Process.
type ProcessInput struct {
	Transcript string
	// NoteID, when set, is the note being edited; every mutation lands there.
	NoteID string
	// RecentNoteID is the last note touched in the conversation. It receives
	// add-to-list commands when NoteID is empty.
	RecentNoteID string
	Now          time.Time
}

// ApplyInput is the input of ApplyToNote.
type ApplyInput struct {
	// NoteID selects the note to append to. Empty creates a new note.
	NoteID  string
	Command ParsedVoiceCommand
	Now     time.Time
}

// ApplyOutput reports what was written. Progress counts the checkboxes of
// the resulting note.
type ApplyOutput struct {
	Note       model.Note
	NoteType   model.NoteType
	Created    bool
	Command    ParsedVoiceCommand
	AddedItems []model.ChecklistItem
	Progress   checklist.ChecklistStats
	Reminder   ReminderOutcome
}

// ReminderOutcome reports the reminder scheduling result. A failed
// scheduling never rolls back the note write.
type ReminderOutcome struct {
	Requested bool
	Scheduled bool
	Time      *time.Time
	Phrase    string
	EventURL  string
	Error     string
}
