package http

import (
	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
	"voice-notes/pkg/response"
)

// --- Response DTOs ---

type itemResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

func newItemResps(items []model.ChecklistItem) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = itemResp{
			ID:        it.ID,
			Text:      it.Text,
			Completed: it.Completed,
			Order:     it.Order,
		}
	}
	return out
}

type commandResp struct {
	ReminderTime             *response.DateTime `json:"reminder_time,omitempty"`
	ReminderPhrase           string             `json:"reminder_phrase,omitempty"`
	TextContent              string             `json:"text_content"`
	ChecklistItems           []itemResp         `json:"checklist_items"`
	TargetsExistingChecklist bool               `json:"targets_existing_checklist"`
	SuggestedTitle           string             `json:"suggested_title,omitempty"`
}

func newCommandResp(cmd voicecmd.ParsedVoiceCommand) commandResp {
	return commandResp{
		ReminderTime:             response.NewDateTime(cmd.ReminderTime),
		ReminderPhrase:           cmd.ReminderPhrase,
		TextContent:              cmd.TextContent,
		ChecklistItems:           newItemResps(cmd.ChecklistItems),
		TargetsExistingChecklist: cmd.TargetsExistingChecklist,
		SuggestedTitle:           cmd.SuggestedTitle,
	}
}

type resolveResp struct {
	Command commandResp `json:"command"`
}

func (h *handler) newResolveResp(cmd voicecmd.ParsedVoiceCommand) resolveResp {
	return resolveResp{Command: newCommandResp(cmd)}
}

type noteResp struct {
	ID      string `json:"id"`
	UID     string `json:"uid"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type reminderResp struct {
	Requested bool               `json:"requested"`
	Scheduled bool               `json:"scheduled"`
	Time      *response.DateTime `json:"time,omitempty"`
	Phrase    string             `json:"phrase,omitempty"`
	EventURL  string             `json:"event_url,omitempty"`
	Error     string             `json:"error,omitempty"`
}

type progressResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Percent   float64 `json:"percent"`
}

type applyResp struct {
	Note       noteResp     `json:"note"`
	Created    bool         `json:"created"`
	Command    commandResp  `json:"command"`
	AddedItems []itemResp   `json:"added_items"`
	Progress   progressResp `json:"progress"`
	Reminder   reminderResp `json:"reminder"`
}

func (h *handler) newApplyResp(out voicecmd.ApplyOutput) applyResp {
	return applyResp{
		Note: noteResp{
			ID:      out.Note.ID,
			UID:     out.Note.UID,
			URL:     out.Note.NoteURL,
			Type:    string(out.NoteType),
			Content: out.Note.Content,
		},
		Created:    out.Created,
		Command:    newCommandResp(out.Command),
		AddedItems: newItemResps(out.AddedItems),
		Progress: progressResp{
			Total:     out.Progress.Total,
			Completed: out.Progress.Completed,
			Pending:   out.Progress.Pending,
			Percent:   out.Progress.Progress,
		},
		Reminder: reminderResp{
			Requested: out.Reminder.Requested,
			Scheduled: out.Reminder.Scheduled,
			Time:      response.NewDateTime(out.Reminder.Time),
			Phrase:    out.Reminder.Phrase,
			EventURL:  out.Reminder.EventURL,
			Error:     out.Reminder.Error,
		},
	}
}
