package telegram

import (
	"fmt"
	"strings"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
)

const (
	msgWelcome = "Hi! Send me what you would say to your notes app and I will write it down.\n\n" +
		"Examples:\n" +
		"• lista de supermercado: pan, leche y huevos\n" +
		"• agregar a la lista café\n" +
		"• remind me tomorrow at 9 to call the bank"
	msgHelp = "Every message is treated as a transcript.\n\n" +
		"• \"new list ...\" / \"nueva lista ...\" starts a checklist\n" +
		"• \"add ...\" / \"agregar ...\" / \"adicionar ...\" extends the last one\n" +
		"• mention a time to get a calendar reminder\n" +
		"• /new starts over with a fresh note"
	msgNewNote          = "OK, the next message starts a new note."
	msgNoteGone         = "The note you were editing no longer exists. Send the message again to start a new one."
	msgVoiceUnsupported = "Voice messages are not transcribed here. Send the transcript as text."
	msgFailed           = "Something went wrong while saving your note. Please try again."

	replyTimeFormat = "2006-01-02 15:04"
)

// formatReply describes what was written, echoing the reminder phrase the
// model recognized so the user can spot a misunderstanding.
func formatReply(out voicecmd.ApplyOutput) string {
	var b strings.Builder

	verb := "Updated"
	if out.Created {
		verb = "Created"
	}
	fmt.Fprintf(&b, "%s %s note", verb, noteKind(out.NoteType))
	if out.Command.SuggestedTitle != "" {
		fmt.Fprintf(&b, " \"%s\"", out.Command.SuggestedTitle)
	}
	b.WriteString(".")

	if n := len(out.AddedItems); n > 0 {
		texts := make([]string, n)
		for i, it := range out.AddedItems {
			texts[i] = it.Text
		}
		fmt.Fprintf(&b, "\nAdded %d item(s): %s", n, strings.Join(texts, ", "))
	}
	if p := out.Progress; p.Total > 0 {
		fmt.Fprintf(&b, "\nList: %d/%d pending", p.Pending, p.Total)
	}

	if r := out.Reminder; r.Requested {
		switch {
		case r.Scheduled:
			fmt.Fprintf(&b, "\nReminder set: %s", reminderLabel(r))
		default:
			fmt.Fprintf(&b, "\nReminder not scheduled: %s", reminderLabel(r))
		}
	}

	if out.Note.NoteURL != "" {
		fmt.Fprintf(&b, "\n%s", out.Note.NoteURL)
	}
	return b.String()
}

func noteKind(t model.NoteType) string {
	switch t {
	case model.NoteTypeChecklist:
		return "checklist"
	case model.NoteTypeMixed:
		return "mixed"
	default:
		return "text"
	}
}

func reminderLabel(r voicecmd.ReminderOutcome) string {
	var when string
	if r.Time != nil {
		when = r.Time.Format(replyTimeFormat)
	}
	switch {
	case r.Phrase != "" && when != "":
		return fmt.Sprintf("%s (%s)", r.Phrase, when)
	case r.Phrase != "":
		return r.Phrase
	default:
		return when
	}
}
