package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
	"voice-notes/internal/voicecmd/repository"
	"voice-notes/pkg/gcalendar"
)

// ApplyToNote writes a resolved command to a new note (empty NoteID) or
// appends it to an existing one, then schedules the reminder if any.
func (uc *implUseCase) ApplyToNote(ctx context.Context, sc model.Scope, input voicecmd.ApplyInput) (voicecmd.ApplyOutput, error) {
	if input.Command.IsEmpty() {
		return voicecmd.ApplyOutput{}, voicecmd.ErrEmptyTranscript
	}

	if input.NoteID == "" {
		return uc.apply(ctx, sc, nil, input.Command, uc.reference(input.Now))
	}

	note, err := uc.getNote(ctx, input.NoteID)
	if err != nil {
		return voicecmd.ApplyOutput{}, err
	}
	return uc.apply(ctx, sc, &note, input.Command, uc.reference(input.Now))
}

func (uc *implUseCase) apply(ctx context.Context, sc model.Scope, note *model.Note, cmd voicecmd.ParsedVoiceCommand, now time.Time) (voicecmd.ApplyOutput, error) {
	var (
		out voicecmd.ApplyOutput
		err error
	)
	if note == nil {
		out, err = uc.createNote(ctx, cmd, now)
	} else {
		out, err = uc.appendToNote(ctx, *note, cmd, now)
	}
	if err != nil {
		return voicecmd.ApplyOutput{}, err
	}

	out.Command = cmd
	out.Progress = uc.checklist.GetStats(out.Note.Content)
	out.Reminder = uc.scheduleReminder(ctx, out.Note, cmd)

	uc.l.Info(ctx, "voicecmd.ApplyToNote: note written",
		"user", sc.Username,
		"note", out.Note.ID,
		"created", out.Created,
		"type", string(out.NoteType),
		"items", len(out.AddedItems),
		"pending", out.Progress.Pending,
		"reminder_scheduled", out.Reminder.Scheduled,
	)
	return out, nil
}

func (uc *implUseCase) createNote(ctx context.Context, cmd voicecmd.ParsedVoiceCommand, now time.Time) (voicecmd.ApplyOutput, error) {
	body := joinBlocks(uc.title(cmd.SuggestedTitle, now), cmd.TextContent)
	body, added := uc.checklist.Append(body, cmd.ChecklistItems)

	noteType := model.NoteTypeOf(cmd.TextContent != "", len(added) > 0)
	note, err := uc.repo.CreateNote(ctx, repository.CreateNoteOptions{
		Content: body,
		Tags:    []string{noteTag(noteType)},
	})
	if err != nil {
		return voicecmd.ApplyOutput{}, fmt.Errorf("%w: %v", voicecmd.ErrNoteUpdate, err)
	}

	return voicecmd.ApplyOutput{
		Note:       note,
		NoteType:   noteType,
		Created:    true,
		AddedItems: added,
	}, nil
}

func (uc *implUseCase) appendToNote(ctx context.Context, note model.Note, cmd voicecmd.ParsedVoiceCommand, now time.Time) (voicecmd.ApplyOutput, error) {
	body, tags := splitTags(note.Content)

	if strings.TrimSpace(body) == "" {
		body = uc.title(cmd.SuggestedTitle, now)
	}
	body = joinBlocks(body, cmd.TextContent)
	body, added := uc.checklist.Append(body, cmd.ChecklistItems)

	comp := uc.checklist.Inspect(body)
	noteType := model.NoteTypeOf(comp.HasText, comp.HasItems)

	updated, err := uc.repo.UpdateNote(ctx, repository.UpdateNoteOptions{
		ID:      note.ID,
		Content: body,
		Tags:    append([]string{noteTag(noteType)}, tags...),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return voicecmd.ApplyOutput{}, voicecmd.ErrNoteNotFound
		}
		return voicecmd.ApplyOutput{}, fmt.Errorf("%w: %v", voicecmd.ErrNoteUpdate, err)
	}

	return voicecmd.ApplyOutput{
		Note:       updated,
		NoteType:   noteType,
		AddedItems: added,
	}, nil
}

func (uc *implUseCase) getNote(ctx context.Context, id string) (model.Note, error) {
	note, err := uc.repo.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Note{}, voicecmd.ErrNoteNotFound
		}
		return model.Note{}, fmt.Errorf("voicecmd: get note %s: %w", id, err)
	}
	return note, nil
}

// title renders "# <title> - <time>", or nothing without a title.
func (uc *implUseCase) title(suggested string, now time.Time) string {
	if suggested == "" {
		return ""
	}
	return fmt.Sprintf("# %s - %s", suggested, now.In(uc.cfg.Location).Format(uc.cfg.TitleTimeFormat))
}

func noteTag(t model.NoteType) string {
	return noteTagPrefix + string(t)
}

func (uc *implUseCase) scheduleReminder(ctx context.Context, note model.Note, cmd voicecmd.ParsedVoiceCommand) voicecmd.ReminderOutcome {
	if cmd.ReminderTime == nil {
		return voicecmd.ReminderOutcome{}
	}

	outcome := voicecmd.ReminderOutcome{
		Requested: true,
		Time:      cmd.ReminderTime,
		Phrase:    cmd.ReminderPhrase,
	}
	if uc.scheduler == nil {
		outcome.Error = "reminder scheduling is not configured"
		uc.l.Warn(ctx, "voicecmd.scheduleReminder: no scheduler", "note", note.ID)
		return outcome
	}

	start := cmd.ReminderTime.In(uc.cfg.Location)
	event, err := uc.scheduler.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:   uc.cfg.CalendarID,
		Summary:      reminderSummary(cmd),
		Description:  reminderDescription(note, cmd),
		StartTime:    start,
		EndTime:      start.Add(uc.cfg.ReminderDuration),
		Timezone:     uc.cfg.Location.String(),
		PopupMinutes: []int64{0},
	})
	if err != nil {
		outcome.Error = err.Error()
		uc.l.Warn(ctx, "voicecmd.scheduleReminder: calendar event failed", "note", note.ID, "error", err.Error())
		return outcome
	}

	outcome.Scheduled = true
	outcome.EventURL = event.HtmlLink
	return outcome
}

// reminderSummary picks the most descriptive short text of the command.
func reminderSummary(cmd voicecmd.ParsedVoiceCommand) string {
	switch {
	case cmd.SuggestedTitle != "":
		return cmd.SuggestedTitle
	case cmd.TextContent != "":
		return truncate(strings.SplitN(cmd.TextContent, "\n", 2)[0], summaryLimit)
	case len(cmd.ChecklistItems) > 0:
		return truncate(cmd.ChecklistItems[0].Text, summaryLimit)
	case cmd.ReminderPhrase != "":
		return truncate(cmd.ReminderPhrase, summaryLimit)
	}
	return "Reminder"
}

func reminderDescription(note model.Note, cmd voicecmd.ParsedVoiceCommand) string {
	var lines []string
	if cmd.ReminderPhrase != "" {
		lines = append(lines, fmt.Sprintf("%q", cmd.ReminderPhrase))
	}
	if note.NoteURL != "" {
		lines = append(lines, note.NoteURL)
	}
	return strings.Join(lines, "\n")
}
