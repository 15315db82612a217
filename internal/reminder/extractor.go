package reminder

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"voice-notes/pkg/llmprovider"
)

// Analyze asks the completion service about transcript and validates the answer.
func (e *implExtractor) Analyze(ctx context.Context, transcript string, now time.Time) Analysis {
	fallback := Analysis{CleanText: transcript}
	if strings.TrimSpace(transcript) == "" {
		return fallback
	}

	req := llmprovider.NewTextRequest(systemInstruction, e.buildPrompt(transcript, now))
	req.Temperature = e.cfg.Temperature
	req.JSONResponse = true

	resp, err := e.completer.GenerateContent(ctx, req)
	if err != nil {
		e.logFailure(ctx, failureRemote, err.Error())
		return fallback
	}

	raw := resp.Text()
	e.l.Debug(ctx, "reminder.Analyze: model output", "provider", resp.ProviderName, "raw", raw)

	var answer modelAnswer
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &answer); err != nil {
		e.logFailure(ctx, failureMalformed, err.Error())
		return fallback
	}

	result := Analysis{CleanText: transcript}
	if answer.CleanText != nil && strings.TrimSpace(*answer.CleanText) != "" {
		result.CleanText = strings.TrimSpace(*answer.CleanText)
	}

	if !answer.HasReminder {
		if mentionsReminder(transcript) {
			e.l.Info(ctx, "reminder.Analyze: model saw no reminder but transcript uses reminder vocabulary")
		}
		return result
	}

	if answer.ReminderDateTime == nil {
		e.logFailure(ctx, failureInvalidDate, "missing reminderDateTime")
		return result
	}
	at, err := e.dateMath.ParseISO(*answer.ReminderDateTime)
	if err != nil {
		e.logFailure(ctx, failureInvalidDate, err.Error())
		return result
	}
	if !at.After(now) {
		e.logFailure(ctx, failurePastDate, at.Format(time.RFC3339))
		return result
	}

	result.HasReminder = true
	result.ReminderTime = &at
	if answer.ReminderPhrase != nil {
		result.OriginalPhrase = strings.TrimSpace(*answer.ReminderPhrase)
	}
	return result
}

func (e *implExtractor) logFailure(ctx context.Context, kind failure, detail string) {
	e.l.Warn(ctx, "reminder.Analyze: answer discarded", "failure", string(kind), "detail", detail)
}
