package reminder

import (
	"fmt"
	"strings"
	"time"
)

const systemInstruction = `You extract reminders from voice-note transcripts in Spanish, English or Portuguese.
Reply with a single JSON object and nothing else. No markdown, no code fences, no commentary.
The object has exactly these fields:
  "hasReminder": boolean, true only if the speaker asks to be reminded or notified at a specific moment.
  "reminderDateTime": ISO 8601 local date-time "YYYY-MM-DDTHH:MM:SS" resolved against the current date and time, or null.
  "cleanText": the transcript with the reminder request removed, otherwise unchanged. Keep the original language.
  "reminderPhrase": the exact words of the transcript that expressed the reminder, or null.
If there is no reminder, set hasReminder to false, reminderDateTime and reminderPhrase to null, and cleanText to the full transcript.`

// buildPrompt embeds the reference time, in the configured locale, and the transcript.
func (e *implExtractor) buildPrompt(transcript string, now time.Time) string {
	now = now.In(e.dateMath.Location())

	var sb strings.Builder
	fmt.Fprintf(&sb, "Current date: %s (%s)\n", e.dateMath.FormatDate(now, e.cfg.Locale), now.Weekday())
	fmt.Fprintf(&sb, "Current time: %s\n", e.dateMath.FormatClock(now))
	fmt.Fprintf(&sb, "Timezone: %s\n", e.dateMath.Location())
	fmt.Fprintf(&sb, "Transcript: %q\n", transcript)
	return sb.String()
}
