package reminder

import (
	"encoding/json"
	"strings"
	"time"

	"voice-notes/pkg/datemath"
	pkgLog "voice-notes/pkg/log"
)

// Config tunes the prompt sent to the completion service.
type Config struct {
	Locale      datemath.Locale
	Temperature float64
}

// Analysis is the validated outcome of one transcript.
type Analysis struct {
	HasReminder bool
	// ReminderTime is set only when HasReminder is true, and is strictly after
	// the reference time passed to Analyze.
	ReminderTime *time.Time
	// CleanText is the transcript without the reminder phrase. Never empty for
	// a non-empty transcript.
	CleanText string
	// OriginalPhrase is the reminder wording as the model quoted it.
	OriginalPhrase string
}

type implExtractor struct {
	l         pkgLog.Logger
	completer Completer
	dateMath  *datemath.Parser
	cfg       Config
}

// modelAnswer is the JSON document the model is asked to produce.
type modelAnswer struct {
	HasReminder      flexBool `json:"hasReminder"`
	ReminderDateTime *string  `json:"reminderDateTime"`
	CleanText        *string  `json:"cleanText"`
	ReminderPhrase   *string  `json:"reminderPhrase"`
}

// flexBool accepts true/false as JSON booleans or as strings.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// failure classifies why an answer was discarded. Diagnostic only.
type failure string

const (
	failureRemote      failure = "remote"
	failureMalformed   failure = "malformed_output"
	failureInvalidDate failure = "invalid_date"
	failurePastDate    failure = "past_date"
)
