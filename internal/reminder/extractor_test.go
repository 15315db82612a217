package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-notes/pkg/datemath"
)

var refNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestExtractor(t *testing.T, completer Completer, l *mockLogger) Extractor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return New(l, completer, parser, Config{Locale: datemath.LocaleES, Temperature: 0.1})
}

func TestAnalyze(t *testing.T) {
	future := time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		transcript     string
		answer         string
		err            error
		wantReminder   bool
		wantTime       *time.Time
		wantCleanText  string
		wantPhrase     string
		wantFailure    failure
		wantHeuristics bool
	}{
		{
			name:          "Future reminder",
			transcript:    "recuérdame mañana a las 8 comprar pan",
			answer:        `{"hasReminder": true, "reminderDateTime": "2024-01-11T08:00:00", "cleanText": "comprar pan", "reminderPhrase": "recuérdame mañana a las 8"}`,
			wantReminder:  true,
			wantTime:      &future,
			wantCleanText: "comprar pan",
			wantPhrase:    "recuérdame mañana a las 8",
		},
		{
			name:          "Past date forces no reminder",
			transcript:    "remind me yesterday at 8 to call mom",
			answer:        `{"hasReminder": true, "reminderDateTime": "2024-01-09T08:00:00", "cleanText": "call mom", "reminderPhrase": "remind me yesterday at 8"}`,
			wantCleanText: "call mom",
			wantFailure:   failurePastDate,
		},
		{
			name:          "Exactly now is not in the future",
			transcript:    "avísame ahora",
			answer:        `{"hasReminder": true, "reminderDateTime": "2024-01-10T12:00:00Z", "cleanText": "", "reminderPhrase": "avísame ahora"}`,
			wantCleanText: "avísame ahora",
			wantFailure:   failurePastDate,
		},
		{
			name:          "Unparseable date",
			transcript:    "lembre-me amanhã de pagar a conta",
			answer:        `{"hasReminder": true, "reminderDateTime": "amanhã", "cleanText": "pagar a conta"}`,
			wantCleanText: "pagar a conta",
			wantFailure:   failureInvalidDate,
		},
		{
			name:          "Missing date",
			transcript:    "remind me to water plants",
			answer:        `{"hasReminder": true, "reminderDateTime": null, "cleanText": "water plants"}`,
			wantCleanText: "water plants",
			wantFailure:   failureInvalidDate,
		},
		{
			name:          "Malformed output",
			transcript:    "comprar leche",
			answer:        `Sure! Here is the result: hasReminder=false`,
			wantCleanText: "comprar leche",
			wantFailure:   failureMalformed,
		},
		{
			name:          "Wrong shape",
			transcript:    "comprar leche",
			answer:        `{"hasReminder": {"value": true}}`,
			wantCleanText: "comprar leche",
			wantFailure:   failureMalformed,
		},
		{
			name:          "Remote failure",
			transcript:    "llamar al dentista",
			err:           errors.New("gemini: API error 503: overloaded"),
			wantCleanText: "llamar al dentista",
			wantFailure:   failureRemote,
		},
		{
			name:          "Blank cleanText falls back to transcript",
			transcript:    "pan y leche",
			answer:        `{"hasReminder": false, "reminderDateTime": null, "cleanText": "  ", "reminderPhrase": null}`,
			wantCleanText: "pan y leche",
		},
		{
			name:          "String boolean",
			transcript:    "remind me tomorrow at 8 to stretch",
			answer:        `{"hasReminder": "true", "reminderDateTime": "2024-01-11T08:00:00", "cleanText": "stretch"}`,
			wantReminder:  true,
			wantTime:      &future,
			wantCleanText: "stretch",
		},
		{
			name:           "Remote verdict wins over vocabulary",
			transcript:     "tengo que recordar el cumpleaños de Ana",
			answer:         `{"hasReminder": false, "reminderDateTime": null, "cleanText": "tengo que recordar el cumpleaños de Ana", "reminderPhrase": null}`,
			wantCleanText:  "tengo que recordar el cumpleaños de Ana",
			wantHeuristics: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{text: tt.answer, err: tt.err}
			l := &mockLogger{}
			got := newTestExtractor(t, completer, l).Analyze(context.Background(), tt.transcript, refNow)

			if completer.calls != 1 {
				t.Errorf("expected exactly one remote call, got %d", completer.calls)
			}
			if got.HasReminder != tt.wantReminder {
				t.Errorf("HasReminder = %v, want %v", got.HasReminder, tt.wantReminder)
			}
			if tt.wantTime == nil && got.ReminderTime != nil {
				t.Errorf("ReminderTime = %v, want nil", got.ReminderTime)
			}
			if tt.wantTime != nil && (got.ReminderTime == nil || !got.ReminderTime.Equal(*tt.wantTime)) {
				t.Errorf("ReminderTime = %v, want %v", got.ReminderTime, tt.wantTime)
			}
			if got.CleanText != tt.wantCleanText {
				t.Errorf("CleanText = %q, want %q", got.CleanText, tt.wantCleanText)
			}
			if got.OriginalPhrase != tt.wantPhrase {
				t.Errorf("OriginalPhrase = %q, want %q", got.OriginalPhrase, tt.wantPhrase)
			}

			if tt.wantFailure == "" && len(l.warns) != 0 {
				t.Errorf("unexpected warnings %v", l.warns)
			}
			if tt.wantFailure != "" {
				if len(l.warns) != 1 || l.warns[0]["failure"] != string(tt.wantFailure) {
					t.Errorf("expected one %q warning, got %v", tt.wantFailure, l.warns)
				}
			}
			if tt.wantHeuristics != (len(l.infos) == 1) {
				t.Errorf("heuristic log mismatch: %v", l.infos)
			}
		})
	}
}

func TestAnalyze_FencedEqualsUnwrapped(t *testing.T) {
	body := `{"hasReminder": true, "reminderDateTime": "2024-01-11T08:00:00", "cleanText": "comprar pan", "reminderPhrase": "mañana a las 8"}`
	variants := []string{
		body,
		"```json\n" + body + "\n```",
		"```\n" + body + "\n```",
		"`" + body + "`",
		"Here you go:\n```JSON\n" + body + "\n```\nAnything else?",
	}

	var first Analysis
	for i, v := range variants {
		got := newTestExtractor(t, &fakeCompleter{text: v}, &mockLogger{}).Analyze(context.Background(), "recuérdame mañana a las 8 comprar pan", refNow)
		if !got.HasReminder || got.ReminderTime == nil {
			t.Fatalf("variant %d: expected reminder, got %+v", i, got)
		}
		if i == 0 {
			first = got
			continue
		}
		if !got.ReminderTime.Equal(*first.ReminderTime) || got.CleanText != first.CleanText || got.OriginalPhrase != first.OriginalPhrase {
			t.Errorf("variant %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestAnalyze_EmptyTranscriptSkipsRemote(t *testing.T) {
	completer := &fakeCompleter{}
	got := newTestExtractor(t, completer, &mockLogger{}).Analyze(context.Background(), "   ", refNow)

	if completer.calls != 0 {
		t.Errorf("expected no remote call, got %d", completer.calls)
	}
	if got.HasReminder || got.CleanText != "   " {
		t.Errorf("unexpected analysis %+v", got)
	}
}

func TestAnalyze_Request(t *testing.T) {
	completer := &fakeCompleter{text: `{"hasReminder": false}`}
	newTestExtractor(t, completer, &mockLogger{}).Analyze(context.Background(), "comprar pan", refNow)

	req := completer.req
	if req == nil || req.SystemInstruction == nil {
		t.Fatal("expected a system instruction")
	}
	if !req.JSONResponse {
		t.Error("expected JSON response mode")
	}
	if req.Temperature != 0.1 {
		t.Errorf("Temperature = %v", req.Temperature)
	}
	prompt := req.Messages[0].Text()
	for _, want := range []string{"10/01/2024", "12:00", `"comprar pan"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt %q missing %q", prompt, want)
		}
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"noise {\"a\":{\"b\":2}} trailing", `{"a":{"b":2}}`},
		{"no braces", "no braces"},
		{"} backwards {", "} backwards {"},
	}

	for _, tt := range tests {
		if got := sanitizeJSONResponse(tt.in); got != tt.want {
			t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMentionsReminder(t *testing.T) {
	for _, s := range []string{"RECUÉRDAME", "Set an Alarm", "lembrete da reunião", "avísame"} {
		if !mentionsReminder(s) {
			t.Errorf("mentionsReminder(%q) = false", s)
		}
	}
	if mentionsReminder("comprar pan") {
		t.Error("mentionsReminder(comprar pan) = true")
	}
}
