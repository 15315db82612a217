package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"voice-notes/internal/model"
	"voice-notes/internal/reminder"
	"voice-notes/internal/voicecmd"
)

func TestResolve(t *testing.T) {
	remindAt := fixedNow.Add(2 * time.Hour)

	tests := []struct {
		name       string
		transcript string
		existing   []model.ChecklistItem
		analyze    func(string, time.Time) reminder.Analysis
		wantText   string
		wantItems  []string
		wantOrders []int
		wantTitle  string
		wantTarget bool
		wantRemind bool
	}{
		{
			name:       "plain text",
			transcript: "  llamar al dentista  ",
			wantText:   "llamar al dentista",
		},
		{
			name:       "new list keyword alone stays text",
			transcript: "nueva lista",
			wantText:   "nueva lista",
		},
		{
			name:       "english new list alone stays text",
			transcript: "new list",
			wantText:   "new list",
		},
		{
			name:       "add keyword alone stays text",
			transcript: "agregar",
			wantText:   "agregar",
		},
		{
			name:       "add to list",
			transcript: "agregar a la lista pan y leche",
			wantItems:  []string{"Pan", "Leche"},
			wantOrders: []int{0, 1},
			wantTarget: true,
		},
		{
			name:       "add continues after existing items",
			transcript: "also add eggs, butter",
			existing: []model.ChecklistItem{
				{Text: "Milk", Order: 0},
				{Text: "Bread", Order: 2},
			},
			wantItems:  []string{"Eggs", "Butter"},
			wantOrders: []int{3, 4},
			wantTarget: true,
		},
		{
			name:       "named new list",
			transcript: "lista de supermercado: pan, leche",
			wantItems:  []string{"Pan", "Leche"},
			wantOrders: []int{0, 1},
			wantTitle:  "Supermercado",
		},
		{
			name:       "unnamed new list",
			transcript: "shopping list apples and pears",
			wantItems:  []string{"Apples", "Pears"},
			wantOrders: []int{0, 1},
		},
		{
			name:       "html entities decoded",
			transcript: "Tom &amp; Jerry &lt;3 &quot;hi&quot; &#39;x&#39;&nbsp;end",
			wantText:   `Tom & Jerry <3 "hi" 'x' end`,
		},
		{
			name:       "entity-only text falls back to transcript",
			transcript: "&nbsp;",
			wantText:   "&nbsp;",
		},
		{
			name:       "reminder with cleaned text",
			transcript: "recuérdame mañana a las 12 comprar pan",
			analyze: func(string, time.Time) reminder.Analysis {
				return reminder.Analysis{
					HasReminder:    true,
					ReminderTime:   &remindAt,
					CleanText:      "comprar pan",
					OriginalPhrase: "recuérdame mañana a las 12",
				}
			},
			wantText:   "comprar pan",
			wantRemind: true,
		},
		{
			name:       "reminder on a list",
			transcript: "recuérdame a las 12 agregar a la lista pan",
			analyze: func(string, time.Time) reminder.Analysis {
				return reminder.Analysis{HasReminder: true, ReminderTime: &remindAt, CleanText: "agregar a la lista pan"}
			},
			wantItems:  []string{"Pan"},
			wantOrders: []int{0},
			wantTarget: true,
			wantRemind: true,
		},
		{
			name:       "blank clean text falls back to transcript",
			transcript: "algo",
			analyze: func(string, time.Time) reminder.Analysis {
				return reminder.Analysis{CleanText: "   "}
			},
			wantText: "algo",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.extractor.analyze = tc.analyze

			got := f.uc.Resolve(context.Background(), voicecmd.ResolveInput{
				Transcript:    tc.transcript,
				ExistingItems: tc.existing,
			})

			if got.TextContent != tc.wantText {
				t.Errorf("TextContent = %q, want %q", got.TextContent, tc.wantText)
			}
			if got.ChecklistItems == nil {
				t.Fatal("ChecklistItems must not be nil")
			}
			if len(tc.wantItems) == 0 {
				if len(got.ChecklistItems) != 0 {
					t.Errorf("unexpected items: %v", itemTexts(got.ChecklistItems))
				}
			} else {
				if !reflect.DeepEqual(itemTexts(got.ChecklistItems), tc.wantItems) {
					t.Errorf("items = %v, want %v", itemTexts(got.ChecklistItems), tc.wantItems)
				}
				for i, it := range got.ChecklistItems {
					if it.Order != tc.wantOrders[i] {
						t.Errorf("item %d order = %d, want %d", i, it.Order, tc.wantOrders[i])
					}
					if it.ID == "" || it.Completed {
						t.Errorf("item %d should have an ID and be unchecked: %+v", i, it)
					}
				}
			}
			if got.SuggestedTitle != tc.wantTitle {
				t.Errorf("SuggestedTitle = %q, want %q", got.SuggestedTitle, tc.wantTitle)
			}
			if got.TargetsExistingChecklist != tc.wantTarget {
				t.Errorf("TargetsExistingChecklist = %v, want %v", got.TargetsExistingChecklist, tc.wantTarget)
			}
			if (got.ReminderTime != nil) != tc.wantRemind {
				t.Errorf("ReminderTime = %v, want set=%v", got.ReminderTime, tc.wantRemind)
			}
			if got.IsEmpty() && tc.transcript != "" {
				t.Error("command for a non-empty transcript must not be empty")
			}
		})
	}
}

func TestResolve_WhitespaceTranscript(t *testing.T) {
	for _, transcript := range []string{"   ", "\n\t"} {
		f := newFixture()
		got := f.uc.Resolve(context.Background(), voicecmd.ResolveInput{Transcript: transcript})
		if got.TextContent != transcript {
			t.Errorf("Resolve(%q).TextContent = %q, want the transcript", transcript, got.TextContent)
		}
		if len(got.ChecklistItems) != 0 || !got.IsEmpty() {
			t.Errorf("Resolve(%q) = %+v, want an empty text command", transcript, got)
		}
	}
}

func TestResolve_ReferenceTime(t *testing.T) {
	f := newFixture()
	var seen time.Time
	f.extractor.analyze = func(s string, now time.Time) reminder.Analysis {
		seen = now
		return reminder.Analysis{CleanText: s}
	}

	f.uc.Resolve(context.Background(), voicecmd.ResolveInput{Transcript: "hola"})
	if !seen.Equal(fixedNow) {
		t.Errorf("default reference = %v, want %v", seen, fixedNow)
	}

	explicit := fixedNow.Add(-24 * time.Hour)
	f.uc.Resolve(context.Background(), voicecmd.ResolveInput{Transcript: "hola", Now: explicit})
	if !seen.Equal(explicit) {
		t.Errorf("explicit reference = %v, want %v", seen, explicit)
	}
}

func TestDecodeHTMLEntities_SinglePass(t *testing.T) {
	if got := decodeHTMLEntities("&amp;lt;"); got != "&lt;" {
		t.Errorf("got %q, want %q", got, "&lt;")
	}
	if got := decodeHTMLEntities("&copy;"); got != "&copy;" {
		t.Errorf("unknown entity changed: %q", got)
	}
}

func TestSplitTags(t *testing.T) {
	body, tags := splitTags("# Compras - 2024-03-15 10:00\n- [ ] Pan\n\n#note/checklist #casa\n")
	if body != "# Compras - 2024-03-15 10:00\n- [ ] Pan" {
		t.Errorf("body = %q", body)
	}
	if !reflect.DeepEqual(tags, []string{"#casa"}) {
		t.Errorf("tags = %v", tags)
	}

	body, tags = splitTags("# Heading only")
	if body != "# Heading only" || len(tags) != 0 {
		t.Errorf("heading taken as tag: %q %v", body, tags)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("corto", 10); got != "corto" {
		t.Errorf("got %q", got)
	}
	if got := truncate("añadir muchas cosas", 8); got != "añadir…" {
		t.Errorf("got %q", got)
	}
}
