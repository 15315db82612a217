package usecase

import (
	"context"
	"strings"

	"voice-notes/internal/listcmd"
	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
)

// Resolve runs the reminder extractor and the list pipeline over a transcript.
func (uc *implUseCase) Resolve(ctx context.Context, input voicecmd.ResolveInput) voicecmd.ParsedVoiceCommand {
	analysis := uc.reminder.Analyze(ctx, input.Transcript, uc.reference(input.Now))

	cmd := voicecmd.ParsedVoiceCommand{
		ReminderTime:   analysis.ReminderTime,
		ReminderPhrase: analysis.OriginalPhrase,
		ChecklistItems: []model.ChecklistItem{},
	}
	text := analysis.CleanText

	match := uc.lists.Classify(text)
	switch match.Kind {
	case listcmd.KindAddToList:
		items := uc.lists.ParseItems(uc.lists.StripAddKeywords(text))
		if len(items) > 0 {
			offset := model.MaxOrder(input.ExistingItems) + 1
			for i := range items {
				items[i].Order += offset
			}
			cmd.ChecklistItems = items
			cmd.TargetsExistingChecklist = true
			return cmd
		}

	case listcmd.KindNewList:
		extraction := uc.lists.ExtractName(text)
		source := text
		if extraction.ListName != "" {
			source = extraction.RemainingText
		}
		items := uc.lists.ParseItems(source)
		if len(items) > 0 {
			cmd.ChecklistItems = items
			cmd.SuggestedTitle = extraction.ListName
			return cmd
		}
	}

	if match.Kind != listcmd.KindNone {
		uc.l.Debug(ctx, "voicecmd.Resolve: list command without items, keeping as text",
			"kind", match.Kind.String(), "keyword", match.MatchedKeyword)
	}

	cmd.TextContent = strings.TrimSpace(decodeHTMLEntities(text))
	if cmd.TextContent == "" {
		cmd.TextContent = strings.TrimSpace(input.Transcript)
	}
	if cmd.TextContent == "" {
		cmd.TextContent = input.Transcript
	}
	return cmd
}
