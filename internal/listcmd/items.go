package listcmd

import (
	"strings"

	"voice-notes/internal/model"
)

// ParseItems lower-cases text, drops one leading list keyword, and splits the rest
// on punctuation or "y"/"and". Empty fragments are skipped without consuming an order.
func (s *service) ParseItems(text string) []model.ChecklistItem {
	body := s.stripItemPrefix(strings.ToLower(strings.TrimSpace(text)))

	fragments := s.splitPattern.Split(body, -1)
	items := make([]model.ChecklistItem, 0, len(fragments))
	for _, f := range fragments {
		f = strings.Trim(f, separatorCutset)
		if f == "" {
			continue
		}
		items = append(items, model.ChecklistItem{
			ID:        s.newID(),
			Text:      capitalizeFirst(f),
			Completed: false,
			Order:     len(items),
		})
	}
	return items
}

func (s *service) stripItemPrefix(lower string) string {
	for _, kw := range s.kw.ItemPrefixes {
		if hasKeywordPrefix(lower, kw) {
			return stripLeadSeparator(lower[len(kw):])
		}
	}
	return lower
}
