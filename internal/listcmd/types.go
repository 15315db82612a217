package listcmd

import "voice-notes/internal/model"

// Kind classifies what a piece of cleaned text asks for.
type Kind int

const (
	KindNone Kind = iota
	KindNewList
	KindAddToList
)

func (k Kind) String() string {
	switch k {
	case KindNewList:
		return "new_list"
	case KindAddToList:
		return "add_to_list"
	default:
		return "none"
	}
}

// Match is the result of Classify. MatchedKeyword is empty for KindNone.
type Match struct {
	Kind           Kind
	MatchedKeyword string
}

// NameExtraction is the result of ExtractName. ListName is empty when no name was found,
// in which case RemainingText is the input unchanged.
type NameExtraction struct {
	ListName      string
	RemainingText string
}

// Service detects list commands and turns them into checklist items.
// Implementations hold no mutable state and are safe for concurrent use.
type Service interface {
	// Classify decides whether text starts a new list, adds to an existing one, or is prose.
	Classify(text string) Match

	// ExtractName pulls an optional list title out of a new-list command.
	ExtractName(text string) NameExtraction

	// ParseItems splits a command remainder into ordered checklist item drafts.
	ParseItems(text string) []model.ChecklistItem

	// StripAddKeywords removes every add-to-list phrase from text.
	StripAddKeywords(text string) string

	// Version reports the keyword table version in use.
	Version() string
}
