package model

// NoteType tags a note by the kind of content it carries.
type NoteType string

const (
	NoteTypeText      NoteType = "text"
	NoteTypeChecklist NoteType = "checklist"
	NoteTypeMixed     NoteType = "mixed"
)

// NoteTypeOf decides the type from whether a note has prose and/or checklist items.
func NoteTypeOf(hasText, hasItems bool) NoteType {
	switch {
	case hasText && hasItems:
		return NoteTypeMixed
	case hasItems:
		return NoteTypeChecklist
	default:
		return NoteTypeText
	}
}

// Note represents a note stored in Memos.
type Note struct {
	ID         string // Memos resource name, e.g. "memos/123"
	UID        string // Memos short UID
	Content    string // Full Markdown content
	NoteURL    string // Deep link to the Memos web UI
	Visibility string // "PRIVATE" or "PUBLIC"
	CreateTime string // RFC3339 creation time string from Memos API
	UpdateTime string // RFC3339 last updated time string from Memos API
}
