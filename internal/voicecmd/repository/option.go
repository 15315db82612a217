package repository

// CreateNoteOptions holds the parameters for creating a note.
type CreateNoteOptions struct {
	Content    string   // Markdown body without tags
	Tags       []string // Tag strings like "#note/checklist"
	Visibility string   // "PRIVATE" or "PUBLIC" (default: "PRIVATE")
}

// UpdateNoteOptions replaces the content of an existing note.
type UpdateNoteOptions struct {
	ID      string
	Content string
	Tags    []string
}
