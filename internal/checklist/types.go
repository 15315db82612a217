package checklist

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Line    int    // Line index in content
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Progress  float64 // Completion percentage (0-100)
}

// Composition tells which kinds of body lines a note holds.
type Composition struct {
	HasText  bool
	HasItems bool
}
