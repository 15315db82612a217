package model

// ChecklistItem is a single checklist entry of a note.
// Order is zero-based and contiguous within one parse or one stored note.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

// MaxOrder returns the highest Order among items, or -1 for an empty slice.
func MaxOrder(items []ChecklistItem) int {
	max := -1
	for _, it := range items {
		if it.Order > max {
			max = it.Order
		}
	}
	return max
}
