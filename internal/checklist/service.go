package checklist

import (
	"regexp"
	"sort"
	"strings"

	"voice-notes/internal/model"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Regex pattern: captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `^(\s*)[-*] \[([ xX])\] (.+)$`
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// Items returns the checkboxes of content as checklist items ordered by position
	Items(content string) []model.ChecklistItem

	// Render writes items as markdown checkbox lines, sorted by Order
	Render(items []model.ChecklistItem) string

	// Append renumbers items after the highest existing order and adds them to content
	Append(content string, items []model.ChecklistItem) (string, []model.ChecklistItem)

	// Inspect reports whether content holds prose lines, checkbox lines, or both
	Inspect(content string) Composition

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent blanks code blocks so their lines never parse as checkboxes.
// Line count is preserved.
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllStringFunc(content, func(block string) string {
		return strings.Repeat("\n", strings.Count(block, "\n"))
	})
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	lines := strings.Split(sanitizeContent(content), "\n")
	checkboxes := make([]Checkbox, 0)

	for i, line := range lines {
		match := s.pattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
		})
	}

	return checkboxes
}

// Items converts the checkboxes of content into checklist items. Stored
// markdown carries no ids, so ID is left empty.
func (s *service) Items(content string) []model.ChecklistItem {
	checkboxes := s.ParseCheckboxes(content)
	items := make([]model.ChecklistItem, len(checkboxes))
	for i, cb := range checkboxes {
		items[i] = model.ChecklistItem{
			Text:      cb.Text,
			Completed: cb.Checked,
			Order:     i,
		}
	}
	return items
}

// Render writes one checkbox line per item
func (s *service) Render(items []model.ChecklistItem) string {
	sorted := make([]model.ChecklistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	lines := make([]string, 0, len(sorted))
	for _, it := range sorted {
		state := CheckboxUnchecked
		if it.Completed {
			state = CheckboxChecked
		}
		lines = append(lines, state+" "+strings.TrimSpace(it.Text))
	}
	return strings.Join(lines, "\n")
}

// Append adds items to the end of content. Returned items carry their final
// order, contiguous after the existing maximum.
func (s *service) Append(content string, items []model.ChecklistItem) (string, []model.ChecklistItem) {
	if len(items) == 0 {
		return content, nil
	}

	next := model.MaxOrder(s.Items(content)) + 1
	sorted := make([]model.ChecklistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	for i := range sorted {
		sorted[i].Order = next + i
	}

	rendered := s.Render(sorted)
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return rendered, sorted
	}
	return trimmed + "\n" + rendered, sorted
}

// Inspect classifies the body lines of content. Headings and tag lines
// starting with '#' are metadata and count as neither.
func (s *service) Inspect(content string) Composition {
	var comp Composition
	for _, line := range strings.Split(sanitizeContent(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case s.pattern.MatchString(line):
			comp.HasItems = true
		default:
			comp.HasText = true
		}
	}
	return comp
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) ChecklistStats {
	checkboxes := s.ParseCheckboxes(content)
	total := len(checkboxes)

	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
